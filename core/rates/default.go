// Package rates - Built-in default rate snapshot
package rates

import (
	"github.com/shopspring/decimal"

	"printcost/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default returns the built-in rate snapshot. Production deployments load a
// rate file over these values; tests and the CLI defaults run on them as-is.
func Default() *RateTables {
	return &RateTables{
		PagesPerForm: 16,

		Paper: PaperRateTable{
			{PaperType: "Woodfree", GSM: 70, CaliperMicrons: 88, LandedCostPerReam: dec("28.50"), ChargePerReam: dec("33.00")},
			{PaperType: "Woodfree", GSM: 80, CaliperMicrons: 100, LandedCostPerReam: dec("32.00"), ChargePerReam: dec("37.00")},
			{PaperType: "Woodfree", GSM: 100, CaliperMicrons: 122, LandedCostPerReam: dec("39.50"), ChargePerReam: dec("45.50")},
			{PaperType: "Matt Art", GSM: 115, CaliperMicrons: 98, LandedCostPerReam: dec("52.00"), ChargePerReam: dec("59.00")},
			{PaperType: "Matt Art", GSM: 130, CaliperMicrons: 112, LandedCostPerReam: dec("58.50"), ChargePerReam: dec("66.50")},
			{PaperType: "Matt Art", GSM: 150, CaliperMicrons: 128, LandedCostPerReam: dec("66.00"), ChargePerReam: dec("75.00")},
			{PaperType: "Gloss Art", GSM: 130, CaliperMicrons: 102, LandedCostPerReam: dec("57.00"), ChargePerReam: dec("65.00")},
			{PaperType: "Gloss Art", GSM: 150, CaliperMicrons: 118, LandedCostPerReam: dec("64.50"), ChargePerReam: dec("73.50")},
			{PaperType: "Art Card", GSM: 250, CaliperMicrons: 290, LandedCostPerReam: dec("118.00"), ChargePerReam: dec("132.00")},
			{PaperType: "Art Card", GSM: 300, CaliperMicrons: 350, LandedCostPerReam: dec("141.00"), ChargePerReam: dec("158.00")},
			{PaperType: "Bulky Cream", GSM: 65, CaliperMicrons: 110, LandedCostPerReam: dec("27.00"), ChargePerReam: dec("31.50")},
		},

		Wastage: WastageChart{
			{Range: QuantityRange{Min: 1, Max: 1000}, SheetsFourColor: 150, SheetsTwoColor: 100, SheetsSingleColor: 75},
			{Range: QuantityRange{Min: 1001, Max: 5000}, SheetsFourColor: 250, SheetsTwoColor: 180, SheetsSingleColor: 120},
			{Range: QuantityRange{Min: 5001, Max: 20000}, PercentFourColor: 4.0, PercentTwoColor: 3.0, PercentSingleColor: 2.0},
			{Range: QuantityRange{Min: 20001}, PercentFourColor: 3.0, PercentTwoColor: 2.5, PercentSingleColor: 1.5},
		},

		Binding: BindingRates{
			Perfect: []PerfectBindingTier{
				{Range: QuantityRange{Min: 1, Max: 2000}, RatePer16pp: dec("0.045"), GatheringPer16pp: dec("0.012"), SetupCost: dec("60.00")},
				{Range: QuantityRange{Min: 2001, Max: 10000}, RatePer16pp: dec("0.038"), GatheringPer16pp: dec("0.010"), SetupCost: dec("60.00")},
				{Range: QuantityRange{Min: 10001}, RatePer16pp: dec("0.030"), GatheringPer16pp: dec("0.008"), SetupCost: dec("60.00")},
			},
			Saddle: []SaddleStitchTier{
				{Range: QuantityRange{Min: 1, Max: 2000}, RatePerCopy: dec("0.12"), SetupCost: dec("40.00")},
				{Range: QuantityRange{Min: 2001, Max: 10000}, RatePerCopy: dec("0.09"), SetupCost: dec("40.00")},
				{Range: QuantityRange{Min: 10001}, RatePerCopy: dec("0.07"), SetupCost: dec("40.00")},
			},
			SectionSewn: []SectionSewnTier{
				{Range: QuantityRange{Min: 1, Max: 2000}, SewingPer16pp: dec("0.060"), HardcasePerCopy: dec("1.90"), SetupCost: dec("150.00")},
				{Range: QuantityRange{Min: 2001, Max: 10000}, SewingPer16pp: dec("0.050"), HardcasePerCopy: dec("1.60"), SetupCost: dec("150.00")},
				{Range: QuantityRange{Min: 10001}, SewingPer16pp: dec("0.045"), HardcasePerCopy: dec("1.40"), SetupCost: dec("150.00")},
			},
			WireO: []WireOTier{
				{MaxSpineMM: 6.4, Pitch: "3:1 1/4in", RatePerCopy: dec("0.55"), SetupCost: dec("45.00")},
				{MaxSpineMM: 9.5, Pitch: "3:1 3/8in", RatePerCopy: dec("0.70"), SetupCost: dec("45.00")},
				{MaxSpineMM: 12.7, Pitch: "2:1 1/2in", RatePerCopy: dec("0.85"), SetupCost: dec("45.00")},
				{MaxSpineMM: 25.4, Pitch: "2:1 1in", RatePerCopy: dec("1.20"), SetupCost: dec("45.00")},
			},
		},

		Finishing: FinishingRateTable{
			ReferenceTrimWidthMM:  210,
			ReferenceTrimHeightMM: 297,
			Rates: []FinishingRate{
				{Type: "gloss_lamination", RatePerCopy: dec("0.06"), MinimumOrder: dec("80.00")},
				{Type: "matt_lamination", RatePerCopy: dec("0.07"), MinimumOrder: dec("80.00")},
				{Type: "spot_uv", RatePerCopy: dec("0.15"), MinimumOrder: dec("120.00")},
				{Type: "embossing", RatePerCopy: dec("0.20"), MinimumOrder: dec("150.00")},
				{Type: "die_cutting", RatePerCopy: dec("0.10"), MinimumOrder: dec("100.00")},
			},
		},

		Printing: PrintingRates{
			CTPPerPlate:             dec("8.00"),
			DefaultMakeReadyPerForm: dec("25.00"),
			Impressions: []ImpressionRateEntry{
				{Range: QuantityRange{Min: 0, Max: 1000}, RatePer1000: map[types.MachineClass]decimal.Decimal{
					types.ClassDigital:      dec("42.00"),
					types.ClassSmallFormat:  dec("7.20"),
					types.ClassMediumFormat: dec("8.00"),
					types.ClassLargeFormat:  dec("9.00"),
				}},
				{Range: QuantityRange{Min: 1001, Max: 5000}, RatePer1000: map[types.MachineClass]decimal.Decimal{
					types.ClassDigital:      dec("40.00"),
					types.ClassSmallFormat:  dec("6.00"),
					types.ClassMediumFormat: dec("6.50"),
					types.ClassLargeFormat:  dec("7.50"),
				}},
				{Range: QuantityRange{Min: 5001, Max: 20000}, RatePer1000: map[types.MachineClass]decimal.Decimal{
					types.ClassDigital:      dec("38.00"),
					types.ClassSmallFormat:  dec("5.00"),
					types.ClassMediumFormat: dec("5.50"),
					types.ClassLargeFormat:  dec("6.00"),
				}},
				{Range: QuantityRange{Min: 20001}, RatePer1000: map[types.MachineClass]decimal.Decimal{
					types.ClassDigital:      dec("36.00"),
					types.ClassSmallFormat:  dec("4.20"),
					types.ClassMediumFormat: dec("4.50"),
					types.ClassLargeFormat:  dec("5.00"),
				}},
			},
		},

		Freight: FreightTable{
			Routes: []FreightRoute{
				{Destination: "domestic", PerKG: map[types.FreightMode]decimal.Decimal{
					types.FreightSurface: dec("0.12"),
					types.FreightAir:     dec("0.90"),
					types.FreightSea:     dec("0.10"),
				}},
				{Destination: "europe", Overseas: true,
					PerKG: map[types.FreightMode]decimal.Decimal{
						types.FreightSea:     dec("0.25"),
						types.FreightAir:     dec("1.80"),
						types.FreightSurface: dec("0.60"),
					},
					ClearanceCharge: dec("120.00"), DocumentationCharge: dec("45.00")},
				{Destination: "north_america", Overseas: true,
					PerKG: map[types.FreightMode]decimal.Decimal{
						types.FreightSea: dec("0.30"),
						types.FreightAir: dec("2.20"),
					},
					ClearanceCharge: dec("150.00"), DocumentationCharge: dec("60.00")},
				{Destination: "rest_of_world", Overseas: true,
					PerKG: map[types.FreightMode]decimal.Decimal{
						types.FreightSea: dec("0.35"),
						types.FreightAir: dec("2.60"),
					},
					ClearanceCharge: dec("180.00"), DocumentationCharge: dec("75.00")},
			},
		},

		Packing: PackingRates{
			CartonRate:        dec("2.20"),
			PalletRate:        dec("18.00"),
			CartonMaxWeightKG: 14.0,
			CartonMaxBooks:    40,
			CartonsPerPallet:  40,
		},

		VolumeDiscounts: []VolumeDiscountTier{
			{MinQuantity: 0, Percent: 0},
			{MinQuantity: 2500, Percent: 1.5},
			{MinQuantity: 5000, Percent: 2.5},
			{MinQuantity: 10000, Percent: 5.0},
			{MinQuantity: 25000, Percent: 7.5},
		},
	}
}

// DefaultMachines returns the built-in machine profiles. The SM102 and SM74
// carry full physical profiles; the GTO and the digital press deliberately
// have no rated speed so they exercise the legacy impression-rate path.
func DefaultMachines() types.MachineSet {
	return types.MachineSet{
		"sm102": {
			ID: "sm102", Name: "Heidelberg SM102", Class: types.ClassLargeFormat,
			MaxSheetWidthMM: 1020, MaxSheetHeightMM: 720,
			GripMarginMM: 12, SideMarginMM: 10,
			SpeedSheetsPerHour: 10000,
			HourlyRate:         dec("180.00"),
			InkCostPerHour:     dec("25.00"),
			PowerKW:            45,
			ElectricityRate:    dec("0.15"),
			MakeReadyCost:      dec("40.00"),
			MakeReadyHours:     0.5,
		},
		"sm74": {
			ID: "sm74", Name: "Heidelberg SM74", Class: types.ClassMediumFormat,
			MaxSheetWidthMM: 740, MaxSheetHeightMM: 530,
			GripMarginMM: 10, SideMarginMM: 8,
			SpeedSheetsPerHour: 12000,
			HourlyRate:         dec("120.00"),
			InkCostPerHour:     dec("18.00"),
			PowerKW:            28,
			ElectricityRate:    dec("0.15"),
			MakeReadyCost:      dec("30.00"),
			MakeReadyHours:     0.35,
		},
		"gto52": {
			ID: "gto52", Name: "Heidelberg GTO52", Class: types.ClassSmallFormat,
			MaxSheetWidthMM: 520, MaxSheetHeightMM: 360,
			GripMarginMM: 8, SideMarginMM: 6,
		},
		"digital": {
			ID: "digital", Name: "HP Indigo Digital", Class: types.ClassDigital,
			MaxSheetWidthMM: 480, MaxSheetHeightMM: 330,
			GripMarginMM: 5, SideMarginMM: 5,
		},
	}
}
