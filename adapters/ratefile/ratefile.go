// Package ratefile loads rate overrides from an HCL file and merges them
// over the built-in snapshot. A rate file never has to be complete: it only
// states what differs from the defaults, so a print shop can keep a short
// file with its own paper prices and machine park.
package ratefile

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"printcost/core/rates"
	"printcost/core/types"
	"printcost/internal/errors"
	"printcost/internal/logging"
)

type paperBlock struct {
	Type              string  `hcl:"type,label"`
	GSM               float64 `hcl:"gsm"`
	CaliperMicrons    float64 `hcl:"caliper_microns"`
	LandedCostPerReam float64 `hcl:"landed_cost_per_ream"`
	ChargePerReam     float64 `hcl:"charge_per_ream"`
}

type machineBlock struct {
	ID                 string  `hcl:"id,label"`
	Name               string  `hcl:"name"`
	Class              string  `hcl:"class,optional"`
	MaxSheetWidthMM    float64 `hcl:"max_sheet_width_mm"`
	MaxSheetHeightMM   float64 `hcl:"max_sheet_height_mm"`
	GripMarginMM       float64 `hcl:"grip_margin_mm,optional"`
	SideMarginMM       float64 `hcl:"side_margin_mm,optional"`
	SpeedSheetsPerHour float64 `hcl:"speed_sheets_per_hour,optional"`
	HourlyRate         float64 `hcl:"hourly_rate,optional"`
	InkCostPerHour     float64 `hcl:"ink_cost_per_hour,optional"`
	PowerKW            float64 `hcl:"power_kw,optional"`
	ElectricityRate    float64 `hcl:"electricity_rate,optional"`
	MakeReadyCost      float64 `hcl:"make_ready_cost,optional"`
	MakeReadyHours     float64 `hcl:"make_ready_hours,optional"`
}

type printingBlock struct {
	CTPPerPlate             float64 `hcl:"ctp_per_plate,optional"`
	DefaultMakeReadyPerForm float64 `hcl:"default_make_ready_per_form,optional"`
}

type packingBlock struct {
	CartonRate        float64 `hcl:"carton_rate,optional"`
	PalletRate        float64 `hcl:"pallet_rate,optional"`
	CartonMaxWeightKG float64 `hcl:"carton_max_weight_kg,optional"`
	CartonMaxBooks    int     `hcl:"carton_max_books,optional"`
	CartonsPerPallet  int     `hcl:"cartons_per_pallet,optional"`
}

type discountBlock struct {
	MinQuantity int     `hcl:"min_quantity"`
	Percent     float64 `hcl:"percent"`
}

type fileSchema struct {
	Papers    []paperBlock    `hcl:"paper,block"`
	Machines  []machineBlock  `hcl:"machine,block"`
	Printing  *printingBlock  `hcl:"printing,block"`
	Packing   *packingBlock   `hcl:"packing,block"`
	Discounts []discountBlock `hcl:"volume_discount,block"`
}

// Load reads an HCL rate file and returns the default snapshot with the
// file's overrides applied. Paper rows replace the matching (type, gsm)
// default row or append; machines replace by ID; scalar overrides apply
// only when set.
func Load(path string) (*rates.RateTables, types.MachineSet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, errors.Rates("rate file not readable: "+path, err)
	}

	var file fileSchema
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, nil, errors.Rates("parsing rate file "+path, err)
	}

	tables := rates.Default()
	machines := rates.DefaultMachines()

	for _, p := range file.Papers {
		mergePaper(tables, p)
	}
	for _, m := range file.Machines {
		machines[m.ID] = toProfile(m)
	}
	if file.Printing != nil {
		if file.Printing.CTPPerPlate > 0 {
			tables.Printing.CTPPerPlate = decimal.NewFromFloat(file.Printing.CTPPerPlate)
		}
		if file.Printing.DefaultMakeReadyPerForm > 0 {
			tables.Printing.DefaultMakeReadyPerForm = decimal.NewFromFloat(file.Printing.DefaultMakeReadyPerForm)
		}
	}
	if file.Packing != nil {
		mergePacking(tables, file.Packing)
	}
	if len(file.Discounts) > 0 {
		tiers := make([]rates.VolumeDiscountTier, 0, len(file.Discounts))
		for _, d := range file.Discounts {
			tiers = append(tiers, rates.VolumeDiscountTier{MinQuantity: d.MinQuantity, Percent: d.Percent})
		}
		tables.VolumeDiscounts = tiers
	}

	logging.Info("loaded rate file",
		zap.String("path", path),
		zap.Int("paper_overrides", len(file.Papers)),
		zap.Int("machine_overrides", len(file.Machines)))
	return tables, machines, nil
}

func mergePaper(tables *rates.RateTables, p paperBlock) {
	row := rates.PaperRate{
		PaperType:         p.Type,
		GSM:               p.GSM,
		CaliperMicrons:    p.CaliperMicrons,
		LandedCostPerReam: decimal.NewFromFloat(p.LandedCostPerReam),
		ChargePerReam:     decimal.NewFromFloat(p.ChargePerReam),
	}
	for i := range tables.Paper {
		if tables.Paper[i].PaperType == p.Type && tables.Paper[i].GSM == p.GSM {
			tables.Paper[i] = row
			return
		}
	}
	tables.Paper = append(tables.Paper, row)
}

func mergePacking(tables *rates.RateTables, p *packingBlock) {
	if p.CartonRate > 0 {
		tables.Packing.CartonRate = decimal.NewFromFloat(p.CartonRate)
	}
	if p.PalletRate > 0 {
		tables.Packing.PalletRate = decimal.NewFromFloat(p.PalletRate)
	}
	if p.CartonMaxWeightKG > 0 {
		tables.Packing.CartonMaxWeightKG = p.CartonMaxWeightKG
	}
	if p.CartonMaxBooks > 0 {
		tables.Packing.CartonMaxBooks = p.CartonMaxBooks
	}
	if p.CartonsPerPallet > 0 {
		tables.Packing.CartonsPerPallet = p.CartonsPerPallet
	}
}

func toProfile(m machineBlock) *types.MachineProfile {
	class := types.ResolveMachineClass(m.ID + " " + m.Name)
	if m.Class != "" {
		class = types.MachineClass(m.Class)
	}
	return &types.MachineProfile{
		ID:                 m.ID,
		Name:               m.Name,
		Class:              class,
		MaxSheetWidthMM:    m.MaxSheetWidthMM,
		MaxSheetHeightMM:   m.MaxSheetHeightMM,
		GripMarginMM:       m.GripMarginMM,
		SideMarginMM:       m.SideMarginMM,
		SpeedSheetsPerHour: m.SpeedSheetsPerHour,
		HourlyRate:         decimal.NewFromFloat(m.HourlyRate),
		InkCostPerHour:     decimal.NewFromFloat(m.InkCostPerHour),
		PowerKW:            m.PowerKW,
		ElectricityRate:    decimal.NewFromFloat(m.ElectricityRate),
		MakeReadyCost:      decimal.NewFromFloat(m.MakeReadyCost),
		MakeReadyHours:     m.MakeReadyHours,
	}
}
