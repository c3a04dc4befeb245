// Package rates - Rate table definitions
package rates

import (
	"strings"

	"github.com/shopspring/decimal"

	"printcost/core/types"
	"printcost/internal/errors"
)

// PaperRate prices one paper stock at one grammage
type PaperRate struct {
	// PaperType is the stock name (e.g. "Matt Art", "Woodfree")
	PaperType string `json:"paper_type"`

	// GSM is the grammage this row applies to
	GSM float64 `json:"gsm"`

	// CaliperMicrons is the thickness of one sheet
	CaliperMicrons float64 `json:"caliper_microns"`

	// LandedCostPerReam is the purchase cost per ream of 500 press sheets
	LandedCostPerReam decimal.Decimal `json:"landed_cost_per_ream"`

	// ChargePerReam is the rate charged to the job per ream
	ChargePerReam decimal.Decimal `json:"charge_per_ream"`
}

// CaliperMM is the sheet thickness in millimeters
func (p PaperRate) CaliperMM() float64 {
	return p.CaliperMicrons / 1000.0
}

// PaperRateTable lists all priced paper stocks
type PaperRateTable []PaperRate

// Resolve finds the rate for a paper type and grammage. Type matching is
// case-insensitive; within a type the row with the nearest GSM wins, so a
// 128gsm request against a 130gsm row still prices.
func (t PaperRateTable) Resolve(paperType string, gsm float64) (PaperRate, error) {
	var best *PaperRate
	bestDist := 0.0
	for i := range t {
		if !strings.EqualFold(t[i].PaperType, paperType) {
			continue
		}
		dist := t[i].GSM - gsm
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist {
			best = &t[i]
			bestDist = dist
		}
	}
	if best == nil {
		return PaperRate{}, errors.NotFound("paper rate", paperType)
	}
	return *best, nil
}

// WastageEntry is one row of the wastage chart. Each color class carries
// either a flat sheet count or a percentage; a non-zero percentage wins.
type WastageEntry struct {
	Range QuantityRange `json:"range"`

	SheetsFourColor   int `json:"sheets_4c"`
	SheetsTwoColor    int `json:"sheets_2c"`
	SheetsSingleColor int `json:"sheets_1c"`

	PercentFourColor   float64 `json:"percent_4c"`
	PercentTwoColor    float64 `json:"percent_2c"`
	PercentSingleColor float64 `json:"percent_1c"`
}

// WastageChart is the full tiered wastage table
type WastageChart []WastageEntry

// PerfectBindingTier prices perfect binding for a quantity range
type PerfectBindingTier struct {
	Range            QuantityRange   `json:"range"`
	RatePer16pp      decimal.Decimal `json:"rate_per_16pp"`
	GatheringPer16pp decimal.Decimal `json:"gathering_per_16pp"`
	SetupCost        decimal.Decimal `json:"setup_cost"`
}

// SaddleStitchTier prices saddle stitching for a quantity range
type SaddleStitchTier struct {
	Range       QuantityRange   `json:"range"`
	RatePerCopy decimal.Decimal `json:"rate_per_copy"`
	SetupCost   decimal.Decimal `json:"setup_cost"`
}

// SectionSewnTier prices section-sewn hardcase binding for a quantity range
type SectionSewnTier struct {
	Range           QuantityRange   `json:"range"`
	SewingPer16pp   decimal.Decimal `json:"sewing_per_16pp"`
	HardcasePerCopy decimal.Decimal `json:"hardcase_per_copy"`
	SetupCost       decimal.Decimal `json:"setup_cost"`
}

// WireOTier prices wire-o binding, resolved by spine thickness rather than
// quantity: the spine dictates the wire pitch, the pitch dictates the rate.
type WireOTier struct {
	// MaxSpineMM is the largest spine this wire pitch can close over
	MaxSpineMM  float64         `json:"max_spine_mm"`
	Pitch       string          `json:"pitch"`
	RatePerCopy decimal.Decimal `json:"rate_per_copy"`
	SetupCost   decimal.Decimal `json:"setup_cost"`
}

// BindingRates bundles the per-binding-type tier tables
type BindingRates struct {
	Perfect     []PerfectBindingTier `json:"perfect"`
	Saddle      []SaddleStitchTier   `json:"saddle"`
	SectionSewn []SectionSewnTier    `json:"section_sewn"`
	WireO       []WireOTier          `json:"wire_o"`
}

// FinishingRate prices one finishing process
type FinishingRate struct {
	// Type is the process name (e.g. "gloss_lamination", "spot_uv")
	Type string `json:"type"`

	// RatePerCopy is the per-copy rate at the reference trim size
	RatePerCopy decimal.Decimal `json:"rate_per_copy"`

	// MinimumOrder is the floor charged regardless of quantity
	MinimumOrder decimal.Decimal `json:"minimum_order"`
}

// FinishingRateTable prices finishing processes against a reference trim.
// Jobs larger than the reference are charged proportionally more, never less.
type FinishingRateTable struct {
	ReferenceTrimWidthMM  float64         `json:"reference_trim_width_mm"`
	ReferenceTrimHeightMM float64         `json:"reference_trim_height_mm"`
	Rates                 []FinishingRate `json:"rates"`
}

// Resolve finds the rate for a finishing type, case-insensitively
func (t FinishingRateTable) Resolve(finType string) (FinishingRate, error) {
	for _, r := range t.Rates {
		if strings.EqualFold(r.Type, finType) {
			return r, nil
		}
	}
	return FinishingRate{}, errors.NotFound("finishing rate", finType)
}

// ImpressionRateEntry is one bucket of the legacy impression-rate chart,
// keyed by impressions-per-form and machine class.
type ImpressionRateEntry struct {
	// Range buckets the impressions-per-form value
	Range QuantityRange `json:"range"`

	// RatePer1000 is the charge per 1,000 impressions, by machine class
	RatePer1000 map[types.MachineClass]decimal.Decimal `json:"rate_per_1000"`
}

// PrintingRates holds the plate cost and the legacy impression chart
type PrintingRates struct {
	// CTPPerPlate is the computer-to-plate cost per plate
	CTPPerPlate decimal.Decimal `json:"ctp_per_plate"`

	// Impressions is the legacy fallback chart for machines without a
	// physical profile
	Impressions []ImpressionRateEntry `json:"impressions"`

	// DefaultMakeReadyPerForm is the make-ready cost used on the legacy path
	DefaultMakeReadyPerForm decimal.Decimal `json:"default_make_ready_per_form"`
}

// FreightRoute prices delivery to one destination
type FreightRoute struct {
	// Destination is the route name; the last route in the table acts as
	// the default for unrecognized destinations
	Destination string `json:"destination"`

	// Overseas adds clearance and documentation charges
	Overseas bool `json:"overseas"`

	// PerKG is the rate per kilogram by freight mode
	PerKG map[types.FreightMode]decimal.Decimal `json:"per_kg"`

	// ClearanceCharge and DocumentationCharge apply once per overseas shipment
	ClearanceCharge     decimal.Decimal `json:"clearance_charge"`
	DocumentationCharge decimal.Decimal `json:"documentation_charge"`
}

// FreightTable lists all priced routes
type FreightTable struct {
	Routes []FreightRoute `json:"routes"`
}

// Resolve finds a route by destination, case-insensitively, falling back to
// the last route when the destination is unrecognized.
func (t FreightTable) Resolve(destination string) (FreightRoute, error) {
	if len(t.Routes) == 0 {
		return FreightRoute{}, errors.Rates("empty freight table", nil)
	}
	for _, r := range t.Routes {
		if strings.EqualFold(r.Destination, destination) {
			return r, nil
		}
	}
	return t.Routes[len(t.Routes)-1], nil
}

// PackingRates holds the packaging unit costs and capacity assumptions
type PackingRates struct {
	// CartonRate and PalletRate are the per-unit costs
	CartonRate decimal.Decimal `json:"carton_rate"`
	PalletRate decimal.Decimal `json:"pallet_rate"`

	// CartonMaxWeightKG caps the packed weight of one carton
	CartonMaxWeightKG float64 `json:"carton_max_weight_kg"`

	// CartonMaxBooks caps the copies per carton regardless of weight
	CartonMaxBooks int `json:"carton_max_books"`

	// CartonsPerPallet is the pallet stacking assumption
	CartonsPerPallet int `json:"cartons_per_pallet"`
}

// VolumeDiscountTier grants a discount from a quantity threshold upward.
// Thresholds are inclusive: a quantity exactly at MinQuantity receives
// this tier's discount.
type VolumeDiscountTier struct {
	MinQuantity int     `json:"min_quantity"`
	Percent     float64 `json:"percent"`
}

// RateTables is the complete read-only rate snapshot the engine consumes
type RateTables struct {
	Paper           PaperRateTable       `json:"paper"`
	Wastage         WastageChart         `json:"wastage"`
	Binding         BindingRates         `json:"binding"`
	Finishing       FinishingRateTable   `json:"finishing"`
	Printing        PrintingRates        `json:"printing"`
	Freight         FreightTable         `json:"freight"`
	Packing         PackingRates         `json:"packing"`
	VolumeDiscounts []VolumeDiscountTier `json:"volume_discounts"`

	// PagesPerForm is the imposition convention, normally 16
	PagesPerForm int `json:"pages_per_form"`
}

// ResolveVolumeDiscount returns the discount percent for a quantity:
// the tier with the largest threshold not exceeding the quantity.
func (t *RateTables) ResolveVolumeDiscount(quantity int) float64 {
	percent := 0.0
	best := -1
	for _, tier := range t.VolumeDiscounts {
		if quantity >= tier.MinQuantity && tier.MinQuantity > best {
			best = tier.MinQuantity
			percent = tier.Percent
		}
	}
	return percent
}
