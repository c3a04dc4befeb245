// Package types - Cost result types
package types

import "github.com/shopspring/decimal"

// CostLine is a single itemized cost-center contribution
type CostLine struct {
	// Label is a human-readable cost center name
	Label string `json:"label"`

	// Amount is the cost contribution
	Amount decimal.Decimal `json:"amount"`
}

// DerivedQuantities are the physical quantities computed alongside the costs
type DerivedQuantities struct {
	// Ups is the number of form copies carried per press sheet (text)
	Ups int `json:"ups"`

	// Forms is the number of text forms/signatures
	Forms int `json:"forms"`

	// Plates is the total plate count across all forms
	Plates int `json:"plates"`

	// Impressions is the total effective impression count
	Impressions int `json:"impressions"`

	// Reams is the text paper consumption in reams of 500 sheets
	Reams float64 `json:"reams"`

	// SpineThicknessMM is the derived spine thickness
	SpineThicknessMM float64 `json:"spine_thickness_mm"`

	// BookWeightGrams is the derived weight of one finished copy
	BookWeightGrams float64 `json:"book_weight_grams"`

	// Cartons and Pallets are the packing unit counts
	Cartons int `json:"cartons"`
	Pallets int `json:"pallets"`
}

// CostResult is the complete costing outcome for one requested quantity.
// It is constructed once per (specification, quantity) pair and never
// mutated afterwards; a recalculation produces a new result.
type CostResult struct {
	// Quantity is the print run this result was calculated for
	Quantity int `json:"quantity"`

	// Currency is the currency of every monetary field
	Currency Currency `json:"currency"`

	// Derived holds the non-monetary derived quantities
	Derived DerivedQuantities `json:"derived"`

	// Cost centers
	PaperCost      decimal.Decimal `json:"paper_cost"`
	CoverCost      decimal.Decimal `json:"cover_cost"`
	PrintingCost   decimal.Decimal `json:"printing_cost"`
	PlatesCost     decimal.Decimal `json:"plates_cost"`
	MakeReadyCost  decimal.Decimal `json:"make_ready_cost"`
	BindingCost    decimal.Decimal `json:"binding_cost"`
	FinishingCost  decimal.Decimal `json:"finishing_cost"`
	PackingCost    decimal.Decimal `json:"packing_cost"`
	FreightCost    decimal.Decimal `json:"freight_cost"`

	// Breakdown itemizes the cost centers in presentation order
	Breakdown []CostLine `json:"breakdown"`

	// Pricing pipeline outputs, in application order
	Subtotal               decimal.Decimal `json:"subtotal"`
	RushSurcharge          decimal.Decimal `json:"rush_surcharge"`
	VolumeDiscountPercent  float64         `json:"volume_discount_percent"`
	VolumeDiscountAmount   decimal.Decimal `json:"volume_discount_amount"`
	MinimumOrderAdjustment decimal.Decimal `json:"minimum_order_adjustment"`
	ProductionSubtotal     decimal.Decimal `json:"production_subtotal"`
	SellBeforeTax          decimal.Decimal `json:"sell_before_tax"`
	TaxAmount              decimal.Decimal `json:"tax_amount"`
	GrandTotal             decimal.Decimal `json:"grand_total"`

	// Per-copy figures
	CostPerCopy decimal.Decimal `json:"cost_per_copy"`
	SellPerCopy decimal.Decimal `json:"sell_per_copy"`
}

// TotalCost sums every cost center (the pre-surcharge subtotal basis)
func (r *CostResult) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, line := range r.Breakdown {
		total = total.Add(line.Amount)
	}
	return total
}
