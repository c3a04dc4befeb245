// Package pricing turns an aggregated production cost into a sell price.
//
// The pipeline order is load-bearing and fixed:
//
//	subtotal -> turnaround surcharge -> volume discount (on the surcharged
//	amount) -> minimum-order floor (after discounting) -> margin/markup
//	inversion (on the floored amount) -> tax -> per-copy figures.
package pricing

import (
	"github.com/shopspring/decimal"

	"printcost/core/rates"
	"printcost/core/types"
	"printcost/internal/errors"
)

// Input is the aggregated cost and pricing settings for one quantity
type Input struct {
	// Quantity is the print run
	Quantity int

	// Subtotal is the sum of every cost-center contribution
	Subtotal decimal.Decimal

	// Settings are the normalized pricing settings from the specification
	Settings types.PricingSettings

	// DiscountTiers is the volume discount threshold table
	DiscountTiers []rates.VolumeDiscountTier
}

// Outcome is the priced result, every monetary field rounded to 2dp and
// per-copy figures to 4dp.
type Outcome struct {
	Subtotal               decimal.Decimal
	RushSurcharge          decimal.Decimal
	VolumeDiscountPercent  float64
	VolumeDiscountAmount   decimal.Decimal
	MinimumOrderAdjustment decimal.Decimal
	ProductionSubtotal     decimal.Decimal
	SellBeforeTax          decimal.Decimal
	TaxAmount              decimal.Decimal
	GrandTotal             decimal.Decimal
	CostPerCopy            decimal.Decimal
	SellPerCopy            decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// resolveDiscount picks the tier with the largest threshold not exceeding
// the quantity. Thresholds are inclusive.
func resolveDiscount(tiers []rates.VolumeDiscountTier, quantity int) float64 {
	percent := 0.0
	best := -1
	for _, t := range tiers {
		if quantity >= t.MinQuantity && t.MinQuantity > best {
			best = t.MinQuantity
			percent = t.Percent
		}
	}
	return percent
}

// Calculate runs the pricing pipeline
func Calculate(in Input) (Outcome, error) {
	if in.Quantity < 1 {
		return Outcome{}, errors.Calculation("pricing", "quantity must be at least 1")
	}
	if in.Subtotal.IsNegative() {
		return Outcome{}, errors.Calculation("pricing", "subtotal must not be negative")
	}

	out := Outcome{Subtotal: in.Subtotal.Round(2)}

	// 1-2. Turnaround surcharge on the base subtotal
	multiplier := decimal.NewFromFloat(in.Settings.Turnaround.Multiplier())
	surcharged := in.Subtotal.Mul(multiplier)
	out.RushSurcharge = surcharged.Sub(in.Subtotal).Round(2)

	// 3. Volume discount applies to the surcharged amount, not the base
	out.VolumeDiscountPercent = resolveDiscount(in.DiscountTiers, in.Quantity)
	discountAmount := surcharged.Mul(decimal.NewFromFloat(out.VolumeDiscountPercent)).Div(oneHundred)
	out.VolumeDiscountAmount = discountAmount.Round(2)
	discounted := surcharged.Sub(discountAmount)

	// 4. Minimum-order floor after discounting: a heavily discounted small
	// order can still be lifted back to the floor
	adjustment := in.Settings.MinimumOrderValue.Sub(discounted)
	if adjustment.IsNegative() {
		adjustment = decimal.Zero
	}
	out.MinimumOrderAdjustment = adjustment.Round(2)
	floored := discounted.Add(adjustment)
	out.ProductionSubtotal = floored.Round(2)

	// 5. Margin/markup inversion on the floor-adjusted amount
	percent := decimal.NewFromFloat(in.Settings.Percent)
	var sell decimal.Decimal
	switch in.Settings.Mode {
	case types.ModeMargin:
		divisor := decimal.NewFromInt(1).Sub(percent.Div(oneHundred))
		if !divisor.IsPositive() {
			return Outcome{}, errors.Calculation("pricing", "margin percent must be below 100")
		}
		sell = floored.DivRound(divisor, 8)
	case types.ModeMarkup:
		sell = floored.Mul(decimal.NewFromInt(1).Add(percent.Div(oneHundred)))
	default:
		return Outcome{}, errors.Calculationf("pricing", "unknown pricing mode %q", in.Settings.Mode)
	}
	out.SellBeforeTax = sell.Round(2)

	// 6. Tax on the sell price
	tax := sell.Mul(decimal.NewFromFloat(in.Settings.TaxRatePercent)).Div(oneHundred)
	out.TaxAmount = tax.Round(2)
	grand := sell.Add(tax)
	out.GrandTotal = grand.Round(2)

	// 7. Per-copy figures
	qty := decimal.NewFromInt(int64(in.Quantity))
	out.CostPerCopy = floored.DivRound(qty, 4)
	out.SellPerCopy = grand.DivRound(qty, 4)

	return out, nil
}
