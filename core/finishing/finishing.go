// Package finishing prices post-press finishing: lamination, spot UV,
// embossing, die cutting. Every process follows the same shape: a per-copy
// rate scaled by cover area, with a table minimum so small runs never
// undercut the supplier's floor.
package finishing

import (
	"github.com/shopspring/decimal"

	"printcost/core/rates"
	"printcost/internal/errors"
)

// Input is one finishing job over the covered sheets of a run
type Input struct {
	// Quantity is the covered sheet count, normally one cover per copy
	Quantity int

	// CoverWidthMM and CoverHeightMM are the job's trim dimensions
	CoverWidthMM  float64
	CoverHeightMM float64

	// Processes names the finishing processes to apply
	Processes []string

	// Rates is the finishing rate snapshot
	Rates rates.FinishingRateTable
}

// Line is the priced outcome of one finishing process
type Line struct {
	Process string
	Cost    decimal.Decimal

	// FlooredToMinimum marks a cost lifted to the table minimum
	FlooredToMinimum bool
}

// AreaScale compares the job's cover area against the table's reference
// trim. Oversized covers are charged proportionally more; undersized covers
// never drop below the table rate, so the factor floors at 1.
func AreaScale(widthMM, heightMM float64, t rates.FinishingRateTable) float64 {
	refArea := t.ReferenceTrimWidthMM * t.ReferenceTrimHeightMM
	if refArea <= 0 {
		return 1
	}
	scale := (widthMM * heightMM) / refArea
	if scale < 1 {
		return 1
	}
	return scale
}

// Calculate prices every requested process and returns the itemized lines
// with the total, rounded to 2dp per line.
func Calculate(in Input) (decimal.Decimal, []Line, error) {
	if in.Quantity < 1 {
		return decimal.Zero, nil, errors.Calculation("finishing", "quantity must be at least 1")
	}

	scale := decimal.NewFromFloat(AreaScale(in.CoverWidthMM, in.CoverHeightMM, in.Rates))
	qty := decimal.NewFromInt(int64(in.Quantity))

	total := decimal.Zero
	lines := make([]Line, 0, len(in.Processes))
	for _, proc := range in.Processes {
		rate, err := in.Rates.Resolve(proc)
		if err != nil {
			return decimal.Zero, nil, err
		}

		cost := rate.RatePerCopy.Mul(scale).Mul(qty)
		floored := false
		if cost.LessThan(rate.MinimumOrder) {
			cost = rate.MinimumOrder
			floored = true
		}
		cost = cost.Round(2)

		lines = append(lines, Line{Process: rate.Type, Cost: cost, FlooredToMinimum: floored})
		total = total.Add(cost)
	}
	return total, lines, nil
}
