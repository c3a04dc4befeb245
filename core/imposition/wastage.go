// Package imposition - Wastage resolution
package imposition

import (
	"math"

	"printcost/core/rates"
	"printcost/internal/errors"
)

// ResolveWastage resolves the waste sheet allowance per form for a run.
// The chart row is picked by quantity range; the column by the effective
// color count (max of front and back): 3+ reads the four-color column,
// 2 the two-color column, everything else single-color. A non-zero
// percentage in the resolved cell wins over the flat sheet count.
func ResolveWastage(chart rates.WastageChart, quantity, effectiveColors int) (int, error) {
	entry, err := rates.ResolveByQuantity(chart, quantity, func(e rates.WastageEntry) rates.QuantityRange {
		return e.Range
	})
	if err != nil {
		return 0, errors.Rates("wastage chart resolution failed", err)
	}

	var sheets int
	var percent float64
	switch {
	case effectiveColors >= 3:
		sheets, percent = entry.SheetsFourColor, entry.PercentFourColor
	case effectiveColors == 2:
		sheets, percent = entry.SheetsTwoColor, entry.PercentTwoColor
	default:
		sheets, percent = entry.SheetsSingleColor, entry.PercentSingleColor
	}

	if percent > 0 {
		return int(math.Ceil(float64(quantity) * percent / 100.0)), nil
	}
	return sheets, nil
}

// GrossSheetsPerForm is the sheets run for one form including wastage:
// ceil((quantity + wastage) / ups).
func GrossSheetsPerForm(quantity, wastage, ups int) (int, error) {
	if ups < 1 {
		return 0, errors.Calculation("wastage", "ups must be at least 1")
	}
	if quantity < 1 {
		return 0, errors.Calculation("wastage", "quantity must be at least 1")
	}
	return int(math.Ceil(float64(quantity+wastage) / float64(ups))), nil
}
