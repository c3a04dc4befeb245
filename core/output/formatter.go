// Package output renders cost results for the CLI and other text surfaces.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"printcost/core/types"
	"printcost/internal/errors"
)

// Formatter renders a batch of cost results
type Formatter interface {
	Format(results []*types.CostResult) (string, error)
}

// For returns the formatter for a format name
func For(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "table", "cli", "":
		return &TableFormatter{ShowBreakdown: true}, nil
	case "json":
		return &JSONFormatter{Pretty: true}, nil
	}
	return nil, errors.Input("unknown output format: " + format)
}

// JSONFormatter renders results as JSON
type JSONFormatter struct {
	Pretty bool
}

func (f *JSONFormatter) Format(results []*types.CostResult) (string, error) {
	var (
		data []byte
		err  error
	)
	if f.Pretty {
		data, err = json.MarshalIndent(results, "", "  ")
	} else {
		data, err = json.Marshal(results)
	}
	if err != nil {
		return "", errors.Internal("encoding results", err)
	}
	return string(data), nil
}

// TableFormatter renders a human-readable comparison across quantities
type TableFormatter struct {
	// ShowBreakdown includes the per-quantity cost-center breakdown
	ShowBreakdown bool
}

func (f *TableFormatter) Format(results []*types.CostResult) (string, error) {
	if len(results) == 0 {
		return "No results.\n", nil
	}

	var b strings.Builder
	currency := results[0].Currency

	b.WriteString(fmt.Sprintf("Cost Estimate (%s)\n", currency))
	b.WriteString(strings.Repeat("=", 78) + "\n\n")

	for _, r := range results {
		b.WriteString(fmt.Sprintf("Quantity: %d\n", r.Quantity))
		b.WriteString(fmt.Sprintf("  Spine %.2fmm | Weight %.0fg | %d ups | %d forms | %d plates | %d impressions\n",
			r.Derived.SpineThicknessMM, r.Derived.BookWeightGrams,
			r.Derived.Ups, r.Derived.Forms, r.Derived.Plates, r.Derived.Impressions))
		b.WriteString(fmt.Sprintf("  %d cartons on %d pallets\n\n",
			r.Derived.Cartons, r.Derived.Pallets))

		if f.ShowBreakdown {
			for _, line := range r.Breakdown {
				b.WriteString(fmt.Sprintf("  %-28s %14s\n", line.Label, line.Amount.StringFixed(2)))
			}
			b.WriteString(fmt.Sprintf("  %-28s %14s\n", "Subtotal", r.Subtotal.StringFixed(2)))
		}

		if r.RushSurcharge.IsPositive() {
			b.WriteString(fmt.Sprintf("  %-28s %14s\n", "Rush surcharge", r.RushSurcharge.StringFixed(2)))
		}
		if r.VolumeDiscountAmount.IsPositive() {
			label := fmt.Sprintf("Volume discount (%.1f%%)", r.VolumeDiscountPercent)
			b.WriteString(fmt.Sprintf("  %-28s %14s\n", label, "-"+r.VolumeDiscountAmount.StringFixed(2)))
		}
		if r.MinimumOrderAdjustment.IsPositive() {
			b.WriteString(fmt.Sprintf("  %-28s %14s\n", "Minimum order adjustment", r.MinimumOrderAdjustment.StringFixed(2)))
		}

		b.WriteString(fmt.Sprintf("  %-28s %14s\n", "Production cost", r.ProductionSubtotal.StringFixed(2)))
		b.WriteString(fmt.Sprintf("  %-28s %14s\n", "Sell before tax", r.SellBeforeTax.StringFixed(2)))
		if r.TaxAmount.IsPositive() {
			b.WriteString(fmt.Sprintf("  %-28s %14s\n", "Tax", r.TaxAmount.StringFixed(2)))
		}
		b.WriteString(fmt.Sprintf("  %-28s %14s\n", "GRAND TOTAL", r.GrandTotal.StringFixed(2)))
		b.WriteString(fmt.Sprintf("  %-28s %14s\n", "Cost per copy", r.CostPerCopy.StringFixed(4)))
		b.WriteString(fmt.Sprintf("  %-28s %14s\n\n", "Sell per copy", r.SellPerCopy.StringFixed(4)))
	}

	return b.String(), nil
}
