package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"printcost/core/types"
)

func sampleResult() *types.CostResult {
	return &types.CostResult{
		Quantity: 5000,
		Currency: types.CurrencyUSD,
		Derived:  types.DerivedQuantities{Ups: 2, Forms: 16, Plates: 132},
		Breakdown: []types.CostLine{
			{Label: "Text paper", Amount: decimal.RequireFromString("5586.00")},
			{Label: "Binding", Amount: decimal.RequireFromString("3900.00")},
		},
		Subtotal:           decimal.RequireFromString("9486.00"),
		ProductionSubtotal: decimal.RequireFromString("9486.00"),
		SellBeforeTax:      decimal.RequireFromString("11857.50"),
		GrandTotal:         decimal.RequireFromString("11857.50"),
		CostPerCopy:        decimal.RequireFromString("1.8972"),
		SellPerCopy:        decimal.RequireFromString("2.3715"),
	}
}

func TestForSelectsFormatter(t *testing.T) {
	if _, err := For("table"); err != nil {
		t.Errorf("table: %v", err)
	}
	if _, err := For("json"); err != nil {
		t.Errorf("json: %v", err)
	}
	if _, err := For("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestTableFormatter(t *testing.T) {
	f := &TableFormatter{ShowBreakdown: true}
	out, err := f.Format([]*types.CostResult{sampleResult()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Quantity: 5000", "Text paper", "GRAND TOTAL", "11857.50", "1.8972"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTableFormatterEmpty(t *testing.T) {
	f := &TableFormatter{}
	out, err := f.Format(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No results") {
		t.Errorf("unexpected empty output: %q", out)
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	f := &JSONFormatter{}
	out, err := f.Format([]*types.CostResult{sampleResult()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []types.CostResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Quantity != 5000 {
		t.Errorf("unexpected decoded payload: %+v", decoded)
	}
}
