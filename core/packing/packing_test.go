package packing

import (
	"testing"

	"github.com/shopspring/decimal"

	"printcost/core/rates"
	"printcost/core/types"
)

func defaultInput() Input {
	tables := rates.Default()
	return Input{
		Quantity:        5000,
		BookWeightGrams: 600,
		Destination:     "domestic",
		Mode:            types.FreightSurface,
		Packing:         tables.Packing,
		Freight:         tables.Freight,
	}
}

func TestCalculateUnitCounts(t *testing.T) {
	out, err := Calculate(defaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 14kg carton / 600g book = 23 books per carton (weight-limited)
	if out.BooksPerCarton != 23 {
		t.Errorf("expected 23 books per carton, got %d", out.BooksPerCarton)
	}
	if out.Cartons != 218 { // ceil(5000/23)
		t.Errorf("expected 218 cartons, got %d", out.Cartons)
	}
	if out.Pallets != 6 { // ceil(218/40)
		t.Errorf("expected 6 pallets, got %d", out.Pallets)
	}
	if out.TotalWeightKG != 3000 {
		t.Errorf("expected 3000kg, got %v", out.TotalWeightKG)
	}

	// 218 * 2.20 + 6 * 18.00 = 479.60 + 108.00
	wantPacking := decimal.RequireFromString("587.60")
	if !out.PackingCost.Equal(wantPacking) {
		t.Errorf("expected packing cost %s, got %s", wantPacking, out.PackingCost)
	}

	// domestic surface: 3000kg * 0.12, no clearance
	wantFreight := decimal.RequireFromString("360.00")
	if !out.FreightCost.Equal(wantFreight) {
		t.Errorf("expected freight cost %s, got %s", wantFreight, out.FreightCost)
	}
}

func TestCalculateLightBookCappedByBookLimit(t *testing.T) {
	in := defaultInput()
	in.BookWeightGrams = 100 // weight would allow 140/carton

	out, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.BooksPerCarton != 40 {
		t.Errorf("expected the 40-book cap, got %d", out.BooksPerCarton)
	}
}

func TestCalculateOverseasAddsClearance(t *testing.T) {
	in := defaultInput()
	in.Destination = "europe"
	in.Mode = types.FreightSea

	out, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Overseas {
		t.Fatal("expected overseas route")
	}
	// 3000 * 0.25 + 120 clearance + 45 documentation
	want := decimal.RequireFromString("915.00")
	if !out.FreightCost.Equal(want) {
		t.Errorf("expected freight %s, got %s", want, out.FreightCost)
	}
}

func TestCalculateUnknownDestinationFallsBack(t *testing.T) {
	in := defaultInput()
	in.Destination = "moon base"
	in.Mode = types.FreightAir

	out, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Route != "rest_of_world" {
		t.Errorf("expected rest_of_world fallback, got %s", out.Route)
	}
}

func TestCalculateMissingModeOnRoute(t *testing.T) {
	in := defaultInput()
	in.Destination = "north_america" // no surface rate priced
	in.Mode = types.FreightSurface

	if _, err := Calculate(in); err == nil {
		t.Fatal("expected error for unpriced freight mode")
	}
}

func TestCalculateDegenerateInput(t *testing.T) {
	in := defaultInput()
	in.Quantity = 0
	if _, err := Calculate(in); err == nil {
		t.Error("expected error for zero quantity")
	}

	in = defaultInput()
	in.BookWeightGrams = 0
	if _, err := Calculate(in); err == nil {
		t.Error("expected error for zero book weight")
	}
}
