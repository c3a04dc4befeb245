package rates

import "testing"

func TestResolveByQuantity(t *testing.T) {
	chart := Default().Wastage

	tests := []struct {
		name      string
		quantity  int
		wantMin   int
	}{
		{name: "first bucket", quantity: 500, wantMin: 1},
		{name: "inclusive upper bound", quantity: 1000, wantMin: 1},
		{name: "inclusive lower bound", quantity: 1001, wantMin: 1001},
		{name: "middle bucket", quantity: 5000, wantMin: 1001},
		{name: "open-ended bucket", quantity: 100000, wantMin: 20001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ResolveByQuantity(chart, tt.quantity, func(e WastageEntry) QuantityRange {
				return e.Range
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.Range.Min != tt.wantMin {
				t.Errorf("quantity %d: expected bucket starting at %d, got %d",
					tt.quantity, tt.wantMin, entry.Range.Min)
			}
		})
	}
}

func TestResolveByQuantityEmptyTable(t *testing.T) {
	_, err := ResolveByQuantity(nil, 100, func(e WastageEntry) QuantityRange {
		return e.Range
	})
	if err == nil {
		t.Fatal("expected error for empty tier table")
	}
}

func TestResolveByQuantityBelowAllRangesExtrapolates(t *testing.T) {
	tiers := []SaddleStitchTier{
		{Range: QuantityRange{Min: 100, Max: 500}},
		{Range: QuantityRange{Min: 501}},
	}
	// A quantity under every range still resolves: extrapolation, not error
	tier, err := ResolveByQuantity(tiers, 10, func(t SaddleStitchTier) QuantityRange {
		return t.Range
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tier.Range.Min != 501 {
		t.Errorf("expected last-entry fallback, got bucket starting at %d", tier.Range.Min)
	}
}

func TestResolveVolumeDiscountInclusiveThreshold(t *testing.T) {
	tables := Default()

	tests := []struct {
		quantity int
		want     float64
	}{
		{quantity: 100, want: 0},
		{quantity: 2499, want: 0},
		{quantity: 2500, want: 1.5},
		{quantity: 9999, want: 2.5},
		{quantity: 10000, want: 5.0}, // exactly at threshold gets the higher tier
		{quantity: 50000, want: 7.5},
	}

	for _, tt := range tests {
		got := tables.ResolveVolumeDiscount(tt.quantity)
		if got != tt.want {
			t.Errorf("quantity %d: expected %.1f%% discount, got %.1f%%", tt.quantity, tt.want, got)
		}
	}
}

func TestPaperRateResolve(t *testing.T) {
	table := Default().Paper

	t.Run("exact match", func(t *testing.T) {
		rate, err := table.Resolve("Matt Art", 130)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rate.GSM != 130 {
			t.Errorf("expected 130gsm row, got %.0f", rate.GSM)
		}
	})

	t.Run("nearest gsm within type", func(t *testing.T) {
		rate, err := table.Resolve("matt art", 128)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rate.GSM != 130 {
			t.Errorf("expected nearest row 130gsm, got %.0f", rate.GSM)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := table.Resolve("Papyrus", 100); err == nil {
			t.Fatal("expected error for unknown paper type")
		}
	})
}

func TestFreightResolveFallsBackToLastRoute(t *testing.T) {
	table := Default().Freight

	route, err := table.Resolve("atlantis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.Destination != "rest_of_world" {
		t.Errorf("expected rest_of_world fallback, got %s", route.Destination)
	}
}
