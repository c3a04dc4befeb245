package finishing

import (
	"testing"

	"github.com/shopspring/decimal"

	"printcost/core/rates"
)

func TestAreaScale(t *testing.T) {
	table := rates.Default().Finishing // reference 210x297

	tests := []struct {
		name   string
		w, h   float64
		want   float64
	}{
		{name: "undersized floors at 1", w: 153, h: 234, want: 1},
		{name: "reference trim is exactly 1", w: 210, h: 297, want: 1},
		{name: "oversized scales up", w: 420, h: 297, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AreaScale(tt.w, tt.h, table)
			if got != tt.want {
				t.Errorf("expected scale %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCalculate(t *testing.T) {
	table := rates.Default().Finishing

	t.Run("rate times quantity", func(t *testing.T) {
		total, lines, err := Calculate(Input{
			Quantity: 5000, CoverWidthMM: 153, CoverHeightMM: 234,
			Processes: []string{"gloss_lamination"},
			Rates:     table,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 0.06 * 1.0 * 5000 = 300.00
		want := decimal.RequireFromString("300.00")
		if !total.Equal(want) {
			t.Errorf("expected %s, got %s", want, total)
		}
		if len(lines) != 1 || lines[0].FlooredToMinimum {
			t.Errorf("unexpected lines: %+v", lines)
		}
	})

	t.Run("minimum order floor", func(t *testing.T) {
		total, lines, err := Calculate(Input{
			Quantity: 100, CoverWidthMM: 153, CoverHeightMM: 234,
			Processes: []string{"gloss_lamination"},
			Rates:     table,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 0.06 * 100 = 6.00, floored to the 80.00 minimum
		want := decimal.RequireFromString("80.00")
		if !total.Equal(want) {
			t.Errorf("expected floor %s, got %s", want, total)
		}
		if !lines[0].FlooredToMinimum {
			t.Error("expected the floored flag to be set")
		}
	})

	t.Run("oversized cover charged proportionally", func(t *testing.T) {
		total, _, err := Calculate(Input{
			Quantity: 5000, CoverWidthMM: 420, CoverHeightMM: 297,
			Processes: []string{"gloss_lamination"},
			Rates:     table,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// scale 2: 0.06 * 2 * 5000 = 600.00
		want := decimal.RequireFromString("600.00")
		if !total.Equal(want) {
			t.Errorf("expected %s, got %s", want, total)
		}
	})

	t.Run("multiple processes sum", func(t *testing.T) {
		total, lines, err := Calculate(Input{
			Quantity: 5000, CoverWidthMM: 153, CoverHeightMM: 234,
			Processes: []string{"gloss_lamination", "spot_uv"},
			Rates:     table,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 300.00 + 750.00
		want := decimal.RequireFromString("1050.00")
		if !total.Equal(want) {
			t.Errorf("expected %s, got %s", want, total)
		}
		if len(lines) != 2 {
			t.Errorf("expected 2 lines, got %d", len(lines))
		}
	})

	t.Run("unknown process", func(t *testing.T) {
		_, _, err := Calculate(Input{
			Quantity: 100, CoverWidthMM: 153, CoverHeightMM: 234,
			Processes: []string{"glitter"},
			Rates:     table,
		})
		if err == nil {
			t.Fatal("expected error for unknown finishing process")
		}
	})
}
