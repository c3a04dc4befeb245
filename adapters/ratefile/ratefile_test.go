package ratefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"printcost/core/types"
)

const sampleFile = `
paper "Matt Art" {
  gsm                  = 130
  caliper_microns      = 115
  landed_cost_per_ream = 61.00
  charge_per_ream      = 70.00
}

paper "Recycled Offset" {
  gsm                  = 90
  caliper_microns      = 118
  landed_cost_per_ream = 30.00
  charge_per_ream      = 35.00
}

machine "xl106" {
  name                  = "Heidelberg XL106"
  max_sheet_width_mm    = 1060
  max_sheet_height_mm   = 750
  grip_margin_mm        = 12
  side_margin_mm        = 10
  speed_sheets_per_hour = 18000
  hourly_rate           = 240.00
  ink_cost_per_hour     = 30.00
  power_kw              = 60
  electricity_rate      = 0.15
  make_ready_cost       = 45.00
  make_ready_hours      = 0.4
}

printing {
  ctp_per_plate = 9.50
}

volume_discount {
  min_quantity = 0
  percent      = 0
}

volume_discount {
  min_quantity = 5000
  percent      = 3.0
}
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMergesOverDefaults(t *testing.T) {
	tables, machines, err := Load(writeFile(t, sampleFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Existing row replaced
	rate, err := tables.Paper.Resolve("Matt Art", 130)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.ChargePerReam.Equal(decimal.RequireFromString("70.00")) {
		t.Errorf("expected overridden charge 70.00, got %s", rate.ChargePerReam)
	}
	if rate.CaliperMicrons != 115 {
		t.Errorf("expected overridden caliper 115, got %v", rate.CaliperMicrons)
	}

	// New stock appended
	if _, err := tables.Paper.Resolve("Recycled Offset", 90); err != nil {
		t.Errorf("expected new paper stock to resolve: %v", err)
	}

	// New machine added with its class resolved from the name
	m := machines.Lookup("xl106")
	if m == nil {
		t.Fatal("expected xl106 profile")
	}
	if m.Class != types.ClassLargeFormat {
		t.Errorf("expected large format class, got %s", m.Class)
	}
	if !m.HasPhysics() {
		t.Error("expected a physics-capable profile")
	}

	// Defaults survive where the file is silent
	if machines.Lookup("sm102") == nil {
		t.Error("default machines must survive the merge")
	}
	if !tables.Printing.CTPPerPlate.Equal(decimal.RequireFromString("9.50")) {
		t.Errorf("expected ctp 9.50, got %s", tables.Printing.CTPPerPlate)
	}
	if !tables.Printing.DefaultMakeReadyPerForm.Equal(decimal.RequireFromString("25.00")) {
		t.Error("unset printing scalars must keep their defaults")
	}

	// Discount table replaced wholesale
	if len(tables.VolumeDiscounts) != 2 {
		t.Errorf("expected 2 discount tiers, got %d", len(tables.VolumeDiscounts))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.hcl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	if _, _, err := Load(writeFile(t, "paper {")); err == nil {
		t.Fatal("expected parse error")
	}
}
