package validate

import (
	"strings"
	"testing"

	"printcost/core/types"
)

func validRaw() *types.RawJobSpecification {
	return &types.RawJobSpecification{
		Title:      "Trade paperback",
		TrimWidth:  "153",
		TrimHeight: "234",
		Sections: []types.RawTextSection{
			{
				Enabled:     true,
				Pages:       "256",
				PaperGSM:    "130",
				PaperType:   "Matt Art",
				Machine:     "sm102",
				ColorsFront: "4",
				ColorsBack:  "4",
			},
		},
		Cover: &types.RawCover{
			PaperGSM:    "300",
			PaperType:   "Art Card",
			ColorsFront: "4",
			ColorsBack:  "0",
			Lamination:  "gloss_lamination",
		},
		Binding:     "perfect_binding",
		Destination: "domestic",
		Quantities:  []string{"5000"},
		Pricing: types.RawPricingSettings{
			Mode:    "margin",
			Percent: "20",
			TaxRate: "0",
		},
	}
}

func TestValidateAcceptsWellFormedSpec(t *testing.T) {
	spec, violations := Validate(validRaw())
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if spec == nil {
		t.Fatal("expected a normalized specification")
	}
	if spec.TrimWidthMM != 153 || spec.TrimHeightMM != 234 {
		t.Errorf("trim not normalized: %v x %v", spec.TrimWidthMM, spec.TrimHeightMM)
	}
	if spec.Sections[0].Pages != 256 {
		t.Errorf("pages not normalized: %d", spec.Sections[0].Pages)
	}
	if spec.Quantities[0] != 5000 {
		t.Errorf("quantity not normalized: %d", spec.Quantities[0])
	}
	if spec.Pricing.Mode != types.ModeMargin || spec.Pricing.Percent != 20 {
		t.Errorf("pricing not normalized: %+v", spec.Pricing)
	}
	if spec.Pricing.Turnaround != types.TurnaroundStandard {
		t.Errorf("expected standard turnaround default, got %s", spec.Pricing.Turnaround)
	}
}

func TestValidateRejectsFractionalQuantity(t *testing.T) {
	raw := validRaw()
	raw.Quantities = []string{"1500.5"}

	spec, violations := Validate(raw)
	if spec != nil {
		t.Fatal("expected nil spec for invalid input")
	}
	found := false
	for _, v := range violations {
		if strings.Contains(v, "whole number") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a whole-number violation, got %v", violations)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	raw := validRaw()
	raw.TrimWidth = "-10"
	raw.Sections[0].Pages = "255"         // not a multiple of 4
	raw.Sections[0].ColorsFront = "7"     // out of range
	raw.Quantities = []string{"0"}        // not positive
	raw.Pricing.Percent = "100"           // margin inversion undefined at 100

	spec, violations := Validate(raw)
	if spec != nil {
		t.Fatal("expected nil spec for invalid input")
	}
	if len(violations) < 5 {
		t.Errorf("expected at least 5 collected violations, got %d: %v", len(violations), violations)
	}
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.RawJobSpecification)
		wantSub string
	}{
		{
			name:    "non-numeric trim",
			mutate:  func(r *types.RawJobSpecification) { r.TrimWidth = "wide" },
			wantSub: "must be a number",
		},
		{
			name:    "oversized trim",
			mutate:  func(r *types.RawJobSpecification) { r.TrimWidth = "1200" },
			wantSub: "must not exceed 1000mm",
		},
		{
			name:    "too many pages",
			mutate:  func(r *types.RawJobSpecification) { r.Sections[0].Pages = "5004" },
			wantSub: "must not exceed 5000",
		},
		{
			name:    "excess quantity",
			mutate:  func(r *types.RawJobSpecification) { r.Quantities = []string{"2000000"} },
			wantSub: "must not exceed 1000000",
		},
		{
			name:    "text gsm too heavy",
			mutate:  func(r *types.RawJobSpecification) { r.Sections[0].PaperGSM = "650" },
			wantSub: "must not exceed 600",
		},
		{
			name:    "cover gsm too heavy",
			mutate:  func(r *types.RawJobSpecification) { r.Cover.PaperGSM = "900" },
			wantSub: "must not exceed 800",
		},
		{
			name:    "tax rate above 100",
			mutate:  func(r *types.RawJobSpecification) { r.Pricing.TaxRate = "101" },
			wantSub: "between 0 and 100",
		},
		{
			name:    "unknown binding",
			mutate:  func(r *types.RawJobSpecification) { r.Binding = "staples" },
			wantSub: "not recognized",
		},
		{
			name:    "no enabled sections",
			mutate:  func(r *types.RawJobSpecification) { r.Sections[0].Enabled = false },
			wantSub: "at least one enabled text section",
		},
		{
			name:    "missing destination",
			mutate:  func(r *types.RawJobSpecification) { r.Destination = "" },
			wantSub: "destination is required",
		},
		{
			name:    "unknown pricing mode",
			mutate:  func(r *types.RawJobSpecification) { r.Pricing.Mode = "profit" },
			wantSub: "not recognized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(raw)

			spec, violations := Validate(raw)
			if spec != nil {
				t.Fatal("expected nil spec")
			}
			found := false
			for _, v := range violations {
				if strings.Contains(v, tt.wantSub) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected violation containing %q, got %v", tt.wantSub, violations)
			}
		})
	}
}

func TestValidateDisabledSectionSkipsRules(t *testing.T) {
	raw := validRaw()
	raw.Sections = append(raw.Sections, types.RawTextSection{
		Enabled: false,
		Pages:   "not-a-number", // ignored while disabled
	})

	spec, violations := Validate(raw)
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if len(spec.Sections) != 2 {
		t.Fatalf("expected both sections carried, got %d", len(spec.Sections))
	}
	if spec.Sections[1].Enabled {
		t.Error("disabled section should stay disabled")
	}
}
