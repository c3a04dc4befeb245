// Package validate checks a raw job specification against business rules
// and produces the normalized form the calculation core consumes.
//
// Validation collects every violation it finds rather than stopping at the
// first, so a caller can display all problems at once. It returns either a
// normalized specification or a non-empty violation list, never both.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"printcost/core/types"
)

// Upper bounds on the specification. Values past these are almost certainly
// data-entry mistakes, not real jobs.
const (
	MaxDimensionMM = 1000
	MaxPages       = 5000
	MaxQuantity    = 1000000
	MaxTextGSM     = 600
	MaxCoverGSM    = 800
)

// collector accumulates violations while coercing raw fields
type collector struct {
	violations []string
}

func (c *collector) addf(format string, args ...any) {
	c.violations = append(c.violations, fmt.Sprintf(format, args...))
}

// float parses a required positive float field
func (c *collector) float(field, raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		c.addf("%s is required", field)
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.addf("%s must be a number, got %q", field, raw)
		return 0
	}
	if v <= 0 {
		c.addf("%s must be positive, got %v", field, v)
		return 0
	}
	return v
}

// wholeNumber parses a required positive integer field, rejecting
// fractional values explicitly.
func (c *collector) wholeNumber(field, raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		c.addf("%s is required", field)
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.addf("%s must be a number, got %q", field, raw)
		return 0
	}
	n := int(v)
	if float64(n) != v {
		c.addf("%s must be a whole number, got %q", field, raw)
		return 0
	}
	if n <= 0 {
		c.addf("%s must be positive, got %d", field, n)
		return 0
	}
	return n
}

// colors parses a color count: an integer in [0, 4]
func (c *collector) colors(field, raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		c.addf("%s is required", field)
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.addf("%s must be a number, got %q", field, raw)
		return 0
	}
	n := int(v)
	if float64(n) != v {
		c.addf("%s must be a whole number, got %q", field, raw)
		return 0
	}
	if n < 0 || n > 4 {
		c.addf("%s must be between 0 and 4, got %d", field, n)
		return 0
	}
	return n
}

// percent parses a percentage field within [min, max)
func (c *collector) percent(field, raw string, allowHundred bool) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		c.addf("%s is required", field)
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.addf("%s must be a number, got %q", field, raw)
		return 0
	}
	if v < 0 {
		c.addf("%s must not be negative, got %v", field, v)
		return 0
	}
	if allowHundred {
		if v > 100 {
			c.addf("%s must be between 0 and 100, got %v", field, v)
			return 0
		}
	} else if v >= 100 {
		// margin inversion divides by (1 - percent/100), undefined at 100
		c.addf("%s must be below 100, got %v", field, v)
		return 0
	}
	return v
}

// Validate normalizes a raw specification or reports every rule violation
func Validate(raw *types.RawJobSpecification) (*types.JobSpecification, []string) {
	c := &collector{}
	spec := &types.JobSpecification{Title: raw.Title}

	spec.TrimWidthMM = c.float("trim width", raw.TrimWidth)
	spec.TrimHeightMM = c.float("trim height", raw.TrimHeight)
	if spec.TrimWidthMM > MaxDimensionMM {
		c.addf("trim width must not exceed %dmm, got %v", MaxDimensionMM, spec.TrimWidthMM)
	}
	if spec.TrimHeightMM > MaxDimensionMM {
		c.addf("trim height must not exceed %dmm, got %v", MaxDimensionMM, spec.TrimHeightMM)
	}

	enabled := 0
	for i, rs := range raw.Sections {
		sec := types.TextSection{Enabled: rs.Enabled, PaperType: rs.PaperType, Machine: rs.Machine}
		if !rs.Enabled {
			spec.Sections = append(spec.Sections, sec)
			continue
		}
		enabled++
		name := fmt.Sprintf("section %d", i+1)

		sec.Pages = c.wholeNumber(name+" pages", rs.Pages)
		if sec.Pages > 0 && sec.Pages%4 != 0 {
			c.addf("%s pages must be a multiple of 4, got %d", name, sec.Pages)
		}
		if sec.Pages > MaxPages {
			c.addf("%s pages must not exceed %d, got %d", name, MaxPages, sec.Pages)
		}

		sec.PaperGSM = c.float(name+" paper gsm", rs.PaperGSM)
		if sec.PaperGSM > MaxTextGSM {
			c.addf("%s paper gsm must not exceed %d, got %v", name, MaxTextGSM, sec.PaperGSM)
		}
		if strings.TrimSpace(rs.PaperType) == "" {
			c.addf("%s paper type is required", name)
		}
		if strings.TrimSpace(rs.Machine) == "" {
			c.addf("%s machine is required", name)
		}

		sec.ColorsFront = c.colors(name+" front colors", rs.ColorsFront)
		sec.ColorsBack = c.colors(name+" back colors", rs.ColorsBack)

		sec.Method = types.MethodSheetwise
		if rs.Method != "" {
			method, ok := types.ParsePrintingMethod(rs.Method)
			if !ok {
				c.addf("%s printing method %q is not recognized", name, rs.Method)
			} else {
				sec.Method = method
			}
		}
		spec.Sections = append(spec.Sections, sec)
	}
	if enabled == 0 {
		c.addf("at least one enabled text section is required")
	}

	if raw.Cover != nil {
		cover := &types.CoverSpecification{
			PaperType:  raw.Cover.PaperType,
			Machine:    raw.Cover.Machine,
			Lamination: raw.Cover.Lamination,
		}
		cover.PaperGSM = c.float("cover paper gsm", raw.Cover.PaperGSM)
		if cover.PaperGSM > MaxCoverGSM {
			c.addf("cover paper gsm must not exceed %d, got %v", MaxCoverGSM, cover.PaperGSM)
		}
		if strings.TrimSpace(raw.Cover.PaperType) == "" {
			c.addf("cover paper type is required")
		}
		cover.ColorsFront = c.colors("cover front colors", raw.Cover.ColorsFront)
		cover.ColorsBack = c.colors("cover back colors", raw.Cover.ColorsBack)
		spec.Cover = cover
	}

	if raw.Endleaves != nil {
		el := &types.EndleafSpecification{PaperType: raw.Endleaves.PaperType}
		el.Pages = c.wholeNumber("endleaf pages", raw.Endleaves.Pages)
		if el.Pages > 0 && el.Pages%4 != 0 {
			c.addf("endleaf pages must be a multiple of 4, got %d", el.Pages)
		}
		el.PaperGSM = c.float("endleaf paper gsm", raw.Endleaves.PaperGSM)
		spec.Endleaves = el
	}

	if raw.Jacket != nil {
		j := &types.JacketSpecification{PaperType: raw.Jacket.PaperType}
		j.PaperGSM = c.float("jacket paper gsm", raw.Jacket.PaperGSM)
		spec.Jacket = j
	}

	if raw.Board != nil {
		b := &types.BoardSpecification{}
		b.GSM = c.float("board gsm", raw.Board.GSM)
		spec.Board = b
	}

	binding, ok := types.ParseBindingType(raw.Binding)
	if !ok {
		c.addf("binding type %q is not recognized", raw.Binding)
	}
	spec.Binding = binding
	spec.Finishing = raw.Finishing

	if strings.TrimSpace(raw.Destination) == "" {
		c.addf("destination is required")
	}
	spec.Destination = raw.Destination

	spec.FreightMode = types.FreightSurface
	if raw.FreightMode != "" {
		mode, ok := types.ParseFreightMode(raw.FreightMode)
		if !ok {
			c.addf("freight mode %q is not recognized", raw.FreightMode)
		} else {
			spec.FreightMode = mode
		}
	}

	if len(raw.Quantities) == 0 {
		c.addf("at least one quantity is required")
	}
	for i, rq := range raw.Quantities {
		q := c.wholeNumber(fmt.Sprintf("quantity %d", i+1), rq)
		if q > MaxQuantity {
			c.addf("quantity %d must not exceed %d, got %d", i+1, MaxQuantity, q)
		}
		spec.Quantities = append(spec.Quantities, q)
	}

	spec.Pricing = c.pricing(raw.Pricing)

	if len(c.violations) > 0 {
		return nil, c.violations
	}
	return spec, nil
}

func (c *collector) pricing(raw types.RawPricingSettings) types.PricingSettings {
	p := types.PricingSettings{
		Turnaround: types.TurnaroundStandard,
		Currency:   types.CurrencyUSD,
	}

	mode, ok := types.ParsePricingMode(raw.Mode)
	if !ok {
		c.addf("pricing mode %q is not recognized (margin or markup)", raw.Mode)
	}
	p.Mode = mode

	p.Percent = c.percent("pricing percent", raw.Percent, false)
	if strings.TrimSpace(raw.TaxRate) != "" {
		p.TaxRatePercent = c.percent("tax rate", raw.TaxRate, true)
	}

	if raw.Turnaround != "" {
		ta, ok := types.ParseTurnaround(raw.Turnaround)
		if !ok {
			c.addf("turnaround %q is not recognized", raw.Turnaround)
		} else {
			p.Turnaround = ta
		}
	}

	if s := strings.TrimSpace(raw.MinimumOrderValue); s != "" {
		mov, err := decimal.NewFromString(s)
		if err != nil {
			c.addf("minimum order value must be a number, got %q", raw.MinimumOrderValue)
		} else if mov.IsNegative() {
			c.addf("minimum order value must not be negative, got %s", mov)
		} else {
			p.MinimumOrderValue = mov
		}
	}

	if raw.Currency != "" {
		p.Currency = types.Currency(raw.Currency)
	}
	return p
}
