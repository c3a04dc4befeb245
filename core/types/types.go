// Package types defines the domain model for print job cost estimation.
package types

import "strings"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// BindingType is the closed set of supported binding methods
type BindingType string

const (
	BindingPerfect     BindingType = "perfect_binding"
	BindingSaddle      BindingType = "saddle_stitching"
	BindingSectionSewn BindingType = "section_sewn_hardcase"
	BindingWireO       BindingType = "wire_o"
)

// ParseBindingType parses a binding type name
func ParseBindingType(s string) (BindingType, bool) {
	switch BindingType(s) {
	case BindingPerfect, BindingSaddle, BindingSectionSewn, BindingWireO:
		return BindingType(s), true
	}
	return "", false
}

// PrintingMethod is how a form is worked through the press
type PrintingMethod string

const (
	MethodSheetwise     PrintingMethod = "sheetwise"
	MethodWorkAndTurn   PrintingMethod = "work_and_turn"
	MethodWorkAndTumble PrintingMethod = "work_and_tumble"
	MethodPerfector     PrintingMethod = "perfector"
)

// ParsePrintingMethod parses a printing method name
func ParsePrintingMethod(s string) (PrintingMethod, bool) {
	switch PrintingMethod(s) {
	case MethodSheetwise, MethodWorkAndTurn, MethodWorkAndTumble, MethodPerfector:
		return PrintingMethod(s), true
	}
	return "", false
}

// Turnaround is the requested production schedule
type Turnaround string

const (
	TurnaroundStandard Turnaround = "standard"
	TurnaroundRush     Turnaround = "rush"
	TurnaroundExpress  Turnaround = "express"
)

// Multiplier returns the schedule surcharge multiplier
func (t Turnaround) Multiplier() float64 {
	switch t {
	case TurnaroundRush:
		return 1.15
	case TurnaroundExpress:
		return 1.30
	default:
		return 1.00
	}
}

// ParseTurnaround parses a turnaround name
func ParseTurnaround(s string) (Turnaround, bool) {
	switch Turnaround(s) {
	case TurnaroundStandard, TurnaroundRush, TurnaroundExpress:
		return Turnaround(s), true
	}
	return "", false
}

// PricingMode selects how the sell price is derived from cost
type PricingMode string

const (
	// ModeMargin expresses profit as a percentage of sell price: sell = cost / (1 - p/100)
	ModeMargin PricingMode = "margin"

	// ModeMarkup expresses profit as a percentage of cost: sell = cost * (1 + p/100)
	ModeMarkup PricingMode = "markup"
)

// ParsePricingMode parses a pricing mode name
func ParsePricingMode(s string) (PricingMode, bool) {
	switch PricingMode(s) {
	case ModeMargin, ModeMarkup:
		return PricingMode(s), true
	}
	return "", false
}

// FreightMode is the shipping mode for the delivery leg
type FreightMode string

const (
	FreightSea     FreightMode = "sea"
	FreightAir     FreightMode = "air"
	FreightSurface FreightMode = "surface"
)

// ParseFreightMode parses a freight mode name
func ParseFreightMode(s string) (FreightMode, bool) {
	switch FreightMode(s) {
	case FreightSea, FreightAir, FreightSurface:
		return FreightMode(s), true
	}
	return "", false
}

// MachineClass is the closed press classification used by the legacy
// impression-rate table. Fuzzy machine-name matching happens exactly once,
// here at the boundary; the costing core only ever sees this enum.
type MachineClass string

const (
	ClassDigital      MachineClass = "digital"
	ClassSmallFormat  MachineClass = "small_format"
	ClassMediumFormat MachineClass = "medium_format"
	ClassLargeFormat  MachineClass = "large_format"
)

// machineClassPatterns maps name substrings to classes. Order matters:
// more specific patterns come before shorter ones so "sm102" wins over
// "sm52"-style prefixes, and the scan stops at the first hit.
var machineClassPatterns = []struct {
	substr string
	class  MachineClass
}{
	{"digital", ClassDigital},
	{"indigo", ClassDigital},
	{"sm102", ClassLargeFormat},
	{"cd102", ClassLargeFormat},
	{"xl106", ClassLargeFormat},
	{"sm74", ClassMediumFormat},
	{"sm52", ClassSmallFormat},
	{"gto", ClassSmallFormat},
	{"large", ClassLargeFormat},
	{"medium", ClassMediumFormat},
	{"small", ClassSmallFormat},
}

// ResolveMachineClass classifies a machine by name, case-insensitively.
// Unrecognized names fall back to the medium-format class, matching the
// historical behavior of the impression-rate chart.
func ResolveMachineClass(name string) MachineClass {
	lower := strings.ToLower(name)
	for _, p := range machineClassPatterns {
		if strings.Contains(lower, p.substr) {
			return p.class
		}
	}
	return ClassMediumFormat
}
