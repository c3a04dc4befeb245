// Package printing computes plates, impressions, and press cost for a run
// of forms. Costing follows one of two mutually exclusive paths: a
// physics-based model when a machine profile with a rated speed is supplied,
// or the legacy impression-rate chart when it is not.
package printing

import (
	"github.com/shopspring/decimal"

	"printcost/core/rates"
	"printcost/core/types"
	"printcost/internal/errors"
)

// Path labels which costing model produced an outcome
type Path string

const (
	PathPhysics Path = "physics"
	PathLegacy  Path = "legacy"
)

// Input is everything the calculator needs, passed explicitly. The machine
// profile is resolved by the caller; this package never reaches into a store.
type Input struct {
	// Forms is the number of forms in the run
	Forms int

	// GrossSheetsPerForm is the sheet count per form including wastage
	GrossSheetsPerForm int

	// ColorsFront and ColorsBack are the per-side color counts
	ColorsFront int
	ColorsBack  int

	// Method is how the form is worked through the press
	Method types.PrintingMethod

	// Machine is the resolved profile, or nil to use the legacy chart
	Machine *types.MachineProfile

	// Class routes the legacy chart lookup when Machine lacks a profile
	Class types.MachineClass

	// Rates carries the plate cost and legacy impression chart
	Rates rates.PrintingRates
}

// Outcome is the printing cost result. Monetary fields are rounded to two
// decimal places here, at the calculator boundary, and nowhere earlier.
type Outcome struct {
	Path Path

	PlatesPerForm        int
	TotalPlates          int
	ImpressionsPerForm   int
	TotalImpressions     int
	EffectiveImpressions int

	// RatePer1000 is the charge per 1,000 impressions. On the physics path
	// it is back-computed from the modeled cost for display compatibility.
	RatePer1000 decimal.Decimal

	PrintingCost  decimal.Decimal
	MakeReadyCost decimal.Decimal
	PlatesCost    decimal.Decimal
}

// PlatesPerForm returns the plate count for one form under a method:
// work-and-turn and work-and-tumble share one plate set across both sides.
func PlatesPerForm(method types.PrintingMethod, colorsFront, colorsBack int) int {
	switch method {
	case types.MethodWorkAndTurn, types.MethodWorkAndTumble:
		return max(colorsFront, colorsBack)
	default: // sheetwise, perfector
		return colorsFront + colorsBack
	}
}

// Calculate runs the printing cost model
func Calculate(in Input) (Outcome, error) {
	if in.Forms < 1 {
		return Outcome{}, errors.Calculation("printing", "form count must be at least 1")
	}
	if in.GrossSheetsPerForm < 1 {
		return Outcome{}, errors.Calculation("printing", "gross sheets per form must be at least 1")
	}

	out := Outcome{
		PlatesPerForm:      PlatesPerForm(in.Method, in.ColorsFront, in.ColorsBack),
		ImpressionsPerForm: in.GrossSheetsPerForm,
	}
	out.TotalPlates = out.PlatesPerForm * in.Forms
	out.TotalImpressions = out.ImpressionsPerForm * in.Forms

	// A perfector prints both sides in one pass
	out.EffectiveImpressions = out.TotalImpressions
	if in.Method == types.MethodPerfector {
		out.EffectiveImpressions = (out.TotalImpressions + 1) / 2
	}

	out.PlatesCost = in.Rates.CTPPerPlate.Mul(decimal.NewFromInt(int64(out.TotalPlates))).Round(2)

	if in.Machine.HasPhysics() {
		out.Path = PathPhysics
		if err := physicsCost(in, &out); err != nil {
			return Outcome{}, err
		}
	} else {
		out.Path = PathLegacy
		if err := legacyCost(in, &out); err != nil {
			return Outcome{}, err
		}
	}

	out.PrintingCost = out.PrintingCost.Round(2)
	out.MakeReadyCost = out.MakeReadyCost.Round(2)
	out.RatePer1000 = out.RatePer1000.Round(2)
	return out, nil
}

// physicsCost models cost from the machine's physical profile
func physicsCost(in Input, out *Outcome) error {
	m := in.Machine
	hourly := m.HourlyCost()

	eff := decimal.NewFromInt(int64(out.EffectiveImpressions))
	speed := decimal.NewFromFloat(m.SpeedSheetsPerHour)
	runningHours := eff.DivRound(speed, 8)

	out.PrintingCost = runningHours.Mul(hourly)

	makeReadyPerForm := m.MakeReadyCost.Add(decimal.NewFromFloat(m.MakeReadyHours).Mul(hourly))
	out.MakeReadyCost = makeReadyPerForm.Mul(decimal.NewFromInt(int64(in.Forms)))

	if out.EffectiveImpressions > 0 {
		out.RatePer1000 = out.PrintingCost.Div(eff).Mul(decimal.NewFromInt(1000))
	}
	return nil
}

// legacyCost prices from the impression-rate chart, bucketed by the
// impressions-per-form value and keyed by machine class.
func legacyCost(in Input, out *Outcome) error {
	entry, err := rates.ResolveByQuantity(in.Rates.Impressions, out.ImpressionsPerForm,
		func(e rates.ImpressionRateEntry) rates.QuantityRange { return e.Range })
	if err != nil {
		return errors.Rates("impression rate resolution failed", err)
	}

	rate, ok := entry.RatePer1000[in.Class]
	if !ok {
		return errors.Rates("no impression rate for machine class "+string(in.Class), nil)
	}

	out.RatePer1000 = rate
	out.PrintingCost = decimal.NewFromInt(int64(out.EffectiveImpressions)).
		Div(decimal.NewFromInt(1000)).
		Mul(rate)
	out.MakeReadyCost = in.Rates.DefaultMakeReadyPerForm.Mul(decimal.NewFromInt(int64(in.Forms)))
	return nil
}
