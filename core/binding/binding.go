// Package binding prices the binding of a run. Each binding method is a
// strategy over the closed set of supported types; every strategy resolves
// its own tier table and produces a per-copy rate plus a one-time setup.
package binding

import (
	"math"

	"github.com/shopspring/decimal"

	"printcost/core/rates"
	"printcost/core/types"
	"printcost/internal/errors"
)

// Input is the geometry and quantity a strategy prices from
type Input struct {
	// Quantity is the print run
	Quantity int

	// Pages is the total page count across enabled sections
	Pages int

	// SpineMM selects the wire pitch for wire-o binding
	SpineMM float64

	// PagesPerSignature is the signature convention, normally 16
	PagesPerSignature int

	// Rates is the binding tier snapshot
	Rates rates.BindingRates
}

// Outcome is the binding price for the run
type Outcome struct {
	// PerCopy is the resolved per-copy rate
	PerCopy decimal.Decimal

	// SetupCost is the one-time setup, added once, never per copy
	SetupCost decimal.Decimal

	// Total is PerCopy * Quantity + SetupCost, rounded to 2dp
	Total decimal.Decimal

	// Signatures is the signature count used (0 for saddle and wire-o)
	Signatures int

	// WirePitch names the resolved wire for wire-o binding
	WirePitch string
}

// Calculator prices one binding method
type Calculator interface {
	Type() types.BindingType
	Cost(in Input) (Outcome, error)
}

// For returns the strategy for a binding type
func For(bt types.BindingType) (Calculator, error) {
	switch bt {
	case types.BindingPerfect:
		return perfectBinding{}, nil
	case types.BindingSaddle:
		return saddleStitching{}, nil
	case types.BindingSectionSewn:
		return sectionSewn{}, nil
	case types.BindingWireO:
		return wireO{}, nil
	}
	return nil, errors.Calculationf("binding", "unsupported binding type %q", bt)
}

func signatures(pages, perSignature int) int {
	if perSignature <= 0 {
		perSignature = 16
	}
	return int(math.Ceil(float64(pages) / float64(perSignature)))
}

func total(perCopy, setup decimal.Decimal, quantity int) decimal.Decimal {
	return perCopy.Mul(decimal.NewFromInt(int64(quantity))).Add(setup).Round(2)
}

type perfectBinding struct{}

func (perfectBinding) Type() types.BindingType { return types.BindingPerfect }

func (perfectBinding) Cost(in Input) (Outcome, error) {
	tier, err := rates.ResolveByQuantity(in.Rates.Perfect, in.Quantity,
		func(t rates.PerfectBindingTier) rates.QuantityRange { return t.Range })
	if err != nil {
		return Outcome{}, errors.Rates("perfect binding tier resolution failed", err)
	}

	sigs := signatures(in.Pages, in.PagesPerSignature)
	sigsDec := decimal.NewFromInt(int64(sigs))
	perCopy := sigsDec.Mul(tier.RatePer16pp).Add(sigsDec.Mul(tier.GatheringPer16pp))

	return Outcome{
		PerCopy:    perCopy,
		SetupCost:  tier.SetupCost,
		Total:      total(perCopy, tier.SetupCost, in.Quantity),
		Signatures: sigs,
	}, nil
}

type saddleStitching struct{}

func (saddleStitching) Type() types.BindingType { return types.BindingSaddle }

// Cost for saddle stitching is a flat per-copy tier rate, independent of
// page count.
func (saddleStitching) Cost(in Input) (Outcome, error) {
	tier, err := rates.ResolveByQuantity(in.Rates.Saddle, in.Quantity,
		func(t rates.SaddleStitchTier) rates.QuantityRange { return t.Range })
	if err != nil {
		return Outcome{}, errors.Rates("saddle stitch tier resolution failed", err)
	}

	return Outcome{
		PerCopy:   tier.RatePerCopy,
		SetupCost: tier.SetupCost,
		Total:     total(tier.RatePerCopy, tier.SetupCost, in.Quantity),
	}, nil
}

type sectionSewn struct{}

func (sectionSewn) Type() types.BindingType { return types.BindingSectionSewn }

func (sectionSewn) Cost(in Input) (Outcome, error) {
	tier, err := rates.ResolveByQuantity(in.Rates.SectionSewn, in.Quantity,
		func(t rates.SectionSewnTier) rates.QuantityRange { return t.Range })
	if err != nil {
		return Outcome{}, errors.Rates("section sewn tier resolution failed", err)
	}

	sigs := signatures(in.Pages, in.PagesPerSignature)
	perCopy := decimal.NewFromInt(int64(sigs)).Mul(tier.SewingPer16pp).Add(tier.HardcasePerCopy)

	return Outcome{
		PerCopy:    perCopy,
		SetupCost:  tier.SetupCost,
		Total:      total(perCopy, tier.SetupCost, in.Quantity),
		Signatures: sigs,
	}, nil
}

type wireO struct{}

func (wireO) Type() types.BindingType { return types.BindingWireO }

// Cost for wire-o resolves by wire pitch, not quantity tier: the spine
// thickness picks the smallest wire that closes over the book.
func (wireO) Cost(in Input) (Outcome, error) {
	if len(in.Rates.WireO) == 0 {
		return Outcome{}, errors.Rates("empty wire-o table", nil)
	}

	tier := in.Rates.WireO[len(in.Rates.WireO)-1]
	for _, t := range in.Rates.WireO {
		if in.SpineMM <= t.MaxSpineMM {
			tier = t
			break
		}
	}

	return Outcome{
		PerCopy:   tier.RatePerCopy,
		SetupCost: tier.SetupCost,
		Total:     total(tier.RatePerCopy, tier.SetupCost, in.Quantity),
		WirePitch: tier.Pitch,
	}, nil
}
