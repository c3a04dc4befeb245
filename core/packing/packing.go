// Package packing converts quantity and book weight into packaging unit
// counts, then prices cartons, pallets, and the destination freight leg.
package packing

import (
	"math"

	"github.com/shopspring/decimal"

	"printcost/core/rates"
	"printcost/core/types"
	"printcost/internal/errors"
)

// Input is the packing and freight request for one run
type Input struct {
	// Quantity is the print run
	Quantity int

	// BookWeightGrams is the weight of one finished copy
	BookWeightGrams float64

	// Destination routes the freight lookup
	Destination string

	// Mode is the freight mode for the delivery leg
	Mode types.FreightMode

	Packing rates.PackingRates
	Freight rates.FreightTable
}

// Outcome is the packing and freight result
type Outcome struct {
	BooksPerCarton int
	Cartons        int
	Pallets        int

	// TotalWeightKG is the full shipment weight
	TotalWeightKG float64

	// Route is the resolved freight route name
	Route    string
	Overseas bool

	PackingCost decimal.Decimal
	FreightCost decimal.Decimal
}

// Calculate computes unit counts and prices the shipment
func Calculate(in Input) (Outcome, error) {
	if in.Quantity < 1 {
		return Outcome{}, errors.Calculation("packing", "quantity must be at least 1")
	}
	if in.BookWeightGrams <= 0 {
		return Outcome{}, errors.Calculation("packing", "book weight must be positive")
	}

	out := Outcome{
		TotalWeightKG: float64(in.Quantity) * in.BookWeightGrams / 1000.0,
	}

	// Carton capacity: weight-limited, capped by the per-carton book limit.
	// A single book heavier than the carton limit still ships one per carton.
	byWeight := int(in.Packing.CartonMaxWeightKG * 1000.0 / in.BookWeightGrams)
	out.BooksPerCarton = min(byWeight, in.Packing.CartonMaxBooks)
	if out.BooksPerCarton < 1 {
		out.BooksPerCarton = 1
	}

	out.Cartons = int(math.Ceil(float64(in.Quantity) / float64(out.BooksPerCarton)))
	if in.Packing.CartonsPerPallet > 0 {
		out.Pallets = int(math.Ceil(float64(out.Cartons) / float64(in.Packing.CartonsPerPallet)))
	}

	out.PackingCost = in.Packing.CartonRate.Mul(decimal.NewFromInt(int64(out.Cartons))).
		Add(in.Packing.PalletRate.Mul(decimal.NewFromInt(int64(out.Pallets)))).
		Round(2)

	route, err := in.Freight.Resolve(in.Destination)
	if err != nil {
		return Outcome{}, err
	}
	out.Route = route.Destination
	out.Overseas = route.Overseas

	perKG, ok := route.PerKG[in.Mode]
	if !ok {
		return Outcome{}, errors.Rates(
			"route "+route.Destination+" has no rate for mode "+string(in.Mode), nil)
	}

	freight := perKG.Mul(decimal.NewFromFloat(out.TotalWeightKG))
	if route.Overseas {
		freight = freight.Add(route.ClearanceCharge).Add(route.DocumentationCharge)
	}
	out.FreightCost = freight.Round(2)

	return out, nil
}
