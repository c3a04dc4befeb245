// Package engine runs the full estimation pipeline: validation, geometry,
// imposition, wastage, printing, binding, finishing, packing, and pricing,
// once per requested quantity.
//
// The engine owns no state beyond the read-only rate snapshot and machine
// set handed to it at construction. Every call is an independent, pure
// computation; callers may invoke it concurrently without coordination.
package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"printcost/core/binding"
	"printcost/core/finishing"
	"printcost/core/geometry"
	"printcost/core/imposition"
	"printcost/core/packing"
	"printcost/core/pricing"
	"printcost/core/printing"
	"printcost/core/rates"
	"printcost/core/types"
	"printcost/core/validate"
	"printcost/internal/errors"
)

// sheetsPerReam is the trade convention for a ream of press sheets
const sheetsPerReam = 500

// defaultSheet is the press sheet assumed when a section names a machine
// with no stored profile. B1 less standard margins.
var defaultSheet = imposition.SheetGeometry{WidthMM: 1000, HeightMM: 698}

// Engine is the estimation orchestrator
type Engine struct {
	tables   *rates.RateTables
	machines types.MachineSet
}

// New creates an engine over a rate snapshot and machine set. Both are
// treated as immutable for the engine's lifetime.
func New(tables *rates.RateTables, machines types.MachineSet) *Engine {
	return &Engine{tables: tables, machines: machines}
}

// EstimateRaw validates a raw specification and, when it passes, estimates
// it. Validation failures carry every violation found.
func (e *Engine) EstimateRaw(raw *types.RawJobSpecification) ([]*types.CostResult, error) {
	spec, violations := validate.Validate(raw)
	if len(violations) > 0 {
		return nil, errors.Validation(violations)
	}
	return e.Estimate(spec)
}

// Estimate produces one CostResult per requested quantity, in input order.
// If any quantity fails, the whole batch fails: callers never receive a
// silently incomplete comparison table.
func (e *Engine) Estimate(spec *types.JobSpecification) ([]*types.CostResult, error) {
	results := make([]*types.CostResult, 0, len(spec.Quantities))
	for _, quantity := range spec.Quantities {
		result, err := e.estimateQuantity(spec, quantity)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// sectionRun is the per-section working state of one estimation
type sectionRun struct {
	section types.TextSection
	paper   rates.PaperRate
	machine *types.MachineProfile
	class   types.MachineClass
	imp     imposition.Result
	gross   int
	print   printing.Outcome
	reams   float64
	cost    decimal.Decimal
}

func (e *Engine) estimateQuantity(spec *types.JobSpecification, quantity int) (*types.CostResult, error) {
	if quantity < 1 {
		return nil, errors.Calculation("orchestrator", "quantity must be at least 1")
	}

	runs, err := e.sectionRuns(spec, quantity)
	if err != nil {
		return nil, err
	}

	result := &types.CostResult{
		Quantity: quantity,
		Currency: spec.Pricing.Currency,
	}

	// Geometry: spine from section bulk, weight from every structural element
	spine := e.spineThickness(spec, runs)
	weight, err := e.bookWeight(spec, runs, spine)
	if err != nil {
		return nil, err
	}
	result.Derived.SpineThicknessMM = spine
	result.Derived.BookWeightGrams = weight

	// Text sections: paper, printing, plates, make-ready
	paperCost := decimal.Zero
	printingCost := decimal.Zero
	platesCost := decimal.Zero
	makeReadyCost := decimal.Zero
	for i := range runs {
		run := &runs[i]
		paperCost = paperCost.Add(run.cost)
		printingCost = printingCost.Add(run.print.PrintingCost)
		platesCost = platesCost.Add(run.print.PlatesCost)
		makeReadyCost = makeReadyCost.Add(run.print.MakeReadyCost)

		result.Derived.Forms += run.imp.Forms
		result.Derived.Plates += run.print.TotalPlates
		result.Derived.Impressions += run.print.EffectiveImpressions
		result.Derived.Reams += run.reams
		if result.Derived.Ups == 0 {
			result.Derived.Ups = run.imp.Ups
		}
	}

	// Cover: its paper is a cost center of its own; its press work folds
	// into the printing, plates, and make-ready centers
	coverCost := decimal.Zero
	if spec.Cover != nil {
		cover, err := e.coverRun(spec, quantity, spine)
		if err != nil {
			return nil, err
		}
		coverCost = cover.cost
		printingCost = printingCost.Add(cover.print.PrintingCost)
		platesCost = platesCost.Add(cover.print.PlatesCost)
		makeReadyCost = makeReadyCost.Add(cover.print.MakeReadyCost)
		result.Derived.Plates += cover.print.TotalPlates
		result.Derived.Impressions += cover.print.EffectiveImpressions
		result.Derived.Reams += cover.reams
	}

	// Binding
	bindCalc, err := binding.For(spec.Binding)
	if err != nil {
		return nil, err
	}
	bindOut, err := bindCalc.Cost(binding.Input{
		Quantity:          quantity,
		Pages:             spec.TotalPages(),
		SpineMM:           spine,
		PagesPerSignature: e.tables.PagesPerForm,
		Rates:             e.tables.Binding,
	})
	if err != nil {
		return nil, err
	}

	// Finishing: explicit processes plus the cover lamination, if any
	finishingCost := decimal.Zero
	processes := append([]string{}, spec.Finishing...)
	if spec.Cover != nil && spec.Cover.Lamination != "" {
		processes = append(processes, spec.Cover.Lamination)
	}
	if len(processes) > 0 {
		finishingCost, _, err = finishing.Calculate(finishing.Input{
			Quantity:      quantity,
			CoverWidthMM:  spec.TrimWidthMM,
			CoverHeightMM: spec.TrimHeightMM,
			Processes:     processes,
			Rates:         e.tables.Finishing,
		})
		if err != nil {
			return nil, err
		}
	}

	// Packing and freight
	packOut, err := packing.Calculate(packing.Input{
		Quantity:        quantity,
		BookWeightGrams: weight,
		Destination:     spec.Destination,
		Mode:            spec.FreightMode,
		Packing:         e.tables.Packing,
		Freight:         e.tables.Freight,
	})
	if err != nil {
		return nil, err
	}
	result.Derived.Cartons = packOut.Cartons
	result.Derived.Pallets = packOut.Pallets

	result.PaperCost = paperCost.Round(2)
	result.CoverCost = coverCost.Round(2)
	result.PrintingCost = printingCost.Round(2)
	result.PlatesCost = platesCost.Round(2)
	result.MakeReadyCost = makeReadyCost.Round(2)
	result.BindingCost = bindOut.Total
	result.FinishingCost = finishingCost.Round(2)
	result.PackingCost = packOut.PackingCost
	result.FreightCost = packOut.FreightCost

	result.Breakdown = []types.CostLine{
		{Label: "Text paper", Amount: result.PaperCost},
		{Label: "Cover paper", Amount: result.CoverCost},
		{Label: "Printing", Amount: result.PrintingCost},
		{Label: "Plates / CTP", Amount: result.PlatesCost},
		{Label: "Make-ready", Amount: result.MakeReadyCost},
		{Label: "Binding", Amount: result.BindingCost},
		{Label: "Finishing", Amount: result.FinishingCost},
		{Label: "Packing", Amount: result.PackingCost},
		{Label: "Freight", Amount: result.FreightCost},
	}

	// Pricing pipeline over the aggregated cost centers
	priceOut, err := pricing.Calculate(pricing.Input{
		Quantity:      quantity,
		Subtotal:      result.TotalCost(),
		Settings:      spec.Pricing,
		DiscountTiers: e.tables.VolumeDiscounts,
	})
	if err != nil {
		return nil, err
	}

	result.Subtotal = priceOut.Subtotal
	result.RushSurcharge = priceOut.RushSurcharge
	result.VolumeDiscountPercent = priceOut.VolumeDiscountPercent
	result.VolumeDiscountAmount = priceOut.VolumeDiscountAmount
	result.MinimumOrderAdjustment = priceOut.MinimumOrderAdjustment
	result.ProductionSubtotal = priceOut.ProductionSubtotal
	result.SellBeforeTax = priceOut.SellBeforeTax
	result.TaxAmount = priceOut.TaxAmount
	result.GrandTotal = priceOut.GrandTotal
	result.CostPerCopy = priceOut.CostPerCopy
	result.SellPerCopy = priceOut.SellPerCopy

	if err := checkResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

// sectionRuns resolves paper, machine, imposition, wastage, printing, and
// paper cost for every enabled section.
func (e *Engine) sectionRuns(spec *types.JobSpecification, quantity int) ([]sectionRun, error) {
	var runs []sectionRun
	for _, sec := range spec.Sections {
		if !sec.Enabled {
			continue
		}
		run := sectionRun{section: sec}

		paper, err := e.tables.Paper.Resolve(sec.PaperType, sec.PaperGSM)
		if err != nil {
			return nil, err
		}
		run.paper = paper

		run.machine = e.machines.Lookup(sec.Machine)
		run.class = types.ResolveMachineClass(sec.Machine)
		if run.machine != nil {
			run.class = run.machine.Class
		}

		sheet := defaultSheet
		if run.machine != nil {
			sheet = imposition.UsableSheet(run.machine)
		}
		imp, err := imposition.Impose(spec.TrimWidthMM, spec.TrimHeightMM, sheet,
			sec.Pages, e.tables.PagesPerForm)
		if err != nil {
			return nil, err
		}
		run.imp = imp

		waste, err := imposition.ResolveWastage(e.tables.Wastage, quantity, sec.EffectiveColors())
		if err != nil {
			return nil, err
		}
		gross, err := imposition.GrossSheetsPerForm(quantity, waste, imp.Ups)
		if err != nil {
			return nil, err
		}
		run.gross = gross

		out, err := printing.Calculate(printing.Input{
			Forms:              imp.Forms,
			GrossSheetsPerForm: gross,
			ColorsFront:        sec.ColorsFront,
			ColorsBack:         sec.ColorsBack,
			Method:             sec.Method,
			Machine:            run.machine,
			Class:              run.class,
			Rates:              e.tables.Printing,
		})
		if err != nil {
			return nil, err
		}
		run.print = out

		run.reams = float64(gross*imp.Forms) / sheetsPerReam
		run.cost = paper.ChargePerReam.Mul(decimal.NewFromFloat(run.reams)).Round(2)

		runs = append(runs, run)
	}
	if len(runs) == 0 {
		return nil, errors.Calculation("orchestrator", "no enabled sections to estimate")
	}
	return runs, nil
}

// coverRun prices the cover as a single-form job: paper, press work, plates
func (e *Engine) coverRun(spec *types.JobSpecification, quantity int, spine float64) (*sectionRun, error) {
	cover := spec.Cover
	run := &sectionRun{}

	paper, err := e.tables.Paper.Resolve(cover.PaperType, cover.PaperGSM)
	if err != nil {
		return nil, err
	}
	run.paper = paper

	run.machine = e.machines.Lookup(cover.Machine)
	run.class = types.ResolveMachineClass(cover.Machine)
	if run.machine != nil {
		run.class = run.machine.Class
	}

	sheet := defaultSheet
	if run.machine != nil {
		sheet = imposition.UsableSheet(run.machine)
	}

	// Flat cover: front + back + spine wide, trim high
	flatW := 2*spec.TrimWidthMM + spine
	ups, err := imposition.CoverUps(flatW, spec.TrimHeightMM, sheet)
	if err != nil {
		return nil, err
	}

	waste, err := imposition.ResolveWastage(e.tables.Wastage, quantity,
		max(cover.ColorsFront, cover.ColorsBack))
	if err != nil {
		return nil, err
	}
	gross, err := imposition.GrossSheetsPerForm(quantity, waste, ups)
	if err != nil {
		return nil, err
	}
	run.gross = gross

	out, err := printing.Calculate(printing.Input{
		Forms:              1,
		GrossSheetsPerForm: gross,
		ColorsFront:        cover.ColorsFront,
		ColorsBack:         cover.ColorsBack,
		Method:             types.MethodSheetwise,
		Machine:            run.machine,
		Class:              run.class,
		Rates:              e.tables.Printing,
	})
	if err != nil {
		return nil, err
	}
	run.print = out

	run.reams = float64(gross) / sheetsPerReam
	run.cost = paper.ChargePerReam.Mul(decimal.NewFromFloat(run.reams)).Round(2)
	return run, nil
}

// spineThickness derives the spine from section bulk plus endleaves
func (e *Engine) spineThickness(spec *types.JobSpecification, runs []sectionRun) float64 {
	bulks := make([]geometry.SectionBulk, 0, len(runs)+1)
	for _, run := range runs {
		bulks = append(bulks, geometry.SectionBulk{
			Pages:     run.section.Pages,
			GSM:       run.section.PaperGSM,
			CaliperMM: run.paper.CaliperMM(),
		})
	}
	if spec.Endleaves != nil {
		caliper := spec.Endleaves.PaperGSM / 1000.0 // area-weight approximation
		if paper, err := e.tables.Paper.Resolve(spec.Endleaves.PaperType, spec.Endleaves.PaperGSM); err == nil {
			caliper = paper.CaliperMM()
		}
		bulks = append(bulks, geometry.SectionBulk{
			Pages:     spec.Endleaves.Pages,
			GSM:       spec.Endleaves.PaperGSM,
			CaliperMM: caliper,
		})
	}
	return geometry.SpineThickness(bulks)
}

// jacketFlapMM is the wrap-around flap width assumed for dust jackets
const jacketFlapMM = 80

// bookWeight sums the structural elements of one copy using the legacy
// area-weight convention: page count times grammage times trim area.
func (e *Engine) bookWeight(spec *types.JobSpecification, runs []sectionRun, spine float64) (float64, error) {
	var components []geometry.WeightComponent
	for _, run := range runs {
		components = append(components, geometry.WeightComponent{
			Sheets:   float64(run.section.Pages),
			GSM:      run.section.PaperGSM,
			WidthMM:  spec.TrimWidthMM,
			HeightMM: spec.TrimHeightMM,
		})
	}
	if spec.Cover != nil {
		components = append(components, geometry.WeightComponent{
			Sheets:   1,
			GSM:      spec.Cover.PaperGSM,
			WidthMM:  2*spec.TrimWidthMM + spine,
			HeightMM: spec.TrimHeightMM,
		})
	}
	if spec.Endleaves != nil {
		components = append(components, geometry.WeightComponent{
			Sheets:   float64(spec.Endleaves.Pages),
			GSM:      spec.Endleaves.PaperGSM,
			WidthMM:  spec.TrimWidthMM,
			HeightMM: spec.TrimHeightMM,
		})
	}
	if spec.Jacket != nil {
		components = append(components, geometry.WeightComponent{
			Sheets:   1,
			GSM:      spec.Jacket.PaperGSM,
			WidthMM:  2*spec.TrimWidthMM + spine + 2*jacketFlapMM,
			HeightMM: spec.TrimHeightMM,
		})
	}
	if spec.Board != nil {
		components = append(components, geometry.WeightComponent{
			Sheets:   2, // front and back boards
			GSM:      spec.Board.GSM,
			WidthMM:  spec.TrimWidthMM,
			HeightMM: spec.TrimHeightMM,
		})
	}

	weight := geometry.BookWeight(components)
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, errors.Calculation("geometry", "derived book weight is not a positive finite number")
	}
	return weight, nil
}

// checkResult is the last gate before a result is returned: every numeric
// field must be finite, and every field that is not a delta must be
// non-negative.
func checkResult(r *types.CostResult) error {
	for _, f := range []float64{
		r.Derived.SpineThicknessMM, r.Derived.BookWeightGrams,
		r.Derived.Reams, r.VolumeDiscountPercent,
	} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Calculation("result", "non-finite value in cost result")
		}
	}

	nonNegative := []decimal.Decimal{
		r.PaperCost, r.CoverCost, r.PrintingCost, r.PlatesCost, r.MakeReadyCost,
		r.BindingCost, r.FinishingCost, r.PackingCost, r.FreightCost,
		r.Subtotal, r.RushSurcharge, r.VolumeDiscountAmount, r.MinimumOrderAdjustment,
		r.ProductionSubtotal, r.SellBeforeTax, r.TaxAmount, r.GrandTotal,
		r.CostPerCopy, r.SellPerCopy,
	}
	for _, d := range nonNegative {
		if d.IsNegative() {
			return errors.Calculation("result", "negative value in cost result")
		}
	}
	return nil
}
