// Package imposition computes how a page specification is carried on press
// sheets: images per side, form copies per sheet ("ups"), and the number of
// forms needed for the run.
package imposition

import (
	"math"

	"printcost/core/types"
	"printcost/internal/errors"
)

// SheetGeometry is the printable area of a press sheet after margins
type SheetGeometry struct {
	WidthMM  float64
	HeightMM float64
}

// UsableSheet derives the printable area from a machine's maximum sheet
// size, gripper edge and side margins.
func UsableSheet(m *types.MachineProfile) SheetGeometry {
	return SheetGeometry{
		WidthMM:  m.MaxSheetWidthMM - 2*m.SideMarginMM,
		HeightMM: m.MaxSheetHeightMM - m.GripMarginMM - m.SideMarginMM,
	}
}

// fitCount returns how many w x h images fit on the sheet, trying both
// orientations.
func (s SheetGeometry) fitCount(w, h float64) int {
	if w <= 0 || h <= 0 || s.WidthMM <= 0 || s.HeightMM <= 0 {
		return 0
	}
	upright := int(s.WidthMM/w) * int(s.HeightMM/h)
	rotated := int(s.WidthMM/h) * int(s.HeightMM/w)
	return max(upright, rotated)
}

// Result is the imposition outcome for one page run
type Result struct {
	// ImagesPerSide is how many page images of the trim size fit on one side
	ImagesPerSide int

	// Ups is how many copies of a full form one sheet carries, counting
	// both sides: ImagesPerSide * 2 / PagesPerForm
	Ups int

	// PagesPerForm is the form convention applied (commonly 16)
	PagesPerForm int

	// Forms is the number of forms/signatures for the run
	Forms int
}

// Impose computes the imposition for a page run on the given sheet.
// An imposition that cannot carry a single form per sheet is infeasible for
// the chosen press and trim; that is surfaced as an error before any costing
// runs, never silently floored to one.
func Impose(trimW, trimH float64, sheet SheetGeometry, pages, pagesPerForm int) (Result, error) {
	if pagesPerForm <= 0 {
		pagesPerForm = 16
	}
	if pages <= 0 {
		return Result{}, errors.Calculation("imposition", "page count must be positive")
	}

	images := sheet.fitCount(trimW, trimH)
	if images < 1 {
		return Result{}, errors.Calculationf("imposition",
			"trim %vx%vmm does not fit the press sheet %vx%vmm",
			trimW, trimH, sheet.WidthMM, sheet.HeightMM)
	}

	ups := images * 2 / pagesPerForm
	if ups < 1 {
		return Result{}, errors.Calculationf("imposition",
			"sheet carries only %d page images, below the %dpp form", images, pagesPerForm)
	}

	return Result{
		ImagesPerSide: images,
		Ups:           ups,
		PagesPerForm:  pagesPerForm,
		Forms:         int(math.Ceil(float64(pages) / float64(pagesPerForm))),
	}, nil
}

// CoverUps returns how many flat covers of the given size cut from one
// sheet. Covers are a one-form job, so this is a plain fit count.
func CoverUps(flatW, flatH float64, sheet SheetGeometry) (int, error) {
	ups := sheet.fitCount(flatW, flatH)
	if ups < 1 {
		return 0, errors.Calculationf("imposition",
			"flat cover %vx%vmm does not fit the press sheet %vx%vmm",
			flatW, flatH, sheet.WidthMM, sheet.HeightMM)
	}
	return ups, nil
}
