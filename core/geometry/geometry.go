// Package geometry derives the physical dimensions of the finished book:
// spine thickness and per-copy weight. Both functions are pure; every paper
// property they need is passed in explicitly, there is no registry access.
package geometry

// SectionBulk carries the paper properties of one page run
type SectionBulk struct {
	// Pages is the page count of the run
	Pages int

	// GSM is the paper grammage
	GSM float64

	// CaliperMM is the thickness of one sheet of this stock
	CaliperMM float64
}

// SpineThickness computes the spine in millimeters: each run contributes
// (pages / 2) sheets at its stock's caliper. Endleaves, when present, are
// included as just another run.
func SpineThickness(sections []SectionBulk) float64 {
	spine := 0.0
	for _, s := range sections {
		spine += float64(s.Pages) / 2.0 * s.CaliperMM
	}
	return spine
}

// WeightComponent is one structural element contributing to book weight
type WeightComponent struct {
	// Sheets counts the stock areas contributing: the page count for page
	// runs (trade area-weight convention), 1 for a cover counted flat,
	// 2 for boards
	Sheets float64

	// GSM is the element's area weight
	GSM float64

	// WidthMM and HeightMM are the flat dimensions of one sheet
	WidthMM  float64
	HeightMM float64
}

// Weight returns the component weight in grams: sheet area in square meters
// times grammage times sheet count.
func (c WeightComponent) Weight() float64 {
	areaM2 := (c.WidthMM / 1000.0) * (c.HeightMM / 1000.0)
	return c.Sheets * c.GSM * areaM2
}

// BookWeight sums the weights of all structural elements of one copy
func BookWeight(components []WeightComponent) float64 {
	total := 0.0
	for _, c := range components {
		total += c.Weight()
	}
	return total
}
