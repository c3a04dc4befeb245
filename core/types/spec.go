// Package types - Job specification types
//
// Two distinct representations exist on purpose. RawJobSpecification is what
// arrives at the boundary: every numeric field is still a string, exactly as
// a form or JSON payload delivers it. JobSpecification is the normalized,
// strictly typed form the calculation core operates on. Raw values never
// reach a calculator.
package types

import "github.com/shopspring/decimal"

// RawJobSpecification is the pre-validation job specification
type RawJobSpecification struct {
	Title       string              `json:"title,omitempty"`
	TrimWidth   string              `json:"trim_width"`
	TrimHeight  string              `json:"trim_height"`
	Sections    []RawTextSection    `json:"sections"`
	Cover       *RawCover           `json:"cover,omitempty"`
	Endleaves   *RawEndleaves       `json:"endleaves,omitempty"`
	Jacket      *RawJacket          `json:"jacket,omitempty"`
	Board       *RawBoard           `json:"board,omitempty"`
	Binding     string              `json:"binding"`
	Finishing   []string            `json:"finishing,omitempty"`
	Destination string              `json:"destination"`
	FreightMode string              `json:"freight_mode,omitempty"`
	Quantities  []string            `json:"quantities"`
	Pricing     RawPricingSettings  `json:"pricing"`
}

// RawTextSection is a pre-validation text section
type RawTextSection struct {
	Enabled     bool   `json:"enabled"`
	Pages       string `json:"pages"`
	PaperGSM    string `json:"paper_gsm"`
	PaperType   string `json:"paper_type"`
	Machine     string `json:"machine"`
	Method      string `json:"method,omitempty"`
	ColorsFront string `json:"colors_front"`
	ColorsBack  string `json:"colors_back"`
}

// RawCover is a pre-validation cover specification
type RawCover struct {
	PaperGSM    string `json:"paper_gsm"`
	PaperType   string `json:"paper_type"`
	Machine     string `json:"machine,omitempty"`
	ColorsFront string `json:"colors_front"`
	ColorsBack  string `json:"colors_back"`
	Lamination  string `json:"lamination,omitempty"`
}

// RawEndleaves is a pre-validation endleaf specification
type RawEndleaves struct {
	Pages     string `json:"pages"`
	PaperGSM  string `json:"paper_gsm"`
	PaperType string `json:"paper_type"`
}

// RawJacket is a pre-validation jacket specification
type RawJacket struct {
	PaperGSM  string `json:"paper_gsm"`
	PaperType string `json:"paper_type"`
}

// RawBoard is a pre-validation board specification
type RawBoard struct {
	GSM string `json:"gsm"`
}

// RawPricingSettings are the pre-validation pricing settings
type RawPricingSettings struct {
	Mode              string `json:"mode"`
	Percent           string `json:"percent"`
	TaxRate           string `json:"tax_rate"`
	Turnaround        string `json:"turnaround,omitempty"`
	MinimumOrderValue string `json:"minimum_order_value,omitempty"`
	Currency          string `json:"currency,omitempty"`
}

// JobSpecification is the normalized, post-validation specification.
// All calculators consume this form only.
type JobSpecification struct {
	Title        string
	TrimWidthMM  float64
	TrimHeightMM float64
	Sections     []TextSection
	Cover        *CoverSpecification
	Endleaves    *EndleafSpecification
	Jacket       *JacketSpecification
	Board        *BoardSpecification
	Binding      BindingType
	Finishing    []string
	Destination  string
	FreightMode  FreightMode
	Quantities   []int
	Pricing      PricingSettings
}

// TotalPages sums the page counts of all enabled sections
func (s *JobSpecification) TotalPages() int {
	total := 0
	for _, sec := range s.Sections {
		if sec.Enabled {
			total += sec.Pages
		}
	}
	return total
}

// TextSection is one run of text pages on a single paper and machine
type TextSection struct {
	Enabled     bool
	Pages       int
	PaperGSM    float64
	PaperType   string
	Machine     string
	Method      PrintingMethod
	ColorsFront int
	ColorsBack  int
}

// EffectiveColors is the color count used for wastage classification
func (s TextSection) EffectiveColors() int {
	return max(s.ColorsFront, s.ColorsBack)
}

// CoverSpecification describes the cover stock and its printing
type CoverSpecification struct {
	PaperGSM    float64
	PaperType   string
	Machine     string
	ColorsFront int
	ColorsBack  int
	Lamination  string
}

// EndleafSpecification describes the endleaves of a hardcase book
type EndleafSpecification struct {
	Pages     int
	PaperGSM  float64
	PaperType string
}

// JacketSpecification describes a dust jacket
type JacketSpecification struct {
	PaperGSM  float64
	PaperType string
}

// BoardSpecification describes the rigid board of a hardcase binding,
// expressed as an area weight so it folds into the book-weight sum.
type BoardSpecification struct {
	GSM float64
}

// PricingSettings are the normalized pricing settings
type PricingSettings struct {
	Mode              PricingMode
	Percent           float64
	TaxRatePercent    float64
	Turnaround        Turnaround
	MinimumOrderValue decimal.Decimal
	Currency          Currency
}
