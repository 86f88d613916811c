// Package directory holds the fixed choice sets offered by the filter sidebar.
package directory

import (
	"strings"

	"mirrsearch/internal/domain"
)

// builtinAgencies is the default agency directory. The first six are the top agencies.
var builtinAgencies = []domain.Agency{
	{Code: "EPA", Name: "Environmental Protection Agency"},
	{Code: "HHS", Name: "Health and Human Services"},
	{Code: "FDA", Name: "Food and Drug Administration"},
	{Code: "CMS", Name: "Centers for Medicare & Medicaid Services"},
	{Code: "DOT", Name: "Department of Transportation"},
	{Code: "FCC", Name: "Federal Communications Commission"},
	{Code: "USDA", Name: "Department of Agriculture"},
	{Code: "DOE", Name: "Department of Energy"},
	{Code: "DOL", Name: "Department of Labor"},
	{Code: "ED", Name: "Department of Education"},
	{Code: "DHS", Name: "Department of Homeland Security"},
	{Code: "DOI", Name: "Department of the Interior"},
	{Code: "TREAS", Name: "Department of the Treasury"},
	{Code: "FAA", Name: "Federal Aviation Administration"},
	{Code: "FMCSA", Name: "Federal Motor Carrier Safety Administration"},
	{Code: "NHTSA", Name: "National Highway Traffic Safety Administration"},
	{Code: "OSHA", Name: "Occupational Safety and Health Administration"},
	{Code: "NOAA", Name: "National Oceanic and Atmospheric Administration"},
	{Code: "FWS", Name: "Fish and Wildlife Service"},
	{Code: "CFPB", Name: "Consumer Financial Protection Bureau"},
	{Code: "FTC", Name: "Federal Trade Commission"},
}

const builtinTopCount = 6

// Agencies is the agency directory: a code -> name mapping with a small
// "top" subset shown by default and the full list used for text search.
type Agencies struct {
	all   []domain.Agency
	top   []domain.Agency
	names map[string]string
}

// DefaultAgencies returns the built-in directory
func DefaultAgencies() *Agencies {
	top := make([]string, 0, builtinTopCount)
	for _, a := range builtinAgencies[:builtinTopCount] {
		top = append(top, a.Code)
	}
	return NewAgencies(builtinAgencies, top)
}

// NewAgencies builds a directory from the full list and the codes of the top
// agencies. Top codes missing from all are ignored. When topCodes is empty
// every agency counts as top.
func NewAgencies(all []domain.Agency, topCodes []string) *Agencies {
	d := &Agencies{
		all:   append([]domain.Agency(nil), all...),
		names: make(map[string]string, len(all)),
	}
	for _, a := range d.all {
		d.names[a.Code] = a.Name
	}

	if len(topCodes) == 0 {
		d.top = d.all
		return d
	}
	for _, code := range topCodes {
		if name, ok := d.names[code]; ok {
			d.top = append(d.top, domain.Agency{Code: code, Name: name})
		}
	}
	return d
}

// All returns the full directory in directory order
func (d *Agencies) All() []domain.Agency {
	return d.all
}

// Top returns the default subset in directory order
func (d *Agencies) Top() []domain.Agency {
	return d.top
}

// Name returns the display name of code, or "" when unknown
func (d *Agencies) Name(code string) string {
	return d.names[code]
}

// Filter narrows the full directory to agencies whose code or name contains
// text, ignoring case. Blank text yields the top list.
func (d *Agencies) Filter(text string) []domain.Agency {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return d.top
	}

	var matches []domain.Agency
	for _, a := range d.all {
		if strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.Name), q) {
			matches = append(matches, a)
		}
	}
	return matches
}
