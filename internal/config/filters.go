package config

import (
	"mirrsearch/internal/directory"
	"mirrsearch/internal/filters"
)

// FilterOptions builds the filter state options from the [filters] and
// [[agencies]] sections. Without configured agencies the built-in directory is used.
func (c *Config) FilterOptions() filters.Options {
	agencies := directory.DefaultAgencies()
	if all, top := c.AgencyList(); len(all) > 0 {
		agencies = directory.NewAgencies(all, top)
	}

	return filters.Options{
		Policy:          filters.ParsePolicy(c.Filters.SelectionPolicy),
		VisibleCap:      c.Filters.VisibleCap,
		Agencies:        agencies,
		CfrPartCount:    c.Filters.CfrPartCount,
		DocketTypes:     c.Filters.DocketTypes,
		Statuses:        c.Filters.Statuses,
		CountDocketType: c.Filters.CountDocketType,
	}
}
