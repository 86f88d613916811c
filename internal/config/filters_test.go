package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirrsearch/internal/filters"
)

func TestFilterOptionsDefaults(t *testing.T) {
	opts := DefaultConfig().FilterOptions()

	assert.Equal(t, filters.PolicyMulti, opts.Policy)
	assert.Equal(t, 5, opts.VisibleCap)
	assert.Equal(t, 200, opts.CfrPartCount)
	require.NotNil(t, opts.Agencies)
	assert.Equal(t, "Environmental Protection Agency", opts.Agencies.Name("EPA"))
}

func TestFilterOptionsUseConfiguredAgencies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Filters.SelectionPolicy = PolicySingle
	cfg.Filters.CountDocketType = true
	cfg.Agencies = []AgencyEntry{
		{Code: "NOAA", Name: "National Oceanic and Atmospheric Administration", Top: true},
		{Code: "USDA", Name: "Department of Agriculture"},
	}

	opts := cfg.FilterOptions()
	assert.Equal(t, filters.PolicySingle, opts.Policy)
	assert.True(t, opts.CountDocketType)
	assert.Len(t, opts.Agencies.All(), 2)
	require.Len(t, opts.Agencies.Top(), 1)
	assert.Equal(t, "NOAA", opts.Agencies.Top()[0].Code)

	fs := filters.New(opts)
	fs.ToggleAgency("NOAA")
	fs.ToggleAgency("USDA")
	assert.Equal(t, []string{"USDA"}, fs.SelectedAgencies())
}
