package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirrsearch/internal/domain"
	"mirrsearch/internal/filters"
)

func TestBuildRoundTrip(t *testing.T) {
	state := filters.New(filters.Options{DocketTypes: []string{"Proposed Rule", "Final Rule", "Notice"}})
	state.ToggleAgency("EPA")
	state.SetDocketType("Notice")
	state.SetQuery("air quality")

	req := FromState(state)

	assert.Equal(t, domain.QueryRequest{
		Text:       "air quality",
		DocketType: "Notice",
		Agency:     "EPA",
		CfrPart:    "",
	}, req)
}

func TestBuildSendsMostRecentSelection(t *testing.T) {
	state := filters.New(filters.Options{Policy: filters.PolicyMulti})
	state.ToggleAgency("EPA")
	state.ToggleAgency("FDA")
	state.ToggleCfrPart(21)
	state.ToggleCfrPart(40)
	state.ToggleCfrPart(40)

	req := FromState(state)

	assert.Equal(t, "FDA", req.Agency)
	assert.Equal(t, "21", req.CfrPart, "an unselected but recent part is skipped")
}

func TestBuildSingleSelect(t *testing.T) {
	state := filters.New(filters.Options{Policy: filters.PolicySingle})
	state.ToggleAgency("EPA")
	state.ToggleAgency("FDA")

	assert.Equal(t, "FDA", FromState(state).Agency)
}

func TestBuildIgnoresFiltersTheBackendDoesNotTake(t *testing.T) {
	state := filters.New(filters.Options{})
	state.SetDateRange("2021", "2023")
	state.ToggleStatus(domain.StatusOpen)

	assert.Equal(t, domain.QueryRequest{}, FromState(state))
}

func TestValuesKeepEmptyFields(t *testing.T) {
	values, err := Values(domain.QueryRequest{Text: "water"})
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"str":         {"water"},
		"docket_type": {""},
		"agency":      {""},
		"cfr_part":    {""},
	}, values)
}

func TestURL(t *testing.T) {
	got, err := URL("http://localhost:8080/", domain.QueryRequest{
		Text:       "clean air & water",
		DocketType: "Non-Rulemaking",
		Agency:     "EPA",
		CfrPart:    "40",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"http://localhost:8080/search/?agency=EPA&cfr_part=40&docket_type=Non-Rulemaking&str=clean+air+%26+water",
		got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "clean air & water", u.Query().Get("str"))
}

func TestURLWithPathPrefix(t *testing.T) {
	got, err := URL("https://example.org/mirrsearch", domain.QueryRequest{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/mirrsearch/search/?agency=&cfr_part=&docket_type=&str=", got)
}

func TestURLRejectsBadBase(t *testing.T) {
	_, err := URL("localhost", domain.QueryRequest{})
	require.Error(t, err)

	_, err = URL("http://[::1", domain.QueryRequest{})
	require.Error(t, err)
}
