// Package query turns filter selections into the request sent to the search endpoint.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"mirrsearch/internal/domain"
	"mirrsearch/internal/filters"
)

// SearchPath is the endpoint path every request is sent to
const SearchPath = "/search/"

var encoder = schema.NewEncoder()

// Build projects a snapshot into a request.
//
// The backend accepts one agency and one CFR part. When several are selected
// the most recently toggled one is sent.
func Build(s filters.Snapshot) domain.QueryRequest {
	req := domain.QueryRequest{
		Text:       s.Query,
		DocketType: s.DocketType,
	}
	if len(s.Agencies) > 0 {
		req.Agency = s.Agencies[0]
	}
	if len(s.CfrParts) > 0 {
		req.CfrPart = strconv.Itoa(s.CfrParts[0])
	}
	return req
}

// FromState snapshots state and builds the request from it
func FromState(state *filters.State) domain.QueryRequest {
	return Build(state.Snapshot())
}

// Values encodes req as URL parameters. Empty fields are kept as empty values.
func Values(req domain.QueryRequest) (url.Values, error) {
	values := url.Values{}
	if err := encoder.Encode(req, values); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	return values, nil
}

// URL returns the full request URL for req against the endpoint at base
func URL(base string, req domain.QueryRequest) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + SearchPath)
	if err != nil {
		return "", fmt.Errorf("invalid search base url %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid search base url %q: scheme and host are required", base)
	}

	values, err := Values(req)
	if err != nil {
		return "", err
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}
