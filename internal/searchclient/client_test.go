package searchclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirrsearch/internal/domain"
)

func counterValue(t *testing.T, reg *prometheus.Registry, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "mirrsearch_search_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "outcome" && l.GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestSearchSendsCanonicalParameters(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("X-Total-Results", "25")
		_, _ = w.Write([]byte(`[{"docket_id":"EPA-HQ-OAR-2021-0001","title":"Air"},{"docket_id":"EPA-2"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Search(context.Background(), domain.QueryRequest{
		Text:    "air quality",
		Agency:  "EPA",
		CfrPart: "40",
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "/search/", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "air quality", q.Get("str"))
	assert.Equal(t, "EPA", q.Get("agency"))
	assert.Equal(t, "40", q.Get("cfr_part"))
	assert.True(t, q.Has("docket_type"), "empty filters are sent, not omitted")
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
	assert.Equal(t, got.Header.Get("X-Request-ID"), resp.RequestID)

	require.Len(t, resp.Results, 2)
	assert.JSONEq(t, `{"docket_id":"EPA-2"}`, string(resp.Results[1]))
	assert.Equal(t, 25, resp.TotalResults)
}

func TestSearchEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Search(context.Background(), domain.QueryRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
	assert.Equal(t, -1, resp.TotalResults)
}

func TestSearchNon2xxIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	_, err := New(srv.URL, WithMetrics(NewMetrics(reg))).Search(context.Background(), domain.QueryRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrMalformedResponse)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, float64(1), counterValue(t, reg, OutcomeHTTPError))
}

func TestSearchMalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"object":    `{"results":[]}`,
		"truncated": `[{"a":1}`,
		"empty":     ``,
		"html":      `<html>oops</html>`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			reg := prometheus.NewRegistry()
			_, err := New(srv.URL, WithMetrics(NewMetrics(reg))).Search(context.Background(), domain.QueryRequest{})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.NotErrorIs(t, err, ErrTransport)
			assert.Equal(t, float64(1), counterValue(t, reg, OutcomeMalformed))
		})
	}
}

func TestSearchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := New(base).Search(context.Background(), domain.QueryRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Zero(t, te.StatusCode)
}

func TestSearchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).Search(context.Background(), domain.QueryRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSearchBadBaseURL(t *testing.T) {
	_, err := New("not a url").Search(context.Background(), domain.QueryRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSearchRecordsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1,2,3]`))
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	c := New(srv.URL, WithMetrics(NewMetrics(reg)))
	_, err := c.Search(context.Background(), domain.QueryRequest{})
	require.NoError(t, err)
	_, err = c.Search(context.Background(), domain.QueryRequest{})
	require.NoError(t, err)

	assert.Equal(t, float64(2), counterValue(t, reg, OutcomeOK))
}
