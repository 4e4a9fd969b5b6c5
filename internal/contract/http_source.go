package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/huangsam/trajectory/schema"
)

// HTTPDataSource reads a covid19api-compatible feed over HTTP.
type HTTPDataSource struct {
	baseURL string
	client  *http.Client
}

var _ DataSource = &HTTPDataSource{} // Compile-time check

// summaryResponse is the body of GET /summary.
type summaryResponse struct {
	Countries []struct {
		Country        string `json:"Country"`
		Slug           string `json:"Slug"`
		TotalConfirmed int64  `json:"TotalConfirmed"`
	} `json:"Countries"`
}

// dayOneRecord is one element of GET /total/dayone/country/{slug}/status/confirmed.
type dayOneRecord struct {
	Date  string `json:"Date"`
	Cases int64  `json:"Cases"`
}

// NewHTTPDataSource creates a data source rooted at baseURL.
func NewHTTPDataSource(baseURL string, timeout time.Duration) *HTTPDataSource {
	return &HTTPDataSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ListSummary returns every country of the summary feed.
func (h *HTTPDataSource) ListSummary(ctx context.Context) ([]schema.CountryRecord, error) {
	var body summaryResponse
	if err := h.getJSON(ctx, "/summary", &body); err != nil {
		return nil, err
	}
	records := make([]schema.CountryRecord, 0, len(body.Countries))
	for _, c := range body.Countries {
		records = append(records, schema.CountryRecord{
			Identifier:     c.Slug,
			Name:           c.Country,
			TotalConfirmed: c.TotalConfirmed,
		})
	}
	return records, nil
}

// DailyHistory returns the cumulative confirmed series of one country from day one.
func (h *HTTPDataSource) DailyHistory(ctx context.Context, identifier string) ([]schema.DailyRecord, error) {
	path := "/total/dayone/country/" + url.PathEscape(identifier) + "/status/confirmed"
	var body []dayOneRecord
	if err := h.getJSON(ctx, path, &body); err != nil {
		return nil, err
	}
	records := make([]schema.DailyRecord, len(body))
	for i, r := range body {
		records[i] = schema.DailyRecord{Date: r.Date, Cases: r.Cases}
	}
	return records, nil
}

// getJSON fetches path and decodes the JSON body into out.
func (h *HTTPDataSource) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", schema.ErrUpstreamUnavailable, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s returned %s", schema.ErrUpstreamUnavailable, path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", schema.ErrUpstreamUnavailable, path, err)
	}
	return nil
}
