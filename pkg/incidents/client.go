package incidents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rd4r3/ai-incident-analyzer/pkg/apiclient"
)

const (
	incidentsPath = "/api/incidents"
	batchPath     = "/api/incidents/batch"
	rootCausePath = "/api/analyze/root-cause"
	patternsPath  = "/api/analyze/patterns"
	searchPath    = "/api/search"
	statsPath     = "/api/incidents/stats"
	healthPath    = "/api/health"
)

// Client wraps the shared HTTP client with one method per remote endpoint.
type Client struct {
	api *apiclient.Client
}

// New creates a Client on top of the shared HTTP client.
func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Incidents fetches all incidents.
func (c *Client) Incidents(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.api.GetJSON(ctx, incidentsPath, nil, &out); err != nil {
		return nil, fmt.Errorf("incidents: %w", err)
	}

	return out, nil
}

// AddIncident stores a single incident record. The record is forwarded as
// received; the remote service owns the contract.
func (c *Client) AddIncident(ctx context.Context, record map[string]any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.api.PostJSON(ctx, incidentsPath, record, &out); err != nil {
		return nil, fmt.Errorf("incidents: add: %w", err)
	}

	return out, nil
}

// AddBatch stores multiple incident records in one call.
func (c *Client) AddBatch(ctx context.Context, records []Incident) (BatchResult, error) {
	var out BatchResult
	if err := c.api.PostJSON(ctx, batchPath, records, &out); err != nil {
		return BatchResult{}, fmt.Errorf("incidents: add batch: %w", err)
	}

	return out, nil
}

// AnalyzeRootCause runs a root-cause analysis over the k most similar
// incidents.
func (c *Client) AnalyzeRootCause(ctx context.Context, query string, k int) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.api.PostJSON(ctx, rootCausePath, analysisRequest{Query: query, K: k}, &out); err != nil {
		return nil, fmt.Errorf("incidents: analyze root cause: %w", err)
	}

	return out, nil
}

// AnalyzePatterns looks for recurring patterns across the k most similar
// incidents.
func (c *Client) AnalyzePatterns(ctx context.Context, query string, k int) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.api.PostJSON(ctx, patternsPath, analysisRequest{Query: query, K: k}, &out); err != nil {
		return nil, fmt.Errorf("incidents: analyze patterns: %w", err)
	}

	return out, nil
}

// Search finds the k incidents most similar to the query.
func (c *Client) Search(ctx context.Context, query string, k int) (json.RawMessage, error) {
	params := url.Values{
		"query": {query},
		"k":     {strconv.Itoa(k)},
	}

	var out json.RawMessage
	if err := c.api.GetJSON(ctx, searchPath, params, &out); err != nil {
		return nil, fmt.Errorf("incidents: search: %w", err)
	}

	return out, nil
}

// Stats fetches collection statistics.
func (c *Client) Stats(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.api.GetJSON(ctx, statsPath, nil, &out); err != nil {
		return nil, fmt.Errorf("incidents: stats: %w", err)
	}

	return out, nil
}

// Health probes the remote API.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var out HealthStatus
	if err := c.api.GetJSON(ctx, healthPath, nil, &out); err != nil {
		return HealthStatus{}, fmt.Errorf("incidents: health: %w", err)
	}

	return out, nil
}
