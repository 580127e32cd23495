// Package incidenttools defines the fixed catalogue of tools the adapter
// exposes to its MCP host. The set is closed: adding or removing a tool is a
// compile-time change to All.
package incidenttools

import (
	"context"

	"github.com/rd4r3/ai-incident-analyzer/pkg/incidents"
	"github.com/rd4r3/ai-incident-analyzer/pkg/tools/toolbox"
)

// defaultK is how many similar incidents the analysis and search tools
// consider when the caller does not say.
const defaultK = 5

// All returns the complete tool catalogue bound to the given client.
func All(c *incidents.Client) []toolbox.Tool {
	return []toolbox.Tool{
		getIncidents(c),
		addIncident(c),
		analyzeRootCause(c),
		analyzePatterns(c),
		searchIncidents(c),
		getStats(c),
	}
}

func getIncidents(c *incidents.Client) toolbox.Tool {
	return toolbox.Tool{
		Name:        "get_incidents",
		Title:       "Get Incidents",
		Description: "Retrieve all incidents from the knowledge base",
		Schema:      toolbox.NewSchema(),
		Handler: func(ctx context.Context, _ map[string]any) (string, error) {
			return raw(c.Incidents(ctx))
		},
	}
}

func addIncident(c *incidents.Client) toolbox.Tool {
	schema := toolbox.NewSchema().
		Add("incident_id", toolbox.TypeString, "Unique incident identifier", true).
		Add("timestamp", toolbox.TypeString, "When the incident occurred, as an ISO-8601 string", true).
		Add("category", toolbox.TypeString, "Incident category", true).
		Add("severity", toolbox.TypeString, "Severity: Low, Medium, High or Critical", true).
		Add("description", toolbox.TypeString, "What happened", true).
		Add("root_cause", toolbox.TypeString, "Identified root cause, if known", false).
		Add("resolution", toolbox.TypeString, "How the incident was resolved", false).
		AddArray("affected_components", "Components affected by the incident").
		Add("impact", toolbox.TypeString, "Business or user impact", false).
		Add("resolution_time_mins", toolbox.TypeNumber, "Time to resolution in minutes", true)

	return toolbox.Tool{
		Name:        "add_incident",
		Title:       "Add Incident",
		Description: "Add a new incident to the knowledge base",
		Schema:      schema,
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			return raw(c.AddIncident(ctx, args))
		},
	}
}

func analyzeRootCause(c *incidents.Client) toolbox.Tool {
	return toolbox.Tool{
		Name:        "analyze_root_cause",
		Title:       "Analyze Root Cause",
		Description: "Perform root cause analysis for an incident description using similar past incidents",
		Schema:      querySchema("Description of the incident to analyze"),
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			return raw(c.AnalyzeRootCause(ctx, args["query"].(string), args["k"].(int)))
		},
	}
}

func analyzePatterns(c *incidents.Client) toolbox.Tool {
	return toolbox.Tool{
		Name:        "analyze_patterns",
		Title:       "Analyze Patterns",
		Description: "Analyze recurring patterns across similar incidents",
		Schema:      querySchema("Topic or symptom to look for patterns around"),
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			return raw(c.AnalyzePatterns(ctx, args["query"].(string), args["k"].(int)))
		},
	}
}

func searchIncidents(c *incidents.Client) toolbox.Tool {
	return toolbox.Tool{
		Name:        "search_incidents",
		Title:       "Search Incidents",
		Description: "Search for incidents similar to a query",
		Schema:      querySchema("Free-text search query"),
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			return raw(c.Search(ctx, args["query"].(string), args["k"].(int)))
		},
	}
}

func getStats(c *incidents.Client) toolbox.Tool {
	return toolbox.Tool{
		Name:        "get_stats",
		Title:       "Get Statistics",
		Description: "Get statistics about the incident knowledge base",
		Schema:      toolbox.NewSchema(),
		Handler: func(ctx context.Context, _ map[string]any) (string, error) {
			return raw(c.Stats(ctx))
		},
	}
}

// querySchema is the shared input shape of the analysis and search tools: a
// required query and an optional result count k.
func querySchema(queryDescription string) *toolbox.Schema {
	return toolbox.NewSchema().
		Add("query", toolbox.TypeString, queryDescription, true).
		AddDefault("k", toolbox.TypeInteger, "Number of similar incidents to consider", defaultK)
}

// raw converts a verbatim response body to the handler's string result.
func raw(body []byte, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return string(body), nil
}
