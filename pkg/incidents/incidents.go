// Package incidents provides the typed client for the remote
// incident-analysis REST API. Tool-facing methods return the response body
// verbatim as json.RawMessage so payloads pass through without re-encoding.
package incidents

// Incident is one incident record as stored by the remote service.
type Incident struct {
	IncidentID         string   `json:"incident_id"`
	Timestamp          string   `json:"timestamp"` // ISO-8601.
	Category           string   `json:"category"`
	Severity           string   `json:"severity"` // Low, Medium, High or Critical.
	Description        string   `json:"description"`
	RootCause          *string  `json:"root_cause,omitempty"`
	Resolution         *string  `json:"resolution,omitempty"`
	AffectedComponents []string `json:"affected_components,omitempty"`
	Impact             *string  `json:"impact,omitempty"`
	ResolutionTimeMins float64  `json:"resolution_time_mins"`
}

// BatchResult is the remote response for a batch import.
type BatchResult struct {
	Success        bool `json:"success"`
	ProcessedCount int  `json:"processed_count"`
}

// HealthStatus is the remote response for the API health probe.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// analysisRequest mirrors the body of the two analysis endpoints.
type analysisRequest struct {
	Query string `json:"query"`
	K     int    `json:"k"`
}
