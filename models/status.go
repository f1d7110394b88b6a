package models

// ServerStatus is the body returned by GET /api/status.
type ServerStatus struct {
	Version string `json:"version"`
	// Storage names the session backend: memory, postgres or sqlite.
	Storage string `json:"storage"`
	// StartedAt is the server start time in milliseconds since the Unix epoch.
	StartedAt int64 `json:"startedAt"`
}
