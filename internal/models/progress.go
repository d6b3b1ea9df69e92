package models

// ProgressState is emitted before each item of a batch is looked up.
type ProgressState struct {
	Current      int    `json:"current"`
	Total        int    `json:"total"`
	SoftwareName string `json:"software_name"`
	Percentage   int    `json:"percentage"`
}

// ProgressUpdate is the message broadcast to websocket clients while a job runs.
type ProgressUpdate struct {
	JobID    string  `json:"jobId"`
	Message  string  `json:"message"`
	Progress float64 `json:"progress"`
	ItemID   int64   `json:"item_id"`
	Status   string  `json:"status"` // e.g. "in_progress", "completed", "failed"
	// Optional fields for more detailed updates
	Done       bool             `json:"done"`
	Statistics *BatchStatistics `json:"statistics,omitempty"`
}
