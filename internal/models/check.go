package models

import "time"

// Status is the outcome of checking one installed software item.
type Status string

const (
	StatusUpToDate Status = "up_to_date"
	StatusOutdated Status = "outdated"
	StatusNewer    Status = "newer"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
	StatusUnknown  Status = "unknown"
)

// CheckResult is produced once per inventory item in a batch.
// LatestVersion is only set when a catalog match was found.
type CheckResult struct {
	Software       SoftwareItem  `json:"software"`
	Status         Status        `json:"status"`
	CurrentVersion string        `json:"current_version,omitempty"`
	LatestVersion  *CatalogMatch `json:"latest_version,omitempty"`
	Message        string        `json:"message"`
	UpdateKind     string        `json:"update_kind,omitempty"` // "major", "minor" or "patch" for outdated items
	CheckedAt      time.Time     `json:"checked_at"`
}

// BatchStatistics are counts derived from a sequence of CheckResults.
type BatchStatistics struct {
	Total    int                   `json:"total"`
	UpToDate int                   `json:"up_to_date"`
	Outdated int                   `json:"outdated"`
	Newer    int                   `json:"newer"`
	NotFound int                   `json:"not_found"`
	Error    int                   `json:"error"`
	Unknown  int                   `json:"unknown"`
	BySource map[CatalogSource]int `json:"by_source"`
}
