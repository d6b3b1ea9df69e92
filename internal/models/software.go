package models

import "time"

// SoftwareItem is one row of the installed-software inventory.
// An empty CurrentVersion or Vendor means the value is unknown.
type SoftwareItem struct {
	ID             int64     `json:"id,omitempty"`
	Name           string    `json:"name"`
	CurrentVersion string    `json:"current_version,omitempty"`
	Vendor         string    `json:"vendor,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// HostInfo identifies the machine whose inventory was checked.
type HostInfo struct {
	Hostname     string `json:"hostname"`
	OSType       string `json:"os_type"`
	OSVersion    string `json:"os_version"`
	OSBuild      string `json:"os_build,omitempty"`
	Architecture string `json:"architecture"`
}
