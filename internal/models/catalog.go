package models

// CatalogSource identifies one of the external version catalogs.
type CatalogSource string

const (
	SourceWinget     CatalogSource = "winget"     // package-manifest repository
	SourceChocolatey CatalogSource = "chocolatey" // community package index
	SourceGitHub     CatalogSource = "github"     // release repository
)

// CatalogInfo contains static information about a catalog.
type CatalogInfo struct {
	ID   CatalogSource `json:"id"`
	Name string        `json:"name"`
}

// AttemptOutcome classifies what happened when a single catalog was tried.
type AttemptOutcome string

const (
	OutcomeMatched   AttemptOutcome = "matched"
	OutcomeNotMapped AttemptOutcome = "not_mapped"
	OutcomeNotFound  AttemptOutcome = "not_found"
	OutcomeTransport AttemptOutcome = "transport_error"
	OutcomeParse     AttemptOutcome = "parse_error"
)

// CatalogAttempt records one step of the catalog fallback chain.
type CatalogAttempt struct {
	Source     CatalogSource  `json:"source"`
	Identifier string         `json:"identifier,omitempty"`
	Outcome    AttemptOutcome `json:"outcome"`
	Error      string         `json:"error,omitempty"`
}

// CatalogMatch is the result of querying the catalogs for one software name.
type CatalogMatch struct {
	Found       bool             `json:"found"`
	Source      CatalogSource    `json:"source,omitempty"`
	Identifier  string           `json:"identifier,omitempty"`
	Name        string           `json:"name,omitempty"`
	Version     string           `json:"version,omitempty"`
	DownloadURL string           `json:"download_url,omitempty"`
	ProjectURL  string           `json:"project_url,omitempty"`
	Publisher   string           `json:"publisher,omitempty"`
	Error       string           `json:"error,omitempty"`
	Attempts    []CatalogAttempt `json:"attempts,omitempty"`
}
