package checker

import (
	"time"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/i18n"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/version"
)

// BuildResult folds a catalog match into the result for item.
func BuildResult(item models.SoftwareItem, match models.CatalogMatch, at time.Time) models.CheckResult {
	res := models.CheckResult{
		Software:       item,
		CurrentVersion: item.CurrentVersion,
		CheckedAt:      at,
	}

	if !match.Found {
		res.Status = models.StatusNotFound
		res.Message = i18n.T("status.not_found", nil)
		return res
	}

	latest := match
	res.LatestVersion = &latest
	data := map[string]interface{}{
		"Current": item.CurrentVersion,
		"Latest":  match.Version,
	}

	switch version.Compare(item.CurrentVersion, match.Version) {
	case version.UpToDate:
		res.Status = models.StatusUpToDate
		res.Message = i18n.T("status.up_to_date", data)
	case version.Outdated:
		res.Status = models.StatusOutdated
		res.UpdateKind = version.UpdateKind(item.CurrentVersion, match.Version)
		res.Message = i18n.T("status.outdated", data)
	case version.Newer:
		res.Status = models.StatusNewer
		res.Message = i18n.T("status.newer", data)
	default:
		res.Status = models.StatusUnknown
		if item.CurrentVersion == "" {
			res.Message = i18n.T("status.unknown_current", data)
		} else {
			res.Message = i18n.T("status.unknown", data)
		}
	}
	return res
}

// ErrorResult reports item as failed with err.
func ErrorResult(item models.SoftwareItem, err error, at time.Time) models.CheckResult {
	id := "status.error"
	if IsCancellation(err) {
		id = "status.cancelled"
	}
	return models.CheckResult{
		Software:       item,
		Status:         models.StatusError,
		CurrentVersion: item.CurrentVersion,
		Message:        i18n.T(id, map[string]interface{}{"Error": err.Error()}),
		CheckedAt:      at,
	}
}

// Statistics tallies results by status and by the catalog that answered.
func Statistics(results []models.CheckResult) models.BatchStatistics {
	stats := models.BatchStatistics{
		Total:    len(results),
		BySource: make(map[models.CatalogSource]int),
	}
	for _, r := range results {
		switch r.Status {
		case models.StatusUpToDate:
			stats.UpToDate++
		case models.StatusOutdated:
			stats.Outdated++
		case models.StatusNewer:
			stats.Newer++
		case models.StatusNotFound:
			stats.NotFound++
		case models.StatusError:
			stats.Error++
		default:
			stats.Unknown++
		}
		if r.LatestVersion != nil && r.LatestVersion.Found {
			stats.BySource[r.LatestVersion.Source]++
		}
	}
	return stats
}

// Report is the outcome of one complete batch.
type Report struct {
	Results    []models.CheckResult   `json:"results"`
	Statistics models.BatchStatistics `json:"statistics"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
	Host       *models.HostInfo       `json:"host,omitempty"`
}
