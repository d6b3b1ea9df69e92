package jobs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/hostinfo"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/i18n"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/store"
)

// SoftwareCheckJobID identifies the inventory version check.
const SoftwareCheckJobID = "software-check"

// RegisterAll registers every job the server knows.
func RegisterAll(jm *JobManager) {
	jm.Register(SoftwareCheckJobID, "Software version check", RunSoftwareCheck)
}

// RunSoftwareCheck checks the stored inventory against the catalogs,
// broadcasting progress and keeping the final report.
func RunSoftwareCheck(ctx context.Context, app JobContext) error {
	items, err := store.New(app.DB()).InventoryItems()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	hub := app.WsHub()
	app.Logger().Info("Checking inventory", zap.String("job", SoftwareCheckJobID), zap.Int("items", len(items)))

	report := app.Runner().Run(ctx, items, func(p models.ProgressState) {
		update := models.ProgressUpdate{
			JobID: SoftwareCheckJobID,
			Message: i18n.T("progress.checking", map[string]interface{}{
				"Name":    p.SoftwareName,
				"Current": p.Current,
				"Total":   p.Total,
			}),
			Progress: float64(p.Percentage),
			Status:   "in_progress",
		}
		if p.Current >= 1 && p.Current <= len(items) {
			update.ItemID = items[p.Current-1].ID
		}
		hub.BroadcastJSON(update)
	})
	host := hostinfo.Collect(ctx)
	report.Host = &host
	app.Reports().Set(report)

	status := "completed"
	if ctx.Err() != nil {
		status = "failed"
	}
	hub.BroadcastJSON(models.ProgressUpdate{
		JobID: SoftwareCheckJobID,
		Message: i18n.T("progress.done", map[string]interface{}{
			"Total":    report.Statistics.Total,
			"Outdated": report.Statistics.Outdated,
		}),
		Progress:   100,
		Status:     status,
		Done:       true,
		Statistics: &report.Statistics,
	})
	return ctx.Err()
}
