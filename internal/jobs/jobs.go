package jobs

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// StartJobs starts the background job scheduler. It returns nil when no
// job is scheduled.
func StartJobs(app JobContext) *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	if !scheduleSoftwareCheck(s, app) {
		return nil
	}

	app.Logger().Info("Starting background job scheduler")
	s.StartAsync()
	return s
}

func scheduleSoftwareCheck(s *gocron.Scheduler, app JobContext) bool {
	log := app.Logger().With(zap.String("job", SoftwareCheckJobID))
	interval := app.Config().Checker.ScheduleMinutes
	if interval <= 0 {
		log.Info("Check interval is 0, scheduled software check is disabled")
		return false
	}

	log.Info("Scheduling job", zap.Int("interval_minutes", interval))
	_, err := s.Every(interval).Minutes().WaitForSchedule().Do(func() {
		log.Info("Scheduler is triggering job")
		// Submit the job to the manager instead of running it directly.
		// This prevents conflicts with manually triggered jobs.
		if err := app.JobManager().RunJob(SoftwareCheckJobID, app); err != nil {
			log.Warn("Scheduled job could not start", zap.Error(err))
		}
	})
	if err != nil {
		log.Error("Error scheduling job", zap.Error(err))
		return false
	}
	return true
}
