package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/checker"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/config"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/websocket"
)

var (
	ErrJobRunning  = errors.New("a job is already running")
	ErrJobNotFound = errors.New("job not found")
)

// JobContext is an interface that provides the necessary dependencies for a job to run.
// The core.App struct implements this interface.
type JobContext interface {
	DB() *sql.DB
	Config() *config.Config
	WsHub() *websocket.Hub
	JobManager() *JobManager
	Runner() *checker.Runner
	Reports() *ReportStore
	Logger() *zap.Logger
}

// JobTask is the body of a job. A returned error marks the job as failed.
type JobTask func(ctx context.Context, app JobContext) error

const (
	StatusIdle    = "idle"
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type JobStatus struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"` // "idle", "running", "success", "failed"
	Message   string    `json:"message"`
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
}

type registeredJob struct {
	name string
	task JobTask
}

// JobManager runs registered jobs one at a time.
type JobManager struct {
	mu      sync.Mutex
	jobs    map[string]registeredJob
	status  map[string]*JobStatus
	running bool
	done    chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *zap.Logger
}

func NewManager(logger *zap.Logger) *JobManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &JobManager{
		jobs:   make(map[string]registeredJob),
		status: make(map[string]*JobStatus),
		ctx:    ctx,
		cancel: cancel,
		logger: logger.Named("jobs"),
	}
}

func (jm *JobManager) Register(id, name string, task JobTask) {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	jm.jobs[id] = registeredJob{name: name, task: task}
	jm.status[id] = &JobStatus{ID: id, Name: name, Status: StatusIdle}
}

// RunJob starts the job in the background. It fails when another job is
// still running or id is unknown.
func (jm *JobManager) RunJob(id string, app JobContext) error {
	jm.mu.Lock()
	if jm.running {
		jm.mu.Unlock()
		return ErrJobRunning
	}

	job, ok := jm.jobs[id]
	if !ok {
		jm.mu.Unlock()
		return fmt.Errorf("%w: '%s'", ErrJobNotFound, id)
	}

	jm.running = true
	jm.done = make(chan struct{})
	done := jm.done
	status := jm.status[id]
	status.Status = StatusRunning
	status.StartTime = time.Now()
	status.EndTime = time.Time{}
	status.Message = "Job started..."
	jm.mu.Unlock()

	log := jm.logger.With(zap.String("job", id))
	log.Info("Starting job")
	go func() {
		var taskErr error
		defer func() {
			// Always record the outcome and release the manager.
			r := recover()

			jm.mu.Lock()
			status.EndTime = time.Now()
			switch {
			case r != nil:
				log.Error("Job panicked", zap.Any("panic", r))
				status.Status = StatusFailed
				status.Message = fmt.Sprintf("Job panicked: %v", r)
			case taskErr != nil:
				log.Warn("Job failed", zap.Error(taskErr))
				status.Status = StatusFailed
				status.Message = taskErr.Error()
			default:
				status.Status = StatusSuccess
				status.Message = "Job completed successfully."
			}
			jm.running = false
			jm.mu.Unlock()
			close(done)
			log.Info("Finished job", zap.String("status", status.Status))
		}()

		taskErr = job.task(jm.ctx, app)
	}()
	return nil
}

// IsRunning reports whether a job is in progress.
func (jm *JobManager) IsRunning() bool {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	return jm.running
}

// Wait blocks until the running job, if any, has finished or ctx is done.
func (jm *JobManager) Wait(ctx context.Context) error {
	jm.mu.Lock()
	done := jm.done
	running := jm.running
	jm.mu.Unlock()
	if !running || done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown cancels the context handed to running jobs.
func (jm *JobManager) Shutdown() {
	jm.cancel()
}

// GetStatus returns a snapshot of every job's status, ordered by id.
func (jm *JobManager) GetStatus() []JobStatus {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	statuses := make([]JobStatus, 0, len(jm.status))
	for _, s := range jm.status {
		statuses = append(statuses, *s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].ID < statuses[j].ID })
	return statuses
}
