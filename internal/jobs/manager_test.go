package jobs_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/checker"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/config"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/jobs"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/websocket"
)

type fakeJobContext struct {
	db      *sql.DB
	cfg     *config.Config
	ws      *websocket.Hub
	jobMgr  *jobs.JobManager
	runner  *checker.Runner
	reports *jobs.ReportStore
}

func (f *fakeJobContext) DB() *sql.DB                  { return f.db }
func (f *fakeJobContext) Config() *config.Config       { return f.cfg }
func (f *fakeJobContext) WsHub() *websocket.Hub        { return f.ws }
func (f *fakeJobContext) JobManager() *jobs.JobManager { return f.jobMgr }
func (f *fakeJobContext) Runner() *checker.Runner      { return f.runner }
func (f *fakeJobContext) Reports() *jobs.ReportStore   { return f.reports }
func (f *fakeJobContext) Logger() *zap.Logger          { return zap.NewNop() }

func newFakeContext() *fakeJobContext {
	ctx := &fakeJobContext{cfg: &config.Config{}, ws: websocket.NewHub(), reports: jobs.NewReportStore()}
	ctx.jobMgr = jobs.NewManager(nil)
	return ctx
}

func waitIdle(t *testing.T, mgr *jobs.JobManager) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, mgr.Wait(ctx))
}

func TestManager_NewManager(t *testing.T) {
	mgr := jobs.NewManager(nil)
	assert.NotNil(t, mgr)
	assert.Empty(t, mgr.GetStatus())
	assert.False(t, mgr.IsRunning())
}

func TestManager_RegisterAndGetStatus(t *testing.T) {
	mgr := jobs.NewManager(nil)
	noop := func(context.Context, jobs.JobContext) error { return nil }
	mgr.Register("jobB", "Job B", noop)
	mgr.Register("jobA", "Job A", noop)

	statuses := mgr.GetStatus()
	require.Len(t, statuses, 2)
	assert.Equal(t, "jobA", statuses[0].ID)
	assert.Equal(t, "jobB", statuses[1].ID)
	assert.Equal(t, jobs.StatusIdle, statuses[0].Status)
}

func TestManager_RunJob_SuccessAndStatus(t *testing.T) {
	ctx := newFakeContext()
	mgr := ctx.jobMgr
	var called bool
	mgr.Register("jobX", "Job X", func(context.Context, jobs.JobContext) error {
		called = true
		return nil
	})

	require.NoError(t, mgr.RunJob("jobX", ctx))
	waitIdle(t, mgr)

	assert.True(t, called)
	statuses := mgr.GetStatus()
	assert.Equal(t, jobs.StatusSuccess, statuses[0].Status)
	assert.False(t, statuses[0].EndTime.IsZero())
}

func TestManager_RunJob_Error(t *testing.T) {
	ctx := newFakeContext()
	mgr := ctx.jobMgr
	mgr.Register("jobE", "Job E", func(context.Context, jobs.JobContext) error {
		return errors.New("inventory unavailable")
	})

	require.NoError(t, mgr.RunJob("jobE", ctx))
	waitIdle(t, mgr)

	statuses := mgr.GetStatus()
	assert.Equal(t, jobs.StatusFailed, statuses[0].Status)
	assert.Equal(t, "inventory unavailable", statuses[0].Message)
}

func TestManager_RunJob_AlreadyRunning(t *testing.T) {
	ctx := newFakeContext()
	mgr := ctx.jobMgr
	block := make(chan struct{})
	mgr.Register("jobY", "Job Y", func(context.Context, jobs.JobContext) error {
		<-block
		return nil
	})

	require.NoError(t, mgr.RunJob("jobY", ctx))
	assert.True(t, mgr.IsRunning())
	assert.ErrorIs(t, mgr.RunJob("jobY", ctx), jobs.ErrJobRunning)
	close(block)
	waitIdle(t, mgr)
	assert.False(t, mgr.IsRunning())
}

func TestManager_RunJob_NotFound(t *testing.T) {
	ctx := newFakeContext()
	assert.ErrorIs(t, ctx.jobMgr.RunJob("nojob", ctx), jobs.ErrJobNotFound)
}

func TestManager_RunJob_Panic(t *testing.T) {
	ctx := newFakeContext()
	mgr := ctx.jobMgr
	mgr.Register("panicJob", "Panic Job", func(context.Context, jobs.JobContext) error { panic("fail") })

	require.NoError(t, mgr.RunJob("panicJob", ctx))
	waitIdle(t, mgr)

	statuses := mgr.GetStatus()
	assert.Equal(t, jobs.StatusFailed, statuses[0].Status)
	assert.Contains(t, statuses[0].Message, "panicked")
}

func TestManager_Shutdown(t *testing.T) {
	ctx := newFakeContext()
	mgr := ctx.jobMgr
	mgr.Register("long", "Long", func(c context.Context, _ jobs.JobContext) error {
		<-c.Done()
		return c.Err()
	})

	require.NoError(t, mgr.RunJob("long", ctx))
	mgr.Shutdown()
	waitIdle(t, mgr)
	assert.Equal(t, jobs.StatusFailed, mgr.GetStatus()[0].Status)
}

func TestManager_Concurrency(t *testing.T) {
	ctx := newFakeContext()
	mgr := ctx.jobMgr
	var mu sync.Mutex
	var count int
	release := make(chan struct{})
	mgr.Register("jobC", "Job C", func(context.Context, jobs.JobContext) error {
		mu.Lock()
		count++
		mu.Unlock()
		<-release
		return nil
	})

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = mgr.RunJob("jobC", ctx)
		}()
	}
	wg.Wait()
	close(release)
	waitIdle(t, mgr)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count, "job should only run once concurrently")
}
