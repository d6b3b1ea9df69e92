package jobs

import (
	"sync"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/checker"
)

// ReportStore keeps the report of the last finished software check in
// memory. Reports are not persisted.
type ReportStore struct {
	mu     sync.RWMutex
	latest *checker.Report
}

func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Set replaces the latest report.
func (s *ReportStore) Set(r checker.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &r
}

// Latest returns the last report, if any.
func (s *ReportStore) Latest() (checker.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return checker.Report{}, false
	}
	return *s.latest, true
}
