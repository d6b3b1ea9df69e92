package api

import (
	"errors"
	"net/http"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/jobs"
)

func (s *Server) handleRunCheck(w http.ResponseWriter, r *http.Request) {
	err := s.app.JobManager().RunJob(jobs.SoftwareCheckJobID, s.app)
	if errors.Is(err, jobs.ErrJobRunning) {
		RespondWithError(w, http.StatusConflict, err.Error()) // 409 Conflict if a job is already running
		return
	}
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusAccepted, map[string]string{
		"message": "Job '" + jobs.SoftwareCheckJobID + "' started successfully.",
	})
}

func (s *Server) handleGetLatestCheck(w http.ResponseWriter, r *http.Request) {
	report, ok := s.app.Reports().Latest()
	if !ok {
		RespondWithError(w, http.StatusNotFound, "No software check has finished yet")
		return
	}
	RespondWithJSON(w, http.StatusOK, report)
}

func (s *Server) handleGetJobsStatus(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, s.app.JobManager().GetStatus())
}
