package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/inventory"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/jobs"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/store"
)

func (s *Server) handleListSoftware(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListSoftware()
	if err != nil {
		s.logger.Error("Failed to list software", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "Failed to list software")
		return
	}
	RespondWithJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddSoftware(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name           string `json:"name"`
		CurrentVersion string `json:"current_version"`
		Vendor         string `json:"vendor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		RespondWithError(w, http.StatusBadRequest, "Software name is required")
		return
	}

	item, err := s.store.AddSoftware(payload.Name, payload.CurrentVersion, payload.Vendor)
	if errors.Is(err, store.ErrDuplicate) {
		RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("Failed to add software", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "Failed to add software")
		return
	}
	RespondWithJSON(w, http.StatusCreated, item)
}

func (s *Server) handleDeleteSoftware(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "softwareID")
	if !ok {
		RespondWithError(w, http.StatusBadRequest, "Invalid software ID")
		return
	}
	err := s.store.DeleteSoftware(id)
	if errors.Is(err, store.ErrNotFound) {
		RespondWithError(w, http.StatusNotFound, "Software not found")
		return
	}
	if err != nil {
		s.logger.Error("Failed to delete software", zap.Int64("id", id), zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "Failed to delete software")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// importFormat picks the format from ?format= or the Content-Type header.
func importFormat(r *http.Request) string {
	if f := r.URL.Query().Get("format"); f != "" {
		return f
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "text/csv", "application/csv":
		return "csv"
	case "application/json":
		return "json"
	}
	return ""
}

// handleImportSoftware replaces the inventory with a CSV or JSON export.
// With ?check=true a software check is started afterwards.
func (s *Server) handleImportSoftware(w http.ResponseWriter, r *http.Request) {
	format := importFormat(r)
	if format == "" {
		RespondWithError(w, http.StatusUnsupportedMediaType, "Send text/csv or application/json, or set ?format=")
		return
	}

	items, err := inventory.Parse(http.MaxBytesReader(w, r.Body, maxImportSize), format)
	if errors.Is(err, inventory.ErrUnsupportedFormat) {
		RespondWithError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid inventory: "+err.Error())
		return
	}

	count, err := s.store.ReplaceInventory(items)
	if err != nil {
		s.logger.Error("Failed to import inventory", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "Failed to import inventory")
		return
	}

	resp := map[string]interface{}{"imported": count}
	if r.URL.Query().Get("check") == "true" {
		if err := s.app.JobManager().RunJob(jobs.SoftwareCheckJobID, s.app); err != nil {
			resp["check_error"] = err.Error()
		} else {
			resp["check_started"] = true
		}
	}
	RespondWithJSON(w, http.StatusOK, resp)
}
