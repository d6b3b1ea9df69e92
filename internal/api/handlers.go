package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/hostinfo"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/normalize"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/version"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(); err != nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Database connection failed")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"version": s.app.Version()})
}

func (s *Server) handleGetHost(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, hostinfo.Collect(r.Context()))
}

func (s *Server) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, s.app.Registry().Infos())
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		RespondWithError(w, http.StatusBadRequest, "Query parameter 'name' is required")
		return
	}
	limit := 5
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 50 {
		limit = l
	}
	RespondWithJSON(w, http.StatusOK, s.app.Registry().Suggest(name, limit))
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"name":       name,
		"normalized": normalize.Normalize(name),
	})
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		RespondWithError(w, http.StatusBadRequest, "Query parameter 'name' is required")
		return
	}
	match, err := s.app.Lookup().Lookup(r.Context(), name)
	if err != nil {
		RespondWithError(w, http.StatusGatewayTimeout, "Lookup cancelled: "+err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, match)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query().Get("current")
	latest := r.URL.Query().Get("latest")
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"current":     current,
		"latest":      latest,
		"result":      version.Compare(current, latest).String(),
		"update_kind": version.UpdateKind(current, latest),
	})
}
