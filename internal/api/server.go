// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/core"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/store"
)

// maxImportSize bounds inventory uploads.
const maxImportSize = 10 << 20

// Server holds the dependencies for our API.
type Server struct {
	app    *core.App
	store  *store.Store
	logger *zap.Logger
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{
		app:    app,
		store:  store.New(app.DB()),
		logger: app.Logger().Named("api"),
	}
}

// Store returns the store instance.
func (s *Server) Store() *store.Store {
	return s.store
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.RequestLogger)
	r.Use(middleware.Recoverer) // Recovers from panics

	r.Get("/ws/progress", s.app.WsHub().ServeWs)

	r.Route("/api", func(r chi.Router) {
		// Catalog lookups can take a while when every catalog is tried.
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleGetVersion)
		r.Get("/host", s.handleGetHost)

		r.Get("/catalogs", s.handleListCatalogs)
		r.Get("/catalogs/suggest", s.handleSuggest)
		r.Get("/normalize", s.handleNormalize)
		r.Get("/lookup", s.handleLookup)
		r.Get("/compare", s.handleCompare)

		r.Get("/software", s.handleListSoftware)
		r.Post("/software", s.handleAddSoftware)
		r.Post("/software/import", s.handleImportSoftware)
		r.Delete("/software/{softwareID}", s.handleDeleteSoftware)

		r.Post("/checks/run", s.handleRunCheck)
		r.Get("/checks/latest", s.handleGetLatestCheck)
		r.Get("/jobs/status", s.handleGetJobsStatus)
	})

	return r
}
