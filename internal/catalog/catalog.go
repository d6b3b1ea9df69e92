// Package catalog resolves software names against the external version
// catalogs and walks them in priority order until one of them answers.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

// Catalog is the contract every external version source implements.
type Catalog interface {
	Info() models.CatalogInfo
	// Resolve maps a normalized software name to the catalog's own identifier.
	Resolve(normalizedName string) (string, bool)
	// Fetch returns the latest version the catalog knows for identifier.
	// Errors wrap ErrNotFound, ErrTransport or ErrParse.
	Fetch(ctx context.Context, identifier string) (*models.CatalogMatch, error)
}

// Registry keeps catalogs in registration order, which is also the order
// the lookup tries them in.
type Registry struct {
	mu      sync.RWMutex
	ordered []Catalog
	byID    map[models.CatalogSource]Catalog
}

// NewRegistry creates a registry holding the given catalogs in order.
func NewRegistry(catalogs ...Catalog) *Registry {
	r := &Registry{byID: make(map[models.CatalogSource]Catalog)}
	for _, c := range catalogs {
		r.Register(c)
	}
	return r
}

// Register appends a catalog. It's called at startup.
func (r *Registry) Register(c Catalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info := c.Info()
	if _, exists := r.byID[info.ID]; exists {
		// Panic is appropriate here as it's a developer error during setup.
		panic(fmt.Sprintf("catalog with ID '%s' is already registered", info.ID))
	}
	r.byID[info.ID] = c
	r.ordered = append(r.ordered, c)
}

// Get returns a catalog by its ID.
func (r *Registry) Get(id models.CatalogSource) (Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// All returns the registered catalogs in priority order.
func (r *Registry) All() []Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Catalog, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Infos returns information for all registered catalogs in priority order.
func (r *Registry) Infos() []models.CatalogInfo {
	catalogs := r.All()
	infos := make([]models.CatalogInfo, len(catalogs))
	for i, c := range catalogs {
		infos[i] = c.Info()
	}
	return infos
}
