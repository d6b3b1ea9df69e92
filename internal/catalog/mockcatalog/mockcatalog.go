// A mock catalog for development and testing purposes. It answers from an
// in-memory version table without making network calls.
package mockcatalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

// Catalog is an in-memory catalog.Catalog.
type Catalog struct {
	*catalog.Resolver
	info models.CatalogInfo

	mu       sync.Mutex
	versions map[string]string
	failures map[string]error
	calls    []string
}

// New creates a mock catalog with the given source id and mapping table.
func New(id models.CatalogSource, table []catalog.Mapping) *Catalog {
	return &Catalog{
		Resolver: catalog.NewResolver(table),
		info:     models.CatalogInfo{ID: id, Name: "Mock " + string(id)},
		versions: make(map[string]string),
		failures: make(map[string]error),
	}
}

// Offline returns a mock covering a handful of common packages, used when
// the server runs without network access.
func Offline() *Catalog {
	c := New("offline", []catalog.Mapping{
		{Key: "chrome", ID: "chrome"},
		{Key: "firefox", ID: "firefox"},
		{Key: "7zip", ID: "7zip"},
		{Key: "vlc", ID: "vlc"},
		{Key: "notepad++", ID: "notepad++"},
		{Key: "vscode", ID: "vscode"},
		{Key: "git", ID: "git"},
	})
	c.SetVersion("chrome", "121.0.6167.85")
	c.SetVersion("firefox", "122.0")
	c.SetVersion("7zip", "23.01")
	c.SetVersion("vlc", "3.0.20")
	c.SetVersion("notepad++", "8.6.2")
	c.SetVersion("vscode", "1.86.0")
	c.SetVersion("git", "2.43.0")
	return c
}

// SetVersion sets the version Fetch returns for identifier.
func (c *Catalog) SetVersion(identifier, version string) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[identifier] = version
	return c
}

// SetFailure makes Fetch return err for identifier.
func (c *Catalog) SetFailure(identifier string, err error) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[identifier] = err
	return c
}

// Calls returns the identifiers fetched so far, in order.
func (c *Catalog) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.calls))
	copy(out, c.calls)
	return out
}

func (c *Catalog) Info() models.CatalogInfo {
	return c.info
}

func (c *Catalog) Fetch(ctx context.Context, identifier string) (*models.CatalogMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, identifier)

	if err, ok := c.failures[identifier]; ok {
		return nil, err
	}
	v, ok := c.versions[identifier]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, identifier)
	}
	return &models.CatalogMatch{
		Name:       identifier,
		Version:    v,
		ProjectURL: fmt.Sprintf("https://example.test/%s/%s", c.info.ID, identifier),
	}, nil
}
