// Package winget queries the winget package-manifest repository.
package winget

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/version"
)

const (
	DefaultAPIURL = "https://api.github.com/repos/microsoft/winget-pkgs/contents"
	DefaultRawURL = "https://raw.githubusercontent.com/microsoft/winget-pkgs/master"
)

// Catalog implements catalog.Catalog for winget manifests.
type Catalog struct {
	*catalog.Resolver
	client    *catalog.Client // raw manifest files
	apiClient *catalog.Client // contents API, authenticated when a token is set
	apiURL    string
	rawURL    string
	logger    *zap.Logger
}

// New creates a winget catalog. Empty URLs fall back to the public
// repository. The contents listing goes through the GitHub API, so a
// non-empty token is sent as a bearer token there as well.
func New(client *catalog.Client, apiURL, rawURL, token string, logger *zap.Logger) *Catalog {
	if client == nil {
		client = catalog.NewClient(catalog.DefaultTimeout)
	}
	apiClient := client.WithHeader("X-GitHub-Api-Version", "2022-11-28")
	if token != "" {
		apiClient = apiClient.WithHeader("Authorization", "Bearer "+token)
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if rawURL == "" {
		rawURL = DefaultRawURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		Resolver:  catalog.NewResolver(Table),
		client:    client,
		apiClient: apiClient,
		apiURL:    strings.TrimRight(apiURL, "/"),
		rawURL:    strings.TrimRight(rawURL, "/"),
		logger:    logger.Named("winget"),
	}
}

// Info returns static information about this catalog.
func (c *Catalog) Info() models.CatalogInfo {
	return models.CatalogInfo{ID: models.SourceWinget, Name: "Winget"}
}

// manifestPath turns "Publisher.Package" into "manifests/p/Publisher/Package".
func manifestPath(identifier string) (string, error) {
	if identifier == "" || !strings.Contains(identifier, ".") {
		return "", fmt.Errorf("%w: invalid winget identifier %q", catalog.ErrNotFound, identifier)
	}
	segments := strings.Split(identifier, ".")
	escaped := make([]string, 0, len(segments)+2)
	escaped = append(escaped, "manifests", strings.ToLower(identifier[:1]))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return strings.Join(escaped, "/"), nil
}

// Fetch lists the version folders of identifier and returns the highest.
func (c *Catalog) Fetch(ctx context.Context, identifier string) (*models.CatalogMatch, error) {
	dir, err := manifestPath(identifier)
	if err != nil {
		return nil, err
	}

	var entries []contentEntry
	if err := c.apiClient.GetJSON(ctx, c.apiURL+"/"+dir, &entries); err != nil {
		return nil, err
	}

	var versions []string
	for _, e := range entries {
		if e.Type == "dir" && strings.ContainsAny(e.Name, "0123456789") {
			versions = append(versions, e.Name)
		}
	}
	latest := version.Highest(versions)
	if latest == "" {
		return nil, fmt.Errorf("%w: no version folders under %s", catalog.ErrNotFound, dir)
	}

	match := &models.CatalogMatch{
		Name:       identifier,
		Version:    latest,
		ProjectURL: "https://github.com/microsoft/winget-pkgs/tree/master/" + dir + "/" + url.PathEscape(latest),
	}
	c.enrich(ctx, match, dir, identifier, latest)
	return match, nil
}

// enrich fills name, publisher and URLs from the version's manifests.
// Failures are logged and leave the basic match untouched.
func (c *Catalog) enrich(ctx context.Context, match *models.CatalogMatch, dir, identifier, latest string) {
	base := c.rawURL + "/" + dir + "/" + url.PathEscape(latest) + "/" + url.PathEscape(identifier)

	var locale localeManifest
	if err := c.getYAML(ctx, base+".locale.en-US.yaml", &locale); err != nil {
		c.logger.Debug("Locale manifest unavailable", zap.String("identifier", identifier), zap.Error(err))
	} else {
		if locale.PackageName != "" {
			match.Name = locale.PackageName
		}
		match.Publisher = locale.Publisher
		if locale.PackageURL != "" {
			match.ProjectURL = locale.PackageURL
		} else if locale.PublisherURL != "" {
			match.ProjectURL = locale.PublisherURL
		}
	}

	var installer installerManifest
	if err := c.getYAML(ctx, base+".installer.yaml", &installer); err != nil {
		c.logger.Debug("Installer manifest unavailable", zap.String("identifier", identifier), zap.Error(err))
		return
	}
	match.DownloadURL = pickInstaller(installer)
}

func (c *Catalog) getYAML(ctx context.Context, u string, v any) error {
	body, err := c.client.Get(ctx, u, "")
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", catalog.ErrParse, err)
	}
	return nil
}

// pickInstaller prefers the x64 installer, then the first one listed.
func pickInstaller(m installerManifest) string {
	for _, i := range m.Installers {
		if i.Architecture == "x64" && i.InstallerURL != "" {
			return i.InstallerURL
		}
	}
	for _, i := range m.Installers {
		if i.InstallerURL != "" {
			return i.InstallerURL
		}
	}
	return ""
}
