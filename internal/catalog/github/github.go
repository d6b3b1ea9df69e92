// Package github queries GitHub release pages for the latest release.
package github

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

const DefaultAPIURL = "https://api.github.com"

type release struct {
	TagName    string  `json:"tag_name"`
	Name       string  `json:"name"`
	HTMLURL    string  `json:"html_url"`
	Draft      bool    `json:"draft"`
	Prerelease bool    `json:"prerelease"`
	Author     *author `json:"author"`
	Assets     []asset `json:"assets"`
}

type author struct {
	Login string `json:"login"`
}

type asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Catalog implements catalog.Catalog for GitHub releases.
type Catalog struct {
	*catalog.Resolver
	client  *catalog.Client
	baseURL string
	logger  *zap.Logger
}

// New creates a GitHub catalog. A non-empty token is sent as a bearer
// token, which raises the API rate limit.
func New(client *catalog.Client, baseURL, token string, logger *zap.Logger) *Catalog {
	if client == nil {
		client = catalog.NewClient(catalog.DefaultTimeout)
	}
	client = client.WithHeader("X-GitHub-Api-Version", "2022-11-28")
	if token != "" {
		client = client.WithHeader("Authorization", "Bearer "+token)
	}
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		Resolver: catalog.NewResolver(Table),
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger.Named("github"),
	}
}

// Info returns static information about this catalog.
func (c *Catalog) Info() models.CatalogInfo {
	return models.CatalogInfo{ID: models.SourceGitHub, Name: "GitHub Releases"}
}

// Fetch returns the latest published release of the owner/repo identifier.
func (c *Catalog) Fetch(ctx context.Context, identifier string) (*models.CatalogMatch, error) {
	owner, repo, ok := strings.Cut(identifier, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("%w: invalid repository %q", catalog.ErrNotFound, identifier)
	}

	var rel release
	u := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)
	if err := c.client.GetJSON(ctx, u, &rel); err != nil {
		return nil, err
	}

	v := stripTagPrefix(rel.TagName)
	if v == "" {
		return nil, fmt.Errorf("%w: release of %s has no tag", catalog.ErrParse, identifier)
	}

	match := &models.CatalogMatch{
		Name:        rel.Name,
		Version:     v,
		ProjectURL:  fmt.Sprintf("https://github.com/%s/%s", owner, repo),
		DownloadURL: rel.HTMLURL,
		Publisher:   owner,
	}
	if match.Name == "" {
		match.Name = repo
	}
	if dl := pickAsset(rel.Assets); dl != "" {
		match.DownloadURL = dl
	}
	return match, nil
}

// stripTagPrefix removes a leading "v" or "V" from a release tag.
func stripTagPrefix(tag string) string {
	tag = strings.TrimSpace(tag)
	if strings.HasPrefix(tag, "v") || strings.HasPrefix(tag, "V") {
		return tag[1:]
	}
	return tag
}

// pickAsset prefers a 64-bit Windows installer among the release assets.
func pickAsset(assets []asset) string {
	var fallback string
	for _, a := range assets {
		name := strings.ToLower(a.Name)
		if !strings.HasSuffix(name, ".exe") && !strings.HasSuffix(name, ".msi") {
			continue
		}
		if strings.Contains(name, "x64") || strings.Contains(name, "amd64") || strings.Contains(name, "64-bit") {
			return a.BrowserDownloadURL
		}
		if fallback == "" {
			fallback = a.BrowserDownloadURL
		}
	}
	return fallback
}
