// Package chocolatey queries the Chocolatey community package index.
package chocolatey

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

const DefaultAPIURL = "https://community.chocolatey.org/api/v2"

// Catalog implements catalog.Catalog for the Chocolatey OData feed.
type Catalog struct {
	*catalog.Resolver
	client  *catalog.Client
	baseURL string
	logger  *zap.Logger
}

// New creates a Chocolatey catalog. An empty baseURL uses the community feed.
func New(client *catalog.Client, baseURL string, logger *zap.Logger) *Catalog {
	if client == nil {
		client = catalog.NewClient(catalog.DefaultTimeout)
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
		logger:   logger.Named("chocolatey"),
	}
}

// Info returns static information about this catalog.
func (c *Catalog) Info() models.CatalogInfo {
	return models.CatalogInfo{ID: models.SourceChocolatey, Name: "Chocolatey"}
}

// odataEscape encodes a query option value, using %20 for spaces.
func odataEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (c *Catalog) queryURL(identifier string) string {
	id := strings.ReplaceAll(identifier, "'", "''")
	filter := fmt.Sprintf("Id eq '%s' and IsLatestVersion", id)
	return fmt.Sprintf("%s/Packages()?$filter=%s&$orderby=%s&$top=1",
		c.baseURL, odataEscape(filter), odataEscape("Published desc"))
}

// Fetch asks the feed for the latest version of identifier.
func (c *Catalog) Fetch(ctx context.Context, identifier string) (*models.CatalogMatch, error) {
	body, err := c.client.Get(ctx, c.queryURL(identifier), "application/atom+xml")
	if err != nil {
		return nil, err
	}
	return parseFeed(body, identifier)
}

// parseFeed reads the first entry of an Atom feed. Element names keep their
// namespace prefix, so properties are matched by node name.
func parseFeed(body []byte, identifier string) (*models.CatalogMatch, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrParse, err)
	}
	if doc.Find("feed").Length() == 0 {
		return nil, fmt.Errorf("%w: response is not an atom feed", catalog.ErrParse)
	}

	entry := doc.Find("entry").First()
	if entry.Length() == 0 {
		return nil, fmt.Errorf("%w: no package %q", catalog.ErrNotFound, identifier)
	}

	props := make(map[string]string)
	entry.Find("*").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if !strings.HasPrefix(name, "d:") {
			return
		}
		key := strings.TrimPrefix(name, "d:")
		if _, seen := props[key]; seen {
			return
		}
		if null, _ := s.Attr("m:null"); null == "true" {
			props[key] = ""
			return
		}
		props[key] = ownText(s)
	})

	v := props["version"]
	if v == "" {
		return nil, fmt.Errorf("%w: entry for %q has no version", catalog.ErrParse, identifier)
	}

	match := &models.CatalogMatch{
		Name:       props["title"],
		Version:    v,
		ProjectURL: props["projecturl"],
		Publisher:  props["authors"],
	}
	if match.Name == "" {
		match.Name = identifier
	}
	if src, ok := entry.Find("content").First().Attr("src"); ok {
		match.DownloadURL = src
	}
	if match.ProjectURL == "" {
		match.ProjectURL = props["gallerydetailsurl"]
	}
	return match, nil
}

// ownText returns the text of s without its descendants. Self-closing
// elements with unknown names swallow their siblings when parsed as HTML.
func ownText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(c.Text())
		}
	})
	return strings.TrimSpace(b.String())
}
