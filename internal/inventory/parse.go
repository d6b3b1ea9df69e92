// Package inventory reads installed-software exports and keeps the stored
// inventory in sync with an import directory.
package inventory

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported inventory format")

// Header aliases accepted for each column, compared case-insensitively.
var (
	nameHeaders    = []string{"name", "software", "displayname", "display_name", "program"}
	versionHeaders = []string{"version", "current_version", "currentversion", "displayversion", "display_version"}
	vendorHeaders  = []string{"vendor", "publisher", "manufacturer"}
)

func columnIndex(header []string, aliases []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for _, a := range aliases {
			if h == a {
				return i
			}
		}
	}
	return -1
}

// ParseCSV reads a CSV export with a header row. A name column is required;
// version and vendor are optional and extra columns are ignored. Rows with
// a blank name are skipped.
func ParseCSV(r io.Reader) ([]models.SoftwareItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []models.SoftwareItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	nameCol := columnIndex(header, nameHeaders)
	if nameCol < 0 {
		return nil, fmt.Errorf("csv header has no name column: %v", header)
	}
	versionCol := columnIndex(header, versionHeaders)
	vendorCol := columnIndex(header, vendorHeaders)

	field := func(record []string, col int) string {
		if col < 0 || col >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[col])
	}

	items := []models.SoftwareItem{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		name := field(record, nameCol)
		if name == "" {
			continue
		}
		items = append(items, models.SoftwareItem{
			Name:           name,
			CurrentVersion: field(record, versionCol),
			Vendor:         field(record, vendorCol),
		})
	}
	return items, nil
}

// jsonItem accepts both the API field names and common export names.
type jsonItem struct {
	Name           string `json:"name"`
	DisplayName    string `json:"DisplayName"`
	Version        string `json:"version"`
	CurrentVersion string `json:"current_version"`
	DisplayVersion string `json:"DisplayVersion"`
	Vendor         string `json:"vendor"`
	Publisher      string `json:"Publisher"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ParseJSON reads a JSON array of software objects, or an object with a
// "software" array.
func ParseJSON(r io.Reader) ([]models.SoftwareItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var list []jsonItem
	if err := json.Unmarshal(data, &list); err != nil {
		var wrapped struct {
			Software []jsonItem `json:"software"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil || wrapped.Software == nil {
			return nil, fmt.Errorf("failed to decode json inventory: %w", err)
		}
		list = wrapped.Software
	}

	items := []models.SoftwareItem{}
	for _, j := range list {
		name := firstNonEmpty(j.Name, j.DisplayName)
		if name == "" {
			continue
		}
		items = append(items, models.SoftwareItem{
			Name:           name,
			CurrentVersion: firstNonEmpty(j.CurrentVersion, j.Version, j.DisplayVersion),
			Vendor:         firstNonEmpty(j.Vendor, j.Publisher),
		})
	}
	return items, nil
}

// IsSupported reports whether path has an importable extension.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".json":
		return true
	}
	return false
}

// Parse dispatches on format, which is "csv" or "json".
func Parse(r io.Reader, format string) ([]models.SoftwareItem, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "csv":
		return ParseCSV(r)
	case "json":
		return ParseJSON(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// ParseFile parses a .csv or .json file.
func ParseFile(path string) ([]models.SoftwareItem, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, filepath.Ext(path))
}
