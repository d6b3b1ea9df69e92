package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

func setupTestServer(t *testing.T, wantAuth string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/notepad-plus-plus/notepad-plus-plus/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"tag_name": "v8.6.2",
			"name": "Notepad++ 8.6.2 release",
			"html_url": "https://github.com/notepad-plus-plus/notepad-plus-plus/releases/tag/v8.6.2",
			"assets": [
				{"name": "npp.8.6.2.portable.zip", "browser_download_url": "https://example.test/portable.zip"},
				{"name": "npp.8.6.2.Installer.exe", "browser_download_url": "https://example.test/x86.exe"},
				{"name": "npp.8.6.2.Installer.x64.exe", "browser_download_url": "https://example.test/x64.exe"}
			]
		}`)
	})
	mux.HandleFunc("/repos/PowerShell/PowerShell/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "V7.4.1", "html_url": "https://github.com/PowerShell/PowerShell/releases/tag/v7.4.1"}`)
	})
	mux.HandleFunc("/repos/empty/tag/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": ""}`)
	})
	mux.HandleFunc("/repos/rate/limited/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	return httptest.NewServer(mux)
}

func TestGitHubCatalog(t *testing.T) {
	server := setupTestServer(t, "")
	defer server.Close()
	c := New(catalog.NewClient(5*time.Second), server.URL, "", nil)

	assert.Equal(t, models.SourceGitHub, c.Info().ID)

	t.Run("Fetch strips v and picks x64 asset", func(t *testing.T) {
		match, err := c.Fetch(context.Background(), "notepad-plus-plus/notepad-plus-plus")
		require.NoError(t, err)
		assert.Equal(t, "8.6.2", match.Version)
		assert.Equal(t, "Notepad++ 8.6.2 release", match.Name)
		assert.Equal(t, "https://github.com/notepad-plus-plus/notepad-plus-plus", match.ProjectURL)
		assert.Equal(t, "https://example.test/x64.exe", match.DownloadURL)
		assert.Equal(t, "notepad-plus-plus", match.Publisher)
	})

	t.Run("Fetch strips capital V", func(t *testing.T) {
		match, err := c.Fetch(context.Background(), "PowerShell/PowerShell")
		require.NoError(t, err)
		assert.Equal(t, "7.4.1", match.Version)
		assert.Equal(t, "PowerShell", match.Name)
		assert.Equal(t, "https://github.com/PowerShell/PowerShell/releases/tag/v7.4.1", match.DownloadURL)
	})

	t.Run("Fetch errors", func(t *testing.T) {
		tests := []struct {
			id   string
			want error
		}{
			{"no/releases", catalog.ErrNotFound},
			{"empty/tag", catalog.ErrParse},
			{"rate/limited", catalog.ErrTransport},
			{"not-a-repo", catalog.ErrNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.id, func(t *testing.T) {
				_, err := c.Fetch(context.Background(), tt.id)
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.want), "got %v", err)
			})
		}
	})
}

func TestGitHubCatalog_Token(t *testing.T) {
	server := setupTestServer(t, "Bearer secret")
	defer server.Close()
	c := New(nil, server.URL, "secret", nil)

	_, err := c.Fetch(context.Background(), "notepad-plus-plus/notepad-plus-plus")
	require.NoError(t, err)
}

func TestStripTagPrefix(t *testing.T) {
	assert.Equal(t, "1.2.3", stripTagPrefix("v1.2.3"))
	assert.Equal(t, "1.2.3", stripTagPrefix("V1.2.3"))
	assert.Equal(t, "release-1.2", stripTagPrefix("release-1.2"))
	assert.Equal(t, "", stripTagPrefix(""))
}
