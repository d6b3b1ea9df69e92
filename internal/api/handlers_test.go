package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/testutil"
)

func doRequest(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), "body: %s", rr.Body.String())
}

func TestHandleHealthAndVersion(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()

	rr := doRequest(t, router, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rr = doRequest(t, router, http.MethodGet, "/api/version")
	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	decode(t, rr, &body)
	assert.Equal(t, "test", body["version"])
}

func TestHandleGetHost(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)

	rr := doRequest(t, server.Router(), http.MethodGet, "/api/host")
	require.Equal(t, http.StatusOK, rr.Code)
	var host models.HostInfo
	decode(t, rr, &host)
	assert.NotEmpty(t, host.Architecture)
}

func TestHandleListCatalogs(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)

	rr := doRequest(t, server.Router(), http.MethodGet, "/api/catalogs")
	require.Equal(t, http.StatusOK, rr.Code)

	var infos []models.CatalogInfo
	decode(t, rr, &infos)
	require.Len(t, infos, 1)
	assert.Equal(t, models.CatalogSource("offline"), infos[0].ID)
}

func TestHandleSuggest(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()

	t.Run("Missing name", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/catalogs/suggest")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Close match", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/catalogs/suggest?name=notepd&limit=3")
		require.Equal(t, http.StatusOK, rr.Code)
		var suggestions []catalog.Suggestion
		decode(t, rr, &suggestions)
		require.NotEmpty(t, suggestions)
		assert.LessOrEqual(t, len(suggestions), 3)
		assert.Equal(t, "notepad++", suggestions[0].Key)
	})
}

func TestHandleNormalize(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)

	rr := doRequest(t, server.Router(), http.MethodGet, "/api/normalize?name=Google+Chrome")
	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	decode(t, rr, &body)
	assert.Equal(t, "Google Chrome", body["name"])
	assert.Equal(t, "chrome", body["normalized"])
}

func TestHandleLookup(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()

	t.Run("Missing name", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/lookup?name=%20")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Found", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/lookup?name=Google%20Chrome")
		require.Equal(t, http.StatusOK, rr.Code)
		var match models.CatalogMatch
		decode(t, rr, &match)
		assert.True(t, match.Found)
		assert.Equal(t, "121.0.6167.85", match.Version)
		assert.Equal(t, models.CatalogSource("offline"), match.Source)
	})

	t.Run("Not found is not an HTTP error", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/lookup?name=Internal%20Payroll%20Tool")
		require.Equal(t, http.StatusOK, rr.Code)
		var match models.CatalogMatch
		decode(t, rr, &match)
		assert.False(t, match.Found)
		assert.NotEmpty(t, match.Error)
		require.Len(t, match.Attempts, 1)
		assert.Equal(t, models.OutcomeNotMapped, match.Attempts[0].Outcome)
	})
}

func TestHandleCompare(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()

	tests := []struct {
		name, query, result, kind string
	}{
		{"Outdated minor", "current=1.2.3&latest=1.3.0", "outdated", "minor"},
		{"Equal with padding", "current=1.0&latest=1.0.0", "up_to_date", ""},
		{"Newer", "current=2.0&latest=1.9", "newer", ""},
		{"Missing current", "latest=1.0", "unknown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodGet, "/api/compare?"+tt.query)
			require.Equal(t, http.StatusOK, rr.Code)
			var body map[string]string
			decode(t, rr, &body)
			assert.Equal(t, tt.result, body["result"])
			assert.Equal(t, tt.kind, body["update_kind"])
		})
	}
}
