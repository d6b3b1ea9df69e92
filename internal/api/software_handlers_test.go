package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/testutil"
)

func doBody(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSoftwareCRUD(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()

	var created models.SoftwareItem
	t.Run("Add", func(t *testing.T) {
		rr := doBody(t, router, http.MethodPost, "/api/software", "application/json",
			`{"name":"Mozilla Firefox","current_version":"121.0","vendor":"Mozilla"}`)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		decode(t, rr, &created)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Mozilla Firefox", created.Name)
	})

	t.Run("Duplicate", func(t *testing.T) {
		rr := doBody(t, router, http.MethodPost, "/api/software", "application/json",
			`{"name":"Mozilla Firefox","current_version":"121.0"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Missing name", func(t *testing.T) {
		rr := doBody(t, router, http.MethodPost, "/api/software", "application/json", `{"name":"  "}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid payload", func(t *testing.T) {
		rr := doBody(t, router, http.MethodPost, "/api/software", "application/json", `{`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("List", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/software")
		require.Equal(t, http.StatusOK, rr.Code)
		var items []models.SoftwareItem
		decode(t, rr, &items)
		require.Len(t, items, 1)
		assert.Equal(t, created.ID, items[0].ID)
	})

	t.Run("Delete", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/api/software/"+itoa(created.ID))
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = doRequest(t, router, http.MethodDelete, "/api/software/"+itoa(created.ID))
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = doRequest(t, router, http.MethodDelete, "/api/software/abc")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleImportSoftware(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()

	t.Run("CSV by content type", func(t *testing.T) {
		csv := "DisplayName,DisplayVersion,Publisher\nGoogle Chrome,120.0.1,Google LLC\nVLC media player,3.0.20,VideoLAN\n"
		rr := doBody(t, router, http.MethodPost, "/api/software/import", "text/csv; charset=utf-8", csv)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var body map[string]interface{}
		decode(t, rr, &body)
		assert.EqualValues(t, 2, body["imported"])
	})

	t.Run("JSON by query replaces inventory", func(t *testing.T) {
		rr := doBody(t, router, http.MethodPost, "/api/software/import?format=json", "",
			`[{"name":"7-Zip 23.01 (x64)","version":"23.01"}]`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = doRequest(t, router, http.MethodGet, "/api/software")
		var items []models.SoftwareItem
		decode(t, rr, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "7-Zip 23.01 (x64)", items[0].Name)
	})

	t.Run("Unknown format", func(t *testing.T) {
		rr := doBody(t, router, http.MethodPost, "/api/software/import", "text/plain", "hello")
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

		rr = doBody(t, router, http.MethodPost, "/api/software/import?format=xml", "", "<a/>")
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		rr := doBody(t, router, http.MethodPost, "/api/software/import", "application/json", `{"software":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
