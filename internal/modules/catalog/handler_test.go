package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmorate/internal/database"
	"filmorate/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type listResponse struct {
	Success bool       `json:"success"`
	Data    []refEntry `json:"data"`
}

type entryResponse struct {
	Success bool     `json:"success"`
	Data    refEntry `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedCatalogs(db))

	handler := NewHandler(NewService(repository.NewCatalogRepository(db)))
	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGenres(t *testing.T) {
	router := setupRouter(t)

	resp := get(router, "/genres")
	require.Equal(t, http.StatusOK, resp.Code)

	var list listResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list.Data, 6)
	assert.Equal(t, "Comedy", list.Data[0].Name)
	assert.Equal(t, "Action", list.Data[5].Name)
}

func TestGenreByID(t *testing.T) {
	router := setupRouter(t)

	resp := get(router, "/genres/2")
	require.Equal(t, http.StatusOK, resp.Code)

	var entry entryResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entry))
	assert.Equal(t, "Drama", entry.Data.Name)

	assert.Equal(t, http.StatusNotFound, get(router, "/genres/99").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/genres/abc").Code)
}

func TestMpaRatings(t *testing.T) {
	router := setupRouter(t)

	resp := get(router, "/mpa")
	require.Equal(t, http.StatusOK, resp.Code)

	var list listResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list.Data, 5)
	assert.Equal(t, "G", list.Data[0].Name)
	assert.Equal(t, "NC-17", list.Data[4].Name)
}

func TestMpaByID(t *testing.T) {
	router := setupRouter(t)

	resp := get(router, "/mpa/3")
	require.Equal(t, http.StatusOK, resp.Code)

	var entry entryResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entry))
	assert.Equal(t, "PG-13", entry.Data.Name)

	assert.Equal(t, http.StatusNotFound, get(router, "/mpa/42").Code)
}
