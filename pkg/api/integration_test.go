package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-items/pkg/domain"
	"github.com/adfharrison1/go-items/pkg/storage"
)

func newIntegrationServer(t *testing.T, store *storage.StorageEngine) *httptest.Server {
	t.Helper()
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	NewHandler(store, nil).RegisterRoutes(router)
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func postItem(t *testing.T, baseURL string, item domain.Item) domain.Item {
	t.Helper()
	body, err := json.Marshal(item)
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/api/items", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func getView(t *testing.T, baseURL, query string) domain.ViewResult[domain.Item] {
	t.Helper()
	resp, err := http.Get(baseURL + "/api/items/view" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.ViewResult[domain.Item]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestIntegration_CRUDAndView(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "items.itms")
	store := storage.NewStorageEngine(storage.WithDataFile(dataFile))
	ts := newIntegrationServer(t, store)

	for i := 1; i <= 25; i++ {
		created := postItem(t, ts.URL, domain.Item{
			Name:        fmt.Sprintf("Item %02d", i),
			Description: fmt.Sprintf("batch %d", i%3),
			Active:      i%5 != 0,
		})
		assert.Equal(t, int64(i), created.ID)
	}

	result := getView(t, ts.URL, "?size=10&page=3")
	assert.Equal(t, 25, result.TotalMatching)
	assert.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Items, 5)
	assert.Equal(t, "Item 21", result.Items[0].Name)
	assert.False(t, result.HasNext)

	result = getView(t, ts.URL, "?search=BATCH%200&order=desc")
	assert.Equal(t, 8, result.TotalMatching)
	assert.Equal(t, "Item 24", result.Items[0].Name)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/items/24", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	result = getView(t, ts.URL, "?search=batch%200&order=desc")
	assert.Equal(t, 7, result.TotalMatching)
	assert.Equal(t, "Item 21", result.Items[0].Name)

	// Transaction saves wrote every change; a fresh engine sees the same items
	reloaded := storage.NewStorageEngine()
	require.NoError(t, reloaded.LoadFromFile(dataFile))
	assert.Equal(t, store.List(), reloaded.List())
	assert.Equal(t, 24, reloaded.Count())
}

func TestIntegration_HealthReportsMemory(t *testing.T) {
	ts := newIntegrationServer(t, storage.NewStorageEngine())

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 0, health.Items)
	assert.NotEmpty(t, health.Memory)
}
