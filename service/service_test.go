package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docbridge-io/docbridge/rest/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRouterServesRequests drives requests through the fully
// assembled handler, middleware included, rather than a bare router.
func TestGetRouterServesRequests(t *testing.T) {
	mc := data.NewMockConnector()
	as := NewAPIServer(testSettings(), mc)

	handler, err := GetRouter(as)
	require.NoError(t, err)
	require.NotNil(t, handler)

	srv := httptest.NewServer(handler)
	defer srv.Close()

	// the health probe answers without credentials
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "healthy", out["status"])

	// an authenticated action round-trips through the same handler
	body, err := json.Marshal(map[string]any{
		"database":   "testdb",
		"collection": "widgets",
		"document":   map[string]any{"name": "widget"},
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/data/v1/action/insertOne", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", basicAuth("testuser", "testpass"))

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out = map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	insertedID, ok := out["insertedId"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, insertedID)

	docs, err := mc.Find(req.Context(), "testdb", "widgets", nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, insertedID, docs[0]["_id"])
}

// GetServer carries fixed timeouts so slow clients cannot pin
// connections open.
func TestGetServerConfiguration(t *testing.T) {
	srv := GetServer(":8080", http.NotFoundHandler())

	assert.Equal(t, ":8080", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.NotZero(t, srv.ReadTimeout)
	assert.NotZero(t, srv.WriteTimeout)
}
