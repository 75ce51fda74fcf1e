package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalikov/restcli/internal/config"
	"github.com/mkhalikov/restcli/internal/logger"
)

func TestGetResource_Success(t *testing.T) {
	c, _ := newTestClient(t, jsonHandler(http.StatusOK, `{"id":1,"name":"test","status":"active"}`))

	data, err := c.GetResource(context.Background(), "users/1", nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"id":     float64(1),
		"name":   "test",
		"status": "active",
	}, data)
}

func TestGetResource_Array(t *testing.T) {
	c, _ := newTestClient(t, jsonHandler(http.StatusOK, `[{"id":1},{"id":2}]`))

	data, err := c.GetResource(context.Background(), "users", nil)

	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"id": float64(1)},
		map[string]any{"id": float64(2)},
	}, data)
}

func TestGetResource_ErrorStatus(t *testing.T) {
	c, _ := newTestClient(t, jsonHandler(http.StatusBadRequest, `{"error":"Bad Request","message":"Invalid data"}`))

	_, err := c.GetResource(context.Background(), "users/1", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid data", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestListResources_SameAsGet(t *testing.T) {
	var gotMethod, gotQuery string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.Query().Encode()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	data, err := c.ListResources(context.Background(), "users", map[string]string{"page": "1"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "page=1", gotQuery)
	assert.Equal(t, []any{}, data)
}

func TestCreateResource_StructuredBody(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"name":"John"}`))
	}))

	result, err := c.CreateResource(context.Background(), "users", map[string]any{"name": "John"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, map[string]any{"name": "John"}, gotBody)
	assert.Equal(t, map[string]any{"id": float64(7), "name": "John"}, result)
}

func TestCreateResource_StringBodyParsedFirst(t *testing.T) {
	var gotBody map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	_, err := c.CreateResource(context.Background(), "users", `{"name":"John","age":30}`)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "John", "age": float64(30)}, gotBody)
}

func TestCreateResource_InvalidJSONNoNetworkCall(t *testing.T) {
	// Arrange: count every request that reaches the server.
	var calls atomic.Int64
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	// Act
	_, err := c.CreateResource(context.Background(), "users", "not valid json")

	// Assert
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid JSON data provided", apiErr.Message)
	assert.Zero(t, apiErr.StatusCode)
	assert.Nil(t, apiErr.Response)
	assert.Zero(t, calls.Load(), "no request must reach the transport")
}

func TestUpdateResource_PUT(t *testing.T) {
	var gotMethod string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Jane"}`))
	}))

	result, err := c.UpdateResource(context.Background(), "users/1", `{"name":"Jane"}`)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, map[string]any{"id": float64(1), "name": "Jane"}, result)
}

func TestUpdateResource_InvalidJSON(t *testing.T) {
	c, _ := newTestClient(t, jsonHandler(http.StatusOK, `{}`))

	_, err := c.UpdateResource(context.Background(), "users/1", "{broken")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid JSON data provided", apiErr.Message)
}

func TestDeleteResource_Statuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		deleted bool
		wantErr bool
	}{
		{"ok", http.StatusOK, true, false},
		{"no content", http.StatusNoContent, true, false},
		// Success-range statuses other than 200/204 report false without error.
		{"created", http.StatusCreated, false, false},
		{"accepted", http.StatusAccepted, false, false},
		// Error statuses surface as APIError before the status check.
		{"not found", http.StatusNotFound, false, true},
		{"server error", http.StatusInternalServerError, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, jsonHandler(tt.status, ""))

			deleted, err := c.DeleteResource(context.Background(), "users/1")

			if tt.wantErr {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.status, apiErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.deleted, deleted)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		healthy bool
	}{
		{"ok", http.StatusOK, true},
		// Success-range but not exactly 200.
		{"no content", http.StatusNoContent, false},
		// Error statuses are swallowed, not propagated.
		{"server error", http.StatusInternalServerError, false},
		{"unauthorized", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
			}))

			healthy := c.HealthCheck(context.Background())

			assert.Equal(t, tt.healthy, healthy)
			assert.Equal(t, "/health", gotPath)
		})
	}
}

func TestHealthCheck_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c, err := New(config.ClientSettings{BaseURL: baseURL, Token: "test-token"}, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	assert.False(t, c.HealthCheck(context.Background()))
}

func TestDecodeBody_EmptyIsNil(t *testing.T) {
	c, _ := newTestClient(t, jsonHandler(http.StatusOK, ""))

	data, err := c.GetResource(context.Background(), "users/1", nil)

	require.NoError(t, err)
	assert.Nil(t, data)
}
