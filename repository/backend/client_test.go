package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrifals/gasstore/cmd/config"
	"github.com/andrifals/gasstore/repository/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *backend.Client {
	return backend.NewClient(&config.Config{
		Backend: config.BackendConfig{
			URL:            url,
			APIKey:         "test-key",
			RequestTimeout: 5 * time.Second,
		},
	})
}

func TestClient_Select(t *testing.T) {
	type row struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/orders", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "id,status", q.Get("select"))
		assert.Equal(t, "created_at.desc", q.Get("order"))
		assert.Equal(t, "eq.Pending", q.Get("status"))
		assert.Equal(t, "10", q.Get("limit"))

		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"ORD-1","status":"Pending"}]`))
	}))
	defer srv.Close()

	var rows []row
	err := newTestClient(srv.URL).Select(context.Background(), "orders", backend.Query{
		Select: "id,status",
		Eq:     map[string]string{"status": "Pending"},
		Order:  "created_at.desc",
		Limit:  10,
	}, &rows)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ORD-1", rows[0].ID)
}

func TestClient_Count(t *testing.T) {
	t.Run("success: parses Content-Range total", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodHead, r.Method)
			assert.Equal(t, "count=exact", r.Header.Get("Prefer"))
			w.Header().Set("Content-Range", "0-24/57")
		}))
		defer srv.Close()

		count, err := newTestClient(srv.URL).Count(context.Background(), "orders")
		require.NoError(t, err)
		assert.Equal(t, int64(57), count)
	})

	t.Run("success: empty table", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Range", "*/0")
		}))
		defer srv.Close()

		count, err := newTestClient(srv.URL).Count(context.Background(), "orders")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("error: missing Content-Range", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Count(context.Background(), "orders")
		assert.Error(t, err)
	})
}

func TestClient_Insert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/customers", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		body, _ := io.ReadAll(r.Body)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "CUST-1", got["id"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"CUST-1","name":"Budi"}]`))
	}))
	defer srv.Close()

	var inserted []map[string]string
	err := newTestClient(srv.URL).Insert(context.Background(), "customers",
		map[string]string{"id": "CUST-1", "name": "Budi"}, &inserted)

	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, "Budi", inserted[0]["name"])
}

func TestClient_Update(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.ORD-1", r.URL.Query().Get("id"))
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status":"Shipped"}`, string(body))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Update(context.Background(), "orders",
		map[string]string{"id": "ORD-1"}, map[string]string{"status": "Shipped"})
	assert.NoError(t, err)
}

func TestClient_Raw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/orders", r.URL.Path)
		assert.Equal(t, "select=*&limit=100", r.URL.RawQuery)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[{"id":"ORD-1"}]`))
	}))
	defer srv.Close()

	body, err := newTestClient(srv.URL).Raw(context.Background(), "/rest/v1/orders?select=*&limit=100")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"ORD-1"}]`, string(body))
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"permission denied"}`))
	}))
	defer srv.Close()

	var rows []struct{}
	err := newTestClient(srv.URL).Select(context.Background(), "orders", backend.Query{}, &rows)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "permission denied")
}
