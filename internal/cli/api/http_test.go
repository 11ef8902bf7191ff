package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDo_SendsBearerAndJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("Authorization header missing token, got: %q", got)
		}
		if r.URL.Path != "/items" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if m["quantity"] != float64(1) { // JSON number → float64
			t.Fatalf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", "tok123")
	resp, body, err := c.Do(context.Background(), http.MethodPost, "/items", map[string]any{"name": "x", "quantity": 1})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"id":1}`, strings.TrimSpace(string(body)))
}

func TestClientDo_NoTokenNoBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	resp, body, err := NewClient(ts.URL, "").Do(context.Background(), http.MethodGet, "/items", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(body))
}

func TestClientDo_ConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, _, err := NewClient(url, "").Do(context.Background(), http.MethodGet, "/items", nil)
	assert.Error(t, err)
}

func TestErrorAndResultMessage(t *testing.T) {
	assert.Equal(t, "Item id 9 not found", ErrorMessage([]byte(`{"error":{"kind":"not_found","message":"Item id 9 not found"}}`)))
	assert.Equal(t, "Item id 9 not found", ErrorMessage([]byte("Item id 9 not found")))
	assert.Equal(t, "Deleted item 3 successfully", ResultMessage([]byte(`{"result":"Deleted item 3 successfully"}`)))
	assert.Equal(t, "Deleted item 3 successfully", ResultMessage([]byte("Deleted item 3 successfully\n")))
}
