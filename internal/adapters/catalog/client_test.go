package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"event_hotels/internal/adapters/catalog"
	"event_hotels/internal/domain"
)

func newClient(t *testing.T, url string) *catalog.Client {
	t.Helper()
	cl, err := catalog.New(url, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return cl
}

func TestClient_GetHotel_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing api key header")
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 123.0, "name": "Inn"})
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	got, err := newClient(t, ts.URL).GetHotel(ctx, 123)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id, ok := got["id"].(float64); !ok || int(id) != 123 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Fatalf("expected 3 calls due to retries, got %d", n)
	}
}

func TestClient_GetHotel_FallsBackToLegacyPath(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hotel/5" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 5.0})
	}))
	defer ts.Close()

	got, err := newClient(t, ts.URL+"/").GetHotel(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["id"].(float64) != 5 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_GetHotel_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := newClient(t, ts.URL).GetHotel(context.Background(), 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClient_GetHotel_Forbidden(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := newClient(t, ts.URL).GetHotel(context.Background(), 1)
	if !errors.Is(err, domain.ErrCatalogDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestClient_GetHotel_BadStatusNotRetried(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "nope", http.StatusTeapot)
	}))
	defer ts.Close()

	_, err := newClient(t, ts.URL).GetHotel(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected error")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected a single call, got %d", n)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := catalog.New("http://x", "", 1); !errors.Is(err, catalog.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}
