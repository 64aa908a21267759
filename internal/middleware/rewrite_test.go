package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLegacyRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"legacy list", "/tasks/", http.StatusFound, "/todos/"},
		{"legacy by id", "/tasks/42", http.StatusFound, "/todos/42"},
		{"legacy nested", "/tasks/bulk", http.StatusFound, "/todos/bulk"},
		{"current path untouched", "/todos/42", http.StatusOK, ""},
		{"bare prefix untouched", "/tasks", http.StatusOK, ""},
		{"unrelated path untouched", "/signup", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := LegacyRedirect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}

func TestLegacyRedirect_PreservesQuery(t *testing.T) {
	t.Parallel()

	handler := LegacyRedirect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks/42?verbose=1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/todos/42?verbose=1" {
		t.Errorf("Location = %q, want %q", got, "/todos/42?verbose=1")
	}
}
