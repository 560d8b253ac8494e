package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vocab/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/anything", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"*"}, next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Headers"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "DELETE")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestWithCORS_Origins(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		origin      string
		wantOrigin  string
		wantCredits string
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "https://a.example", wantOrigin: "*"},
		{
			name:        "listed origin",
			allowed:     []string{"https://a.example", "https://b.example"},
			origin:      "https://b.example",
			wantOrigin:  "https://b.example",
			wantCredits: "true",
		},
		{name: "unlisted origin", allowed: []string{"https://a.example"}, origin: "https://evil.example"},
		{name: "no origin header", allowed: []string{"https://a.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/path", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			controller.WithCORS(tt.allowed, next).ServeHTTP(rec, req)

			require.True(t, called)
			res := rec.Result()
			require.Equal(t, http.StatusTeapot, res.StatusCode)
			require.Equal(t, tt.wantOrigin, res.Header.Get("Access-Control-Allow-Origin"))
			require.Equal(t, tt.wantCredits, res.Header.Get("Access-Control-Allow-Credentials"))
		})
	}
}
