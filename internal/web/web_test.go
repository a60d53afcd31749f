package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengobox/clock-service/internal/web"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/", contentType: "text/html", contains: `data-state="loading"`},
		{path: "/assets/app.js", contentType: "javascript", contains: "fetch('/api/hello')"},
		{path: "/assets/app.css", contentType: "text/css", contains: "#root"},
	}

	h := web.Handler()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestHandler_NotFound(t *testing.T) {
	for _, path := range []string{"/assets/nope.js", "/assets/", "/assets"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			web.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.NotContains(t, rec.Body.String(), "app.js")
		})
	}
}
