package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bengobox/clock-service/internal/httpapi"
)

// maxJSONBody bounds how much of a JSON request body is read.
const maxJSONBody = 100 << 10

type jsonBodyKey struct{}

// JSONBody decodes JSON request bodies up front and stores the result on the
// request context. Only objects and arrays are accepted at the top level;
// anything else, malformed input or trailing data is rejected with 400.
func JSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.ContentLength == 0 || !httpapi.IsJSON(r) {
			next.ServeHTTP(w, r)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		var raw json.RawMessage
		if err := httpapi.DecodeJSON(r, &raw); err != nil {
			if errors.Is(err, io.EOF) {
				next.ServeHTTP(w, r)
				return
			}
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httpapi.Error(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large",
					map[string]any{"limit_bytes": tooLarge.Limit})
				return
			}
			httpapi.Error(w, http.StatusBadRequest, "invalid_request", "invalid JSON payload", nil)
			return
		}

		trimmed := bytes.TrimSpace(raw)
		if trimmed[0] != '{' && trimmed[0] != '[' {
			httpapi.Error(w, http.StatusBadRequest, "invalid_request", "JSON payload must be an object or array", nil)
			return
		}
		var body any
		if err := json.Unmarshal(trimmed, &body); err != nil {
			httpapi.Error(w, http.StatusBadRequest, "invalid_request", "invalid JSON payload", nil)
			return
		}

		ctx := context.WithValue(r.Context(), jsonBodyKey{}, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// JSONBodyFromContext returns the body decoded by JSONBody, if any.
func JSONBodyFromContext(ctx context.Context) (any, bool) {
	body := ctx.Value(jsonBodyKey{})
	return body, body != nil
}
