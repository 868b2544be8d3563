package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/acmecorp/admin-api/internal/pkg/logger"
)

// local@domain.tld, no whitespace or extra @ anywhere
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequireFields returns middleware that rejects the request with 400
// when any of the named body fields is absent or empty, checking in
// declared order and short-circuiting on the first failure. The body
// is re-buffered so the handler can decode it again.
func RequireFields(logger *logger.Logger, fields ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := bufferBody(r)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"}, logger)
				return
			}

			for _, field := range fields {
				if !isPresent(body[field]) {
					writeJSON(w, http.StatusBadRequest, ErrorResponse{
						Error: fmt.Sprintf("Missing required field: %s", field),
					}, logger)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ValidateEmail returns middleware that rejects the request with 400
// when the body's email field does not match the expected pattern.
func ValidateEmail(logger *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := bufferBody(r)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"}, logger)
				return
			}

			email, ok := body["email"].(string)
			if !ok || !emailPattern.MatchString(email) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid email format"}, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bufferBody reads the request body into a generic map and puts an
// identical reader back on the request, so validation middlewares can
// be chained and the handler still gets the full body.
func bufferBody(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(raw))

	body := map[string]any{}
	if len(raw) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// isPresent mirrors the truthiness check clients rely on: empty
// strings, zero numbers, false and null all count as missing.
func isPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
