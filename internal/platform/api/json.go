// Package api holds the JSON response envelope shared by all handlers.
package api

import (
	"net/http"

	json "github.com/goccy/go-json"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ReadJSON decodes the request body into dst, bounded by maxRequestBodyBytes.
// On failure it writes a 400 response and returns false.
func ReadJSON[T any](w http.ResponseWriter, r *http.Request, rid string, dst *T) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(dst); err != nil {
		BadRequest(w, "INVALID_JSON", "Invalid JSON", rid, nil)
		return false
	}
	return true
}
