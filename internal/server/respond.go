package server

import (
	"encoding/json"
	"net/http"

	"github.com/calgate/calgate/internal/calerr"
)

// writeJSON serializes payload with the given status. Encoding happens
// after the header is written, so a marshal failure here can only truncate
// the body, never change the status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError normalizes err and echoes kind, message and detail as the
// response body, with the HTTP status derived from the kind.
func writeError(w http.ResponseWriter, err error) {
	normalized := calerr.Normalize(err)
	writeJSON(w, normalized.HTTPStatus(), normalized)
}
