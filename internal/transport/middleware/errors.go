package middleware

import (
	"encoding/json"
	"net/http"
)

// writeDetail writes the API error body {"detail": message}.
func writeDetail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": message}) //nolint:errcheck
}
