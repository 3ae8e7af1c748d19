package web

import (
	"encoding/json"
	"net/http"

	"github.com/emiliopalmerini/compass/internal/domain"
)

// userIDHeader carries the caller identity. The auth proxy in front of
// this service is expected to set it; without one every request maps
// to the configured default user.
const userIDHeader = "X-Compass-User"

func (s *Server) userID(r *http.Request) string {
	if id := r.Header.Get(userIDHeader); id != "" {
		return id
	}
	return s.defaultUser
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func validDate(date string) bool {
	_, err := domain.ParseDate(date)
	return err == nil
}
