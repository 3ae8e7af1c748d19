package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/emiliopalmerini/compass/internal/domain"
)

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	cfg, err := s.configs.Get(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if cfg == nil {
		// First visit: persist the defaults so every device sees the
		// same starting point.
		defaults := domain.DefaultConfig()
		if err := s.configs.Put(ctx, userID, defaults); err != nil {
			log.Printf("bootstrap config %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.metrics.ConfigSaved(ctx, userID)
		respondJSON(w, http.StatusOK, defaults)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	var cfg domain.UserConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid config document: "+err.Error())
		return
	}

	// The category floor applies to deletions only: an update may not
	// shrink an established config below the minimum, but a config
	// that never reached it is left alone.
	previous, err := s.configs.Get(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if previous != nil &&
		len(previous.Categories) >= domain.MinCategories &&
		len(cfg.Categories) < domain.MinCategories {
		respondError(w, http.StatusUnprocessableEntity, "at least 2 categories are required")
		return
	}

	if err := s.configs.Put(ctx, userID, cfg); err != nil {
		log.Printf("put config %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.ConfigSaved(ctx, userID)
	respondJSON(w, http.StatusOK, cfg)
}
