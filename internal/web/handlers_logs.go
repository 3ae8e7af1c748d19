package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/emiliopalmerini/compass/internal/domain"
)

// configFor returns the user's stored config or the defaults when none
// exists yet. Read paths never fail on a missing config.
func (s *Server) configFor(ctx context.Context, userID string) (domain.UserConfig, error) {
	cfg, err := s.configs.Get(ctx, userID)
	if err != nil {
		return domain.UserConfig{}, err
	}
	if cfg == nil {
		return domain.DefaultConfig(), nil
	}
	return *cfg, nil
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	logs, cfg, err := s.fetchLogsAndConfig(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hydrated := make([]domain.DailyLog, len(logs))
	for i, l := range logs {
		hydrated[i] = domain.Hydrate(l, cfg)
	}
	sort.Slice(hydrated, func(i, j int) bool { return hydrated[i].Date < hydrated[j].Date })

	respondJSON(w, http.StatusOK, hydrated)
}

func (s *Server) handleGetLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)
	date := chi.URLParam(r, "date")
	if !validDate(date) {
		respondError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	cfg, err := s.configFor(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	stored, err := s.logs.Get(ctx, userID, date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// An absent log is synthesized for display but not persisted; it
	// only reaches the store on the first mutating write.
	logDoc := domain.NewDailyLog(date)
	if stored != nil {
		logDoc = *stored
	}
	respondJSON(w, http.StatusOK, domain.Hydrate(logDoc, cfg))
}

func (s *Server) handlePutLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)
	date := chi.URLParam(r, "date")
	if !validDate(date) {
		respondError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	var logDoc domain.DailyLog
	if err := json.NewDecoder(r.Body).Decode(&logDoc); err != nil {
		respondError(w, http.StatusBadRequest, "invalid log document: "+err.Error())
		return
	}
	// The URL is the document key; the body cannot move a log to
	// another date.
	logDoc.Date = date

	if logDoc.Rating < 0 || logDoc.Rating > 5 {
		respondError(w, http.StatusBadRequest, "rating must be between 0 and 5")
		return
	}
	for id, cat := range logDoc.Categories {
		if cat.Hours < 0 {
			respondError(w, http.StatusBadRequest, "hours must be non-negative for category "+id)
			return
		}
	}

	if err := s.logs.Put(ctx, userID, logDoc); err != nil {
		log.Printf("put log %s/%s: %v", userID, date, err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.LogSaved(ctx, userID, logDoc.HoursTotal())

	cfg, err := s.configFor(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, domain.Hydrate(logDoc, cfg))
}

func (s *Server) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)
	date := chi.URLParam(r, "date")
	if !validDate(date) {
		respondError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	if err := s.logs.Delete(ctx, userID, date); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// now is the single clock read per request; every derived figure in a
// response shares it.
func now() time.Time {
	return time.Now()
}
