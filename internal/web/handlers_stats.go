package web

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/compass/internal/domain"
)

type statsResponse struct {
	Today  string                  `json:"today"`
	Totals []domain.CategoryTotals `json:"totals"`
	Streak int                     `json:"streak"`
}

type heatmapResponse struct {
	Work   []domain.WorkDay  `json:"work"`
	Habits []domain.HabitDay `json:"habits"`
}

// fetchLogsAndConfig loads the two documents every derived view needs.
// The fetches are independent, so they run concurrently.
func (s *Server) fetchLogsAndConfig(ctx context.Context, userID string) ([]domain.DailyLog, domain.UserConfig, error) {
	var (
		logs []domain.DailyLog
		cfg  domain.UserConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.logs.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = s.configFor(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.UserConfig{}, err
	}
	return logs, cfg, nil
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	logs, cfg, err := s.fetchLogsAndConfig(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ref := now()
	respondJSON(w, http.StatusOK, statsResponse{
		Today:  domain.Today(ref),
		Totals: domain.HourTotals(logs, cfg, ref),
		Streak: domain.Streak(logs, ref),
	})
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	logs, cfg, err := s.fetchLogsAndConfig(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ref := now()
	respondJSON(w, http.StatusOK, heatmapResponse{
		Work:   domain.WorkHeatmap(logs, ref),
		Habits: domain.HabitHeatmap(logs, cfg, ref),
	})
}

func (s *Server) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)
	ref := now()

	week := r.URL.Query().Get("week")
	if week == "" {
		week = domain.FormatISOWeek(ref)
	}
	year, weekNum, err := domain.ParseISOWeek(week)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, cfg, err := s.fetchLogsAndConfig(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, domain.BuildWeeklyReport(logs, cfg, year, weekNum, ref))
}
