package web

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/emiliopalmerini/compass/internal/domain"
)

// handleExportLogs streams the full hydrated history as JSON or CSV.
// CSV flattens to one row per (date, category), which is what
// spreadsheet-side analysis wants.
func (s *Server) handleExportLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

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

	switch format {
	case "json":
		w.Header().Set("Content-Disposition", `attachment; filename="compass-logs.json"`)
		respondJSON(w, http.StatusOK, hydrated)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="compass-logs.csv"`)
		writeLogsCSV(w, hydrated, cfg)
	default:
		respondError(w, http.StatusBadRequest, "unknown format "+format)
	}
}

func writeLogsCSV(w http.ResponseWriter, logs []domain.DailyLog, cfg domain.UserConfig) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"date", "category", "hours", "goals_set", "goals_completed", "rating", "reflection"})

	titles := make(map[string]string, len(cfg.Categories))
	for _, def := range cfg.Categories {
		titles[def.ID] = def.Title
	}

	for _, log := range logs {
		for _, def := range cfg.Categories {
			cat := log.Categories[def.ID]
			completed := 0
			for _, st := range cat.GoalStatus {
				if st == domain.GoalCompleted {
					completed++
				}
			}
			_ = cw.Write([]string{
				log.Date,
				titles[def.ID],
				strconv.FormatFloat(cat.Hours, 'f', -1, 64),
				fmt.Sprintf("%d", len(cat.Goals)),
				fmt.Sprintf("%d", completed),
				fmt.Sprintf("%d", log.Rating),
				log.Reflection,
			})
		}
	}
}
