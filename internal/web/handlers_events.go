package web

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/compass/internal/domain"
)

type bulkEventEntry struct {
	Date          string           `json:"date"`
	Title         string           `json:"title"`
	Type          domain.EventType `json:"type"`
	EmailReminder bool             `json:"emailReminder"`
}

type bulkEventsResponse struct {
	Created int                    `json:"created"`
	Events  []domain.CalendarEvent `json:"events"`
}

// handleBulkEvents appends calendar events to many dates in one call,
// creating log documents for dates that have none yet.
func (s *Server) handleBulkEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := s.userID(r)

	var entries []bulkEventEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respondError(w, http.StatusBadRequest, "invalid events payload: "+err.Error())
		return
	}
	if len(entries) == 0 {
		respondError(w, http.StatusBadRequest, "no events provided")
		return
	}

	byDate := make(map[string][]domain.CalendarEvent)
	var created []domain.CalendarEvent
	for _, entry := range entries {
		if !validDate(entry.Date) {
			respondError(w, http.StatusBadRequest, "invalid date "+entry.Date)
			return
		}
		if entry.Title == "" {
			respondError(w, http.StatusBadRequest, "event title is required")
			return
		}
		switch entry.Type {
		case domain.EventWorkshop, domain.EventDeadline, domain.EventReminder, domain.EventLeave:
		case "":
			entry.Type = domain.EventWorkshop
		default:
			respondError(w, http.StatusBadRequest, "unknown event type "+string(entry.Type))
			return
		}

		event := domain.CalendarEvent{
			ID:            uuid.NewString(),
			Title:         entry.Title,
			Type:          entry.Type,
			EmailReminder: entry.EmailReminder,
		}
		byDate[entry.Date] = append(byDate[entry.Date], event)
		created = append(created, event)
	}

	for date, events := range byDate {
		stored, err := s.logs.Get(ctx, userID, date)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		logDoc := domain.NewDailyLog(date)
		if stored != nil {
			logDoc = *stored
		}
		logDoc.Events = append(logDoc.Events, events...)

		if err := s.logs.Put(ctx, userID, logDoc); err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	s.metrics.EventsCreated(ctx, userID, int64(len(created)))

	respondJSON(w, http.StatusCreated, bulkEventsResponse{
		Created: len(created),
		Events:  created,
	})
}
