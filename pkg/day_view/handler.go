package day_view

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lifnux/lifnux/internal/dateutil"
	"github.com/lifnux/lifnux/internal/rest"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if _, err := dateutil.ParseDate(date); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid date", "date must be in YYYY-MM-DD format")
		return
	}
	rest.WriteJSON(w, http.StatusOK, h.service.Day(r.Context(), date))
}

func (h *Handler) GetDayEvents(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if _, err := dateutil.ParseDate(date); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid date", "date must be in YYYY-MM-DD format")
		return
	}
	rest.WriteJSON(w, http.StatusOK, h.service.Full(r.Context(), date))
}

// GetTimeOptions serves the half-hour slot options used to populate the
// start/end time selectors.
func (h *Handler) GetTimeOptions(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, dateutil.TimeOptions())
}
