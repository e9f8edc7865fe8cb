package grid

import (
	"net/http"

	"github.com/lifnux/lifnux/internal/dateutil"
	"github.com/lifnux/lifnux/internal/rest"
	"github.com/lifnux/lifnux/internal/utils"
)

type Handler struct {
	service *Service
	clock   utils.Clock
}

func NewHandler(service *Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

// GetCalendar handles GET /api/calendar. The "anchor" query parameter
// selects the grid's anchor date and defaults to today.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	anchor := r.URL.Query().Get("anchor")
	if anchor == "" {
		anchor = dateutil.Today(h.clock.Now())
	} else if _, err := dateutil.ParseDate(anchor); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid anchor date", err.Error())
		return
	}

	rest.WriteJSON(w, http.StatusOK, h.service.Build(r.Context(), anchor))
}
