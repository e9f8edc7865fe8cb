package upcoming

import (
	"net/http"
	"strconv"

	"github.com/lifnux/lifnux/internal/rest"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetUpcoming handles GET /api/upcoming. Optional query parameters "days"
// and "limit" override the 30-day window and 10-entry cap.
func (h *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days")
	limit := queryInt(r, "limit")

	entries := h.service.Upcoming(r.Context(), days, limit)
	rest.WriteJSON(w, http.StatusOK, entries)
}

func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
