package status

import (
	"encoding/json"
	"net/http"

	"github.com/lifnux/lifnux/internal/dateutil"
	"github.com/lifnux/lifnux/internal/rest"
	"github.com/lifnux/lifnux/internal/utils"
)

type Handler struct {
	service *Service
	clock   utils.Clock
}

func NewHandler(s *Service, clock utils.Clock) *Handler {
	return &Handler{service: s, clock: clock}
}

type statusResponse struct {
	CompanyName           string `json:"companyName"`
	IsEmployed            bool   `json:"isEmployed"`
	EmploymentStartDate   string `json:"employmentStartDate"`
	EmploymentEndDate     string `json:"employmentEndDate,omitempty"`
	EmploymentDays        int    `json:"employmentDays"`
	RemainingLeaveMinutes int    `json:"remainingLeaveMinutes"`
	RemainingLeave        Leave  `json:"remainingLeave"`
}

type patchStatusRequest struct {
	CompanyName         *string `json:"companyName"`
	IsEmployed          *bool   `json:"isEmployed"`
	EmploymentStartDate *string `json:"employmentStartDate"`
	EmploymentEndDate   *string `json:"employmentEndDate"`
	// RemainingLeave accepts the free-text convention: "3d", "1.5h",
	// "3d 2h", or a bare number of hours.
	RemainingLeave *string `json:"remainingLeave"`
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, h.toResponse(h.service.Get(r.Context())))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req patchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	patch := Patch{
		CompanyName:         req.CompanyName,
		IsEmployed:          req.IsEmployed,
		EmploymentStartDate: req.EmploymentStartDate,
		EmploymentEndDate:   req.EmploymentEndDate,
	}
	if req.RemainingLeave != nil {
		minutes := ParseLeave(*req.RemainingLeave)
		patch.RemainingLeaveMinutes = &minutes
	}

	updated := h.service.Update(r.Context(), patch)
	rest.WriteJSON(w, http.StatusOK, h.toResponse(updated))
}

func (h *Handler) toResponse(s Status) statusResponse {
	today := dateutil.FormatDate(h.clock.Now())
	return statusResponse{
		CompanyName:           s.CompanyName,
		IsEmployed:            s.IsEmployed,
		EmploymentStartDate:   s.EmploymentStartDate,
		EmploymentEndDate:     s.EmploymentEndDate,
		EmploymentDays:        s.EmploymentDays(today),
		RemainingLeaveMinutes: s.RemainingLeaveMinutes,
		RemainingLeave:        FormatLeave(s.RemainingLeaveMinutes),
	}
}
