package event

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lifnux/lifnux/internal/rest"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

type createDateEventRequest struct {
	Date       string `json:"date"`
	Title      string `json:"title"`
	CategoryID string `json:"categoryId"`
	Importance string `json:"importance"`
	Note       string `json:"note"`
}

type patchDateEventRequest struct {
	Date       *string `json:"date"`
	Title      *string `json:"title"`
	CategoryID *string `json:"categoryId"`
	Importance *string `json:"importance"`
	Note       *string `json:"note"`
	IsEnabled  *bool   `json:"isEnabled"`
}

type createTimedEventRequest struct {
	AnchorDate string `json:"anchorDate"`
	StartMin   int    `json:"startMin"`
	EndMin     int    `json:"endMin"`
	Title      string `json:"title"`
	CategoryID string `json:"categoryId"`
	Importance string `json:"importance"`
	Location   string `json:"location"`
	Note       string `json:"note"`
}

type patchTimedEventRequest struct {
	AnchorDate *string `json:"anchorDate"`
	StartMin   *int    `json:"startMin"`
	EndMin     *int    `json:"endMin"`
	Title      *string `json:"title"`
	CategoryID *string `json:"categoryId"`
	Importance *string `json:"importance"`
	Location   *string `json:"location"`
	Note       *string `json:"note"`
}

func (h *Handler) CreateDateEvent(w http.ResponseWriter, r *http.Request) {
	var req createDateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	importance, err := parseImportanceOrDefault(req.Importance)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid importance", err.Error())
		return
	}

	created, err := h.service.AddDateEvent(r.Context(), NewDateEvent{
		Date:       req.Date,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Importance: importance,
		Note:       req.Note,
	})
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, "failed to create date event", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateDateEvent(w http.ResponseWriter, r *http.Request) {
	var req patchDateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	patch := DateEventPatch{
		Date:       req.Date,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Note:       req.Note,
		IsEnabled:  req.IsEnabled,
	}
	if req.Importance != nil {
		importance, err := ParseImportance(*req.Importance)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "invalid importance", err.Error())
			return
		}
		patch.Importance = &importance
	}

	updated, err := h.service.UpdateDateEvent(r.Context(), mux.Vars(r)["eventId"], patch)
	if err != nil {
		writeEventError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteDateEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDateEvent(r.Context(), mux.Vars(r)["eventId"]); err != nil {
		writeEventError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateTimedEvent(w http.ResponseWriter, r *http.Request) {
	var req createTimedEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	importance, err := parseImportanceOrDefault(req.Importance)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid importance", err.Error())
		return
	}

	created, err := h.service.AddTimedEvent(r.Context(), NewTimedEvent{
		AnchorDate: req.AnchorDate,
		StartMin:   req.StartMin,
		EndMin:     req.EndMin,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Importance: importance,
		Location:   req.Location,
		Note:       req.Note,
	})
	if err != nil {
		writeEventError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateTimedEvent(w http.ResponseWriter, r *http.Request) {
	var req patchTimedEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	patch := TimedEventPatch{
		AnchorDate: req.AnchorDate,
		StartMin:   req.StartMin,
		EndMin:     req.EndMin,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Location:   req.Location,
		Note:       req.Note,
	}
	if req.Importance != nil {
		importance, err := ParseImportance(*req.Importance)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "invalid importance", err.Error())
			return
		}
		patch.Importance = &importance
	}

	updated, err := h.service.UpdateTimedEvent(r.Context(), mux.Vars(r)["eventId"], patch)
	if err != nil {
		writeEventError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteTimedEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTimedEvent(r.Context(), mux.Vars(r)["eventId"]); err != nil {
		writeEventError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseImportanceOrDefault accepts an omitted importance as LOW but
// rejects a present, unrecognized value.
func parseImportanceOrDefault(raw string) (Importance, error) {
	if raw == "" {
		return ImportanceLow, nil
	}
	return ParseImportance(raw)
}

func writeEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		rest.WriteError(w, http.StatusNotFound, "event not found", err.Error())
	case errors.Is(err, ErrSystemEvent):
		rest.WriteError(w, http.StatusConflict, "system events cannot be deleted", err.Error())
	case errors.Is(err, ErrInvalidTimeRange):
		rest.WriteError(w, http.StatusBadRequest, "invalid time range", err.Error())
	default:
		rest.WriteError(w, http.StatusInternalServerError, "operation failed", err.Error())
	}
}
