package category

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

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type patchCategoryRequest struct {
	Name      *string `json:"name"`
	Color     *string `json:"color"`
	IsEnabled *bool   `json:"isEnabled"`
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), req.Name, req.Color)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			rest.WriteError(w, http.StatusBadRequest, "category name must not be empty", "")
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, "failed to create category", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req patchCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), mux.Vars(r)["categoryId"], Patch{
		Name:      req.Name,
		Color:     req.Color,
		IsEnabled: req.IsEnabled,
	})
	if err != nil {
		writeCategoryError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["categoryId"]); err != nil {
		writeCategoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCategoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		rest.WriteError(w, http.StatusNotFound, "category not found", err.Error())
	case errors.Is(err, ErrSystemCategory):
		rest.WriteError(w, http.StatusConflict, "system categories cannot be deleted", err.Error())
	case errors.Is(err, ErrCategoryInUse):
		rest.WriteError(w, http.StatusConflict, "category is in use", err.Error())
	default:
		rest.WriteError(w, http.StatusInternalServerError, "operation failed", err.Error())
	}
}
