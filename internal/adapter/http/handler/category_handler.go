package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/middleware"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryUC *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.CreateCategory(r.Context(), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create category", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CategoryFromDomain(category))
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUC.ListCategories(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list categories", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(categories))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.UpdateCategory(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update category", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryFromDomain(category))
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.categoryUC.DeleteCategory(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete category", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
