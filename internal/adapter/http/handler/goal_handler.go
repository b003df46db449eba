package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/middleware"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// GoalHandler handles savings-goal HTTP requests.
type GoalHandler struct {
	goalUC *usecase.GoalUseCase
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalUC *usecase.GoalUseCase) *GoalHandler {
	return &GoalHandler{goalUC: goalUC}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.goalUC.CreateGoal(r.Context(), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create goal", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.GoalFromDomain(goal))
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalUC.ListGoals(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list goals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GoalsFromDomain(goals))
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.goalUC.UpdateGoal(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update goal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GoalFromDomain(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.goalUC.DeleteGoal(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete goal", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
