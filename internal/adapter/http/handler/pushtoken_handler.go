package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/middleware"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// PushTokenHandler handles Expo push token registration.
type PushTokenHandler struct {
	pushTokenUC *usecase.PushTokenUseCase
}

// NewPushTokenHandler creates a new PushTokenHandler.
func NewPushTokenHandler(pushTokenUC *usecase.PushTokenUseCase) *PushTokenHandler {
	return &PushTokenHandler{pushTokenUC: pushTokenUC}
}

// Register stores a device push token for the user.
func (h *PushTokenHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	_, err := h.pushTokenUC.RegisterToken(r.Context(), middleware.UserID(r.Context()), req.Token)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register push token", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// Unregister removes a device push token.
func (h *PushTokenHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	err := h.pushTokenUC.DeleteToken(r.Context(), middleware.UserID(r.Context()), req.Token)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete push token", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
