package handler

import (
	"encoding/json"
	"net/http"

	"github.com/headcheck/headcheck/internal/api/middleware"
	"github.com/headcheck/headcheck/internal/api/request"
	"github.com/headcheck/headcheck/internal/api/response"
	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/services/screening"
)

// ScreeningHandler handles test-run endpoints
type ScreeningHandler struct {
	screeningService *screening.Service
}

// NewScreeningHandler creates a new screening handler
func NewScreeningHandler(screeningService *screening.Service) *ScreeningHandler {
	return &ScreeningHandler{
		screeningService: screeningService,
	}
}

// StartTest handles POST /api/testing/start
func (h *ScreeningHandler) StartTest(w http.ResponseWriter, r *http.Request) {
	trainer := middleware.MustGetTrainer(r.Context())

	var req request.StartTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("playerId is required"))
		return
	}

	subject, err := h.screeningService.StartTest(r.Context(), trainer.ID, model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StartTestFromSubject(subject))
}
