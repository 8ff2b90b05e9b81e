package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/headcheck/headcheck/internal/api/middleware"
	"github.com/headcheck/headcheck/internal/api/request"
	"github.com/headcheck/headcheck/internal/api/response"
	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/services/player"
)

// dateLayout is the wire format for dates of birth
const dateLayout = "2006-01-02"

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// Create handles POST /api/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	trainer := middleware.MustGetTrainer(r.Context())

	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var dob time.Time
	if req.DOB != "" {
		parsed, err := time.Parse(dateLayout, req.DOB)
		if err != nil {
			WriteError(w, NewInvalidRequestError("dob must be a YYYY-MM-DD date"))
			return
		}
		dob = parsed
	}

	created, err := h.playerService.Create(r.Context(), trainer.ID, player.CreateParams{
		OrganizationID: model.OrganizationID(req.OrganizationID),
		Name:           req.Name,
		DOB:            dob,
		Age:            req.Age,
		Height:         req.Height,
		Weight:         req.Weight,
		Email:          req.Email,
		Phone:          req.Phone,
		ProfilePicURL:  req.ProfilePicURL,
		Address:        model.Address(req.Address),
		Emergency:      model.EmergencyContact(req.Emergency),
		Status:         model.PlayerStatus(req.Status),
		MedicalNotes:   req.MedicalNotes,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(created))
}

// List handles GET /api/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	trainer := middleware.MustGetTrainer(r.Context())

	players, err := h.playerService.ListByTrainer(r.Context(), trainer.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	result := make([]response.Player, 0, len(players))
	for _, p := range players {
		result = append(result, response.PlayerWithOrganizationFromModel(p))
	}

	response.JSON(w, http.StatusOK, result)
}

// Update handles PUT /api/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	trainer := middleware.MustGetTrainer(r.Context())
	playerID := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	update := model.PlayerUpdate{
		Name:          req.Name,
		Age:           req.Age,
		Height:        req.Height,
		Weight:        req.Weight,
		Email:         req.Email,
		Phone:         req.Phone,
		ProfilePicURL: req.ProfilePicURL,
		MedicalNotes:  req.MedicalNotes,
	}
	if req.DOB != nil {
		parsed, err := time.Parse(dateLayout, *req.DOB)
		if err != nil {
			WriteError(w, NewInvalidRequestError("dob must be a YYYY-MM-DD date"))
			return
		}
		update.DOB = &parsed
	}
	if req.Address != nil {
		addr := model.Address(*req.Address)
		update.Address = &addr
	}
	if req.Emergency != nil {
		em := model.EmergencyContact(*req.Emergency)
		update.Emergency = &em
	}
	if req.Status != nil {
		status := model.PlayerStatus(*req.Status)
		update.Status = &status
	}

	updated, err := h.playerService.Update(r.Context(), trainer.ID, playerID, update)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(updated))
}
