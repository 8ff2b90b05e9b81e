package handler

import (
	"encoding/json"
	"net/http"

	"github.com/headcheck/headcheck/internal/api/middleware"
	"github.com/headcheck/headcheck/internal/api/request"
	"github.com/headcheck/headcheck/internal/api/response"
	"github.com/headcheck/headcheck/internal/services/organization"
)

// OrganizationHandler handles organization endpoints
type OrganizationHandler struct {
	orgService *organization.Service
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(orgService *organization.Service) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
	}
}

// Create handles POST /api/organizations
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	trainer := middleware.MustGetTrainer(r.Context())

	var req request.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	org, err := h.orgService.Create(r.Context(), trainer.ID, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.OrganizationFromModel(org))
}

// List handles GET /api/organizations
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	trainer := middleware.MustGetTrainer(r.Context())

	orgs, err := h.orgService.ListByTrainer(r.Context(), trainer.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	result := make([]response.Organization, 0, len(orgs))
	for _, org := range orgs {
		result = append(result, response.OrganizationFromModel(org))
	}

	response.JSON(w, http.StatusOK, result)
}
