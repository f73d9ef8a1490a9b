package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/assignment"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

// SiteHandler exposes business-site management
type SiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Compliance requirements
	ListRequirements(w http.ResponseWriter, r *http.Request)
	UpdateRequirement(w http.ResponseWriter, r *http.Request)

	// Merged per-site contractor view
	ListContractors(w http.ResponseWriter, r *http.Request)
}

type siteHandlerImpl struct {
	siteService       site.SiteService
	assignmentService assignment.AssignmentService
}

func NewSiteHandler(siteService site.SiteService, assignmentService assignment.AssignmentService) SiteHandler {
	return &siteHandlerImpl{
		siteService:       siteService,
		assignmentService: assignmentService,
	}
}

// Create creates a site and seeds its default compliance requirements
func (h *siteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)

	var req site.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	siteResponse, err := h.siteService.Create(r.Context(), businessID, req)
	if err != nil {
		slog.Error("Site create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Site created", "site_id", siteResponse.ID, "business_id", businessID)
	response.Created(w, "Site created successfully", siteResponse)
}

// Get returns one of the caller's sites
func (h *siteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	siteResponse, err := h.siteService.Get(r.Context(), businessID, siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, siteResponse)
}

// List returns all of the caller's sites
func (h *siteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)

	sites, err := h.siteService.List(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sites)
}

// Update edits one of the caller's sites
func (h *siteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	var req site.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	siteResponse, err := h.siteService.Update(r.Context(), businessID, siteID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site updated successfully", siteResponse)
}

// Delete removes one of the caller's sites
func (h *siteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	if err := h.siteService.Delete(r.Context(), businessID, siteID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site deleted successfully", nil)
}

// ListRequirements returns a site's compliance checklist
func (h *siteHandlerImpl) ListRequirements(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	requirements, err := h.siteService.ListRequirements(r.Context(), businessID, siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requirements)
}

// UpdateRequirement flips one compliance item and recomputes the site roll-up
func (h *siteHandlerImpl) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	requirementID := chi.URLParam(r, "requirementID")
	if siteID == "" || requirementID == "" {
		response.BadRequest(w, "Site ID and requirement ID are required", nil)
		return
	}

	var req site.UpdateRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	requirement, err := h.siteService.UpdateRequirement(r.Context(), businessID, siteID, requirementID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Requirement updated", requirement)
}

// ListContractors returns the merged contractor view for a site, combining
// explicit assignments with contractor references embedded in jobs
func (h *siteHandlerImpl) ListContractors(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	// Ownership check before exposing the contractor list.
	if _, err := h.siteService.Get(r.Context(), businessID, siteID); err != nil {
		response.HandleError(w, err)
		return
	}

	merged, err := h.assignmentService.SiteContractors(r.Context(), []string{siteID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	contractors := merged[siteID]
	if contractors == nil {
		contractors = []assignment.SiteContractorResponse{}
	}
	response.Success(w, contractors)
}
