package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

// ContractorHandler exposes the contractor directory and the calling
// contractor's own record
type ContractorHandler interface {
	// Directory
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)

	// Own record
	GetMine(w http.ResponseWriter, r *http.Request)
	UpdateMine(w http.ResponseWriter, r *http.Request)

	// Service areas
	AddServiceArea(w http.ResponseWriter, r *http.Request)
	ListServiceAreas(w http.ResponseWriter, r *http.Request)
	RemoveServiceArea(w http.ResponseWriter, r *http.Request)

	// Licenses
	AddLicense(w http.ResponseWriter, r *http.Request)
	ListLicenses(w http.ResponseWriter, r *http.Request)
	RemoveLicense(w http.ResponseWriter, r *http.Request)
}

type contractorHandlerImpl struct {
	contractorService contractor.ContractorService
}

func NewContractorHandler(contractorService contractor.ContractorService) ContractorHandler {
	return &contractorHandlerImpl{contractorService: contractorService}
}

// List returns the contractor directory with optional filters
func (h *contractorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var q contractor.ListQuery

	if v := r.URL.Query().Get("service_type"); v != "" {
		q.ServiceType = &v
	}
	if v := r.URL.Query().Get("location"); v != "" {
		q.Location = &v
	}
	if v := r.URL.Query().Get("search"); v != "" {
		q.Search = &v
	}
	// Non-business callers only see active contractors.
	q.ActiveOnly = middleware.UserType(r) != string(profile.TypeBusiness)

	contractors, err := h.contractorService.List(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, contractors)
}

// Get returns one contractor's directory entry
func (h *contractorHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Contractor ID is required", nil)
		return
	}

	contractorResponse, err := h.contractorService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, contractorResponse)
}

// GetMine returns the calling contractor's own record
func (h *contractorHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.ProfileID(r)
	if profileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	contractorResponse, err := h.contractorService.GetMine(r.Context(), profileID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, contractorResponse)
}

// UpdateMine edits the calling contractor's directory entry
func (h *contractorHandlerImpl) UpdateMine(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.ProfileID(r)
	if profileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req contractor.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	contractorResponse, err := h.contractorService.UpdateMine(r.Context(), profileID, req)
	if err != nil {
		slog.Error("UpdateMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contractor profile updated", contractorResponse)
}

// AddServiceArea adds a region to the calling contractor
func (h *contractorHandlerImpl) AddServiceArea(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.ProfileID(r)

	var req contractor.CreateServiceAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	area, err := h.contractorService.AddServiceArea(r.Context(), profileID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service area added", area)
}

// ListServiceAreas lists a contractor's regions
func (h *contractorHandlerImpl) ListServiceAreas(w http.ResponseWriter, r *http.Request) {
	contractorID := chi.URLParam(r, "id")
	if contractorID == "" {
		response.BadRequest(w, "Contractor ID is required", nil)
		return
	}

	areas, err := h.contractorService.ListServiceAreas(r.Context(), contractorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, areas)
}

// RemoveServiceArea removes a region from the calling contractor
func (h *contractorHandlerImpl) RemoveServiceArea(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.ProfileID(r)
	areaID := chi.URLParam(r, "areaID")
	if areaID == "" {
		response.BadRequest(w, "Service area ID is required", nil)
		return
	}

	if err := h.contractorService.RemoveServiceArea(r.Context(), profileID, areaID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service area removed", nil)
}

// AddLicense records a trade license for the calling contractor
func (h *contractorHandlerImpl) AddLicense(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.ProfileID(r)

	var req contractor.CreateLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	license, err := h.contractorService.AddLicense(r.Context(), profileID, req)
	if err != nil {
		slog.Error("AddLicense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "License added", license)
}

// ListLicenses lists a contractor's licenses
func (h *contractorHandlerImpl) ListLicenses(w http.ResponseWriter, r *http.Request) {
	contractorID := chi.URLParam(r, "id")
	if contractorID == "" {
		response.BadRequest(w, "Contractor ID is required", nil)
		return
	}

	licenses, err := h.contractorService.ListLicenses(r.Context(), contractorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, licenses)
}

// RemoveLicense removes a license from the calling contractor
func (h *contractorHandlerImpl) RemoveLicense(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.ProfileID(r)
	licenseID := chi.URLParam(r, "licenseID")
	if licenseID == "" {
		response.BadRequest(w, "License ID is required", nil)
		return
	}

	if err := h.contractorService.RemoveLicense(r.Context(), profileID, licenseID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "License removed", nil)
}
