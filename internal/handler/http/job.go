package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

// JobHandler exposes maintenance job tracking
type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListBySite(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &jobHandlerImpl{jobService: jobService}
}

// Create creates a job on one of the caller's sites
func (h *jobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)

	var req job.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	jobResponse, err := h.jobService.Create(r.Context(), businessID, req)
	if err != nil {
		slog.Error("Job create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Job created", "job_id", jobResponse.ID, "site_id", jobResponse.SiteID)
	response.Created(w, "Job created successfully", jobResponse)
}

// Get returns a single job to the site's business or the assigned contractor
func (h *jobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actorProfileID := middleware.ProfileID(r)
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	jobResponse, err := h.jobService.Get(r.Context(), actorProfileID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobResponse)
}

// ListBySite lists jobs on one of the caller's sites
func (h *jobHandlerImpl) ListBySite(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	jobs, err := h.jobService.ListBySite(r.Context(), businessID, siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}

// ListMine lists jobs assigned to the calling contractor
func (h *jobHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.ProfileID(r)
	if profileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	jobs, err := h.jobService.ListMine(r.Context(), profileID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, jobs)
}

// Update edits a job's descriptive fields
func (h *jobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	var req job.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	jobResponse, err := h.jobService.Update(r.Context(), businessID, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job updated successfully", jobResponse)
}

// Transition moves a job along the status state machine
func (h *jobHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	actorProfileID := middleware.ProfileID(r)
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	var req job.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	jobResponse, err := h.jobService.Transition(r.Context(), actorProfileID, id, req)
	if err != nil {
		slog.Error("Job transition service error", "error", err, "job_id", id, "status", req.Status)
		response.HandleError(w, err)
		return
	}

	slog.Info("Job status changed", "job_id", id, "status", jobResponse.Status)
	response.SuccessWithMessage(w, "Job status updated", jobResponse)
}

// Delete removes a job
func (h *jobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	if err := h.jobService.Delete(r.Context(), businessID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}
