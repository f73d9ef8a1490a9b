package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/assignment"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

// AssignmentHandler exposes the contractor-site assignment workflow
type AssignmentHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &assignmentHandlerImpl{assignmentService: assignmentService}
}

// Assign links a contractor, referenced by directory name, to a site. A
// duplicate pair succeeds with a warning and creates no new row.
func (h *assignmentHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	actorProfileID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	var req assignment.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.assignmentService.Assign(r.Context(), siteID, actorProfileID, req)
	if err != nil {
		slog.Error("Assign service error", "error", err, "site_id", siteID)
		response.HandleError(w, err)
		return
	}

	if result.AlreadyAssigned {
		response.SuccessWithMessage(w, result.Warning, result)
		return
	}
	response.Created(w, "Contractor assigned to site", result)
}

// Update edits an assignment's access level
func (h *assignmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actorProfileID := middleware.ProfileID(r)
	assignmentID := chi.URLParam(r, "id")
	if assignmentID == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	var req assignment.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	assignmentResponse, err := h.assignmentService.Update(r.Context(), assignmentID, actorProfileID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment updated", assignmentResponse)
}

// Delete removes an assignment; jobs referencing the contractor are untouched
func (h *assignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actorProfileID := middleware.ProfileID(r)
	assignmentID := chi.URLParam(r, "id")
	if assignmentID == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.assignmentService.Delete(r.Context(), assignmentID, actorProfileID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment removed", nil)
}
