package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/invitation"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

// InvitationHandler exposes single-use employee invitations
type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type invitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &invitationHandlerImpl{invitationService: invitationService}
}

// Create issues an invitation and returns the shareable registration URL
func (h *invitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	inviterProfileID := middleware.ProfileID(r)

	var req invitation.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	createResponse, err := h.invitationService.Create(r.Context(), inviterProfileID, req)
	if err != nil {
		slog.Error("Invitation create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation created", "invitation_id", createResponse.ID, "email_sent", createResponse.EmailSent)
	response.Created(w, "Invitation created successfully", createResponse)
}

// Validate is the public pre-registration check. It requires both the token
// and the invited email so a leaked token alone reveals nothing.
func (h *invitationHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	email := r.URL.Query().Get("email")
	if token == "" || email == "" {
		response.BadRequest(w, "token and email are required", nil)
		return
	}

	validateResponse, err := h.invitationService.Validate(r.Context(), token, email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, validateResponse)
}

// ListMine lists invitations issued by the caller
func (h *invitationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	inviterProfileID := middleware.ProfileID(r)
	if inviterProfileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	invitations, err := h.invitationService.ListMine(r.Context(), inviterProfileID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invitations)
}

// Delete hard-deletes an invitation
func (h *invitationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invitation ID is required", nil)
		return
	}

	if err := h.invitationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation deleted", nil)
}
