package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

// ProfileHandler exposes the caller's own profile
type ProfileHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandlerImpl{profileService: profileService}
}

// GetMe returns the authenticated user's profile
func (h *profileHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	profileResponse, err := h.profileService.GetMe(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profileResponse)
}

// UpdateMe updates the authenticated user's profile fields
func (h *profileHandlerImpl) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req profile.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	profileResponse, err := h.profileService.UpdateMe(r.Context(), userID, req)
	if err != nil {
		slog.Error("UpdateMe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", profileResponse)
}

// ApprovalHandler exposes the account review workflow to business accounts
type ApprovalHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService profile.ApprovalService
}

func NewApprovalHandler(approvalService profile.ApprovalService) ApprovalHandler {
	return &approvalHandlerImpl{approvalService: approvalService}
}

// List returns contractor and employee profiles for review, unapproved first
func (h *approvalHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var q profile.ListQuery

	if t := r.URL.Query().Get("user_type"); t != "" {
		userType := profile.UserType(t)
		if userType != profile.TypeContractor && userType != profile.TypeEmployee {
			response.BadRequest(w, "user_type must be contractor or employee", nil)
			return
		}
		q.UserType = &userType
	}
	q.UnapprovedOnly = getBoolQueryParam(r, "unapproved_only", false)

	profiles, err := h.approvalService.ListPendingAndAll(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profiles)
}

// Approve marks a profile as approved
func (h *approvalHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approverID := middleware.ProfileID(r)
	profileID := chi.URLParam(r, "id")
	if profileID == "" {
		response.BadRequest(w, "Profile ID is required", nil)
		return
	}

	profileResponse, err := h.approvalService.Approve(r.Context(), profileID, approverID)
	if err != nil {
		slog.Error("Approve service error", "error", err, "profile_id", profileID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile approved", "profile_id", profileID, "approver_id", approverID)
	response.SuccessWithMessage(w, "Account approved", profileResponse)
}

// Reject records an explicit rejection for a profile
func (h *approvalHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approverID := middleware.ProfileID(r)
	profileID := chi.URLParam(r, "id")
	if profileID == "" {
		response.BadRequest(w, "Profile ID is required", nil)
		return
	}

	profileResponse, err := h.approvalService.Reject(r.Context(), profileID, approverID)
	if err != nil {
		slog.Error("Reject service error", "error", err, "profile_id", profileID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile rejected", "profile_id", profileID, "approver_id", approverID)
	response.SuccessWithMessage(w, "Account rejected", profileResponse)
}
