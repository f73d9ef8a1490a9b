package profile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/notification"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/email"
)

// gateCacheTTL bounds how stale a cached approval decision can get for
// requests that race an approval change.
const gateCacheTTL = 30 * time.Second

type gateEntry struct {
	approved  bool
	expiresAt time.Time
}

type ApprovalServiceImpl struct {
	profile.ProfileRepository
	notificationService notification.Service
	emailService        email.EmailService

	mu    sync.RWMutex
	gates map[string]gateEntry
}

func NewApprovalService(profileRepository profile.ProfileRepository, notificationService notification.Service, emailService email.EmailService) profile.ApprovalService {
	return &ApprovalServiceImpl{
		ProfileRepository:   profileRepository,
		notificationService: notificationService,
		emailService:        emailService,
		gates:               make(map[string]gateEntry),
	}
}

// ListPendingAndAll implements profile.ApprovalService.
func (s *ApprovalServiceImpl) ListPendingAndAll(ctx context.Context, q profile.ListQuery) ([]profile.Response, error) {
	profiles, err := s.ProfileRepository.List(ctx, q)
	if err != nil {
		return nil, err
	}

	responses := make([]profile.Response, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, profile.ToResponse(p))
	}
	return responses, nil
}

// Approve implements profile.ApprovalService.
func (s *ApprovalServiceImpl) Approve(ctx context.Context, profileID, approverID string) (profile.Response, error) {
	target, err := s.review(ctx, profileID, approverID)
	if err != nil {
		return profile.Response{}, err
	}

	updated, err := s.ProfileRepository.SetApproved(ctx, target.ID, approverID)
	if err != nil {
		return profile.Response{}, err
	}

	s.invalidate(profileID)
	s.notifyDecision(ctx, updated, approverID, true)

	return profile.ToResponse(updated), nil
}

// Reject implements profile.ApprovalService.
func (s *ApprovalServiceImpl) Reject(ctx context.Context, profileID, approverID string) (profile.Response, error) {
	target, err := s.review(ctx, profileID, approverID)
	if err != nil {
		return profile.Response{}, err
	}

	updated, err := s.ProfileRepository.SetRejected(ctx, target.ID, approverID)
	if err != nil {
		return profile.Response{}, err
	}

	s.invalidate(profileID)
	s.notifyDecision(ctx, updated, approverID, false)

	return profile.ToResponse(updated), nil
}

// review enforces the reviewer invariants shared by Approve and Reject: the
// approver must be an approved business profile, may not review itself, and
// business profiles are never reviewable.
func (s *ApprovalServiceImpl) review(ctx context.Context, profileID, approverID string) (profile.Profile, error) {
	if profileID == approverID {
		return profile.Profile{}, profile.ErrSelfApproval
	}

	approver, err := s.ProfileRepository.GetByID(ctx, approverID)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to get approver profile: %w", err)
	}
	if !approver.CanApprove() {
		return profile.Profile{}, profile.ErrNotAnApprover
	}

	target, err := s.ProfileRepository.GetByID(ctx, profileID)
	if err != nil {
		return profile.Profile{}, err
	}
	if target.IsBusiness() {
		return profile.Profile{}, profile.ErrNotReviewable
	}

	return target, nil
}

// IsApproved implements profile.ApprovalService.
func (s *ApprovalServiceImpl) IsApproved(ctx context.Context, profileID string) (bool, error) {
	s.mu.RLock()
	entry, ok := s.gates[profileID]
	s.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.approved, nil
	}

	profileData, err := s.ProfileRepository.GetByID(ctx, profileID)
	if err != nil {
		return false, err
	}

	approved := profileData.IsApproved || profileData.IsBusiness()

	s.mu.Lock()
	s.gates[profileID] = gateEntry{approved: approved, expiresAt: time.Now().Add(gateCacheTTL)}
	s.mu.Unlock()

	return approved, nil
}

func (s *ApprovalServiceImpl) invalidate(profileID string) {
	s.mu.Lock()
	delete(s.gates, profileID)
	s.mu.Unlock()
}

func (s *ApprovalServiceImpl) notifyDecision(ctx context.Context, target profile.Profile, approverID string, approved bool) {
	req := notification.CreateNotificationRequest{
		RecipientID: target.ID,
		SenderID:    &approverID,
		Type:        notification.TypeAccountApproved,
		Title:       "Account approved",
		Message:     "Your account has been approved. You now have full portal access.",
	}
	if !approved {
		req.Type = notification.TypeAccountRejected
		req.Title = "Account rejected"
		req.Message = "Your account was not approved. Contact the business that invited you for details."
	}

	if err := s.notificationService.QueueNotification(ctx, req); err != nil {
		slog.Warn("failed to queue approval notification", "profile_id", target.ID, "error", err)
	}

	// Email delivery retries internally; run it off the request path.
	go func() {
		if err := s.emailService.SendApprovalDecision(target.Email, target.FirstName, approved); err != nil {
			slog.Error("failed to send approval decision email", "profile_id", target.ID, "error", err)
		}
	}()
}
