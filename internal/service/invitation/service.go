package invitation

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sitelink-app/sitelink-backend-go/internal/config"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/invitation"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/user"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/email"
)

type InvitationServiceImpl struct {
	invitation.InvitationRepository
	profile.ProfileRepository
	user.UserRepository
	emailService email.EmailService
	cfg          config.InvitationConfig
	frontendURL  string
}

func NewInvitationService(
	invitationRepository invitation.InvitationRepository,
	profileRepository profile.ProfileRepository,
	userRepository user.UserRepository,
	emailService email.EmailService,
	cfg config.InvitationConfig,
	frontendURL string,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		InvitationRepository: invitationRepository,
		ProfileRepository:    profileRepository,
		UserRepository:       userRepository,
		emailService:         emailService,
		cfg:                  cfg,
		frontendURL:          frontendURL,
	}
}

// registrationURL builds the shareable link that pre-fills the registration
// form with the invitation token and email.
func (s *InvitationServiceImpl) registrationURL(token, emailAddr string) string {
	q := url.Values{}
	q.Set("invitation_token", token)
	q.Set("email", emailAddr)
	return fmt.Sprintf("%s/register?%s", s.frontendURL, q.Encode())
}

// Create implements invitation.InvitationService.
func (s *InvitationServiceImpl) Create(ctx context.Context, inviterProfileID string, req invitation.CreateRequest) (invitation.CreateResponse, error) {
	registered, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return invitation.CreateResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if registered {
		return invitation.CreateResponse{}, user.ErrEmailTaken
	}

	pending, err := s.InvitationRepository.ExistsPendingByEmail(ctx, req.Email)
	if err != nil {
		return invitation.CreateResponse{}, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending {
		return invitation.CreateResponse{}, invitation.ErrEmailAlreadyInvited
	}

	inviter, err := s.ProfileRepository.GetByID(ctx, inviterProfileID)
	if err != nil {
		return invitation.CreateResponse{}, fmt.Errorf("failed to get inviter profile: %w", err)
	}

	expiresAt := time.Now().AddDate(0, 0, s.cfg.ExpirationDays)
	created, err := s.InvitationRepository.Create(ctx, invitation.Invitation{
		Email:     req.Email,
		Token:     uuid.NewString(),
		InvitedBy: inviterProfileID,
		Status:    invitation.StatusPending,
		ExpiresAt: &expiresAt,
	})
	if err != nil {
		return invitation.CreateResponse{}, err
	}

	link := s.registrationURL(created.Token, created.Email)

	// The link in the response is the primary delivery channel; the email is
	// convenience only and its failure never fails the call.
	emailSent := true
	expiresStr := expiresAt.Format("January 2, 2006")
	if err := s.emailService.SendInvitation(created.Email, inviter.FullName(), link, expiresStr); err != nil {
		slog.Error("failed to send invitation email", "invitation_id", created.ID, "error", err)
		emailSent = false
	}

	expiresRFC := expiresAt.Format(time.RFC3339)
	return invitation.CreateResponse{
		ID:        created.ID,
		Email:     created.Email,
		Token:     created.Token,
		URL:       link,
		ExpiresAt: &expiresRFC,
		EmailSent: emailSent,
	}, nil
}

// Validate implements invitation.InvitationService.
func (s *InvitationServiceImpl) Validate(ctx context.Context, token, emailAddr string) (invitation.ValidateResponse, error) {
	inv, err := s.InvitationRepository.GetPendingByTokenAndEmail(ctx, token, emailAddr)
	if err != nil {
		return invitation.ValidateResponse{}, err
	}
	if inv.IsExpired() {
		return invitation.ValidateResponse{}, invitation.ErrInvitationExpired
	}

	return invitation.ValidateResponse{
		ID:          inv.ID,
		Email:       inv.Email,
		UserType:    string(profile.TypeEmployee),
		InviterName: inv.InviterName,
	}, nil
}

// Accept implements invitation.InvitationService.
func (s *InvitationServiceImpl) Accept(ctx context.Context, id string) error {
	return s.InvitationRepository.MarkAccepted(ctx, id, time.Now())
}

// ListMine implements invitation.InvitationService.
func (s *InvitationServiceImpl) ListMine(ctx context.Context, inviterProfileID string) ([]invitation.Invitation, error) {
	return s.InvitationRepository.ListByInviter(ctx, inviterProfileID)
}

// Delete implements invitation.InvitationService.
func (s *InvitationServiceImpl) Delete(ctx context.Context, id string) error {
	return s.InvitationRepository.Delete(ctx, id)
}

// SweepExpired implements invitation.InvitationService.
func (s *InvitationServiceImpl) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.InvitationRepository.ExpirePending(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("expired pending invitations", "count", n)
	}
	return n, nil
}
