package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/auth"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/invitation"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/notification"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/user"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/jwt"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/oauth"
	"github.com/sitelink-app/sitelink-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	profile.ProfileRepository
	invitation.InvitationRepository
	jwt.Service
	postgresql.JWTRepository
	notificationService notification.Service
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	profileRepository profile.ProfileRepository,
	invitationRepository invitation.InvitationRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
	notificationService notification.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                   db,
		UserRepository:       userRepository,
		ProfileRepository:    profileRepository,
		InvitationRepository: invitationRepository,
		Service:              jwtService,
		JWTRepository:        jwtRepository,
		notificationService:  notificationService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest, sessionReq auth.SessionTrackingRequest) (auth.RegisterResponse, error) {
	userType := profile.UserType(req.UserType)

	// An invitation token pins the registration to the employee type; the
	// client-selected type is ignored entirely.
	var inv invitation.InvitationWithDetails
	invited := false
	if req.InvitationToken != nil {
		var err error
		inv, err = a.InvitationRepository.GetPendingByTokenAndEmail(ctx, *req.InvitationToken, req.Email)
		if err != nil {
			if errors.Is(err, invitation.ErrInvitationNotFound) {
				return auth.RegisterResponse{}, invitation.ErrInvitationNotFound
			}
			return auth.RegisterResponse{}, fmt.Errorf("failed to look up invitation: %w", err)
		}
		if inv.IsExpired() {
			return auth.RegisterResponse{}, invitation.ErrInvitationExpired
		}
		userType = profile.TypeEmployee
		invited = true
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrEmailTaken
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var response auth.RegisterResponse
	var profileData profile.Profile

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		newUser, err := a.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: &hashedPassword,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		profileData, err = a.ProfileRepository.Create(txCtx, profile.Profile{
			UserID:    newUser.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			UserType:  userType,
		})
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		// Consuming the invitation inside the registration transaction keeps
		// token use and account creation atomic; a concurrent acceptance of
		// the same token rolls this registration back.
		if invited {
			if err := a.InvitationRepository.MarkAccepted(txCtx, inv.ID, time.Now()); err != nil {
				return err
			}
		}

		response.AccessToken, response.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(
			newUser.ID, newUser.Email, &profileData.ID, profileData.UserType, profileData.IsApproved)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		response.RefreshToken, response.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(newUser.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, newUser.ID, response.RefreshToken, response.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}

		response.UserID = newUser.ID
		return nil
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	response.ProfileID = profileData.ID
	response.UserType = string(profileData.UserType)
	response.Approved = profileData.IsApproved

	a.notifyRegistration(ctx, profileData, inv, invited)

	return response, nil
}

// notifyRegistration queues post-registration notifications. Best effort;
// failures are logged, never returned.
func (a *AuthServiceImpl) notifyRegistration(ctx context.Context, profileData profile.Profile, inv invitation.InvitationWithDetails, invited bool) {
	if profileData.NeedsApproval() {
		err := a.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: profileData.ID,
			Type:        notification.TypeAccountPending,
			Title:       "Account pending review",
			Message:     "Your account is waiting for approval. You will be notified once it has been reviewed.",
		})
		if err != nil {
			slog.Warn("failed to queue pending-review notification", "profile_id", profileData.ID, "error", err)
		}
	}

	if invited {
		err := a.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: inv.InvitedBy,
			SenderID:    &profileData.ID,
			Type:        notification.TypeInvitationAccepted,
			Title:       "Invitation accepted",
			Message:     fmt.Sprintf("%s accepted your invitation", profileData.FullName()),
			Data:        map[string]interface{}{"invitation_id": inv.ID},
		})
		if err != nil {
			slog.Warn("failed to queue invitation-accepted notification", "invitation_id", inv.ID, "error", err)
		}
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, info oauth.GoogleInformation, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.UserRepository.GetByOAuth(ctx, "google", info.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user by oauth: %w", err)
		}
		userData, err = a.UserRepository.GetByEmail(ctx, info.Email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.TokenResponse{}, auth.ErrUserNotFound
			}
			return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
		}
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// issueTokens generates the access/refresh pair and persists the refresh
// token within a transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var profileID *string
	var userType profile.UserType
	approved := false

	profileData, err := a.ProfileRepository.GetByUserID(ctx, userData.ID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get profile: %w", err)
		}
	} else {
		profileID = &profileData.ID
		userType = profileData.UserType
		approved = profileData.IsApproved
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(
			userData.ID, userData.Email, profileID, userType, approved)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, revoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}

	// Rotation: the presented token is revoked and a fresh pair is issued in
	// the same transaction.
	var profileID *string
	var userType profile.UserType
	approved := false
	if profileData, err := a.ProfileRepository.GetByUserID(ctx, userData.ID); err == nil {
		profileID = &profileData.ID
		userType = profileData.UserType
		approved = profileData.IsApproved
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(
			userData.ID, userData.Email, profileID, userType, approved)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, revoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to check refresh token: %w", err)
		}
		if !revoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}
