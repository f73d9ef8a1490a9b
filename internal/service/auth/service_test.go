package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/auth"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/user"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/jwt"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/sse"
	"github.com/sitelink-app/sitelink-backend-go/internal/repository/postgresql"
	notificationService "github.com/sitelink-app/sitelink-backend-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

var testAuthDB *database.DB

func authTestInit(t *testing.T) {
	t.Helper()
	if testAuthDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{"notifications", "refresh_tokens", "invitations", "contractors", "profiles", "users"}
	for _, table := range tables {
		_, err := testAuthDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestAuthService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()

	userRepo := postgresql.NewUserRepository(testAuthDB)
	profileRepo := postgresql.NewProfileRepository(testAuthDB)
	invitationRepo := postgresql.NewInvitationRepository(testAuthDB)
	notificationRepo := postgresql.NewNotificationRepository(testAuthDB)
	jwtRepo := postgresql.NewJWTRepository(testAuthDB)

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	notifService := notificationService.NewNotificationService(notificationRepo, sse.NewHub(), notificationService.Config{})
	t.Cleanup(notifService.Stop)

	return NewAuthService(testAuthDB, userRepo, profileRepo, invitationRepo, jwtService, jwtRepo, notifService), jwtService
}

func testSession() auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "go-test"}
}

func businessRegisterRequest(email string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Pat",
		LastName:        "Owner",
		UserType:        "business",
	}
}

func TestRegister_BusinessAutoApproved(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	resp, err := svc.Register(ctx, businessRegisterRequest("owner@example.com"), testSession())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.UserID)
	assert.NotEmpty(t, resp.ProfileID)
	assert.Equal(t, "business", resp.UserType)
	assert.True(t, resp.Approved)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRegister_ContractorPendingApproval(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	req := businessRegisterRequest("plumber@example.com")
	req.UserType = "contractor"

	resp, err := svc.Register(ctx, req, testSession())
	require.NoError(t, err)
	assert.Equal(t, "contractor", resp.UserType)
	assert.False(t, resp.Approved)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, businessRegisterRequest("owner@example.com"), testSession())
	require.NoError(t, err)

	_, err = svc.Register(ctx, businessRegisterRequest("owner@example.com"), testSession())
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, businessRegisterRequest("owner@example.com"), testSession())
	require.NoError(t, err)

	_, err = svc.Register(ctx, businessRegisterRequest("OWNER@example.com"), testSession())
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, businessRegisterRequest("owner@example.com"), testSession())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, auth.LoginRequest{Email: "owner@example.com", Password: "password123"}, testSession())
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.AccessTokenExpiresIn, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, businessRegisterRequest("owner@example.com"), testSession())
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "owner@example.com", Password: "wrong-password"}, testSession())
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}, testSession())
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshToken_RotatesAndRevokesOld(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	reg, err := svc.Register(ctx, businessRegisterRequest("owner@example.com"), testSession())
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(ctx, reg.RefreshToken, testSession())
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)
	assert.NotEqual(t, reg.RefreshToken, rotated.RefreshToken)

	// The presented token was revoked during rotation.
	_, err = svc.RefreshToken(ctx, reg.RefreshToken, testSession())
	assert.Error(t, err)

	// The rotated token still works.
	_, err = svc.RefreshToken(ctx, rotated.RefreshToken, testSession())
	assert.NoError(t, err)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc, _ := newTestAuthService(t)

	reg, err := svc.Register(ctx, businessRegisterRequest("owner@example.com"), testSession())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, reg.RefreshToken))

	_, err = svc.RefreshToken(ctx, reg.RefreshToken, testSession())
	assert.Error(t, err)
}
