package invitation

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/sitelink-app/sitelink-backend-go/internal/config"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/invitation"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/user"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/email"
	"github.com/sitelink-app/sitelink-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInvDB *database.DB

func invTestInit(t *testing.T) {
	t.Helper()
	if testInvDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testInvDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateInvTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"invitations", "profiles", "users"} {
		_, err := testInvDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

// createInviter inserts a business user+profile and returns the profile id.
func createInviter(t *testing.T, ctx context.Context, emailAddr string) string {
	t.Helper()

	var userID string
	err := testInvDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash) VALUES ($1, 'x') RETURNING id
	`, emailAddr).Scan(&userID)
	require.NoError(t, err)

	var profileID string
	err = testInvDB.QueryRow(ctx, `
		INSERT INTO profiles (user_id, first_name, last_name, email, user_type, is_approved, approval_date)
		VALUES ($1, 'Pat', 'Owner', $2, 'business', true, NOW())
		RETURNING id
	`, userID, emailAddr).Scan(&profileID)
	require.NoError(t, err)

	return profileID
}

func newTestInvitationService(t *testing.T) invitation.InvitationService {
	t.Helper()

	emailService, err := email.NewEmailService(config.SMTPConfig{From: "no-reply@test.local"})
	require.NoError(t, err)

	return NewInvitationService(
		postgresql.NewInvitationRepository(testInvDB),
		postgresql.NewProfileRepository(testInvDB),
		postgresql.NewUserRepository(testInvDB),
		emailService,
		config.InvitationConfig{ExpirationDays: 7},
		"http://localhost:3000",
	)
}

func TestCreate_ReturnsShareableURL(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	resp, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Contains(t, resp.URL, "invitation_token="+resp.Token)
	assert.Contains(t, resp.URL, "register")
	require.NotNil(t, resp.ExpiresAt)
	// No SMTP server in tests; the link must still be usable.
	assert.False(t, resp.EmailSent)
}

func TestCreate_RejectsRegisteredEmail(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	_, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "owner@example.com"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestCreate_RejectsDuplicatePendingInvitation(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	_, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	assert.ErrorIs(t, err, invitation.ErrEmailAlreadyInvited)
}

func TestValidate_HappyPath(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	created, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	require.NoError(t, err)

	resp, err := svc.Validate(ctx, created.Token, "new.hire@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new.hire@example.com", resp.Email)
	assert.Equal(t, "employee", resp.UserType)
	assert.Equal(t, "Pat Owner", resp.InviterName)
}

func TestValidate_EmailMustMatch(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	created, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	require.NoError(t, err)

	_, err = svc.Validate(ctx, created.Token, "someone.else@example.com")
	assert.ErrorIs(t, err, invitation.ErrInvitationNotFound)
}

func TestValidate_ExpiredInvitation(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	created, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	require.NoError(t, err)

	_, err = testInvDB.Exec(ctx, `UPDATE invitations SET expires_at = NOW() - INTERVAL '1 day' WHERE id = $1`, created.ID)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, created.Token, "new.hire@example.com")
	assert.ErrorIs(t, err, invitation.ErrInvitationExpired)
}

func TestAccept_SecondAcceptanceFails(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	created, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Accept(ctx, created.ID))
	assert.ErrorIs(t, svc.Accept(ctx, created.ID), invitation.ErrInvitationAlreadyUsed)
}

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	created, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	require.NoError(t, err)

	_, err = testInvDB.Exec(ctx, `UPDATE invitations SET expires_at = NOW() - INTERVAL '1 day' WHERE id = $1`, created.ID)
	require.NoError(t, err)

	count, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	var status string
	require.NoError(t, testInvDB.QueryRow(ctx, `SELECT status FROM invitations WHERE id = $1`, created.ID).Scan(&status))
	assert.Equal(t, "expired", status)

	// Sweep is idempotent.
	count, err = svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

// Confirms the sweep leaves future-dated invitations alone.
func TestSweepExpired_IgnoresCurrentInvitations(t *testing.T) {
	ctx := context.Background()
	invTestInit(t)
	truncateInvTables(t, ctx)

	inviterID := createInviter(t, ctx, "owner@example.com")
	svc := newTestInvitationService(t)

	created, err := svc.Create(ctx, inviterID, invitation.CreateRequest{Email: "new.hire@example.com"})
	require.NoError(t, err)

	count, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	resp, err := svc.Validate(ctx, created.Token, "new.hire@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
}
