package job

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/sse"
	"github.com/sitelink-app/sitelink-backend-go/internal/repository/postgresql"
	notificationService "github.com/sitelink-app/sitelink-backend-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJobDB *database.DB

func jobTestInit(t *testing.T) {
	t.Helper()
	if testJobDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testJobDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateJobTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"notifications", "jobs", "business_sites", "contractors", "profiles", "users"} {
		_, err := testJobDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

// createBusiness inserts an approved business user+profile and returns the
// profile id.
func createBusiness(t *testing.T, ctx context.Context, emailAddr string) string {
	t.Helper()

	var userID string
	err := testJobDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash) VALUES ($1, 'x') RETURNING id
	`, emailAddr).Scan(&userID)
	require.NoError(t, err)

	var profileID string
	err = testJobDB.QueryRow(ctx, `
		INSERT INTO profiles (user_id, first_name, last_name, email, user_type, is_approved, approval_date)
		VALUES ($1, 'Pat', 'Owner', $2, 'business', true, NOW())
		RETURNING id
	`, userID, emailAddr).Scan(&profileID)
	require.NoError(t, err)

	return profileID
}

// createContractorAccount inserts an approved contractor user+profile with a
// directory record and returns (profileID, contractorID).
func createContractorAccount(t *testing.T, ctx context.Context, emailAddr, companyName string) (string, string) {
	t.Helper()

	var userID string
	err := testJobDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash) VALUES ($1, 'x') RETURNING id
	`, emailAddr).Scan(&userID)
	require.NoError(t, err)

	var profileID string
	err = testJobDB.QueryRow(ctx, `
		INSERT INTO profiles (user_id, first_name, last_name, email, user_type, is_approved, approval_date)
		VALUES ($1, 'Sam', 'Trades', $2, 'contractor', true, NOW())
		RETURNING id
	`, userID, emailAddr).Scan(&profileID)
	require.NoError(t, err)

	var contractorID string
	err = testJobDB.QueryRow(ctx, `
		INSERT INTO contractors (profile_id, company_name, service_type, email)
		VALUES ($1, $2, 'plumbing', $3)
		RETURNING id
	`, profileID, companyName, emailAddr).Scan(&contractorID)
	require.NoError(t, err)

	return profileID, contractorID
}

func createTestSite(t *testing.T, ctx context.Context, businessID, name string) string {
	t.Helper()

	var siteID string
	err := testJobDB.QueryRow(ctx, `
		INSERT INTO business_sites (business_id, name, address)
		VALUES ($1, $2, '1 Main St')
		RETURNING id
	`, businessID, name).Scan(&siteID)
	require.NoError(t, err)

	return siteID
}

func newTestJobService(t *testing.T) job.JobService {
	t.Helper()

	notifService := notificationService.NewNotificationService(
		postgresql.NewNotificationRepository(testJobDB), sse.NewHub(), notificationService.Config{})
	t.Cleanup(notifService.Stop)

	return NewJobService(
		postgresql.NewJobRepository(testJobDB),
		postgresql.NewSiteRepository(testJobDB),
		postgresql.NewContractorRepository(testJobDB),
		notifService,
	)
}

func createTestJob(t *testing.T, ctx context.Context, svc job.JobService, businessID, siteID string, contractorName *string) job.Response {
	t.Helper()

	created, err := svc.Create(ctx, businessID, job.CreateRequest{
		SiteID:         siteID,
		ContractorName: contractorName,
		ServiceType:    "plumbing",
		Title:          "Fix the kitchen sink",
		Priority:       "medium",
	})
	require.NoError(t, err)
	return created
}

func TestGet_SiteOwnerReadsJob(t *testing.T) {
	ctx := context.Background()
	jobTestInit(t)
	truncateJobTables(t, ctx)

	businessID := createBusiness(t, ctx, "owner@example.com")
	siteID := createTestSite(t, ctx, businessID, "Warehouse A")
	svc := newTestJobService(t)

	created := createTestJob(t, ctx, svc, businessID, siteID, nil)

	got, err := svc.Get(ctx, businessID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, siteID, got.SiteID)
}

func TestGet_AssignedContractorReadsJob(t *testing.T) {
	ctx := context.Background()
	jobTestInit(t)
	truncateJobTables(t, ctx)

	businessID := createBusiness(t, ctx, "owner@example.com")
	siteID := createTestSite(t, ctx, businessID, "Warehouse A")
	contractorProfileID, _ := createContractorAccount(t, ctx, "plumber@example.com", "Acme Plumbing")
	svc := newTestJobService(t)

	companyName := "Acme Plumbing"
	created := createTestJob(t, ctx, svc, businessID, siteID, &companyName)

	got, err := svc.Get(ctx, contractorProfileID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGet_UnrelatedContractorDenied(t *testing.T) {
	ctx := context.Background()
	jobTestInit(t)
	truncateJobTables(t, ctx)

	businessID := createBusiness(t, ctx, "owner@example.com")
	siteID := createTestSite(t, ctx, businessID, "Warehouse A")
	otherProfileID, _ := createContractorAccount(t, ctx, "electrician@example.com", "Volt Electric")
	svc := newTestJobService(t)

	created := createTestJob(t, ctx, svc, businessID, siteID, nil)

	_, err := svc.Get(ctx, otherProfileID, created.ID)
	assert.ErrorIs(t, err, job.ErrContractorNotOnJob)
}

func TestGet_OtherBusinessDenied(t *testing.T) {
	ctx := context.Background()
	jobTestInit(t)
	truncateJobTables(t, ctx)

	businessID := createBusiness(t, ctx, "owner@example.com")
	otherBusinessID := createBusiness(t, ctx, "rival@example.com")
	siteID := createTestSite(t, ctx, businessID, "Warehouse A")
	svc := newTestJobService(t)

	created := createTestJob(t, ctx, svc, businessID, siteID, nil)

	_, err := svc.Get(ctx, otherBusinessID, created.ID)
	assert.ErrorIs(t, err, job.ErrContractorNotOnJob)
}
