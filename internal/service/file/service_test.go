package file

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/storage"
	"github.com/sitelink-app/sitelink-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFileDB *database.DB

func fileTestInit(t *testing.T) {
	t.Helper()
	if testFileDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testFileDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateFileTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"jobs", "business_sites", "contractors", "profiles", "users"} {
		_, err := testFileDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createProfile(t *testing.T, ctx context.Context, emailAddr, userType string) string {
	t.Helper()

	var userID string
	err := testFileDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash) VALUES ($1, 'x') RETURNING id
	`, emailAddr).Scan(&userID)
	require.NoError(t, err)

	var profileID string
	err = testFileDB.QueryRow(ctx, `
		INSERT INTO profiles (user_id, first_name, last_name, email, user_type, is_approved, approval_date)
		VALUES ($1, 'Test', 'User', $2, $3, true, NOW())
		RETURNING id
	`, userID, emailAddr, userType).Scan(&profileID)
	require.NoError(t, err)

	return profileID
}

func createContractorRecord(t *testing.T, ctx context.Context, profileID, companyName string) string {
	t.Helper()

	var contractorID string
	err := testFileDB.QueryRow(ctx, `
		INSERT INTO contractors (profile_id, company_name, service_type, email)
		VALUES ($1, $2, 'plumbing', 'c@example.com')
		RETURNING id
	`, profileID, companyName).Scan(&contractorID)
	require.NoError(t, err)

	return contractorID
}

func createSite(t *testing.T, ctx context.Context, businessID string) string {
	t.Helper()

	var siteID string
	err := testFileDB.QueryRow(ctx, `
		INSERT INTO business_sites (business_id, name, address)
		VALUES ($1, 'Warehouse A', '1 Main St')
		RETURNING id
	`, businessID).Scan(&siteID)
	require.NoError(t, err)

	return siteID
}

func createJobRow(t *testing.T, ctx context.Context, siteID string, contractorID *string) string {
	t.Helper()

	var jobID string
	err := testFileDB.QueryRow(ctx, `
		INSERT INTO jobs (site_id, contractor_id, service_type, title)
		VALUES ($1, $2, 'plumbing', 'Fix the kitchen sink')
		RETURNING id
	`, siteID, contractorID).Scan(&jobID)
	require.NoError(t, err)

	return jobID
}

func newTestFileService(t *testing.T) FileService {
	t.Helper()

	localStorage, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	return NewFileService(
		localStorage,
		postgresql.NewJobRepository(testFileDB),
		postgresql.NewSiteRepository(testFileDB),
		postgresql.NewContractorRepository(testFileDB),
	)
}

func TestUploadRequirementDocument_OwnerUploads(t *testing.T) {
	ctx := context.Background()
	fileTestInit(t)
	truncateFileTables(t, ctx)

	businessID := createProfile(t, ctx, "owner@example.com", "business")
	siteID := createSite(t, ctx, businessID)
	svc := newTestFileService(t)

	path, err := svc.UploadRequirementDocument(ctx, businessID, siteID, strings.NewReader("%PDF-1.4"), "evidence.pdf")
	require.NoError(t, err)
	assert.Contains(t, path, "requirements")
	assert.Contains(t, path, siteID)
}

func TestUploadRequirementDocument_NonOwnerDenied(t *testing.T) {
	ctx := context.Background()
	fileTestInit(t)
	truncateFileTables(t, ctx)

	businessID := createProfile(t, ctx, "owner@example.com", "business")
	otherBusinessID := createProfile(t, ctx, "rival@example.com", "business")
	siteID := createSite(t, ctx, businessID)
	svc := newTestFileService(t)

	_, err := svc.UploadRequirementDocument(ctx, otherBusinessID, siteID, strings.NewReader("%PDF-1.4"), "evidence.pdf")
	assert.ErrorIs(t, err, site.ErrNotSiteOwner)
}

func TestUploadLicenseDocument_NonOwnerDenied(t *testing.T) {
	ctx := context.Background()
	fileTestInit(t)
	truncateFileTables(t, ctx)

	ownerProfileID := createProfile(t, ctx, "plumber@example.com", "contractor")
	contractorID := createContractorRecord(t, ctx, ownerProfileID, "Acme Plumbing")
	otherProfileID := createProfile(t, ctx, "electrician@example.com", "contractor")
	createContractorRecord(t, ctx, otherProfileID, "Volt Electric")
	svc := newTestFileService(t)

	_, err := svc.UploadLicenseDocument(ctx, otherProfileID, contractorID, strings.NewReader("%PDF-1.4"), "license.pdf")
	assert.ErrorIs(t, err, contractor.ErrNotContractorOwner)
}

func TestUploadLicenseDocument_OwnerUploads(t *testing.T) {
	ctx := context.Background()
	fileTestInit(t)
	truncateFileTables(t, ctx)

	ownerProfileID := createProfile(t, ctx, "plumber@example.com", "contractor")
	contractorID := createContractorRecord(t, ctx, ownerProfileID, "Acme Plumbing")
	svc := newTestFileService(t)

	path, err := svc.UploadLicenseDocument(ctx, ownerProfileID, contractorID, strings.NewReader("%PDF-1.4"), "license.pdf")
	require.NoError(t, err)
	assert.Contains(t, path, "licenses")
}

func TestUploadJobAttachment_UnassignedContractorDenied(t *testing.T) {
	ctx := context.Background()
	fileTestInit(t)
	truncateFileTables(t, ctx)

	businessID := createProfile(t, ctx, "owner@example.com", "business")
	siteID := createSite(t, ctx, businessID)
	jobID := createJobRow(t, ctx, siteID, nil)
	otherProfileID := createProfile(t, ctx, "electrician@example.com", "contractor")
	createContractorRecord(t, ctx, otherProfileID, "Volt Electric")
	svc := newTestFileService(t)

	_, err := svc.UploadJobAttachment(ctx, otherProfileID, jobID, strings.NewReader("%PDF-1.4"), "photo.jpg")
	assert.ErrorIs(t, err, job.ErrContractorNotOnJob)
}

func TestUploadJobAttachment_AssignedContractorUploads(t *testing.T) {
	ctx := context.Background()
	fileTestInit(t)
	truncateFileTables(t, ctx)

	businessID := createProfile(t, ctx, "owner@example.com", "business")
	siteID := createSite(t, ctx, businessID)
	contractorProfileID := createProfile(t, ctx, "plumber@example.com", "contractor")
	contractorID := createContractorRecord(t, ctx, contractorProfileID, "Acme Plumbing")
	jobID := createJobRow(t, ctx, siteID, &contractorID)
	svc := newTestFileService(t)

	path, err := svc.UploadJobAttachment(ctx, contractorProfileID, jobID, strings.NewReader("%PDF-1.4"), "photo.jpg")
	require.NoError(t, err)
	assert.Contains(t, path, "jobs")
}

func TestUpload_RejectsUnsupportedExtension(t *testing.T) {
	ctx := context.Background()
	fileTestInit(t)
	truncateFileTables(t, ctx)

	businessID := createProfile(t, ctx, "owner@example.com", "business")
	siteID := createSite(t, ctx, businessID)
	svc := newTestFileService(t)

	_, err := svc.UploadRequirementDocument(ctx, businessID, siteID, strings.NewReader("MZ"), "malware.exe")
	assert.ErrorIs(t, err, ErrInvalidFileType)
}
