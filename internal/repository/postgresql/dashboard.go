package postgresql

import (
	"context"
	"fmt"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/dashboard"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

// NewDashboardRepository creates a new dashboard repository instance
func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetBusinessOverview implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetBusinessOverview(ctx context.Context, businessID string) (*dashboard.BusinessOverview, error) {
	q := GetQuerier(ctx, r.db)

	var overview dashboard.BusinessOverview

	siteQuery := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE compliance_status = 'compliant'),
			   COUNT(*) FILTER (WHERE compliance_status = 'non_compliant')
		FROM business_sites
		WHERE business_id = $1
	`
	if err := q.QueryRow(ctx, siteQuery, businessID).Scan(
		&overview.SiteCount, &overview.CompliantSites, &overview.NonCompliantSites,
	); err != nil {
		return nil, fmt.Errorf("failed to count sites: %w", err)
	}

	jobQuery := `
		SELECT COUNT(*) FILTER (WHERE j.status = 'pending'),
			   COUNT(*) FILTER (WHERE j.status = 'in_progress'),
			   COUNT(*) FILTER (WHERE j.status = 'completed'),
			   COUNT(*) FILTER (WHERE j.status = 'cancelled')
		FROM jobs j
		JOIN business_sites s ON s.id = j.site_id
		WHERE s.business_id = $1
	`
	if err := q.QueryRow(ctx, jobQuery, businessID).Scan(
		&overview.Jobs.Pending, &overview.Jobs.InProgress,
		&overview.Jobs.Completed, &overview.Jobs.Cancelled,
	); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	contractorQuery := `
		SELECT COUNT(DISTINCT sc.contractor_id)
		FROM site_contractors sc
		JOIN business_sites s ON s.id = sc.site_id
		WHERE s.business_id = $1
	`
	if err := q.QueryRow(ctx, contractorQuery, businessID).Scan(&overview.ContractorCount); err != nil {
		return nil, fmt.Errorf("failed to count contractors: %w", err)
	}

	approvalQuery := `
		SELECT COUNT(*)
		FROM profiles
		WHERE user_type IN ('contractor', 'employee')
		  AND is_approved = false AND rejection_date IS NULL
	`
	if err := q.QueryRow(ctx, approvalQuery).Scan(&overview.PendingApprovals); err != nil {
		return nil, fmt.Errorf("failed to count pending approvals: %w", err)
	}

	return &overview, nil
}

// GetContractorOverview implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetContractorOverview(ctx context.Context, contractorID string) (*dashboard.ContractorOverview, error) {
	q := GetQuerier(ctx, r.db)

	var overview dashboard.ContractorOverview

	jobQuery := `
		SELECT COUNT(*) FILTER (WHERE status = 'pending'),
			   COUNT(*) FILTER (WHERE status = 'in_progress'),
			   COUNT(*) FILTER (WHERE status = 'completed'),
			   COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM jobs
		WHERE contractor_id = $1
	`
	if err := q.QueryRow(ctx, jobQuery, contractorID).Scan(
		&overview.Jobs.Pending, &overview.Jobs.InProgress,
		&overview.Jobs.Completed, &overview.Jobs.Cancelled,
	); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	siteQuery := `
		SELECT COUNT(DISTINCT site_id)
		FROM site_contractors
		WHERE contractor_id = $1
	`
	if err := q.QueryRow(ctx, siteQuery, contractorID).Scan(&overview.AssignedSites); err != nil {
		return nil, fmt.Errorf("failed to count assigned sites: %w", err)
	}

	return &overview, nil
}
