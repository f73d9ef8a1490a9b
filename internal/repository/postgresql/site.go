package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
)

type siteRepositoryImpl struct {
	db *database.DB
}

// NewSiteRepository creates a new site repository instance
func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepositoryImpl{db: db}
}

const siteColumns = `s.id, s.business_id, s.name, s.address, s.compliance_status, s.created_at, s.updated_at`

func scanSite(row pgx.Row) (site.Site, error) {
	var s site.Site
	err := row.Scan(
		&s.ID, &s.BusinessID, &s.Name, &s.Address, &s.ComplianceStatus,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements site.SiteRepository.
func (r *siteRepositoryImpl) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_sites (business_id, name, address, compliance_status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, business_id, name, address, compliance_status, created_at, updated_at
	`

	created, err := scanSite(q.QueryRow(ctx, query, s.BusinessID, s.Name, s.Address, s.ComplianceStatus))
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return created, nil
}

// GetByID implements site.SiteRepository.
func (r *siteRepositoryImpl) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM business_sites s WHERE s.id = $1`, siteColumns)

	s, err := scanSite(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site by id: %w", err)
	}

	return s, nil
}

// ListByBusiness implements site.SiteRepository.
func (r *siteRepositoryImpl) ListByBusiness(ctx context.Context, businessID string) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM business_sites s
		WHERE s.business_id = $1
		ORDER BY s.created_at DESC
	`, siteColumns)

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sites, nil
}

// Update implements site.SiteRepository.
func (r *siteRepositoryImpl) Update(ctx context.Context, id string, req site.UpdateRequest) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE business_sites
		SET name = $1, address = $2,
			compliance_status = COALESCE($3, compliance_status),
			updated_at = NOW()
		WHERE id = $4
		RETURNING id, business_id, name, address, compliance_status, created_at, updated_at
	`

	s, err := scanSite(q.QueryRow(ctx, query, req.Name, req.Address, req.ComplianceStatus, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to update site: %w", err)
	}

	return s, nil
}

// Delete implements site.SiteRepository.
func (r *siteRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM business_sites WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}

// CreateRequirements implements site.SiteRepository.
func (r *siteRepositoryImpl) CreateRequirements(ctx context.Context, reqs []site.Requirement) error {
	if len(reqs) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO site_requirements (site_id, name, description, status)
		VALUES ($1, $2, $3, $4)
	`

	for _, req := range reqs {
		if _, err := q.Exec(ctx, query, req.SiteID, req.Name, req.Description, req.Status); err != nil {
			return fmt.Errorf("failed to create site requirement: %w", err)
		}
	}

	return nil
}

// ListRequirements implements site.SiteRepository.
func (r *siteRepositoryImpl) ListRequirements(ctx context.Context, siteID string) ([]site.Requirement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, name, description, status, document_url, created_at, updated_at
		FROM site_requirements
		WHERE site_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list site requirements: %w", err)
	}
	defer rows.Close()

	var reqs []site.Requirement
	for rows.Next() {
		var req site.Requirement
		if err := rows.Scan(&req.ID, &req.SiteID, &req.Name, &req.Description,
			&req.Status, &req.DocumentURL, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site requirement: %w", err)
		}
		reqs = append(reqs, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reqs, nil
}

// UpdateRequirement implements site.SiteRepository.
func (r *siteRepositoryImpl) UpdateRequirement(ctx context.Context, id, siteID string, req site.UpdateRequirementRequest) (site.Requirement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE site_requirements
		SET status = $1, document_url = COALESCE($2, document_url), updated_at = NOW()
		WHERE id = $3 AND site_id = $4
		RETURNING id, site_id, name, description, status, document_url, created_at, updated_at
	`

	var updated site.Requirement
	err := q.QueryRow(ctx, query, req.Status, req.DocumentURL, id, siteID).Scan(
		&updated.ID, &updated.SiteID, &updated.Name, &updated.Description,
		&updated.Status, &updated.DocumentURL, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return site.Requirement{}, site.ErrRequirementNotFound
		}
		return site.Requirement{}, fmt.Errorf("failed to update site requirement: %w", err)
	}

	return updated, nil
}
