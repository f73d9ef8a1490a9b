package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
)

type contractorRepositoryImpl struct {
	db *database.DB
}

// NewContractorRepository creates a new contractor repository instance
func NewContractorRepository(db *database.DB) contractor.ContractorRepository {
	return &contractorRepositoryImpl{db: db}
}

const contractorColumns = `c.id, c.profile_id, c.company_name, c.service_type, c.location,
		c.rating, c.phone, c.email, c.status, c.created_at, c.updated_at`

func scanContractor(row pgx.Row) (contractor.Contractor, error) {
	var c contractor.Contractor
	err := row.Scan(
		&c.ID, &c.ProfileID, &c.CompanyName, &c.ServiceType, &c.Location,
		&c.Rating, &c.Phone, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) Create(ctx context.Context, c contractor.Contractor) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contractors (profile_id, company_name, service_type, location, phone, email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, profile_id, company_name, service_type, location,
				  rating, phone, email, status, created_at, updated_at
	`

	created, err := scanContractor(q.QueryRow(ctx, query,
		c.ProfileID, c.CompanyName, c.ServiceType, c.Location, c.Phone, c.Email, c.Status,
	))
	if err != nil {
		return contractor.Contractor{}, fmt.Errorf("failed to create contractor: %w", err)
	}

	return created, nil
}

// GetByID implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) GetByID(ctx context.Context, id string) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM contractors c WHERE c.id = $1`, contractorColumns)

	c, err := scanContractor(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contractor.Contractor{}, contractor.ErrContractorNotFound
		}
		return contractor.Contractor{}, fmt.Errorf("failed to get contractor by id: %w", err)
	}

	return c, nil
}

// GetByProfileID implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) GetByProfileID(ctx context.Context, profileID string) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM contractors c WHERE c.profile_id = $1`, contractorColumns)

	c, err := scanContractor(q.QueryRow(ctx, query, profileID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contractor.Contractor{}, contractor.ErrContractorNotFound
		}
		return contractor.Contractor{}, fmt.Errorf("failed to get contractor by profile id: %w", err)
	}

	return c, nil
}

// GetByCompanyName implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) GetByCompanyName(ctx context.Context, name string) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM contractors c WHERE LOWER(c.company_name) = LOWER($1)`, contractorColumns)

	c, err := scanContractor(q.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contractor.Contractor{}, contractor.ErrContractorNotFound
		}
		return contractor.Contractor{}, fmt.Errorf("failed to get contractor by company name: %w", err)
	}

	return c, nil
}

// ExistsByID implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM contractors WHERE id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check contractor exists: %w", err)
	}

	return exists, nil
}

// List implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) List(ctx context.Context, lq contractor.ListQuery) ([]contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM contractors c WHERE 1=1`, contractorColumns)

	args := []interface{}{}
	if lq.ActiveOnly {
		query += " AND c.status = 'active'"
	}
	if lq.ServiceType != nil {
		args = append(args, *lq.ServiceType)
		query += fmt.Sprintf(" AND c.service_type = $%d", len(args))
	}
	if lq.Location != nil {
		args = append(args, "%"+*lq.Location+"%")
		query += fmt.Sprintf(" AND c.location ILIKE $%d", len(args))
	}
	if lq.Search != nil {
		args = append(args, "%"+*lq.Search+"%")
		query += fmt.Sprintf(" AND c.company_name ILIKE $%d", len(args))
	}

	query += " ORDER BY c.rating DESC, c.company_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}
	defer rows.Close()

	var contractors []contractor.Contractor
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contractor: %w", err)
		}
		contractors = append(contractors, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return contractors, nil
}

// Update implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) Update(ctx context.Context, id string, req contractor.UpdateRequest) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contractors
		SET company_name = $1, service_type = $2, location = $3, phone = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, profile_id, company_name, service_type, location,
				  rating, phone, email, status, created_at, updated_at
	`

	c, err := scanContractor(q.QueryRow(ctx, query, req.CompanyName, req.ServiceType, req.Location, req.Phone, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return contractor.Contractor{}, contractor.ErrContractorNotFound
		}
		return contractor.Contractor{}, fmt.Errorf("failed to update contractor: %w", err)
	}

	return c, nil
}

// CreateServiceArea implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) CreateServiceArea(ctx context.Context, area contractor.ServiceArea) (contractor.ServiceArea, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO service_areas (contractor_id, city, postal_code)
		VALUES ($1, $2, $3)
		RETURNING id, contractor_id, city, postal_code, created_at
	`

	var created contractor.ServiceArea
	err := q.QueryRow(ctx, query, area.ContractorID, area.City, area.PostalCode).Scan(
		&created.ID, &created.ContractorID, &created.City, &created.PostalCode, &created.CreatedAt,
	)
	if err != nil {
		return contractor.ServiceArea{}, fmt.Errorf("failed to create service area: %w", err)
	}

	return created, nil
}

// ListServiceAreas implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) ListServiceAreas(ctx context.Context, contractorID string) ([]contractor.ServiceArea, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contractor_id, city, postal_code, created_at
		FROM service_areas
		WHERE contractor_id = $1
		ORDER BY city ASC
	`

	rows, err := q.Query(ctx, query, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service areas: %w", err)
	}
	defer rows.Close()

	var areas []contractor.ServiceArea
	for rows.Next() {
		var a contractor.ServiceArea
		if err := rows.Scan(&a.ID, &a.ContractorID, &a.City, &a.PostalCode, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service area: %w", err)
		}
		areas = append(areas, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return areas, nil
}

// DeleteServiceArea implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) DeleteServiceArea(ctx context.Context, id, contractorID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM service_areas WHERE id = $1 AND contractor_id = $2`

	tag, err := q.Exec(ctx, query, id, contractorID)
	if err != nil {
		return fmt.Errorf("failed to delete service area: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contractor.ErrServiceAreaNotFound
	}

	return nil
}

// CreateLicense implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) CreateLicense(ctx context.Context, lic contractor.License) (contractor.License, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contractor_licenses (contractor_id, name, license_number, expires_at, document_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, contractor_id, name, license_number, expires_at, document_url, created_at
	`

	var created contractor.License
	err := q.QueryRow(ctx, query, lic.ContractorID, lic.Name, lic.LicenseNumber, lic.ExpiresAt, lic.DocumentURL).Scan(
		&created.ID, &created.ContractorID, &created.Name, &created.LicenseNumber,
		&created.ExpiresAt, &created.DocumentURL, &created.CreatedAt,
	)
	if err != nil {
		return contractor.License{}, fmt.Errorf("failed to create license: %w", err)
	}

	return created, nil
}

// ListLicenses implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) ListLicenses(ctx context.Context, contractorID string) ([]contractor.License, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contractor_id, name, license_number, expires_at, document_url, created_at
		FROM contractor_licenses
		WHERE contractor_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	defer rows.Close()

	var licenses []contractor.License
	for rows.Next() {
		var l contractor.License
		if err := rows.Scan(&l.ID, &l.ContractorID, &l.Name, &l.LicenseNumber,
			&l.ExpiresAt, &l.DocumentURL, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan license: %w", err)
		}
		licenses = append(licenses, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return licenses, nil
}

// DeleteLicense implements contractor.ContractorRepository.
func (r *contractorRepositoryImpl) DeleteLicense(ctx context.Context, id, contractorID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM contractor_licenses WHERE id = $1 AND contractor_id = $2`

	tag, err := q.Exec(ctx, query, id, contractorID)
	if err != nil {
		return fmt.Errorf("failed to delete license: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contractor.ErrLicenseNotFound
	}

	return nil
}
