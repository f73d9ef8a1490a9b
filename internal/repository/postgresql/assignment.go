package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/assignment"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

// NewAssignmentRepository creates a new assignment repository instance
func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func scanAssignment(row pgx.Row) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := row.Scan(&a.ID, &a.SiteID, &a.ContractorID, &a.AccessLevel, &a.CreatedAt)
	return a, err
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO site_contractors (site_id, contractor_id, access_level)
		VALUES ($1, $2, $3)
		RETURNING id, site_id, contractor_id, access_level, created_at
	`

	created, err := scanAssignment(q.QueryRow(ctx, query, a.SiteID, a.ContractorID, a.AccessLevel))
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return created, nil
}

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, contractor_id, access_level, created_at
		FROM site_contractors
		WHERE id = $1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment by id: %w", err)
	}

	return a, nil
}

// GetBySiteAndContractor implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetBySiteAndContractor(ctx context.Context, siteID, contractorID string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	// Oldest row wins when historical duplicates exist.
	query := `
		SELECT id, site_id, contractor_id, access_level, created_at
		FROM site_contractors
		WHERE site_id = $1 AND contractor_id = $2
		ORDER BY created_at ASC
		LIMIT 1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, siteID, contractorID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment by site and contractor: %w", err)
	}

	return a, nil
}

// ListBySiteIDs implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListBySiteIDs(ctx context.Context, siteIDs []string) ([]assignment.AssignmentWithName, error) {
	if len(siteIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sc.id, sc.site_id, sc.contractor_id, sc.access_level, sc.created_at, c.company_name
		FROM site_contractors sc
		JOIN contractors c ON c.id = sc.contractor_id
		WHERE sc.site_id = ANY($1)
		ORDER BY sc.created_at ASC
	`

	rows, err := q.Query(ctx, query, siteIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.AssignmentWithName
	for rows.Next() {
		var a assignment.AssignmentWithName
		if err := rows.Scan(&a.ID, &a.SiteID, &a.ContractorID, &a.AccessLevel,
			&a.CreatedAt, &a.ContractorName); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}

// UpdateAccessLevel implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) UpdateAccessLevel(ctx context.Context, id string, level assignment.AccessLevel) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE site_contractors
		SET access_level = $1
		WHERE id = $2
		RETURNING id, site_id, contractor_id, access_level, created_at
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, level, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to update assignment access level: %w", err)
	}

	return a, nil
}

// Delete implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM site_contractors WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}
