package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `p.id, p.user_id, p.first_name, p.last_name, p.email, p.user_type,
		p.is_approved, p.approval_date, p.approved_by, p.rejection_date, p.rejected_by,
		p.created_at, p.updated_at`

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.UserType,
		&p.IsApproved, &p.ApprovalDate, &p.ApprovedBy, &p.RejectionDate, &p.RejectedBy,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements profile.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	// Business profiles are auto-approved in the same statement so there is
	// no window where a business account exists unapproved.
	query := `
		INSERT INTO profiles (user_id, first_name, last_name, email, user_type, is_approved, approval_date)
		VALUES ($1, $2, $3, $4, $5, $6, CASE WHEN $6 THEN NOW() ELSE NULL END)
		RETURNING id, user_id, first_name, last_name, email, user_type,
				  is_approved, approval_date, approved_by, rejection_date, rejected_by,
				  created_at, updated_at
	`

	created, err := scanProfile(q.QueryRow(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.Email, p.UserType, p.UserType == profile.TypeBusiness,
	))
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return created, nil
}

// GetByID implements profile.ProfileRepository.
func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM profiles p WHERE p.id = $1`, profileColumns)

	p, err := scanProfile(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return p, nil
}

// GetByUserID implements profile.ProfileRepository.
func (r *profileRepositoryImpl) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM profiles p WHERE p.user_id = $1`, profileColumns)

	p, err := scanProfile(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	return p, nil
}

// List implements profile.ProfileRepository.
func (r *profileRepositoryImpl) List(ctx context.Context, lq profile.ListQuery) ([]profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM profiles p
		WHERE p.user_type IN ('contractor', 'employee')
	`, profileColumns)

	args := []interface{}{}
	if lq.UserType != nil {
		args = append(args, string(*lq.UserType))
		query += fmt.Sprintf(" AND p.user_type = $%d", len(args))
	}
	if lq.UnapprovedOnly {
		query += " AND p.is_approved = false"
	}

	// Review screen ordering: unapproved first, then newest first
	query += " ORDER BY p.is_approved ASC, p.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return profiles, nil
}

// Update implements profile.ProfileRepository.
func (r *profileRepositoryImpl) Update(ctx context.Context, id string, req profile.UpdateRequest) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE profiles
		SET first_name = $1, last_name = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, user_id, first_name, last_name, email, user_type,
				  is_approved, approval_date, approved_by, rejection_date, rejected_by,
				  created_at, updated_at
	`

	p, err := scanProfile(q.QueryRow(ctx, query, req.FirstName, req.LastName, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return p, nil
}

// SetApproved implements profile.ProfileRepository.
func (r *profileRepositoryImpl) SetApproved(ctx context.Context, id, approverID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE profiles
		SET is_approved = true, approval_date = NOW(), approved_by = $1,
			rejection_date = NULL, rejected_by = NULL, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, first_name, last_name, email, user_type,
				  is_approved, approval_date, approved_by, rejection_date, rejected_by,
				  created_at, updated_at
	`

	p, err := scanProfile(q.QueryRow(ctx, query, approverID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to approve profile: %w", err)
	}

	return p, nil
}

// SetRejected implements profile.ProfileRepository.
func (r *profileRepositoryImpl) SetRejected(ctx context.Context, id, approverID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE profiles
		SET is_approved = false, approval_date = NULL, approved_by = NULL,
			rejection_date = NOW(), rejected_by = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, first_name, last_name, email, user_type,
				  is_approved, approval_date, approved_by, rejection_date, rejected_by,
				  created_at, updated_at
	`

	p, err := scanProfile(q.QueryRow(ctx, query, approverID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to reject profile: %w", err)
	}

	return p, nil
}
