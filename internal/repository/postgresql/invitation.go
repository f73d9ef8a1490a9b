package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/invitation"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
)

type invitationRepositoryImpl struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation repository instance
func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

const invitationColumns = `i.id, i.email, i.token, i.invited_by, i.status,
		i.expires_at, i.accepted_at, i.created_at, i.updated_at`

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID, &inv.Email, &inv.Token, &inv.InvitedBy, &inv.Status,
		&inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (email, token, invited_by, status, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, token, invited_by, status, expires_at, accepted_at, created_at, updated_at
	`

	created, err := scanInvitation(q.QueryRow(ctx, query,
		inv.Email, inv.Token, inv.InvitedBy, inv.Status, inv.ExpiresAt,
	))
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	return created, nil
}

// GetByID implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByID(ctx context.Context, id string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM invitations i WHERE i.id = $1`, invitationColumns)

	inv, err := scanInvitation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by id: %w", err)
	}

	return inv, nil
}

// GetPendingByTokenAndEmail implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetPendingByTokenAndEmail(ctx context.Context, token, email string) (invitation.InvitationWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, p.first_name || ' ' || p.last_name
		FROM invitations i
		JOIN profiles p ON p.id = i.invited_by
		WHERE i.token = $1 AND LOWER(i.email) = LOWER($2) AND i.status = 'pending'
	`, invitationColumns)

	var inv invitation.InvitationWithDetails
	err := q.QueryRow(ctx, query, token, email).Scan(
		&inv.ID, &inv.Email, &inv.Token, &inv.InvitedBy, &inv.Status,
		&inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.InviterName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.InvitationWithDetails{}, invitation.ErrInvitationNotFound
		}
		return invitation.InvitationWithDetails{}, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return inv, nil
}

// ExistsPendingByEmail implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ExistsPendingByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM invitations
			WHERE LOWER(email) = LOWER($1) AND status = 'pending'
			  AND (expires_at IS NULL OR expires_at > NOW())
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending invitation: %w", err)
	}

	return exists, nil
}

// ListByInviter implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ListByInviter(ctx context.Context, inviterID string) ([]invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM invitations i
		WHERE i.invited_by = $1
		ORDER BY i.created_at DESC
	`, invitationColumns)

	rows, err := q.Query(ctx, query, inviterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []invitation.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// MarkAccepted implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) MarkAccepted(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	// Conditional on pending status so a concurrent acceptance of the same
	// token loses here instead of silently double-consuming it.
	query := `
		UPDATE invitations
		SET status = 'accepted', accepted_at = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invitation.ErrInvitationAlreadyUsed
	}

	return nil
}

// ExpirePending implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitations
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND expires_at IS NOT NULL AND expires_at <= $1
	`

	tag, err := q.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire invitations: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM invitations WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invitation.ErrInvitationNotFound
	}

	return nil
}
