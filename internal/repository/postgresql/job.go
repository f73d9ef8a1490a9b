package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
)

type jobRepositoryImpl struct {
	db *database.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `j.id, j.site_id, j.contractor_id, j.service_type, j.title, j.description,
		j.status, j.priority, j.attachment_url, j.created_at, j.updated_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.SiteID, &j.ContractorID, &j.ServiceType, &j.Title, &j.Description,
		&j.Status, &j.Priority, &j.AttachmentURL, &j.CreatedAt, &j.UpdatedAt,
	)
	return j, err
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (site_id, contractor_id, service_type, title, description, status, priority, attachment_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, site_id, contractor_id, service_type, title, description,
				  status, priority, attachment_url, created_at, updated_at
	`

	created, err := scanJob(q.QueryRow(ctx, query,
		j.SiteID, j.ContractorID, j.ServiceType, j.Title, j.Description, j.Status, j.Priority, j.AttachmentURL,
	))
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return created, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM jobs j WHERE j.id = $1`, jobColumns)

	j, err := scanJob(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job by id: %w", err)
	}

	return j, nil
}

// ListBySite implements job.JobRepository.
func (r *jobRepositoryImpl) ListBySite(ctx context.Context, siteID string) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM jobs j
		WHERE j.site_id = $1
		ORDER BY j.created_at DESC
	`, jobColumns)

	return r.queryJobs(ctx, q, query, siteID)
}

// ListByContractor implements job.JobRepository.
func (r *jobRepositoryImpl) ListByContractor(ctx context.Context, contractorID string) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM jobs j
		WHERE j.contractor_id = $1
		ORDER BY j.created_at DESC
	`, jobColumns)

	return r.queryJobs(ctx, q, query, contractorID)
}

func (r *jobRepositoryImpl) queryJobs(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]job.Job, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return jobs, nil
}

// Update implements job.JobRepository.
func (r *jobRepositoryImpl) Update(ctx context.Context, id string, req job.UpdateRequest) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET title = $1, description = $2, service_type = $3, priority = $4,
			attachment_url = COALESCE($5, attachment_url), updated_at = NOW()
		WHERE id = $6
		RETURNING id, site_id, contractor_id, service_type, title, description,
				  status, priority, attachment_url, created_at, updated_at
	`

	j, err := scanJob(q.QueryRow(ctx, query,
		req.Title, req.Description, req.ServiceType, req.Priority, req.AttachmentURL, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to update job: %w", err)
	}

	return j, nil
}

// UpdateStatus implements job.JobRepository.
func (r *jobRepositoryImpl) UpdateStatus(ctx context.Context, id string, status job.Status) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, site_id, contractor_id, service_type, title, description,
				  status, priority, attachment_url, created_at, updated_at
	`

	j, err := scanJob(q.QueryRow(ctx, query, status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to update job status: %w", err)
	}

	return j, nil
}

// Delete implements job.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM jobs WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// ContractorRefsBySiteIDs implements job.JobRepository.
func (r *jobRepositoryImpl) ContractorRefsBySiteIDs(ctx context.Context, siteIDs []string) ([]job.ContractorRef, error) {
	if len(siteIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT j.site_id, j.contractor_id, c.company_name
		FROM jobs j
		JOIN contractors c ON c.id = j.contractor_id
		WHERE j.site_id = ANY($1) AND j.contractor_id IS NOT NULL
	`

	rows, err := q.Query(ctx, query, siteIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list job contractor refs: %w", err)
	}
	defer rows.Close()

	var refs []job.ContractorRef
	for rows.Next() {
		var ref job.ContractorRef
		if err := rows.Scan(&ref.SiteID, &ref.ContractorID, &ref.ContractorName); err != nil {
			return nil, fmt.Errorf("failed to scan contractor ref: %w", err)
		}
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return refs, nil
}
