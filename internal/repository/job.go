package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rapidhub/rapidhub/pkg/model"
)

const jobColumns = `id, job_id, employer_name, job_title, job_description, job_country, job_city,
	job_posted_at, job_apply_link, job_employment_type, search_date, is_active, created_at, updated_at`

func scanJob(row pgx.Row) (*model.Job, error) {
	var j model.Job
	err := row.Scan(&j.ID, &j.JobID, &j.EmployerName, &j.JobTitle, &j.JobDescription,
		&j.JobCountry, &j.JobCity, &j.JobPostedAt, &j.JobApplyLink, &j.EmploymentType,
		&j.SearchDate, &j.IsActive, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *Repository) collectJobs(ctx context.Context, q string, args ...any) ([]model.Job, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var out []model.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

// InsertJob persists a new job row. The partial unique index on (job_id)
// WHERE is_active makes the duplicate check atomic with the insert.
func (r *Repository) InsertJob(ctx context.Context, j *model.Job) (*model.Job, error) {
	const q = `INSERT INTO jobs (job_id, employer_name, job_title, job_description, job_country, job_city,
		job_posted_at, job_apply_link, job_employment_type, search_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + jobColumns
	saved, err := scanJob(r.db.QueryRow(ctx, q, j.JobID, j.EmployerName, j.JobTitle, j.JobDescription,
		j.JobCountry, j.JobCity, j.JobPostedAt, j.JobApplyLink, j.EmploymentType,
		j.SearchDate, j.IsActive, j.CreatedAt, j.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return saved, nil
}

// GetActiveJob returns the active row with the given id.
func (r *Repository) GetActiveJob(ctx context.Context, id int64) (*model.Job, error) {
	const q = `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND is_active = true`
	j, err := scanJob(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query job: %w", err)
	}
	return j, nil
}

// UpdateJob overwrites the mutable fields of the active row.
func (r *Repository) UpdateJob(ctx context.Context, id int64, j *model.Job) (*model.Job, error) {
	const q = `UPDATE jobs SET employer_name = $1, job_title = $2, job_description = $3, job_country = $4,
		job_city = $5, job_posted_at = $6, job_apply_link = $7, job_employment_type = $8, updated_at = $9
		WHERE id = $10 AND is_active = true
		RETURNING ` + jobColumns
	saved, err := scanJob(r.db.QueryRow(ctx, q, j.EmployerName, j.JobTitle, j.JobDescription,
		j.JobCountry, j.JobCity, j.JobPostedAt, j.JobApplyLink, j.EmploymentType, j.UpdatedAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return saved, nil
}

// SoftDeleteJob flips is_active off; the row is never removed.
func (r *Repository) SoftDeleteJob(ctx context.Context, id int64, now time.Time) error {
	const q = `UPDATE jobs SET is_active = false, updated_at = $1 WHERE id = $2 AND is_active = true`
	tag, err := r.db.Exec(ctx, q, now, id)
	if err != nil {
		return fmt.Errorf("soft delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RestoreJob reactivates a soft-deleted row. Restoring a row that is
// already active is an error, as is restoring a missing row.
func (r *Repository) RestoreJob(ctx context.Context, id int64, now time.Time) error {
	const qSel = `SELECT is_active FROM jobs WHERE id = $1`
	var active bool
	if err := r.db.QueryRow(ctx, qSel, id).Scan(&active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("query job state: %w", err)
	}
	if active {
		return ErrAlreadyActive
	}

	const q = `UPDATE jobs SET is_active = true, updated_at = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, q, now, id); err != nil {
		return fmt.Errorf("restore job: %w", err)
	}
	return nil
}

func (r *Repository) ListActiveJobs(ctx context.Context) ([]model.Job, error) {
	const q = `SELECT ` + jobColumns + ` FROM jobs WHERE is_active = true ORDER BY created_at DESC`
	return r.collectJobs(ctx, q)
}

func (r *Repository) FindJobsByTitle(ctx context.Context, title string) ([]model.Job, error) {
	const q = `SELECT ` + jobColumns + ` FROM jobs
		WHERE job_title ILIKE '%' || $1 || '%' AND is_active = true ORDER BY created_at DESC`
	return r.collectJobs(ctx, q, title)
}

func (r *Repository) FindJobsByEmployer(ctx context.Context, employer string) ([]model.Job, error) {
	const q = `SELECT ` + jobColumns + ` FROM jobs
		WHERE employer_name ILIKE '%' || $1 || '%' AND is_active = true ORDER BY created_at DESC`
	return r.collectJobs(ctx, q, employer)
}

func (r *Repository) FindJobsByCountry(ctx context.Context, country string) ([]model.Job, error) {
	const q = `SELECT ` + jobColumns + ` FROM jobs
		WHERE LOWER(job_country) = LOWER($1) AND is_active = true ORDER BY created_at DESC`
	return r.collectJobs(ctx, q, country)
}

func (r *Repository) FindJobsByCity(ctx context.Context, city string) ([]model.Job, error) {
	const q = `SELECT ` + jobColumns + ` FROM jobs
		WHERE LOWER(job_city) = LOWER($1) AND is_active = true ORDER BY created_at DESC`
	return r.collectJobs(ctx, q, city)
}
