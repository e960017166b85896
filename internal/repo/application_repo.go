package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// ApplicationRepo provides job application persistence. Every operation is
// scoped to the owning user; rows of other users are invisible.
type ApplicationRepo interface {
	Create(ctx context.Context, a dom.Application) (dom.Application, error)
	GetByID(ctx context.Context, userID, id string) (dom.Application, error)
	List(ctx context.Context, userID string) ([]dom.Application, error)
	Update(ctx context.Context, userID, id string, patch dom.Application) (dom.Application, error)
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, userID, q string) ([]dom.Application, error)
	CountByStatus(ctx context.Context, userID string) (map[string]int, error)
}

const applicationColumns = `id, user_id, job_url, company, position, job_description,
		skills_matched, match_percentage, status, applied_date, notes,
		salary_range, location, work_type, created_at, updated_at`

// PGApplicationRepo implements ApplicationRepo with Postgres.
type PGApplicationRepo struct {
	db DB
}

// NewPGApplicationRepo returns a new PGApplicationRepo.
func NewPGApplicationRepo(db DB) *PGApplicationRepo {
	return &PGApplicationRepo{db: db}
}

func (r *PGApplicationRepo) Create(ctx context.Context, a dom.Application) (dom.Application, error) {
	query := `
		INSERT INTO job_applications
			(id, user_id, job_url, company, position, job_description,
			 skills_matched, match_percentage, status, notes, salary_range, location, work_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + applicationColumns
	return scanApplication(r.db.QueryRow(ctx, query,
		uuid.NewString(), a.UserID, a.JobURL, a.Company, a.Position, a.JobDescription,
		a.SkillsMatched, a.MatchPercentage, a.Status, a.Notes, a.SalaryRange, a.Location, a.WorkType))
}

func (r *PGApplicationRepo) GetByID(ctx context.Context, userID, id string) (dom.Application, error) {
	return scanApplication(r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE user_id = $1 AND id = $2`,
		userID, id))
}

func (r *PGApplicationRepo) List(ctx context.Context, userID string) ([]dom.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows)
}

func (r *PGApplicationRepo) Update(ctx context.Context, userID, id string, patch dom.Application) (dom.Application, error) {
	query := `
		UPDATE job_applications
		SET job_url = $3, company = $4, position = $5, job_description = $6,
			skills_matched = $7, match_percentage = $8, status = $9, notes = $10,
			salary_range = $11, location = $12, work_type = $13, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + applicationColumns
	return scanApplication(r.db.QueryRow(ctx, query,
		userID, id, patch.JobURL, patch.Company, patch.Position, patch.JobDescription,
		patch.SkillsMatched, patch.MatchPercentage, patch.Status, patch.Notes,
		patch.SalaryRange, patch.Location, patch.WorkType))
}

func (r *PGApplicationRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM job_applications WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGApplicationRepo) Search(ctx context.Context, userID, q string) ([]dom.Application, error) {
	pattern := "%" + q + "%"
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM job_applications
		 WHERE user_id = $1 AND (company ILIKE $2 OR position ILIKE $2)
		 ORDER BY created_at DESC`,
		userID, pattern)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows)
}

func (r *PGApplicationRepo) CountByStatus(ctx context.Context, userID string) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM job_applications WHERE user_id = $1 GROUP BY status`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func scanApplication(row pgx.Row) (dom.Application, error) {
	var a dom.Application
	err := row.Scan(&a.ID, &a.UserID, &a.JobURL, &a.Company, &a.Position, &a.JobDescription,
		&a.SkillsMatched, &a.MatchPercentage, &a.Status, &a.AppliedDate, &a.Notes,
		&a.SalaryRange, &a.Location, &a.WorkType, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func collectApplications(rows pgx.Rows) ([]dom.Application, error) {
	defer rows.Close()
	var list []dom.Application
	for rows.Next() {
		var a dom.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobURL, &a.Company, &a.Position, &a.JobDescription,
			&a.SkillsMatched, &a.MatchPercentage, &a.Status, &a.AppliedDate, &a.Notes,
			&a.SalaryRange, &a.Location, &a.WorkType, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
