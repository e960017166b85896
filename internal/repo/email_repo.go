package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// EmailRepo provides the application email log, scoped per user.
type EmailRepo interface {
	Create(ctx context.Context, e dom.Email) (dom.Email, error)
	GetByID(ctx context.Context, userID, id string) (dom.Email, error)
	List(ctx context.Context, userID string) ([]dom.Email, error)
	MarkResponded(ctx context.Context, userID, id string) (dom.Email, error)
	Delete(ctx context.Context, userID, id string) error
	Count(ctx context.Context, userID string) (int, error)
}

const emailColumns = `id, user_id, application_id, recruiter_id, subject, body, sent_date,
		response_received, response_date, follow_up_scheduled, email_type, created_at, updated_at`

// PGEmailRepo implements EmailRepo with Postgres.
type PGEmailRepo struct {
	db DB
}

// NewPGEmailRepo returns a new PGEmailRepo.
func NewPGEmailRepo(db DB) *PGEmailRepo {
	return &PGEmailRepo{db: db}
}

func (r *PGEmailRepo) Create(ctx context.Context, e dom.Email) (dom.Email, error) {
	query := `
		INSERT INTO application_emails
			(id, user_id, application_id, recruiter_id, subject, body, email_type, follow_up_scheduled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + emailColumns
	return scanEmail(r.db.QueryRow(ctx, query,
		uuid.NewString(), e.UserID, e.ApplicationID, e.RecruiterID, e.Subject, e.Body,
		e.EmailType, e.FollowUpScheduled))
}

func (r *PGEmailRepo) GetByID(ctx context.Context, userID, id string) (dom.Email, error) {
	return scanEmail(r.db.QueryRow(ctx,
		`SELECT `+emailColumns+` FROM application_emails WHERE user_id = $1 AND id = $2`,
		userID, id))
}

func (r *PGEmailRepo) List(ctx context.Context, userID string) ([]dom.Email, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+emailColumns+` FROM application_emails WHERE user_id = $1 ORDER BY sent_date DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Email
	for rows.Next() {
		var e dom.Email
		if err := rows.Scan(&e.ID, &e.UserID, &e.ApplicationID, &e.RecruiterID, &e.Subject,
			&e.Body, &e.SentDate, &e.ResponseReceived, &e.ResponseDate, &e.FollowUpScheduled,
			&e.EmailType, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *PGEmailRepo) MarkResponded(ctx context.Context, userID, id string) (dom.Email, error) {
	query := `
		UPDATE application_emails
		SET response_received = TRUE, response_date = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + emailColumns
	return scanEmail(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGEmailRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM application_emails WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGEmailRepo) Count(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM application_emails WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func scanEmail(row pgx.Row) (dom.Email, error) {
	var e dom.Email
	err := row.Scan(&e.ID, &e.UserID, &e.ApplicationID, &e.RecruiterID, &e.Subject,
		&e.Body, &e.SentDate, &e.ResponseReceived, &e.ResponseDate, &e.FollowUpScheduled,
		&e.EmailType, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}
