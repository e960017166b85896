package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// ContactRepo provides recruiter contact persistence, scoped per user.
type ContactRepo interface {
	Create(ctx context.Context, c dom.Contact) (dom.Contact, error)
	GetByID(ctx context.Context, userID, id string) (dom.Contact, error)
	List(ctx context.Context, userID string) ([]dom.Contact, error)
	Update(ctx context.Context, userID, id string, patch dom.Contact) (dom.Contact, error)
	Delete(ctx context.Context, userID, id string) error
	Count(ctx context.Context, userID string) (int, error)
}

const contactColumns = `id, user_id, name, email, phone, company, position, linkedin_url,
		notes, status, last_contact_date, follow_up_reminder, created_at, updated_at`

// PGContactRepo implements ContactRepo with Postgres.
type PGContactRepo struct {
	db DB
}

// NewPGContactRepo returns a new PGContactRepo.
func NewPGContactRepo(db DB) *PGContactRepo {
	return &PGContactRepo{db: db}
}

func (r *PGContactRepo) Create(ctx context.Context, c dom.Contact) (dom.Contact, error) {
	query := `
		INSERT INTO recruiter_contacts
			(id, user_id, name, email, phone, company, position, linkedin_url, notes, status, follow_up_reminder)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + contactColumns
	return scanContact(r.db.QueryRow(ctx, query,
		uuid.NewString(), c.UserID, c.Name, c.Email, c.Phone, c.Company, c.Position,
		c.LinkedinURL, c.Notes, c.Status, c.FollowUpReminder))
}

func (r *PGContactRepo) GetByID(ctx context.Context, userID, id string) (dom.Contact, error) {
	return scanContact(r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM recruiter_contacts WHERE user_id = $1 AND id = $2`,
		userID, id))
}

func (r *PGContactRepo) List(ctx context.Context, userID string) ([]dom.Contact, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+` FROM recruiter_contacts WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Contact
	for rows.Next() {
		var c dom.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company,
			&c.Position, &c.LinkedinURL, &c.Notes, &c.Status, &c.LastContactDate,
			&c.FollowUpReminder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGContactRepo) Update(ctx context.Context, userID, id string, patch dom.Contact) (dom.Contact, error) {
	query := `
		UPDATE recruiter_contacts
		SET name = $3, email = $4, phone = $5, company = $6, position = $7,
			linkedin_url = $8, notes = $9, status = $10, last_contact_date = $11,
			follow_up_reminder = $12, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + contactColumns
	return scanContact(r.db.QueryRow(ctx, query,
		userID, id, patch.Name, patch.Email, patch.Phone, patch.Company, patch.Position,
		patch.LinkedinURL, patch.Notes, patch.Status, patch.LastContactDate, patch.FollowUpReminder))
}

func (r *PGContactRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM recruiter_contacts WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGContactRepo) Count(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM recruiter_contacts WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func scanContact(row pgx.Row) (dom.Contact, error) {
	var c dom.Contact
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company,
		&c.Position, &c.LinkedinURL, &c.Notes, &c.Status, &c.LastContactDate,
		&c.FollowUpReminder, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
