package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// UserRepo provides user persistence. Email uniqueness is enforced by the
// users table constraint, not checked here; concurrent inserts of the same
// email surface as a unique violation for exactly one of them.
type UserRepo interface {
	Create(ctx context.Context, u dom.User) (dom.User, error)
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	GetByID(ctx context.Context, id string) (dom.User, error)
	UpdateProfile(ctx context.Context, id, firstName string, skills []string) (dom.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

const userColumns = `id, email, password_hash, first_name, last_name, skills, resume_url, created_at, updated_at`

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db DB
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db DB) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, skills)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query,
		uuid.NewString(), u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Skills))
}

// GetByEmail returns the user with the given (already normalized) email.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// GetByID returns the user by id.
func (r *PGUserRepo) GetByID(ctx context.Context, id string) (dom.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// UpdateProfile writes the mutable profile fields and refreshes updated_at.
func (r *PGUserRepo) UpdateProfile(ctx context.Context, id, firstName string, skills []string) (dom.User, error) {
	query := `
		UPDATE users SET first_name = $2, skills = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, id, firstName, skills))
}

// UpdatePassword replaces the stored hash and refreshes updated_at.
func (r *PGUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanUser(row pgx.Row) (dom.User, error) {
	var u dom.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Skills, &u.ResumeURL, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
