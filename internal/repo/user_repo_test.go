package repo

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

func userRows(u dom.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "email", "password_hash", "first_name", "last_name",
		"skills", "resume_url", "created_at", "updated_at",
	}).AddRow(u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.Skills, u.ResumeURL, u.CreatedAt, u.UpdatedAt)
}

func TestPGUserRepoCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	stored := dom.User{
		ID:           "8a2b7c1e-0000-0000-0000-000000000001",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Skills:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// The id is generated inside Create, so only its presence is asserted.
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), stored.Email, stored.PasswordHash, stored.FirstName, stored.LastName, stored.Skills).
		WillReturnRows(userRows(stored))

	repo := NewPGUserRepo(mock)
	got, err := repo.Create(context.Background(), dom.User{
		Email:        stored.Email,
		PasswordHash: stored.PasswordHash,
		FirstName:    stored.FirstName,
		LastName:     stored.LastName,
		Skills:       []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.Email, got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGUserRepoGetByEmailNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	repo := NewPGUserRepo(mock)
	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGUserRepoUpdateProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	stored := dom.User{
		ID:           "8a2b7c1e-0000-0000-0000-000000000001",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "Grace",
		LastName:     "Lovelace",
		Skills:       []string{"Go"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	mock.ExpectQuery(`UPDATE users SET first_name`).
		WithArgs(stored.ID, "Grace", []string{"Go"}).
		WillReturnRows(userRows(stored))

	repo := NewPGUserRepo(mock)
	got, err := repo.UpdateProfile(context.Background(), stored.ID, "Grace", []string{"Go"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, []string{"Go"}, got.Skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGUserRepoUpdatePasswordMissingUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE users SET password_hash`).
		WithArgs("missing-id", "$2a$10$newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewPGUserRepo(mock)
	err = repo.UpdatePassword(context.Background(), "missing-id", "$2a$10$newhash")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
