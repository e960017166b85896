package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
	"github.com/cookie-sid/job-application-tracker/internal/repo"
)

// EmailService manages the application email log. Nothing is ever sent;
// records only track correspondence the user had elsewhere.
type EmailService struct {
	repo repo.EmailRepo
}

// NewEmailService returns a new EmailService.
func NewEmailService(r repo.EmailRepo) *EmailService {
	return &EmailService{repo: r}
}

func (s *EmailService) Create(ctx context.Context, e dom.Email) (dom.Email, error) {
	e.Subject = strings.TrimSpace(e.Subject)
	if e.EmailType == "" {
		e.EmailType = dom.EmailApplication
	}
	return s.repo.Create(ctx, e)
}

func (s *EmailService) List(ctx context.Context, userID string) ([]dom.Email, error) {
	return s.repo.List(ctx, userID)
}

func (s *EmailService) GetByID(ctx context.Context, userID, id string) (dom.Email, error) {
	e, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Email{}, ErrNotFound
		}
		return dom.Email{}, err
	}
	return e, nil
}

// MarkResponded records that the recruiter answered this email.
func (s *EmailService) MarkResponded(ctx context.Context, userID, id string) (dom.Email, error) {
	e, err := s.repo.MarkResponded(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Email{}, ErrNotFound
		}
		return dom.Email{}, err
	}
	return e, nil
}

func (s *EmailService) Delete(ctx context.Context, userID, id string) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *EmailService) Count(ctx context.Context, userID string) (int, error) {
	return s.repo.Count(ctx, userID)
}
