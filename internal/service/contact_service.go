package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
	"github.com/cookie-sid/job-application-tracker/internal/repo"
)

// ContactService handles recruiter contact CRUD.
type ContactService struct {
	repo repo.ContactRepo
}

// NewContactService returns a new ContactService.
func NewContactService(r repo.ContactRepo) *ContactService {
	return &ContactService{repo: r}
}

func (s *ContactService) Create(ctx context.Context, c dom.Contact) (dom.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Status == "" {
		c.Status = dom.ContactActive
	}
	return s.repo.Create(ctx, c)
}

func (s *ContactService) List(ctx context.Context, userID string) ([]dom.Contact, error) {
	return s.repo.List(ctx, userID)
}

func (s *ContactService) GetByID(ctx context.Context, userID, id string) (dom.Contact, error) {
	c, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Contact{}, ErrNotFound
		}
		return dom.Contact{}, err
	}
	return c, nil
}

// ContactPatch carries the optional fields of a partial update.
type ContactPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	Company     *string
	Position    *string
	LinkedinURL *string
	Notes       *string
	Status      *string
}

func (s *ContactService) Update(ctx context.Context, userID, id string, p ContactPatch) (dom.Contact, error) {
	existing, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Contact{}, err
	}
	merged := existing
	if p.Name != nil {
		merged.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		merged.Email = *p.Email
	}
	if p.Phone != nil {
		merged.Phone = *p.Phone
	}
	if p.Company != nil {
		merged.Company = *p.Company
	}
	if p.Position != nil {
		merged.Position = *p.Position
	}
	if p.LinkedinURL != nil {
		merged.LinkedinURL = *p.LinkedinURL
	}
	if p.Notes != nil {
		merged.Notes = *p.Notes
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	c, err := s.repo.Update(ctx, userID, id, merged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Contact{}, ErrNotFound
		}
		return dom.Contact{}, err
	}
	return c, nil
}

func (s *ContactService) Delete(ctx context.Context, userID, id string) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *ContactService) Count(ctx context.Context, userID string) (int, error) {
	return s.repo.Count(ctx, userID)
}
