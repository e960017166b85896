package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
	"github.com/cookie-sid/job-application-tracker/internal/password"
	"github.com/cookie-sid/job-application-tracker/internal/repo"
	"github.com/cookie-sid/job-application-tracker/internal/utils"
	"github.com/cookie-sid/job-application-tracker/internal/validation"
)

// ErrInvalidCredentials covers both "no such account" and "wrong password"
// so a caller cannot enumerate registered emails. The same error is reused
// for a failed current-password check on password change.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken means the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// UserService handles registration, login, and profile mutation.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register validates every field, hashes the password, and creates the
// account. The email is stored normalized; skills start empty. A duplicate
// email maps to ErrEmailTaken — the users table constraint decides, so two
// concurrent registrations cannot both win.
func (s *UserService) Register(ctx context.Context, email, pw, firstName, lastName string) (dom.User, error) {
	email = normalizeEmail(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if verr := validation.Registration(email, pw, firstName, lastName); verr != nil {
		return dom.User{}, verr
	}

	hash, err := password.Hash(pw)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, dom.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Skills:       []string{},
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password and returns the user if
// valid. The password is deliberately not policy-checked here; accounts
// created under older, looser policies must still be able to log in.
func (s *UserService) ValidateCredentials(ctx context.Context, email, pw string) (dom.User, error) {
	email = normalizeEmail(email)
	if email == "" || pw == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !password.Verify(pw, u.PasswordHash) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetProfile returns the stored profile for an authenticated id.
func (s *UserService) GetProfile(ctx context.Context, userID string) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// UpdateProfile mutates the two fields this path allows: firstName and
// skills. Email is the identity key and stays immutable.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, firstName *string, skills *[]string) (dom.User, error) {
	if verr := validation.ProfileUpdate(firstName, skills); verr != nil {
		return dom.User{}, verr
	}
	existing, err := s.GetProfile(ctx, userID)
	if err != nil {
		return dom.User{}, err
	}
	newFirst := existing.FirstName
	if firstName != nil {
		newFirst = strings.TrimSpace(*firstName)
	}
	newSkills := existing.Skills
	if skills != nil {
		newSkills = *skills
	}
	if newSkills == nil {
		newSkills = []string{}
	}
	u, err := s.repo.UpdateProfile(ctx, userID, newFirst, newSkills)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// ChangePassword re-verifies the current password before accepting a new
// one. A valid session token alone is not enough: a stolen token must not
// be able to silently take over the account.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPw, newPw string) error {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !password.Verify(currentPw, u.PasswordHash) {
		return ErrInvalidCredentials
	}
	if verr := validation.NewPassword(newPw); verr != nil {
		return verr
	}
	hash, err := password.Hash(newPw)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
