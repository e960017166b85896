package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

type memContactRepo struct {
	mu     sync.Mutex
	rows   map[string]dom.Contact
	errAll error
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{rows: map[string]dom.Contact{}}
}

func (m *memContactRepo) Create(_ context.Context, c dom.Contact) (dom.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.NewString()
	m.rows[c.ID] = c
	return c, nil
}

func (m *memContactRepo) GetByID(_ context.Context, userID, id string) (dom.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.UserID != userID {
		return dom.Contact{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *memContactRepo) List(_ context.Context, userID string) ([]dom.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []dom.Contact
	for _, c := range m.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memContactRepo) Update(_ context.Context, userID, id string, patch dom.Contact) (dom.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.UserID != userID {
		return dom.Contact{}, pgx.ErrNoRows
	}
	patch.ID = c.ID
	patch.UserID = c.UserID
	m.rows[id] = patch
	return patch, nil
}

func (m *memContactRepo) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memContactRepo) Count(_ context.Context, userID string) (int, error) {
	if m.errAll != nil {
		return 0, m.errAll
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.rows {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

type memEmailRepo struct {
	mu   sync.Mutex
	rows map[string]dom.Email
}

func newMemEmailRepo() *memEmailRepo {
	return &memEmailRepo{rows: map[string]dom.Email{}}
}

func (m *memEmailRepo) Create(_ context.Context, e dom.Email) (dom.Email, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.NewString()
	m.rows[e.ID] = e
	return e, nil
}

func (m *memEmailRepo) GetByID(_ context.Context, userID, id string) (dom.Email, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok || e.UserID != userID {
		return dom.Email{}, pgx.ErrNoRows
	}
	return e, nil
}

func (m *memEmailRepo) List(_ context.Context, userID string) ([]dom.Email, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []dom.Email
	for _, e := range m.rows {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEmailRepo) MarkResponded(_ context.Context, userID, id string) (dom.Email, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok || e.UserID != userID {
		return dom.Email{}, pgx.ErrNoRows
	}
	e.ResponseReceived = true
	m.rows[id] = e
	return e, nil
}

func (m *memEmailRepo) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok || e.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memEmailRepo) Count(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.rows {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

func TestDashboardStats(t *testing.T) {
	appRepo := newMemApplicationRepo()
	contactRepo := newMemContactRepo()
	emailRepo := newMemEmailRepo()

	apps := NewApplicationService(appRepo, nil)
	contacts := NewContactService(contactRepo)
	emails := NewEmailService(emailRepo)
	svc := NewDashboardService(apps, contacts, emails)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := apps.Create(ctx, dom.Application{
			UserID: "u1", Company: "Acme", Position: "Engineer", JobURL: "https://example.com/jobs/1",
		})
		require.NoError(t, err)
	}
	_, err := contacts.Create(ctx, dom.Contact{UserID: "u1", Name: "Sam Recruiter"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := emails.Create(ctx, dom.Email{UserID: "u1", Subject: "Following up"})
		require.NoError(t, err)
	}
	// Another user's rows must not leak into the counts.
	_, err = contacts.Create(ctx, dom.Contact{UserID: "u2", Name: "Other"})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Applications.Total)
	assert.Equal(t, 1, stats.Contacts)
	assert.Equal(t, 3, stats.Emails)
}

func TestDashboardStatsPropagatesError(t *testing.T) {
	contactRepo := newMemContactRepo()
	contactRepo.errAll = errors.New("pg down")

	svc := NewDashboardService(
		NewApplicationService(newMemApplicationRepo(), nil),
		NewContactService(contactRepo),
		NewEmailService(newMemEmailRepo()),
	)

	_, err := svc.Stats(context.Background(), "u1")
	assert.Error(t, err)
}
