package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/cookie-sid/job-application-tracker/internal/cache"
	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
	"github.com/cookie-sid/job-application-tracker/internal/repo"
)

// ErrNotFound means the requested record does not exist for this user.
var ErrNotFound = errors.New("not found")

// ApplicationService handles job application CRUD with read-through caching.
type ApplicationService struct {
	repo  repo.ApplicationRepo
	cache *cache.ApplicationCache
	sf    singleflight.Group
}

// NewApplicationService creates an ApplicationService. If c is nil, caching
// is disabled.
func NewApplicationService(r repo.ApplicationRepo, c *cache.ApplicationCache) *ApplicationService {
	return &ApplicationService{repo: r, cache: c}
}

func (s *ApplicationService) Create(ctx context.Context, a dom.Application) (dom.Application, error) {
	a.Company = strings.TrimSpace(a.Company)
	a.Position = strings.TrimSpace(a.Position)
	if a.Status == "" {
		a.Status = dom.StatusApplied
	}
	if a.WorkType == "" {
		a.WorkType = "full-time"
	}
	if a.SkillsMatched == nil {
		a.SkillsMatched = []string{}
	}
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return dom.Application{}, err
	}
	s.invalidateCache(ctx, a.UserID)
	return created, nil
}

func (s *ApplicationService) List(ctx context.Context, userID string) ([]dom.Application, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list:"+userID, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Application), nil
	}
	return s.repo.List(ctx, userID)
}

func (s *ApplicationService) GetByID(ctx context.Context, userID, id string) (dom.Application, error) {
	a, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Application{}, ErrNotFound
		}
		return dom.Application{}, err
	}
	return a, nil
}

// ApplicationPatch carries the optional fields of a partial update. Nil
// pointers leave the stored value untouched.
type ApplicationPatch struct {
	JobURL          *string
	Company         *string
	Position        *string
	JobDescription  *string
	SkillsMatched   *[]string
	MatchPercentage *int
	Status          *string
	Notes           *string
	SalaryRange     *string
	Location        *string
	WorkType        *string
}

func (s *ApplicationService) Update(ctx context.Context, userID, id string, p ApplicationPatch) (dom.Application, error) {
	existing, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Application{}, err
	}
	merged := existing
	if p.JobURL != nil {
		merged.JobURL = strings.TrimSpace(*p.JobURL)
	}
	if p.Company != nil {
		merged.Company = strings.TrimSpace(*p.Company)
	}
	if p.Position != nil {
		merged.Position = strings.TrimSpace(*p.Position)
	}
	if p.JobDescription != nil {
		merged.JobDescription = *p.JobDescription
	}
	if p.SkillsMatched != nil {
		merged.SkillsMatched = *p.SkillsMatched
	}
	if p.MatchPercentage != nil {
		merged.MatchPercentage = p.MatchPercentage
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	if p.Notes != nil {
		merged.Notes = *p.Notes
	}
	if p.SalaryRange != nil {
		merged.SalaryRange = *p.SalaryRange
	}
	if p.Location != nil {
		merged.Location = *p.Location
	}
	if p.WorkType != nil {
		merged.WorkType = *p.WorkType
	}
	a, err := s.repo.Update(ctx, userID, id, merged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Application{}, ErrNotFound
		}
		return dom.Application{}, err
	}
	s.invalidateCache(ctx, userID)
	return a, nil
}

func (s *ApplicationService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *ApplicationService) Search(ctx context.Context, userID, q string) ([]dom.Application, error) {
	q = strings.TrimSpace(q)
	if s.cache != nil {
		key := "search:" + userID + ":" + strings.ToLower(q)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetSearch(ctx, userID, q); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.Search(ctx, userID, q)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetSearch(ctx, userID, q, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Application), nil
	}
	return s.repo.Search(ctx, userID, q)
}

// Stats returns the per-status counts for a user. Statuses with no rows are
// reported as zero so the dashboard always sees the full set.
func (s *ApplicationService) Stats(ctx context.Context, userID string) (dom.ApplicationStats, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("stats:"+userID, func() (interface{}, error) {
			if stats, err := s.cache.GetStats(ctx, userID); err == nil && stats != nil {
				return *stats, nil
			}
			stats, err := s.computeStats(ctx, userID)
			if err != nil {
				return dom.ApplicationStats{}, err
			}
			_ = s.cache.SetStats(ctx, userID, stats)
			return stats, nil
		})
		if err != nil {
			return dom.ApplicationStats{}, err
		}
		return v.(dom.ApplicationStats), nil
	}
	return s.computeStats(ctx, userID)
}

func (s *ApplicationService) computeStats(ctx context.Context, userID string) (dom.ApplicationStats, error) {
	counts, err := s.repo.CountByStatus(ctx, userID)
	if err != nil {
		return dom.ApplicationStats{}, err
	}
	stats := dom.ApplicationStats{ByStatus: make(map[string]int)}
	for _, status := range []string{dom.StatusApplied, dom.StatusInterview, dom.StatusRejected, dom.StatusAccepted, dom.StatusWithdrawn} {
		stats.ByStatus[status] = counts[status]
		stats.Total += counts[status]
	}
	return stats, nil
}

func (s *ApplicationService) invalidateCache(ctx context.Context, userID string) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx, userID)
	}
}
