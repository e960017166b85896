package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

// DashboardService aggregates per-user activity for the dashboard view.
type DashboardService struct {
	applications *ApplicationService
	contacts     *ContactService
	emails       *EmailService
}

// NewDashboardService returns a new DashboardService.
func NewDashboardService(a *ApplicationService, c *ContactService, e *EmailService) *DashboardService {
	return &DashboardService{applications: a, contacts: c, emails: e}
}

// Stats gathers application, contact, and email counts for one user. The
// three lookups are independent and run concurrently.
func (s *DashboardService) Stats(ctx context.Context, userID string) (dom.DashboardStats, error) {
	var stats dom.DashboardStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		apps, err := s.applications.Stats(ctx, userID)
		if err == nil {
			stats.Applications = apps
		}
		return err
	})
	g.Go(func() error {
		n, err := s.contacts.Count(ctx, userID)
		if err == nil {
			stats.Contacts = n
		}
		return err
	})
	g.Go(func() error {
		n, err := s.emails.Count(ctx, userID)
		if err == nil {
			stats.Emails = n
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return dom.DashboardStats{}, err
	}
	return stats, nil
}
