package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

// DashboardCounts are the headline numbers on the staff dashboard.
// ActiveGroups and ClassesToday are counted within one MaxPageSize page.
type DashboardCounts struct {
	Students     int
	Guardians    int
	Groups       int
	ActiveGroups int
	Classes      int
	ClassesToday int
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Repos  OptionRepos
	Logger *slog.Logger
}

// DashboardService computes dashboard counters.
type DashboardService struct {
	repos  OptionRepos
	logger *slog.Logger
	flight singleflight.Group
	now    func() time.Time
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	r := opts.Repos
	if r.Students == nil || r.Groups == nil || r.Guardians == nil || r.Classes == nil {
		panic("dashboard requires student, group, guardian and class repositories")
	}
	return &DashboardService{repos: r, logger: componentLogger(opts.Logger, "dashboard_service"), now: time.Now}
}

// Counts fetches all counters concurrently. Concurrent callers share one in-flight computation.
func (s *DashboardService) Counts(ctx context.Context) (*DashboardCounts, error) {
	ch := s.flight.DoChan("counts", func() (any, error) {
		// Detached so one caller leaving does not fail the others sharing the call.
		return s.fetch(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		counts := *res.Val.(*DashboardCounts)
		return &counts, nil
	}
}

func (s *DashboardService) fetch(ctx context.Context) (*DashboardCounts, error) {
	var c DashboardCounts
	probe := academy.PageRequest{Page: 0, Size: 1}
	wide := academy.FirstPage(academy.MaxPageSize)
	today := s.now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.repos.Students.List(gctx, probe)
		if err != nil {
			return err
		}
		c.Students = page.TotalElements
		return nil
	})
	g.Go(func() error {
		page, err := s.repos.Guardians.List(gctx, probe)
		if err != nil {
			return err
		}
		c.Guardians = page.TotalElements
		return nil
	})
	g.Go(func() error {
		page, err := s.repos.Groups.List(gctx, wide)
		if err != nil {
			return err
		}
		c.Groups = page.TotalElements
		for _, gr := range page.Content {
			if gr.Active {
				c.ActiveGroups++
			}
		}
		return nil
	})
	g.Go(func() error {
		page, err := s.repos.Classes.List(gctx, wide)
		if err != nil {
			return err
		}
		c.Classes = page.TotalElements
		for _, cl := range page.Content {
			if sameDay(cl.Date.Time, today) && cl.Status != academy.ClassCanceled {
				c.ClassesToday++
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "dashboard counters failed", "error", err)
		return nil, err
	}
	return &c, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
