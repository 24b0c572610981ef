package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// GuardianServiceOptions groups dependencies for GuardianService.
type GuardianServiceOptions struct {
	Guardians core.GuardianRepository // Required
	Logger    *slog.Logger
}

// GuardianService handles guardian records.
type GuardianService struct {
	guardians core.GuardianRepository
	logger    *slog.Logger
}

// NewGuardianService constructs a new GuardianService.
func NewGuardianService(opts GuardianServiceOptions) *GuardianService {
	if opts.Guardians == nil {
		panic("GuardianRepository is required")
	}
	return &GuardianService{guardians: opts.Guardians, logger: componentLogger(opts.Logger, "guardian_service")}
}

// List returns one server page of guardians.
func (s *GuardianService) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Guardian], error) {
	return s.guardians.List(ctx, req)
}

// Get returns one guardian.
func (s *GuardianService) Get(ctx context.Context, id int64) (*academy.Guardian, error) {
	if err := requireID(id, "guardian"); err != nil {
		return nil, err
	}
	return s.guardians.GetByID(ctx, id)
}

// GuardianDetail is a guardian with the linked students.
type GuardianDetail struct {
	Guardian    *academy.Guardian
	Students    []academy.StudentRef
	StudentsErr error
}

// Detail fetches a guardian and the linked students concurrently.
func (s *GuardianService) Detail(ctx context.Context, id int64) (*GuardianDetail, error) {
	if err := requireID(id, "guardian"); err != nil {
		return nil, err
	}
	detail := &GuardianDetail{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		gd, err := s.guardians.GetByID(gctx, id)
		detail.Guardian = gd
		return err
	})
	g.Go(func() error {
		detail.Students, detail.StudentsErr = s.guardians.Students(gctx, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if detail.StudentsErr != nil && len(detail.Guardian.Students) > 0 {
		// The embedded summary is good enough when the sub-resource call fails.
		detail.Students, detail.StudentsErr = detail.Guardian.Students, nil
	}
	return detail, nil
}

// Create registers a guardian.
func (s *GuardianService) Create(ctx context.Context, req academy.GuardianRequest) (*academy.Guardian, error) {
	req = normalizeGuardian(req)
	if err := validateGuardian(req); err != nil {
		return nil, err
	}
	gd, err := s.guardians.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "guardian created", "guardian_id", gd.ID)
	return gd, nil
}

// Update replaces a guardian record.
func (s *GuardianService) Update(ctx context.Context, id int64, req academy.GuardianRequest) (*academy.Guardian, error) {
	if err := requireID(id, "guardian"); err != nil {
		return nil, err
	}
	req = normalizeGuardian(req)
	if err := validateGuardian(req); err != nil {
		return nil, err
	}
	return s.guardians.Update(ctx, id, req)
}

// Delete removes a guardian.
func (s *GuardianService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "guardian"); err != nil {
		return err
	}
	if err := s.guardians.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "guardian deleted", "guardian_id", id)
	return nil
}

func normalizeGuardian(req academy.GuardianRequest) academy.GuardianRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Document = strings.TrimSpace(req.Document)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Relationship = strings.ToUpper(strings.TrimSpace(req.Relationship))
	return req
}

func validateGuardian(req academy.GuardianRequest) error {
	if req.Name == "" {
		return apperrors.ValidationField("nome", "Name is required.")
	}
	if req.Relationship != "" && !slices.Contains(academy.Relationships(), req.Relationship) {
		return apperrors.ValidationField("parentesco", "Unknown relationship.")
	}
	return nil
}
