package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// EnrollmentServiceOptions groups dependencies for EnrollmentService.
type EnrollmentServiceOptions struct {
	Enrollments core.EnrollmentRepository // Required
	Logger      *slog.Logger
}

// EnrollmentService handles enrollments of students in groups.
type EnrollmentService struct {
	enrollments core.EnrollmentRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewEnrollmentService constructs a new EnrollmentService.
func NewEnrollmentService(opts EnrollmentServiceOptions) *EnrollmentService {
	if opts.Enrollments == nil {
		panic("EnrollmentRepository is required")
	}
	return &EnrollmentService{
		enrollments: opts.Enrollments,
		logger:      componentLogger(opts.Logger, "enrollment_service"),
		now:         time.Now,
	}
}

// List returns one server page of enrollments.
func (s *EnrollmentService) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Enrollment], error) {
	return s.enrollments.List(ctx, req)
}

// Create enrolls a student in a group. The enrollment date defaults to today.
func (s *EnrollmentService) Create(ctx context.Context, req academy.EnrollmentRequest) (*academy.Enrollment, error) {
	if req.StudentID <= 0 {
		return nil, apperrors.ValidationField("alunoId", "Choose a student.")
	}
	if req.GroupID <= 0 {
		return nil, apperrors.ValidationField("turmaId", "Choose a group.")
	}
	if req.EnrolledOn.IsZero() {
		now := s.now()
		req.EnrolledOn = academy.NewDate(now.Year(), now.Month(), now.Day())
	}
	e, err := s.enrollments.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "enrollment created", "enrollment_id", e.ID, "student_id", req.StudentID, "group_id", req.GroupID)
	return e, nil
}

// Delete removes an enrollment.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "enrollment"); err != nil {
		return err
	}
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "enrollment deleted", "enrollment_id", id)
	return nil
}

// Toggle flips an enrollment between active and inactive.
func (s *EnrollmentService) Toggle(ctx context.Context, id int64) (*academy.Enrollment, error) {
	if err := requireID(id, "enrollment"); err != nil {
		return nil, err
	}
	current, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := current.Status.Toggled()
	updated, err := s.enrollments.SetStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "enrollment status changed", "enrollment_id", id, "status", next)
	return updated, nil
}
