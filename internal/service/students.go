package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// StudentServiceOptions groups dependencies for StudentService.
type StudentServiceOptions struct {
	Students core.StudentRepository // Required
	Logger   *slog.Logger           // Optional
}

// StudentService handles student records, belt changes and guardian links.
type StudentService struct {
	students core.StudentRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewStudentService constructs a new StudentService.
func NewStudentService(opts StudentServiceOptions) *StudentService {
	if opts.Students == nil {
		panic("StudentRepository is required")
	}
	return &StudentService{
		students: opts.Students,
		logger:   componentLogger(opts.Logger, "student_service"),
		now:      time.Now,
	}
}

// List returns one server page of students.
func (s *StudentService) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Student], error) {
	return s.students.List(ctx, req)
}

// Get returns one student.
func (s *StudentService) Get(ctx context.Context, id int64) (*academy.Student, error) {
	if err := requireID(id, "student"); err != nil {
		return nil, err
	}
	return s.students.GetByID(ctx, id)
}

// StudentDetail is a student with enrollment and attendance history.
// Failures of the history lists are reported in the *Err fields so the record still renders.
type StudentDetail struct {
	Student       *academy.Student
	Enrollments   []academy.Enrollment
	Attendance    []academy.Attendance
	Summary       academy.AttendanceSummary
	EnrollmentErr error
	AttendanceErr error
}

// Detail fetches a student together with enrollments and attendance, concurrently.
func (s *StudentService) Detail(ctx context.Context, id int64) (*StudentDetail, error) {
	if err := requireID(id, "student"); err != nil {
		return nil, err
	}

	detail := &StudentDetail{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.students.GetByID(gctx, id)
		if err != nil {
			return err
		}
		detail.Student = st
		return nil
	})
	g.Go(func() error {
		detail.Enrollments, detail.EnrollmentErr = s.students.Enrollments(gctx, id)
		return nil
	})
	g.Go(func() error {
		detail.Attendance, detail.AttendanceErr = s.students.Attendance(gctx, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	detail.Summary = academy.Summarize(detail.Attendance)
	return detail, nil
}

// Create registers a student. A minor must be created with a guardian.
func (s *StudentService) Create(ctx context.Context, req academy.StudentRequest) (*academy.Student, error) {
	req = normalizeStudent(req)
	if err := s.validate(req, true); err != nil {
		return nil, err
	}
	st, err := s.students.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "student created", "student_id", st.ID)
	return st, nil
}

// Update replaces a student record.
func (s *StudentService) Update(ctx context.Context, id int64, req academy.StudentRequest) (*academy.Student, error) {
	if err := requireID(id, "student"); err != nil {
		return nil, err
	}
	req = normalizeStudent(req)
	if err := s.validate(req, false); err != nil {
		return nil, err
	}
	return s.students.Update(ctx, id, req)
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "student"); err != nil {
		return err
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "student deleted", "student_id", id)
	return nil
}

// Promote advances the student one belt rank through the dedicated endpoint.
func (s *StudentService) Promote(ctx context.Context, id int64) (*academy.Student, error) {
	if err := requireID(id, "student"); err != nil {
		return nil, err
	}
	st, err := s.students.Promote(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "student promoted", "student_id", id, "belt", st.Belt)
	return st, nil
}

// Demote lowers the student one belt rank through the dedicated endpoint.
func (s *StudentService) Demote(ctx context.Context, id int64) (*academy.Student, error) {
	if err := requireID(id, "student"); err != nil {
		return nil, err
	}
	st, err := s.students.Demote(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "student demoted", "student_id", id, "belt", st.Belt)
	return st, nil
}

// LinkGuardian associates a guardian with a student.
func (s *StudentService) LinkGuardian(ctx context.Context, studentID, guardianID int64) error {
	if err := requireID(studentID, "student"); err != nil {
		return err
	}
	if err := requireID(guardianID, "guardian"); err != nil {
		return err
	}
	if err := s.students.LinkGuardian(ctx, studentID, guardianID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "guardian linked", "student_id", studentID, "guardian_id", guardianID)
	return nil
}

// UnlinkGuardian dissociates a guardian from a student.
func (s *StudentService) UnlinkGuardian(ctx context.Context, studentID, guardianID int64) error {
	if err := requireID(studentID, "student"); err != nil {
		return err
	}
	if err := requireID(guardianID, "guardian"); err != nil {
		return err
	}
	if err := s.students.UnlinkGuardian(ctx, studentID, guardianID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "guardian unlinked", "student_id", studentID, "guardian_id", guardianID)
	return nil
}

// RequiresGuardian reports whether a student born on birth needs a guardian today.
func (s *StudentService) RequiresGuardian(birth academy.Date) bool {
	return !birth.IsZero() && birth.AgeOn(s.now()) < academy.AdultAge
}

func (s *StudentService) validate(req academy.StudentRequest, creating bool) error {
	if req.Name == "" {
		return apperrors.ValidationField("nome", "Name is required.")
	}
	if req.Status != "" && !req.Status.Valid() {
		return apperrors.ValidationField("status", "Unknown student status.")
	}
	if req.Belt != "" && req.Belt.Rank() < 0 {
		return apperrors.ValidationField("faixa", "Unknown belt.")
	}
	if !req.BirthDate.IsZero() && req.BirthDate.After(s.now()) {
		return apperrors.ValidationField("dataNascimento", "Birth date cannot be in the future.")
	}
	if creating && s.RequiresGuardian(req.BirthDate) && (req.GuardianID == nil || *req.GuardianID <= 0) {
		return apperrors.ValidationField("responsavelId", "Students under 18 must be registered with a guardian.")
	}
	return nil
}

func normalizeStudent(req academy.StudentRequest) academy.StudentRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Document = strings.TrimSpace(req.Document)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Status == "" {
		req.Status = academy.StudentActive
	}
	if req.Belt == "" {
		req.Belt = academy.BeltWhite
	}
	if req.GuardianID != nil && *req.GuardianID <= 0 {
		req.GuardianID = nil
	}
	return req
}
