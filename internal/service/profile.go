package service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// incompleteProfileMarkers are substrings of the API's failure text when a
// record lacks data the backend dereferences (typically the address).
var incompleteProfileMarkers = []string{"endereco", "null", "nullpointer"} //nolint:gochecknoglobals // fixed markers

// IsIncompleteProfile reports whether err looks like the API failing on an incomplete record.
// This matches message text, not a status code, and is kept in one place for that reason.
func IsIncompleteProfile(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(apperrors.Message(err, err.Error()))
	for _, marker := range incompleteProfileMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Students  core.StudentRepository  // Required
	Guardians core.GuardianRepository // Required
	Logger    *slog.Logger
}

// ProfileService resolves the academy record behind a signed-in student or guardian.
type ProfileService struct {
	students  core.StudentRepository
	guardians core.GuardianRepository
	logger    *slog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	if opts.Students == nil || opts.Guardians == nil {
		panic("ProfileService requires student and guardian repositories")
	}
	return &ProfileService{
		students:  opts.Students,
		guardians: opts.Guardians,
		logger:    componentLogger(opts.Logger, "profile_service"),
	}
}

// StudentProfile is what a student sees about themselves.
type StudentProfile struct {
	Student     *academy.Student
	Enrollments []academy.Enrollment
	Attendance  []academy.Attendance
	Summary     academy.AttendanceSummary
}

// GuardianProfile is what a guardian sees: their record and linked students.
type GuardianProfile struct {
	Guardian *academy.Guardian
	Students []academy.StudentRef
}

// Student resolves the student record by e-mail plus their enrollments and attendance.
func (s *ProfileService) Student(ctx context.Context, email string) (*StudentProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.NotFound("No academy record is linked to this account.")
	}
	st, err := s.students.FindByEmail(ctx, email)
	if err != nil {
		if IsIncompleteProfile(err) {
			s.logger.InfoContext(ctx, "incomplete student profile", "error", err)
		}
		return nil, err
	}

	return s.withHistory(ctx, st)
}

// Guardian resolves the guardian record by e-mail plus the linked students.
func (s *ProfileService) Guardian(ctx context.Context, email string) (*GuardianProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.NotFound("No academy record is linked to this account.")
	}
	gd, err := s.guardians.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	students, err := s.guardians.Students(ctx, gd.ID)
	if err != nil {
		return nil, err
	}
	return &GuardianProfile{Guardian: gd, Students: students}, nil
}

// LinkedStudent returns a student's profile for a guardian, refusing students not linked to them.
func (s *ProfileService) LinkedStudent(ctx context.Context, guardianEmail string, studentID int64) (*StudentProfile, error) {
	if err := requireID(studentID, "student"); err != nil {
		return nil, err
	}
	gp, err := s.Guardian(ctx, guardianEmail)
	if err != nil {
		return nil, err
	}
	linked := false
	for _, st := range gp.Students {
		if st.ID == studentID {
			linked = true
			break
		}
	}
	if !linked {
		return nil, apperrors.Forbidden("This student is not linked to your account.")
	}

	st, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.withHistory(ctx, st)
}

// withHistory loads enrollments and attendance for st concurrently.
func (s *ProfileService) withHistory(ctx context.Context, st *academy.Student) (*StudentProfile, error) {
	p := &StudentProfile{Student: st}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		enr, err := s.students.Enrollments(gctx, st.ID)
		p.Enrollments = enr
		return err
	})
	g.Go(func() error {
		att, err := s.students.Attendance(gctx, st.ID)
		p.Attendance = att
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	p.Summary = academy.Summarize(p.Attendance)
	return p, nil
}
