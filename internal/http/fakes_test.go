package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/service"
)

// Each fake embeds its interface; calling a method the test did not stub panics.

type fakeStudents struct {
	StudentsService
	list    func(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Student], error)
	detail  func(ctx context.Context, id int64) (*service.StudentDetail, error)
	create  func(ctx context.Context, req academy.StudentRequest) (*academy.Student, error)
	promote func(ctx context.Context, id int64) (*academy.Student, error)
	link    func(ctx context.Context, studentID, guardianID int64) error
	deleted []int64
}

func (f *fakeStudents) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Student], error) {
	return f.list(ctx, req)
}

func (f *fakeStudents) Detail(ctx context.Context, id int64) (*service.StudentDetail, error) {
	return f.detail(ctx, id)
}

func (f *fakeStudents) Create(ctx context.Context, req academy.StudentRequest) (*academy.Student, error) {
	return f.create(ctx, req)
}

func (f *fakeStudents) Promote(ctx context.Context, id int64) (*academy.Student, error) {
	return f.promote(ctx, id)
}

func (f *fakeStudents) LinkGuardian(ctx context.Context, studentID, guardianID int64) error {
	return f.link(ctx, studentID, guardianID)
}

func (f *fakeStudents) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStudents) RequiresGuardian(birth academy.Date) bool {
	return birth.AgeOn(time.Now()) < 18
}

type fakeGroups struct {
	GroupsService
	get    func(ctx context.Context, id int64) (*academy.Group, error)
	added  [][2]int64
	addErr error
}

func (f *fakeGroups) Get(ctx context.Context, id int64) (*academy.Group, error) {
	return f.get(ctx, id)
}

func (f *fakeGroups) AddStudent(_ context.Context, groupID, studentID int64) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, [2]int64{groupID, studentID})
	return nil
}

type fakeClasses struct {
	ClassesService
	sheet     func(ctx context.Context, id int64) (*service.AttendanceSheet, error)
	setStatus func(ctx context.Context, id int64, raw string) (*academy.Class, error)
}

func (f *fakeClasses) Sheet(ctx context.Context, id int64) (*service.AttendanceSheet, error) {
	return f.sheet(ctx, id)
}

func (f *fakeClasses) SetStatus(ctx context.Context, id int64, raw string) (*academy.Class, error) {
	return f.setStatus(ctx, id, raw)
}

type fakeEnrollments struct {
	EnrollmentsService
	list   func(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Enrollment], error)
	toggle func(ctx context.Context, id int64) (*academy.Enrollment, error)
}

func (f *fakeEnrollments) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Enrollment], error) {
	return f.list(ctx, req)
}

func (f *fakeEnrollments) Toggle(ctx context.Context, id int64) (*academy.Enrollment, error) {
	return f.toggle(ctx, id)
}

type fakeAttendance struct {
	marked []service.MarkInput
	err    error
}

func (f *fakeAttendance) Mark(_ context.Context, in service.MarkInput) (*academy.Attendance, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.marked = append(f.marked, in)
	return &academy.Attendance{ID: 900, ClassID: in.ClassID, StudentID: in.StudentID, StudentName: "Ana Souza", Present: in.Present}, nil
}

type fakeOptions struct {
	lists *service.OptionLists
	err   error
}

func (f *fakeOptions) Load(context.Context, service.OptionKind) (*service.OptionLists, error) {
	return f.lists, f.err
}

type fakeCounter struct {
	counts *service.DashboardCounts
	err    error
}

func (f *fakeCounter) Counts(context.Context) (*service.DashboardCounts, error) {
	return f.counts, f.err
}

// fakeAuth resolves a session cookie value of the form "<role>" to a session with that role.
type fakeAuth struct {
	idle    time.Duration
	touched int
}

func (f *fakeAuth) BeginLogin(_ context.Context, _ string) (*service.BeginLoginResult, error) {
	return &service.BeginLoginResult{AuthURL: "https://idp.example.com/authorize", State: "st", Nonce: "nc"}, nil
}

func (f *fakeAuth) CompleteLogin(_ context.Context, in service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	return &service.CompleteLoginResult{Session: domainauth.Session{
		ID:        "admin",
		UserID:    "u-1",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}}, nil
}

func (f *fakeAuth) GetSession(_ context.Context, id string) (*domainauth.Session, error) {
	role := domainauth.Role(id)
	if !role.Valid() && role != domainauth.RoleGuest {
		return nil, apperrors.NotFound("session not found")
	}
	return &domainauth.Session{
		ID:        id,
		UserID:    "user-" + id,
		FirstName: "Test",
		LastName:  "User",
		Email:     id + "@dojo.example.com",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
		LastSeen:  time.Now(),
	}, nil
}

func (f *fakeAuth) Touch(context.Context, *domainauth.Session) error {
	f.touched++
	return nil
}

func (f *fakeAuth) IdleDeadline(s domainauth.Session) time.Time {
	if f.idle <= 0 {
		return time.Time{}
	}
	return s.LastSeen.Add(f.idle)
}

func (f *fakeAuth) Logout(context.Context, string) error { return nil }

// sessionRequest returns r carrying a session for role, as the auth middleware would set it.
func sessionRequest(r *http.Request, role domainauth.Role) *http.Request {
	s := &domainauth.Session{ID: "s-1", UserID: "u-1", FirstName: "Test", Email: "test@dojo.example.com", Role: role}
	return r.WithContext(SetSessionInContext(r.Context(), s))
}

func htmxRequest(r *http.Request) *http.Request {
	r.Header.Set("Hx-Request", "true")
	return r
}

// newTestRouter builds the full router over the on-disk templates with fakeAuth.
func newTestRouter(t *testing.T, rs RouterServices) http.Handler {
	t.Helper()
	SkipIfNoTemplates(t)
	if rs.Auth == nil {
		rs.Auth = &fakeAuth{idle: 30 * time.Minute}
	}
	rs.TemplateFS = os.DirFS(TemplatePathFromTest)
	h, err := NewRouter(rs)
	require.NoError(t, err)
	return h
}

const testCSRFToken = "test-csrf-token"

// routerRequest builds a request signed in as role (empty for anonymous) that passes CSRF.
func routerRequest(method, target string, role domainauth.Role) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	req.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	if role != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: string(role)})
	}
	return req
}

func studentPage(students ...academy.Student) *academy.Page[academy.Student] {
	return &academy.Page[academy.Student]{
		Content:       students,
		TotalPages:    1,
		TotalElements: len(students),
		Size:          academy.DefaultPageSize,
	}
}
