package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"time"

	dojoadmin "github.com/dojoworks/dojo-admin"
	"github.com/dojoworks/dojo-admin/internal/core"
	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Students    StudentsService
	Guardians   GuardiansService
	Groups      GroupsService
	Classes     ClassesService
	Enrollments EnrollmentsService
	Attendance  AttendanceMarker
	Users       UsersService
	Options     OptionsLoader
	Dashboard   DashboardCounter
	Profile     ProfileReader
	Auth        AuthServiceInterface
	Health      core.APIHealthChecker

	// TemplateFS and StaticFS override the embedded or on-disk frontend (tests).
	TemplateFS fs.FS
	StaticFS   fs.FS

	CookieDomain  string
	SecureCookies bool
	PageSize      int
	IdleWarning   time.Duration

	// RateLimit caps mutating requests per user within RateLimitWindow; LoginRateLimit caps /auth/login per IP.
	RateLimit       int
	RateLimitWindow time.Duration
	LoginRateLimit  int

	IsDev  bool         // Development mode: templates and static files from disk
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates the dashboard router. It fails when templates cannot be parsed.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services),
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	ui := &UIHandlers{
		T:           tr,
		Students:    services.Students,
		Guardians:   services.Guardians,
		Groups:      services.Groups,
		Classes:     services.Classes,
		Enrollments: services.Enrollments,
		Attendance:  services.Attendance,
		Users:       services.Users,
		Options:     services.Options,
		Counters:    services.Dashboard,
		Profiles:    services.Profile,
		PageSize:    services.PageSize,
		IdleWarning: services.IdleWarning,
		IsDev:       services.IsDev,
		Logger:      logger,
	}
	guard := &AuthGuard{
		Svc:         services.Auth,
		IdleWarning: services.IdleWarning,
		Denied:      ui.AccessDenied,
		Logger:      logger,
	}
	cfg := routeConfig{
		guard:    guard,
		limit:    RateLimit(services.RateLimit, services.RateLimitWindow),
		loginCap: RateLimit(services.LoginRateLimit, services.RateLimitWindow),
	}

	mux := http.NewServeMux()
	health := &HealthHandlers{API: services.Health, Logger: logger}
	mux.HandleFunc("GET /healthz", health.Health)
	mux.HandleFunc("HEAD /healthz", health.Health)
	mux.Handle("GET /static/", staticHandler(services))

	if services.Auth != nil {
		auth := &AuthHandlers{
			Svc:           services.Auth,
			CookieDomain:  services.CookieDomain,
			SecureCookies: services.SecureCookies,
			Logger:        logger,
		}
		registerAuthRoutes(mux, auth, cfg)
	}
	mux.HandleFunc("GET /auth/signed-out", ui.SignedOut)

	registerUIRoutes(mux, ui, cfg)
	mux.Handle("/", OptionalAuth(guard)(http.HandlerFunc(ui.NotFound)))

	csrf := CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain, Secure: services.SecureCookies})
	return csrf(mux), nil
}

func templateFS(services RouterServices) fs.FS {
	if services.TemplateFS != nil {
		return services.TemplateFS
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(dojoadmin.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticHandler serves /static/* from disk in dev mode and from the embedded FS otherwise.
func staticHandler(services RouterServices) http.Handler {
	var fsys http.FileSystem
	switch {
	case services.StaticFS != nil:
		fsys = http.FS(services.StaticFS)
	case services.IsDev:
		fsys = http.Dir(StaticPathFromRoot)
	default:
		sub, err := fs.Sub(dojoadmin.StaticFS, StaticPathFromRoot)
		if err != nil {
			fsys = http.Dir(StaticPathFromRoot)
		} else {
			fsys = http.FS(sub)
		}
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(fsys)))
}

var hashedFilePattern = regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`) //nolint:gochecknoglobals // compiled once

// staticWithCacheHeaders caches content-hashed assets for a year and revalidates the rest.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedFilePattern.MatchString(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		handler.ServeHTTP(w, r)
	})
}

type routeConfig struct {
	guard    *AuthGuard
	limit    func(http.Handler) http.Handler
	loginCap func(http.Handler) http.Handler
}

// view requires a session holding any of perms; no perms means any signed-in user.
func (c routeConfig) view(h http.HandlerFunc, perms ...domainauth.Permission) http.Handler {
	return RequirePermissionBrowser(c.guard, perms...)(h)
}

// act guards a mutating route: permission first, then the per-user rate limit.
func (c routeConfig) act(h http.HandlerFunc, perms ...domainauth.Permission) http.Handler {
	return RequirePermissionBrowser(c.guard, perms...)(c.limit(h))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, cfg routeConfig) {
	mux.Handle("GET /auth/login", cfg.loginCap(http.HandlerFunc(h.Login)))
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
	mux.Handle("POST /auth/keepalive", cfg.view(h.Keepalive))
}

// registerUIRoutes delegates to per-area registration functions.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	mux.Handle("GET /{$}", cfg.view(h.Index))
	mux.Handle("GET /dashboard", cfg.view(h.Dashboard, domainauth.PermViewAcademy))
	registerStudentRoutes(mux, h, cfg)
	registerGuardianRoutes(mux, h, cfg)
	registerGroupRoutes(mux, h, cfg)
	registerClassRoutes(mux, h, cfg)
	registerEnrollmentRoutes(mux, h, cfg)
	registerUserRoutes(mux, h, cfg)
	registerProfileRoutes(mux, h, cfg)
}

func registerStudentRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	view, write := domainauth.PermViewAcademy, domainauth.PermManageRecords
	mux.Handle("GET /students", cfg.view(h.StudentList, view))
	mux.Handle("GET /students/new", cfg.view(h.StudentNew, write))
	mux.Handle("GET /students/{id}", cfg.view(h.StudentView, view))
	mux.Handle("GET /students/{id}/edit", cfg.view(h.StudentEdit, write))
	mux.Handle("POST /students", cfg.act(h.StudentCreate, write))
	mux.Handle("POST /students/{id}", cfg.act(h.StudentUpdate, write))
	mux.Handle("DELETE /students/{id}", cfg.act(h.StudentDelete, write))
	mux.Handle("POST /students/{id}/delete", cfg.act(h.StudentDelete, write))
	mux.Handle("POST /students/{id}/promote", cfg.act(h.StudentPromote, domainauth.PermChangeBelt))
	mux.Handle("POST /students/{id}/demote", cfg.act(h.StudentDemote, domainauth.PermChangeBelt))
	mux.Handle("POST /students/{id}/guardians", cfg.act(h.StudentLinkGuardian, domainauth.PermLinkGuardian))
	mux.Handle("DELETE /students/{id}/guardians/{guardianID}",
		cfg.act(h.StudentUnlinkGuardian, domainauth.PermLinkGuardian))
}

func registerGuardianRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	view, write := domainauth.PermViewAcademy, domainauth.PermManageRecords
	mux.Handle("GET /guardians", cfg.view(h.GuardianList, view))
	mux.Handle("GET /guardians/new", cfg.view(h.GuardianNew, write))
	mux.Handle("GET /guardians/{id}", cfg.view(h.GuardianView, view))
	mux.Handle("GET /guardians/{id}/edit", cfg.view(h.GuardianEdit, write))
	mux.Handle("POST /guardians", cfg.act(h.GuardianCreate, write))
	mux.Handle("POST /guardians/{id}", cfg.act(h.GuardianUpdate, write))
	mux.Handle("DELETE /guardians/{id}", cfg.act(h.GuardianDelete, write))
	mux.Handle("POST /guardians/{id}/delete", cfg.act(h.GuardianDelete, write))
}

func registerGroupRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	view, write := domainauth.PermViewAcademy, domainauth.PermManageRecords
	mux.Handle("GET /groups", cfg.view(h.GroupList, view))
	mux.Handle("GET /groups/new", cfg.view(h.GroupNew, write))
	mux.Handle("GET /groups/{id}", cfg.view(h.GroupView, view))
	mux.Handle("GET /groups/{id}/edit", cfg.view(h.GroupEdit, write))
	mux.Handle("POST /groups", cfg.act(h.GroupCreate, write))
	mux.Handle("POST /groups/{id}", cfg.act(h.GroupUpdate, write))
	mux.Handle("DELETE /groups/{id}", cfg.act(h.GroupDelete, write))
	mux.Handle("POST /groups/{id}/delete", cfg.act(h.GroupDelete, write))
	mux.Handle("POST /groups/{id}/students", cfg.act(h.GroupAddStudent, domainauth.PermManageGroupRoster))
	mux.Handle("DELETE /groups/{id}/students/{studentID}",
		cfg.act(h.GroupRemoveStudent, domainauth.PermManageGroupRoster))
}

func registerClassRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	view, write := domainauth.PermViewAcademy, domainauth.PermManageRecords
	mux.Handle("GET /classes", cfg.view(h.ClassList, view))
	mux.Handle("GET /classes/new", cfg.view(h.ClassNew, write))
	mux.Handle("GET /classes/{id}", cfg.view(h.ClassView, view))
	mux.Handle("GET /classes/{id}/edit", cfg.view(h.ClassEdit, write))
	mux.Handle("GET /classes/{id}/attendance.xlsx", cfg.view(h.ClassExportAttendance, domainauth.PermExportAttendance))
	mux.Handle("POST /classes", cfg.act(h.ClassCreate, write))
	mux.Handle("POST /classes/{id}", cfg.act(h.ClassUpdate, write))
	mux.Handle("DELETE /classes/{id}", cfg.act(h.ClassDelete, write))
	mux.Handle("POST /classes/{id}/delete", cfg.act(h.ClassDelete, write))
	mux.Handle("POST /classes/{id}/status", cfg.act(h.ClassSetStatus, domainauth.PermChangeClassStatus))
	mux.Handle("POST /classes/{id}/attendance", cfg.act(h.ClassMarkAttendance, domainauth.PermMarkAttendance))
}

func registerEnrollmentRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	view, write := domainauth.PermViewAcademy, domainauth.PermManageRecords
	mux.Handle("GET /enrollments", cfg.view(h.EnrollmentList, view))
	mux.Handle("GET /enrollments/new", cfg.view(h.EnrollmentNew, write))
	mux.Handle("POST /enrollments", cfg.act(h.EnrollmentCreate, write))
	mux.Handle("DELETE /enrollments/{id}", cfg.act(h.EnrollmentDelete, write))
	mux.Handle("POST /enrollments/{id}/delete", cfg.act(h.EnrollmentDelete, write))
	mux.Handle("POST /enrollments/{id}/toggle", cfg.act(h.EnrollmentToggle, domainauth.PermToggleEnrollment))
}

func registerUserRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	admin := domainauth.PermManageUsers
	mux.Handle("GET /users", cfg.view(h.UserList, admin))
	mux.Handle("GET /users/new", cfg.view(h.UserNew, admin))
	mux.Handle("GET /users/{id}/edit", cfg.view(h.UserEdit, admin))
	mux.Handle("POST /users", cfg.act(h.UserCreate, admin))
	mux.Handle("POST /users/{id}", cfg.act(h.UserUpdate, admin))
	mux.Handle("DELETE /users/{id}", cfg.act(h.UserDelete, admin))
	mux.Handle("POST /users/{id}/delete", cfg.act(h.UserDelete, admin))
	mux.Handle("POST /users/{id}/status", cfg.act(h.UserSetActive, admin))
}

func registerProfileRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	mux.Handle("GET /profile", cfg.view(h.Profile, domainauth.PermViewOwnProfile))
	mux.Handle("GET /profile/students/{id}", cfg.view(h.ProfileStudent, domainauth.PermViewOwnProfile))
}
