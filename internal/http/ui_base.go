package httpx

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/http/ui/viewmodel"
	"github.com/dojoworks/dojo-admin/internal/service"
)

const (
	toastSuccess = "success"
	toastError   = "error"

	// mainContentTarget is the element htmx navigations swap.
	mainContentTarget = "#main-content"
)

// StudentsService is the student surface the UI uses.
type StudentsService interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Student], error)
	Get(ctx context.Context, id int64) (*academy.Student, error)
	Detail(ctx context.Context, id int64) (*service.StudentDetail, error)
	Create(ctx context.Context, req academy.StudentRequest) (*academy.Student, error)
	Update(ctx context.Context, id int64, req academy.StudentRequest) (*academy.Student, error)
	Delete(ctx context.Context, id int64) error
	Promote(ctx context.Context, id int64) (*academy.Student, error)
	Demote(ctx context.Context, id int64) (*academy.Student, error)
	LinkGuardian(ctx context.Context, studentID, guardianID int64) error
	UnlinkGuardian(ctx context.Context, studentID, guardianID int64) error
	RequiresGuardian(birth academy.Date) bool
}

// GuardiansService is the guardian surface the UI uses.
type GuardiansService interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Guardian], error)
	Get(ctx context.Context, id int64) (*academy.Guardian, error)
	Detail(ctx context.Context, id int64) (*service.GuardianDetail, error)
	Create(ctx context.Context, req academy.GuardianRequest) (*academy.Guardian, error)
	Update(ctx context.Context, id int64, req academy.GuardianRequest) (*academy.Guardian, error)
	Delete(ctx context.Context, id int64) error
}

// GroupsService is the group surface the UI uses.
type GroupsService interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Group], error)
	Get(ctx context.Context, id int64) (*academy.Group, error)
	Create(ctx context.Context, req academy.GroupRequest) (*academy.Group, error)
	Update(ctx context.Context, id int64, req academy.GroupRequest) (*academy.Group, error)
	Delete(ctx context.Context, id int64) error
	AddStudent(ctx context.Context, groupID, studentID int64) error
	RemoveStudent(ctx context.Context, groupID, studentID int64) error
}

// ClassesService is the class surface the UI uses.
type ClassesService interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Class], error)
	Get(ctx context.Context, id int64) (*academy.Class, error)
	Create(ctx context.Context, req academy.ClassRequest) (*academy.Class, error)
	Update(ctx context.Context, id int64, req academy.ClassRequest) (*academy.Class, error)
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, raw string) (*academy.Class, error)
	Sheet(ctx context.Context, id int64) (*service.AttendanceSheet, error)
}

// EnrollmentsService is the enrollment surface the UI uses.
type EnrollmentsService interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Enrollment], error)
	Create(ctx context.Context, req academy.EnrollmentRequest) (*academy.Enrollment, error)
	Delete(ctx context.Context, id int64) error
	Toggle(ctx context.Context, id int64) (*academy.Enrollment, error)
}

// AttendanceMarker records attendance.
type AttendanceMarker interface {
	Mark(ctx context.Context, in service.MarkInput) (*academy.Attendance, error)
}

// UsersService is the user account surface the UI uses.
type UsersService interface {
	List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.User], error)
	Get(ctx context.Context, id int64) (*academy.User, error)
	Create(ctx context.Context, req academy.UserRequest) (*academy.User, error)
	Update(ctx context.Context, id int64, req academy.UserRequest) (*academy.User, error)
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) (*academy.User, error)
}

// OptionsLoader loads dropdown option lists.
type OptionsLoader interface {
	Load(ctx context.Context, kinds service.OptionKind) (*service.OptionLists, error)
}

// DashboardCounter computes the dashboard counters.
type DashboardCounter interface {
	Counts(ctx context.Context) (*service.DashboardCounts, error)
}

// ProfileReader resolves the record behind a student or guardian login.
type ProfileReader interface {
	Student(ctx context.Context, email string) (*service.StudentProfile, error)
	Guardian(ctx context.Context, email string) (*service.GuardianProfile, error)
	LinkedStudent(ctx context.Context, guardianEmail string, studentID int64) (*service.StudentProfile, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ StudentsService    = (*service.StudentService)(nil)
	_ GuardiansService   = (*service.GuardianService)(nil)
	_ GroupsService      = (*service.GroupService)(nil)
	_ ClassesService     = (*service.ClassService)(nil)
	_ EnrollmentsService = (*service.EnrollmentService)(nil)
	_ AttendanceMarker   = (*service.AttendanceService)(nil)
	_ UsersService       = (*service.UserService)(nil)
	_ OptionsLoader      = (*service.OptionService)(nil)
	_ DashboardCounter   = (*service.DashboardService)(nil)
	_ ProfileReader      = (*service.ProfileService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T           *TemplateRenderer
	Students    StudentsService
	Guardians   GuardiansService
	Groups      GroupsService
	Classes     ClassesService
	Enrollments EnrollmentsService
	Attendance  AttendanceMarker
	Users       UsersService
	Options     OptionsLoader
	Counters    DashboardCounter
	Profiles    ProfileReader
	// PageSize is the default list page size.
	PageSize int
	// IdleWarning is how long before the idle deadline the countdown shows.
	IdleWarning time.Duration
	IsDev       bool // Development mode flag for enhanced error reporting
	Logger      *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) pageSize() int {
	if h.PageSize > 0 {
		return h.PageSize
	}
	return academy.DefaultPageSize
}

// triggerToast sends a showToast HX-Trigger event.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// actionFailed reports a failed role-gated action as an error toast.
// Actions never replace the page on failure; the view keeps its previous state.
func (h *UIHandlers) actionFailed(w http.ResponseWriter, r *http.Request, action string, err error) {
	msg := userMessage(err)
	h.logger().WarnContext(r.Context(), "action failed", "action", action, "path", r.URL.Path, "error", err)
	if !IsHTMX(r) {
		http.Error(w, msg, statusOr(DetermineErrorStatus(err), http.StatusBadRequest))
		return
	}
	triggerToast(w, msg, toastError)
	w.WriteHeader(http.StatusNoContent)
}

// actionDone reloads the current view after a role-gated action with a success toast.
func (h *UIHandlers) actionDone(w http.ResponseWriter, r *http.Request, redirect, message string) {
	navigateAfterSave(w, r, redirect, message)
}

func statusOr(status, fallback int) int {
	if status == 0 {
		return fallback
	}
	return status
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}

	if session := GetSessionFromContext(r.Context()); session != nil && !session.IsGuest() {
		layout.IsAuthenticated = true
		layout.User = &viewmodel.User{
			Name:      session.DisplayName(),
			Email:     session.Email,
			Role:      string(session.Role),
			RoleLabel: session.Role.Label(),
		}
		layout.Can = viewmodel.PermissionsFor(session.Role)
	}
	if clock, ok := SessionClockFromContext(r.Context()); ok && !clock.Deadline.IsZero() {
		layout.IdleDeadline = clock.Deadline.UTC().Format(time.RFC3339)
		layout.IdleWarningSeconds = int(clock.Warning / time.Second)
	}

	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":              layout.Title,
		"PageTitle":          layout.PageTitle,
		"CurrentPage":        layout.CurrentPage,
		"IsAuthenticated":    layout.IsAuthenticated,
		"Can":                layout.Can,
		"CSRFToken":          layout.CSRFToken,
		"IdleDeadline":       layout.IdleDeadline,
		"IdleWarningSeconds": layout.IdleWarningSeconds,
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
// A failed fetch renders the page with an error banner and toast.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.logger().WarnContext(r.Context(), "page fetch failed", "path", r.URL.Path, "error", err)
			markPageError(data, userMessage(err))
			if IsHTMX(r) {
				triggerToast(w, userMessage(err), toastError)
			}
		}
	}
	h.renderDashboardPage(w, r, data)
}

// renderDashboardPage renders a full page, or for htmx the content plus out-of-band header updates.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	layout := extractLayoutInfo(data)

	// htmx updates document.title from a <title> in a partial response
	if _, err := w.Write([]byte(`<title>` + html.EscapeString(layout.Title) + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` +
		html.EscapeString(layout.PageTitle) + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.RenderContent(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

func markPageError(data map[string]any, msg string) {
	data["Error"] = true
	if msg == "" {
		msg = "An unexpected error occurred. Please try again."
	}
	if _, ok := data["ErrorMessage"]; !ok {
		data["ErrorMessage"] = msg
	}
}

func extractLayoutInfo(data any) viewmodel.Layout {
	switch v := data.(type) {
	case viewmodel.LayoutProvider:
		if l := v.LayoutData(); l != nil {
			return *l
		}
	case viewmodel.Layout:
		return v
	case *viewmodel.Layout:
		if v != nil {
			return *v
		}
	case map[string]any:
		layout := viewmodel.Layout{}
		layout.Title, _ = v["Title"].(string)
		layout.PageTitle, _ = v["PageTitle"].(string)
		layout.CurrentPage, _ = v["CurrentPage"].(string)
		return layout
	}
	return viewmodel.Layout{}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if !h.IsDev {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if _, writeErr := w.Write([]byte(`<div class="template-error"><h2>Template Rendering Error</h2>` +
		`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
		`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
		`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`)); writeErr != nil {
		h.logger().Error("failed to write template error response", "error", writeErr)
	}
}

// renderPage merges data over the base layout for meta and renders it.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, meta PageMeta, data map[string]any) {
	page := basePageData(r, meta)
	for k, v := range data {
		page[k] = v
	}
	h.renderDashboardPage(w, r, page)
}

// detailFailed answers a failed record fetch: a missing record gets the 404
// page, anything else the page frame with the API's message.
func (h *UIHandlers) detailFailed(w http.ResponseWriter, r *http.Request, meta PageMeta, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	if apperrors.IsNotFound(err) {
		if IsHTMX(r) {
			triggerToast(w, userMessage(err), toastError)
		}
		h.NotFound(w, r)
		return
	}
	h.logger().WarnContext(r.Context(), "detail load failed", "path", r.URL.Path, "error", err)
	RenderError(ErrorOpts{
		W:         w,
		R:         r,
		Err:       err,
		Renderer:  h.renderDashboardPage,
		PageMeta:  meta,
		ShowToast: IsHTMX(r),
	})
}

// loadOptions fills the dropdown lists for kinds. A failure leaves the form
// usable with an "OptionsError" message instead of failing the page.
func (h *UIHandlers) loadOptions(ctx context.Context, kinds service.OptionKind, data map[string]any) {
	lists := &service.OptionLists{}
	if h.Options != nil {
		loaded, err := h.Options.Load(ctx, kinds)
		if err != nil {
			h.logger().WarnContext(ctx, "option lists failed", "error", err)
			data["OptionsError"] = userMessage(err)
		} else if loaded != nil {
			lists = loaded
		}
	}
	data["Options"] = lists
}

// renderDashboardPageMap adapts renderDashboardPage to FormRenderer.
func (h *UIHandlers) renderDashboardPageMap(w http.ResponseWriter, r *http.Request, data map[string]any) {
	h.renderDashboardPage(w, r, data)
}
