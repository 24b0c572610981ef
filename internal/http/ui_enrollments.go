package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	"github.com/dojoworks/dojo-admin/internal/listing"
	"github.com/dojoworks/dojo-admin/internal/service"
)

const enrollmentsPath = "/enrollments"

func enrollmentMeta(page, title string) PageMeta {
	return PageMeta{Title: "Dojo Admin - " + title, PageTitle: title, CurrentPage: page}
}

// EnrollmentList renders one server page of enrollments.
func (h *UIHandlers) EnrollmentList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[academy.Enrollment]{
		Handler:      h,
		W:            w,
		R:            r,
		Fetch:        h.Enrollments.List,
		Filter:       enrollmentFilter,
		FilterParams: enrollmentFilterParams,
		BasePath:     enrollmentsPath,
		PageMeta:     enrollmentMeta(PageEnrollments, "Enrollments"),
		ItemsKey:     "Enrollments",
		ErrorMessage: "Unable to load enrollments.",
		EnrichData: func(b *TemplateDataBuilder, _ listing.State[academy.Enrollment], _ []academy.Enrollment) {
			b.With("Statuses", academy.EnrollmentStatuses()).
				With("ReturnTo", r.URL.RequestURI())
		},
	})
}

// EnrollmentNew renders the enrollment form with student and group options.
func (h *UIHandlers) EnrollmentNew(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := map[string]any{
		"Mode":   string(FormModeCreate),
		"Errors": map[string]string{},
		"FormData": enrollmentForm{
			StudentID:  q.Get("alunoId"),
			GroupID:    q.Get("turmaId"),
			EnrolledOn: time.Now().Format(academy.DateLayout),
		},
	}
	h.loadOptions(r.Context(), service.OptStudents|service.OptGroups, data)
	h.renderPage(w, r, enrollmentMeta(PageEnrollmentForm, "New enrollment"), data)
}

// EnrollmentCreate handles the enrollment form.
func (h *UIHandlers) EnrollmentCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[enrollmentForm]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: readEnrollmentForm,
		Actions: FormActions[enrollmentForm]{
			Create: func(ctx context.Context, f enrollmentForm) error {
				_, err := h.Enrollments.Create(ctx, f.request())
				return err
			},
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.loadOptions(r.Context(), service.OptStudents|service.OptGroups, data)
			h.renderDashboardPage(w, r, data)
		},
		SuccessURL:     enrollmentsPath,
		SuccessMessage: "Enrollment created.",
		PageMeta:       enrollmentMeta(PageEnrollmentForm, "New enrollment"),
	})
}

// EnrollmentDelete removes an enrollment.
func (h *UIHandlers) EnrollmentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := h.Enrollments.Delete(r.Context(), id); err != nil {
		h.actionFailed(w, r, "delete enrollment", err)
		return
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), enrollmentsPath), "Enrollment deleted.")
}

// EnrollmentToggle flips an enrollment between active and inactive.
func (h *UIHandlers) EnrollmentToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	e, err := h.Enrollments.Toggle(r.Context(), id)
	if err != nil {
		h.actionFailed(w, r, "toggle enrollment", err)
		return
	}
	msg := "Enrollment updated."
	if e != nil {
		msg = "Enrollment is now " + e.Status.Label() + "."
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), enrollmentsPath), msg)
}
