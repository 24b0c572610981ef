package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/listing"
	"github.com/dojoworks/dojo-admin/internal/service"
)

const studentsPath = "/students"

func studentMeta(page, title string) PageMeta {
	return PageMeta{Title: "Dojo Admin - " + title, PageTitle: title, CurrentPage: page}
}

// StudentList renders one server page of students narrowed by the local filter.
func (h *UIHandlers) StudentList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[academy.Student]{
		Handler:      h,
		W:            w,
		R:            r,
		Fetch:        h.Students.List,
		Filter:       studentFilter,
		FilterParams: studentFilterParams,
		BasePath:     studentsPath,
		PageMeta:     studentMeta(PageStudents, "Students"),
		ItemsKey:     "Students",
		ErrorMessage: "Unable to load students.",
		EnrichData: func(b *TemplateDataBuilder, _ listing.State[academy.Student], _ []academy.Student) {
			b.With("Belts", academy.Belts()).
				With("Statuses", academy.StudentStatuses()).
				With("ReturnTo", r.URL.RequestURI())
		},
	})
}

// StudentView renders a student with guardians, enrollments and attendance history.
func (h *UIHandlers) StudentView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := studentMeta(PageStudent, "Student")
	detail, err := h.Students.Detail(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	meta.PageTitle = detail.Student.Name
	meta.Title = "Dojo Admin - " + detail.Student.Name

	data := map[string]any{
		"Student":    detail.Student,
		"Detail":     detail,
		"IsMinor":    h.Students.RequiresGuardian(detail.Student.BirthDate),
		"ReturnTo":   r.URL.RequestURI(),
		"Enrollment": sectionError(detail.EnrollmentErr),
		"Attendance": sectionError(detail.AttendanceErr),
	}
	if CanFromContext(r.Context(), domainauth.PermLinkGuardian) {
		h.loadOptions(r.Context(), service.OptGuardians, data)
	}
	h.renderPage(w, r, meta, data)
}

// sectionError is the message for a detail section that failed to load.
func sectionError(err error) string {
	if err == nil {
		return ""
	}
	return userMessage(err)
}

// StudentNew renders the empty student form.
func (h *UIHandlers) StudentNew(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Mode":     string(FormModeCreate),
		"Errors":   map[string]string{},
		"FormData": studentForm{Status: string(academy.StudentActive), Belt: string(academy.BeltWhite), Degree: "0"},
	}
	h.studentFormExtras(r.Context(), data)
	h.renderPage(w, r, studentMeta(PageStudentForm, "New student"), data)
}

// StudentEdit renders the student form with the current record.
func (h *UIHandlers) StudentEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := studentMeta(PageStudentForm, "Edit student")
	st, err := h.Students.Get(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	data := map[string]any{
		"Mode":     string(FormModeEdit),
		"ID":       id,
		"Errors":   map[string]string{},
		"FormData": studentFormFrom(st),
		"Student":  st,
	}
	h.studentFormExtras(r.Context(), data)
	h.renderPage(w, r, meta, data)
}

func (h *UIHandlers) studentFormExtras(ctx context.Context, data map[string]any) {
	data["Belts"] = academy.Belts()
	data["Statuses"] = academy.StudentStatuses()
	h.loadOptions(ctx, service.OptGuardians, data)
}

// StudentCreate handles the new student form.
func (h *UIHandlers) StudentCreate(w http.ResponseWriter, r *http.Request) {
	h.saveStudent(w, r, FormModeCreate)
}

// StudentUpdate handles the edit student form.
func (h *UIHandlers) StudentUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveStudent(w, r, FormModeEdit)
}

func (h *UIHandlers) saveStudent(w http.ResponseWriter, r *http.Request, mode FormMode) {
	title := "New student"
	if mode == FormModeEdit {
		title = "Edit student"
	}
	HandleForm(FormHandlerOpts[studentForm]{
		W:    w,
		R:    r,
		Mode: mode,
		Parser: func(r *http.Request) (studentForm, map[string]string) {
			f := readStudentForm(r)
			return f, f.validate(h.Students.RequiresGuardian, mode == FormModeCreate)
		},
		Actions: FormActions[studentForm]{
			Create: func(ctx context.Context, f studentForm) error {
				_, err := h.Students.Create(ctx, f.request())
				return err
			},
			Update: func(ctx context.Context, id int64, f studentForm) error {
				_, err := h.Students.Update(ctx, id, f.request())
				return err
			},
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.studentFormExtras(r.Context(), data)
			h.renderDashboardPage(w, r, data)
		},
		SuccessURL:     studentsPath,
		SuccessMessage: "Student saved.",
		PageMeta:       studentMeta(PageStudentForm, title),
	})
}

// StudentDelete removes a student and returns to the list.
func (h *UIHandlers) StudentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := h.Students.Delete(r.Context(), id); err != nil {
		h.actionFailed(w, r, "delete student", err)
		return
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), studentsPath), "Student deleted.")
}

// StudentPromote moves the student up one belt rank.
func (h *UIHandlers) StudentPromote(w http.ResponseWriter, r *http.Request) {
	h.changeBelt(w, r, h.Students.Promote, "promote student", "promoted")
}

// StudentDemote moves the student down one belt rank.
func (h *UIHandlers) StudentDemote(w http.ResponseWriter, r *http.Request) {
	h.changeBelt(w, r, h.Students.Demote, "demote student", "demoted")
}

func (h *UIHandlers) changeBelt(
	w http.ResponseWriter,
	r *http.Request,
	change func(context.Context, int64) (*academy.Student, error),
	action, verb string,
) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	st, err := change(r.Context(), id)
	if err != nil {
		h.actionFailed(w, r, action, err)
		return
	}
	msg := "Student " + verb + "."
	if st != nil {
		msg = st.Name + " " + verb + " to " + st.Belt.Label() + "."
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), studentsPath), msg)
}

// StudentLinkGuardian links the guardian chosen in the form to the student.
func (h *UIHandlers) StudentLinkGuardian(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	guardianID, err := strconv.ParseInt(formValue(r, "responsavelId"), 10, 64)
	if err != nil || guardianID <= 0 {
		h.actionFailed(w, r, "link guardian", apperrors.Validation("Choose a guardian to link."))
		return
	}
	if err := h.Students.LinkGuardian(r.Context(), id, guardianID); err != nil {
		h.actionFailed(w, r, "link guardian", err)
		return
	}
	h.actionDone(w, r, studentsPath+"/"+formatID(id), "Guardian linked.")
}

// StudentUnlinkGuardian removes the link between a student and a guardian.
func (h *UIHandlers) StudentUnlinkGuardian(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	guardianID, gok := pathID(r, "guardianID")
	if !ok || !gok {
		h.NotFound(w, r)
		return
	}
	if err := h.Students.UnlinkGuardian(r.Context(), id, guardianID); err != nil {
		h.actionFailed(w, r, "unlink guardian", err)
		return
	}
	h.actionDone(w, r, studentsPath+"/"+formatID(id), "Guardian unlinked.")
}
