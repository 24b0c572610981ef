package httpx

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/export"
	"github.com/dojoworks/dojo-admin/internal/listing"
	"github.com/dojoworks/dojo-admin/internal/service"
)

const classesPath = "/classes"

func classMeta(page, title string) PageMeta {
	return PageMeta{Title: "Dojo Admin - " + title, PageTitle: title, CurrentPage: page}
}

// ClassList renders one server page of class sessions.
func (h *UIHandlers) ClassList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[academy.Class]{
		Handler:      h,
		W:            w,
		R:            r,
		Fetch:        h.Classes.List,
		Filter:       classFilter,
		FilterParams: classFilterParams,
		BasePath:     classesPath,
		PageMeta:     classMeta(PageClasses, "Classes"),
		ItemsKey:     "Classes",
		ErrorMessage: "Unable to load classes.",
		EnrichData: func(b *TemplateDataBuilder, _ listing.State[academy.Class], _ []academy.Class) {
			b.With("Statuses", academy.ClassStatuses()).
				With("Modalities", academy.Modalities()).
				With("ReturnTo", r.URL.RequestURI())
		},
	})
}

// ClassView renders a class with its attendance sheet.
func (h *UIHandlers) ClassView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := classMeta(PageClass, "Class")
	sheet, err := h.Classes.Sheet(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	meta.PageTitle = sheet.Class.GroupName + " " + sheet.Class.Date.Display()
	h.renderPage(w, r, meta, map[string]any{
		"Class":             sheet.Class,
		"Sheet":             sheet,
		"Statuses":          academy.ClassStatuses(),
		"AcceptsAttendance": sheet.Class.Status.AcceptsAttendance(),
	})
}

// ClassNew renders the empty class form.
func (h *UIHandlers) ClassNew(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Mode":     string(FormModeCreate),
		"Errors":   map[string]string{},
		"FormData": classForm{Status: string(academy.ClassScheduled), GroupID: r.URL.Query().Get("turmaId")},
	}
	h.classFormExtras(r.Context(), data)
	h.renderPage(w, r, classMeta(PageClassForm, "New class"), data)
}

// ClassEdit renders the class form with the current record.
func (h *UIHandlers) ClassEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := classMeta(PageClassForm, "Edit class")
	c, err := h.Classes.Get(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	data := map[string]any{
		"Mode":     string(FormModeEdit),
		"ID":       id,
		"Errors":   map[string]string{},
		"FormData": classFormFrom(c),
	}
	h.classFormExtras(r.Context(), data)
	h.renderPage(w, r, meta, data)
}

func (h *UIHandlers) classFormExtras(ctx context.Context, data map[string]any) {
	data["Statuses"] = academy.ClassStatuses()
	h.loadOptions(ctx, service.OptGroups, data)
}

// ClassCreate handles the new class form.
func (h *UIHandlers) ClassCreate(w http.ResponseWriter, r *http.Request) {
	h.saveClass(w, r, FormModeCreate, "New class")
}

// ClassUpdate handles the edit class form.
func (h *UIHandlers) ClassUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveClass(w, r, FormModeEdit, "Edit class")
}

func (h *UIHandlers) saveClass(w http.ResponseWriter, r *http.Request, mode FormMode, title string) {
	HandleForm(FormHandlerOpts[classForm]{
		W:      w,
		R:      r,
		Mode:   mode,
		Parser: readClassForm,
		Actions: FormActions[classForm]{
			Create: func(ctx context.Context, f classForm) error {
				_, err := h.Classes.Create(ctx, f.request())
				return err
			},
			Update: func(ctx context.Context, id int64, f classForm) error {
				_, err := h.Classes.Update(ctx, id, f.request())
				return err
			},
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.classFormExtras(r.Context(), data)
			h.renderDashboardPage(w, r, data)
		},
		SuccessURL:     classesPath,
		SuccessMessage: "Class saved.",
		PageMeta:       classMeta(PageClassForm, title),
	})
}

// ClassDelete removes a class.
func (h *UIHandlers) ClassDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := h.Classes.Delete(r.Context(), id); err != nil {
		h.actionFailed(w, r, "delete class", err)
		return
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), classesPath), "Class deleted.")
}

// ClassSetStatus moves a class to another status of the fixed lifecycle.
func (h *UIHandlers) ClassSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	c, err := h.Classes.SetStatus(r.Context(), id, formValue(r, "status"))
	if err != nil {
		h.actionFailed(w, r, "change class status", err)
		return
	}
	msg := "Class status changed."
	if c != nil {
		msg = "Class is now " + c.Status.Label() + "."
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), classesPath+"/"+formatID(id)), msg)
}

// ClassMarkAttendance records or corrects one student's attendance on the class sheet.
func (h *UIHandlers) ClassMarkAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	studentID, err := strconv.ParseInt(formValue(r, "alunoId"), 10, 64)
	if err != nil || studentID <= 0 {
		h.actionFailed(w, r, "mark attendance", apperrors.Validation("Choose a student."))
		return
	}
	recordID, _ := strconv.ParseInt(formValue(r, "presencaId"), 10, 64)
	present := formBool(r, "presente")

	rec, err := h.Attendance.Mark(r.Context(), service.MarkInput{
		ClassID:   id,
		StudentID: studentID,
		RecordID:  recordID,
		Present:   present,
		Note:      formValue(r, "observacao"),
	})
	if err != nil {
		h.actionFailed(w, r, "mark attendance", err)
		return
	}
	msg := "Attendance saved."
	if rec != nil && rec.StudentName != "" {
		state := "absent"
		if rec.Present {
			state = "present"
		}
		msg = rec.StudentName + " marked " + state + "."
	}
	h.actionDone(w, r, classesPath+"/"+formatID(id), msg)
}

// ClassExportAttendance downloads the class attendance sheet as an xlsx workbook.
func (h *UIHandlers) ClassExportAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	sheet, err := h.Classes.Sheet(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, classMeta(PageClass, "Class"), err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteAttendance(&buf, sheet); err != nil {
		h.logger().ErrorContext(r.Context(), "attendance export failed", "class_id", id, "error", err)
		http.Error(w, "Unable to build the attendance export.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.AttendanceFilename(sheet)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger().WarnContext(r.Context(), "attendance export write failed", "class_id", id, "error", err)
	}
}
