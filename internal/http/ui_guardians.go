package httpx

import (
	"context"
	"net/http"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	"github.com/dojoworks/dojo-admin/internal/listing"
)

const guardiansPath = "/guardians"

func guardianMeta(page, title string) PageMeta {
	return PageMeta{Title: "Dojo Admin - " + title, PageTitle: title, CurrentPage: page}
}

// GuardianList renders one server page of guardians.
func (h *UIHandlers) GuardianList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[academy.Guardian]{
		Handler:      h,
		W:            w,
		R:            r,
		Fetch:        h.Guardians.List,
		Filter:       guardianFilter,
		FilterParams: guardianFilterParams,
		BasePath:     guardiansPath,
		PageMeta:     guardianMeta(PageGuardians, "Guardians"),
		ItemsKey:     "Guardians",
		ErrorMessage: "Unable to load guardians.",
		EnrichData: func(b *TemplateDataBuilder, _ listing.State[academy.Guardian], _ []academy.Guardian) {
			b.With("ReturnTo", r.URL.RequestURI())
		},
	})
}

// GuardianView renders a guardian and the students linked to them.
func (h *UIHandlers) GuardianView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := guardianMeta(PageGuardian, "Guardian")
	detail, err := h.Guardians.Detail(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	meta.PageTitle = detail.Guardian.Name
	meta.Title = "Dojo Admin - " + detail.Guardian.Name
	h.renderPage(w, r, meta, map[string]any{
		"Guardian":      detail.Guardian,
		"Students":      detail.Students,
		"StudentsError": sectionError(detail.StudentsErr),
	})
}

// GuardianNew renders the empty guardian form.
func (h *UIHandlers) GuardianNew(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, guardianMeta(PageGuardianForm, "New guardian"), map[string]any{
		"Mode":          string(FormModeCreate),
		"Errors":        map[string]string{},
		"FormData":      guardianForm{},
		"Relationships": academy.Relationships(),
	})
}

// GuardianEdit renders the guardian form with the current record.
func (h *UIHandlers) GuardianEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := guardianMeta(PageGuardianForm, "Edit guardian")
	g, err := h.Guardians.Get(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	h.renderPage(w, r, meta, map[string]any{
		"Mode":          string(FormModeEdit),
		"ID":            id,
		"Errors":        map[string]string{},
		"FormData":      guardianFormFrom(g),
		"Relationships": academy.Relationships(),
	})
}

// GuardianCreate handles the new guardian form.
func (h *UIHandlers) GuardianCreate(w http.ResponseWriter, r *http.Request) {
	h.saveGuardian(w, r, FormModeCreate, "New guardian")
}

// GuardianUpdate handles the edit guardian form.
func (h *UIHandlers) GuardianUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveGuardian(w, r, FormModeEdit, "Edit guardian")
}

func (h *UIHandlers) saveGuardian(w http.ResponseWriter, r *http.Request, mode FormMode, title string) {
	HandleForm(FormHandlerOpts[guardianForm]{
		W:      w,
		R:      r,
		Mode:   mode,
		Parser: readGuardianForm,
		Actions: FormActions[guardianForm]{
			Create: func(ctx context.Context, f guardianForm) error {
				_, err := h.Guardians.Create(ctx, f.request())
				return err
			},
			Update: func(ctx context.Context, id int64, f guardianForm) error {
				_, err := h.Guardians.Update(ctx, id, f.request())
				return err
			},
		},
		Renderer:       h.renderDashboardPageMap,
		SuccessURL:     guardiansPath,
		SuccessMessage: "Guardian saved.",
		PageMeta:       guardianMeta(PageGuardianForm, title),
		ExtraData:      map[string]any{"Relationships": academy.Relationships()},
	})
}

// GuardianDelete removes a guardian.
func (h *UIHandlers) GuardianDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := h.Guardians.Delete(r.Context(), id); err != nil {
		h.actionFailed(w, r, "delete guardian", err)
		return
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), guardiansPath), "Guardian deleted.")
}
