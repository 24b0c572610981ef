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

const groupsPath = "/groups"

func groupMeta(page, title string) PageMeta {
	return PageMeta{Title: "Dojo Admin - " + title, PageTitle: title, CurrentPage: page}
}

// GroupList renders one server page of groups.
func (h *UIHandlers) GroupList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[academy.Group]{
		Handler:      h,
		W:            w,
		R:            r,
		Fetch:        h.Groups.List,
		Filter:       groupFilter,
		FilterParams: groupFilterParams,
		BasePath:     groupsPath,
		PageMeta:     groupMeta(PageGroups, "Groups"),
		ItemsKey:     "Groups",
		ErrorMessage: "Unable to load groups.",
		EnrichData: func(b *TemplateDataBuilder, _ listing.State[academy.Group], _ []academy.Group) {
			b.With("Modalities", academy.Modalities()).
				With("ReturnTo", r.URL.RequestURI())
		},
	})
}

// GroupView renders a group with its roster.
func (h *UIHandlers) GroupView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := groupMeta(PageGroup, "Group")
	g, err := h.Groups.Get(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	meta.PageTitle = g.Name
	meta.Title = "Dojo Admin - " + g.Name
	data := map[string]any{"Group": g}
	if CanFromContext(r.Context(), domainauth.PermManageGroupRoster) && !g.Full() {
		h.loadOptions(r.Context(), service.OptStudents, data)
		if lists, ok := data["Options"].(*service.OptionLists); ok {
			data["Candidates"] = rosterCandidates(g, lists.Students)
		}
	}
	h.renderPage(w, r, meta, data)
}

// rosterCandidates drops students already on the roster.
func rosterCandidates(g *academy.Group, students []service.Option) []service.Option {
	out := make([]service.Option, 0, len(students))
	for _, s := range students {
		if !g.HasStudent(s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// GroupNew renders the empty group form.
func (h *UIHandlers) GroupNew(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, groupMeta(PageGroupForm, "New group"), map[string]any{
		"Mode":       string(FormModeCreate),
		"Errors":     map[string]string{},
		"FormData":   groupForm{Active: true},
		"Modalities": academy.Modalities(),
	})
}

// GroupEdit renders the group form with the current record.
func (h *UIHandlers) GroupEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := groupMeta(PageGroupForm, "Edit group")
	g, err := h.Groups.Get(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	h.renderPage(w, r, meta, map[string]any{
		"Mode":       string(FormModeEdit),
		"ID":         id,
		"Errors":     map[string]string{},
		"FormData":   groupFormFrom(g),
		"Modalities": academy.Modalities(),
	})
}

// GroupCreate handles the new group form.
func (h *UIHandlers) GroupCreate(w http.ResponseWriter, r *http.Request) {
	h.saveGroup(w, r, FormModeCreate, "New group")
}

// GroupUpdate handles the edit group form.
func (h *UIHandlers) GroupUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveGroup(w, r, FormModeEdit, "Edit group")
}

func (h *UIHandlers) saveGroup(w http.ResponseWriter, r *http.Request, mode FormMode, title string) {
	HandleForm(FormHandlerOpts[groupForm]{
		W:      w,
		R:      r,
		Mode:   mode,
		Parser: readGroupForm,
		Actions: FormActions[groupForm]{
			Create: func(ctx context.Context, f groupForm) error {
				_, err := h.Groups.Create(ctx, f.request())
				return err
			},
			Update: func(ctx context.Context, id int64, f groupForm) error {
				_, err := h.Groups.Update(ctx, id, f.request())
				return err
			},
		},
		Renderer:       h.renderDashboardPageMap,
		SuccessURL:     groupsPath,
		SuccessMessage: "Group saved.",
		PageMeta:       groupMeta(PageGroupForm, title),
		ExtraData:      map[string]any{"Modalities": academy.Modalities()},
	})
}

// GroupDelete removes a group.
func (h *UIHandlers) GroupDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := h.Groups.Delete(r.Context(), id); err != nil {
		h.actionFailed(w, r, "delete group", err)
		return
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), groupsPath), "Group deleted.")
}

// GroupAddStudent puts the student chosen in the form on the group roster.
func (h *UIHandlers) GroupAddStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	studentID, err := strconv.ParseInt(formValue(r, "alunoId"), 10, 64)
	if err != nil || studentID <= 0 {
		h.actionFailed(w, r, "add student to group", apperrors.Validation("Choose a student to add."))
		return
	}
	if err := h.Groups.AddStudent(r.Context(), id, studentID); err != nil {
		h.actionFailed(w, r, "add student to group", err)
		return
	}
	h.actionDone(w, r, groupsPath+"/"+formatID(id), "Student added to the group.")
}

// GroupRemoveStudent takes a student off the group roster.
func (h *UIHandlers) GroupRemoveStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	studentID, sok := pathID(r, "studentID")
	if !ok || !sok {
		h.NotFound(w, r)
		return
	}
	if err := h.Groups.RemoveStudent(r.Context(), id, studentID); err != nil {
		h.actionFailed(w, r, "remove student from group", err)
		return
	}
	h.actionDone(w, r, groupsPath+"/"+formatID(id), "Student removed from the group.")
}
