package httpx

import (
	"context"
	"net/http"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	"github.com/dojoworks/dojo-admin/internal/listing"
)

const usersPath = "/users"

func userMeta(page, title string) PageMeta {
	return PageMeta{Title: "Dojo Admin - " + title, PageTitle: title, CurrentPage: page}
}

// UserList renders one server page of login accounts.
func (h *UIHandlers) UserList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[academy.User]{
		Handler:      h,
		W:            w,
		R:            r,
		Fetch:        h.Users.List,
		Filter:       userFilter,
		FilterParams: userFilterParams,
		BasePath:     usersPath,
		PageMeta:     userMeta(PageUsers, "Users"),
		ItemsKey:     "Users",
		ErrorMessage: "Unable to load users.",
		EnrichData: func(b *TemplateDataBuilder, _ listing.State[academy.User], _ []academy.User) {
			b.With("Profiles", academy.Profiles()).
				With("ReturnTo", r.URL.RequestURI())
		},
	})
}

// UserNew renders the empty user form.
func (h *UIHandlers) UserNew(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, userMeta(PageUserForm, "New user"), map[string]any{
		"Mode":     string(FormModeCreate),
		"Errors":   map[string]string{},
		"FormData": userForm{Active: true, Profile: string(academy.ProfileInstructor)},
		"Profiles": academy.Profiles(),
	})
}

// UserEdit renders the user form without the password field.
func (h *UIHandlers) UserEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := userMeta(PageUserForm, "Edit user")
	u, err := h.Users.Get(r.Context(), id)
	if err != nil {
		h.detailFailed(w, r, meta, err)
		return
	}
	h.renderPage(w, r, meta, map[string]any{
		"Mode":     string(FormModeEdit),
		"ID":       id,
		"Errors":   map[string]string{},
		"FormData": userFormFrom(u),
		"Profiles": academy.Profiles(),
	})
}

// UserCreate handles the new user form.
func (h *UIHandlers) UserCreate(w http.ResponseWriter, r *http.Request) {
	h.saveUser(w, r, FormModeCreate, "New user")
}

// UserUpdate handles the edit user form.
func (h *UIHandlers) UserUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveUser(w, r, FormModeEdit, "Edit user")
}

func (h *UIHandlers) saveUser(w http.ResponseWriter, r *http.Request, mode FormMode, title string) {
	HandleForm(FormHandlerOpts[userForm]{
		W:      w,
		R:      r,
		Mode:   mode,
		Parser: readUserForm(mode),
		Actions: FormActions[userForm]{
			Create: func(ctx context.Context, f userForm) error {
				_, err := h.Users.Create(ctx, f.request())
				return err
			},
			Update: func(ctx context.Context, id int64, f userForm) error {
				f.Password = ""
				_, err := h.Users.Update(ctx, id, f.request())
				return err
			},
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			if f, ok := data["FormData"].(userForm); ok {
				f.Password = ""
				data["FormData"] = f
			}
			h.renderDashboardPage(w, r, data)
		},
		SuccessURL:     usersPath,
		SuccessMessage: "User saved.",
		PageMeta:       userMeta(PageUserForm, title),
		ExtraData:      map[string]any{"Profiles": academy.Profiles()},
	})
}

// UserDelete removes a login account.
func (h *UIHandlers) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := h.Users.Delete(r.Context(), id); err != nil {
		h.actionFailed(w, r, "delete user", err)
		return
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), usersPath), "User deleted.")
}

// UserSetActive enables or disables a login account. The form field ativo carries the new state.
func (h *UIHandlers) UserSetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	u, err := h.Users.SetActive(r.Context(), id, formBool(r, "ativo"))
	if err != nil {
		h.actionFailed(w, r, "change user status", err)
		return
	}
	msg := "User updated."
	if u != nil {
		state := "disabled"
		if u.Active {
			state = "enabled"
		}
		msg = u.Name + " " + state + "."
	}
	h.actionDone(w, r, returnTo(r.FormValue("return_to"), usersPath), msg)
}
