package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

func TestPageRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  academy.PageRequest
	}{
		{name: "defaults", query: "", want: academy.PageRequest{Page: 0, Size: 10}},
		{name: "explicit page", query: "page=3", want: academy.PageRequest{Page: 3, Size: 10}},
		{name: "negative page ignored", query: "page=-2", want: academy.PageRequest{Page: 0, Size: 10}},
		{name: "garbage page ignored", query: "page=abc", want: academy.PageRequest{Page: 0, Size: 10}},
		{name: "size param ignored", query: "page=1&size=25", want: academy.PageRequest{Page: 1, Size: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pageRequest(q, 10))
		})
	}
}

func TestFilterValues(t *testing.T) {
	q := url.Values{"q": {"  ana "}, "status": {"ATIVO"}, "other": {"x"}}
	got := filterValues(q, studentFilterParams)
	assert.Equal(t, map[string]string{"q": "ana", "status": "ATIVO", "faixa": ""}, got)
}

func TestStudentList_RequestsServerPageAndFiltersLocally(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	var gotReq academy.PageRequest
	h.Students = &fakeStudents{list: func(_ context.Context, req academy.PageRequest) (*academy.Page[academy.Student], error) {
		gotReq = req
		page := studentPage(testStudents()...)
		page.Number = req.Page
		page.TotalPages = 3
		page.TotalElements = 23
		return page, nil
	}}

	req := sessionRequest(httptest.NewRequest(http.MethodGet, "/students?page=1&q=carla", nil), domainauth.RoleCoordinator)
	w := httptest.NewRecorder()
	h.StudentList(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, academy.PageRequest{Page: 1, Size: academy.DefaultPageSize}, gotReq)
	body := w.Body.String()
	assert.Contains(t, body, "Carla Ândrade")
	assert.NotContains(t, body, "Bruno Lima")
	// Totals come from the server page, not the filtered rows.
	assert.Contains(t, body, "1 matching in rows 11&ndash;13 of 23")
	assert.Contains(t, body, "/students?page=2")
}

func TestStudentList_PageSizeIsFixedPerScreen(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	var gotReq academy.PageRequest
	h.Students = &fakeStudents{list: func(_ context.Context, req academy.PageRequest) (*academy.Page[academy.Student], error) {
		gotReq = req
		page := studentPage(testStudents()...)
		page.TotalPages = 4
		page.TotalElements = 33
		return page, nil
	}}

	req := sessionRequest(httptest.NewRequest(http.MethodGet, "/students?page=0&size=50", nil), domainauth.RoleAdmin)
	w := httptest.NewRecorder()
	h.StudentList(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, academy.DefaultPageSize, gotReq.Size)
	assert.Contains(t, w.Body.String(), `href="/students?page=1"`)
	assert.NotContains(t, w.Body.String(), "page=1&amp;size=50")
	assert.Contains(t, w.Body.String(), "Showing 1&ndash;3 of 33")
}

func TestStudentList_CanceledLoadRendersNothing(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	h.Students = &fakeStudents{list: func(context.Context, academy.PageRequest) (*academy.Page[academy.Student], error) {
		return nil, context.Canceled
	}}

	req := htmxRequest(sessionRequest(httptest.NewRequest(http.MethodGet, "/students?page=2", nil), domainauth.RoleAdmin))
	w := httptest.NewRecorder()
	h.StudentList(w, req)

	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("Hx-Trigger"))
}

func TestStudentList_FailedLoadShowsMessageWithoutRows(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	h.Students = &fakeStudents{list: func(context.Context, academy.PageRequest) (*academy.Page[academy.Student], error) {
		return nil, apperrors.New(apperrors.ErrCodeUpstream, "The academy API is unavailable.")
	}}

	req := htmxRequest(sessionRequest(httptest.NewRequest(http.MethodGet, "/students", nil), domainauth.RoleAdmin))
	w := httptest.NewRecorder()
	h.StudentList(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The academy API is unavailable.")
	assert.Contains(t, body, "Nothing to show.")
	assert.NotContains(t, body, "pager-summary")
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "showToast")
}

func TestStudentList_FilterHidesEveryRow(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	h.Students = &fakeStudents{list: func(context.Context, academy.PageRequest) (*academy.Page[academy.Student], error) {
		return studentPage(testStudents()...), nil
	}}

	req := sessionRequest(httptest.NewRequest(http.MethodGet, "/students?q=nobody", nil), domainauth.RoleAdmin)
	w := httptest.NewRecorder()
	h.StudentList(w, req)

	assert.Contains(t, w.Body.String(), "No rows on this page match the filter.")
}

func TestStudentList_PartialForHTMX(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	h.Students = &fakeStudents{list: func(context.Context, academy.PageRequest) (*academy.Page[academy.Student], error) {
		return studentPage(), nil
	}}

	req := htmxRequest(sessionRequest(httptest.NewRequest(http.MethodGet, "/students", nil), domainauth.RoleAdmin))
	w := httptest.NewRecorder()
	h.StudentList(w, req)

	body := w.Body.String()
	assert.True(t, ContainsAll(body, []string{"<title>Dojo Admin - Students</title>", `id="header-title"`, "No records yet."}))
	assert.NotContains(t, body, "<html")
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "nav:activate")
}

func TestStudentList_RowActionsFollowRole(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	h.Students = &fakeStudents{list: func(context.Context, academy.PageRequest) (*academy.Page[academy.Student], error) {
		return studentPage(testStudents()[0]), nil
	}}

	render := func(role domainauth.Role) string {
		req := sessionRequest(httptest.NewRequest(http.MethodGet, "/students", nil), role)
		w := httptest.NewRecorder()
		h.StudentList(w, req)
		return w.Body.String()
	}

	instructor := render(domainauth.RoleInstructor)
	assert.Contains(t, instructor, "/students/1/promote")
	assert.NotContains(t, instructor, "/students/1/delete")
	assert.NotContains(t, instructor, "/students/new")

	admin := render(domainauth.RoleAdmin)
	assert.Contains(t, admin, "/students/1/promote")
	assert.Contains(t, admin, "/students/1/delete")
	assert.Contains(t, admin, "/students/new")
}
