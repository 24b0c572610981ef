package httpx

import (
	"net/http"

	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
	"github.com/dojoworks/dojo-admin/internal/service"
)

func profileMeta(page, title string) PageMeta {
	return PageMeta{Title: "Dojo Admin - " + title, PageTitle: title, CurrentPage: page}
}

// Profile shows the signed-in student their own record, or the signed-in
// guardian their record and linked students.
func (h *UIHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		h.AccessDenied(w, r)
		return
	}
	meta := profileMeta(PageProfile, "My profile")

	switch session.Role {
	case domainauth.RoleStudent:
		p, err := h.Profiles.Student(r.Context(), session.Email)
		if err != nil {
			h.profileFailed(w, r, meta, err)
			return
		}
		h.renderPage(w, r, meta, studentProfileData(p, false))
	case domainauth.RoleGuardian:
		p, err := h.Profiles.Guardian(r.Context(), session.Email)
		if err != nil {
			h.profileFailed(w, r, meta, err)
			return
		}
		h.renderPage(w, r, meta, map[string]any{
			"Kind":     "guardian",
			"Guardian": p.Guardian,
			"Students": p.Students,
		})
	default:
		h.AccessDenied(w, r)
	}
}

// ProfileStudent shows a guardian the profile of one of their linked students.
func (h *UIHandlers) ProfileStudent(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil || session.Role != domainauth.RoleGuardian {
		h.AccessDenied(w, r)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	meta := profileMeta(PageProfile, "Student profile")
	p, err := h.Profiles.LinkedStudent(r.Context(), session.Email, id)
	if err != nil {
		h.profileFailed(w, r, meta, err)
		return
	}
	meta.PageTitle = p.Student.Name
	h.renderPage(w, r, meta, studentProfileData(p, true))
}

func studentProfileData(p *service.StudentProfile, viaGuardian bool) map[string]any {
	return map[string]any{
		"Kind":        "student",
		"Student":     p.Student,
		"Enrollments": p.Enrollments,
		"Attendance":  p.Attendance,
		"Summary":     p.Summary,
		"ViaGuardian": viaGuardian,
	}
}

// profileFailed maps profile lookups that trip over incomplete API records to
// a dedicated page; everything else follows the detail error path.
func (h *UIHandlers) profileFailed(w http.ResponseWriter, r *http.Request, meta PageMeta, err error) {
	if service.IsIncompleteProfile(err) {
		h.logger().InfoContext(r.Context(), "profile record incomplete", "error", err)
		h.renderPage(w, r, profileMeta(PageIncompleteProfile, "Profile incomplete"), map[string]any{
			"Message": "Your academy record is missing required details, such as an address. Please ask the front desk to complete it.",
		})
		return
	}
	if apperrors.IsForbidden(err) {
		h.AccessDenied(w, r)
		return
	}
	h.detailFailed(w, r, meta, err)
}
