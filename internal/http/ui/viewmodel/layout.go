package viewmodel

import domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"

// User represents the authenticated user context exposed to templates.
type User struct {
	Name      string
	Email     string
	Role      string
	RoleLabel string
}

// Permissions flattens the role matrix for templates, which show or hide
// role-gated controls with {{if .Can.ChangeBelt}} and similar.
type Permissions struct {
	ViewAcademy       bool
	ViewOwnProfile    bool
	ChangeBelt        bool
	ToggleEnrollment  bool
	LinkGuardian      bool
	ManageGroupRoster bool
	MarkAttendance    bool
	ChangeClassStatus bool
	ManageRecords     bool
	ManageUsers       bool
	ExportAttendance  bool
}

// PermissionsFor evaluates every permission for role.
func PermissionsFor(role domainauth.Role) Permissions {
	return Permissions{
		ViewAcademy:       role.Can(domainauth.PermViewAcademy),
		ViewOwnProfile:    role.Can(domainauth.PermViewOwnProfile),
		ChangeBelt:        role.Can(domainauth.PermChangeBelt),
		ToggleEnrollment:  role.Can(domainauth.PermToggleEnrollment),
		LinkGuardian:      role.Can(domainauth.PermLinkGuardian),
		ManageGroupRoster: role.Can(domainauth.PermManageGroupRoster),
		MarkAttendance:    role.Can(domainauth.PermMarkAttendance),
		ChangeClassStatus: role.Can(domainauth.PermChangeClassStatus),
		ManageRecords:     role.Can(domainauth.PermManageRecords),
		ManageUsers:       role.Can(domainauth.PermManageUsers),
		ExportAttendance:  role.Can(domainauth.PermExportAttendance),
	}
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	User            *User
	Can             Permissions
	// IdleDeadline is RFC3339; empty when idle expiry is off.
	IdleDeadline       string
	IdleWarningSeconds int
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
