package auth

// Package auth contains domain-level types for authentication, sessions and
// role-based permissions. It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleInstructor  Role = "instructor"
	RoleStudent     Role = "student"
	RoleGuardian    Role = "guardian"
	RoleGuest       Role = "guest"
)

// Roles lists the roles that may sign in, most privileged first.
func Roles() []Role {
	return []Role{RoleAdmin, RoleCoordinator, RoleInstructor, RoleStudent, RoleGuardian}
}

// Valid reports whether r is one of the signed-in roles.
func (r Role) Valid() bool {
	for _, v := range Roles() {
		if r == v {
			return true
		}
	}
	return false
}

// Label is the display name of r.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleCoordinator:
		return "Coordinator"
	case RoleInstructor:
		return "Instructor"
	case RoleStudent:
		return "Student"
	case RoleGuardian:
		return "Guardian"
	default:
		return "Guest"
	}
}

// IsStaff reports whether r belongs to the academy staff.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleCoordinator || r == RoleInstructor
}

// ParseRole converts a stored role string, falling back to guest.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r.Valid() {
		return r
	}
	return RoleGuest
}

// Permission names one role-gated capability.
type Permission string

const (
	PermViewAcademy       Permission = "academy:view"
	PermViewOwnProfile    Permission = "profile:view"
	PermChangeBelt        Permission = "students:belt"
	PermToggleEnrollment  Permission = "enrollments:status"
	PermLinkGuardian      Permission = "students:guardians"
	PermManageGroupRoster Permission = "groups:roster"
	PermMarkAttendance    Permission = "attendance:mark"
	PermChangeClassStatus Permission = "classes:status"
	PermManageRecords     Permission = "records:write"
	PermManageUsers       Permission = "users:manage"
	PermExportAttendance  Permission = "attendance:export"
)

var permissions = map[Permission][]Role{ //nolint:gochecknoglobals // read-only matrix
	PermViewAcademy:       {RoleAdmin, RoleCoordinator, RoleInstructor},
	PermViewOwnProfile:    {RoleStudent, RoleGuardian},
	PermChangeBelt:        {RoleAdmin, RoleCoordinator, RoleInstructor},
	PermToggleEnrollment:  {RoleAdmin, RoleCoordinator},
	PermLinkGuardian:      {RoleAdmin, RoleCoordinator},
	PermManageGroupRoster: {RoleAdmin, RoleCoordinator},
	PermMarkAttendance:    {RoleAdmin, RoleCoordinator, RoleInstructor},
	PermChangeClassStatus: {RoleAdmin, RoleCoordinator, RoleInstructor},
	PermManageRecords:     {RoleAdmin, RoleCoordinator},
	PermManageUsers:       {RoleAdmin},
	PermExportAttendance:  {RoleAdmin, RoleCoordinator, RoleInstructor},
}

// Can reports whether r holds permission p.
func (r Role) Can(p Permission) bool {
	for _, allowed := range permissions[p] {
		if r == allowed {
			return true
		}
	}
	return false
}

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (sub)
	FirstName string
	LastName  string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
	LastSeen  time.Time `json:"last_seen"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// Can reports whether the session's role holds permission p.
func (s Session) Can(p Permission) bool { return s.Role.Can(p) }

// DisplayName returns the best available name for the header.
func (s Session) DisplayName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name != "" {
		return name
	}
	if s.Email != "" {
		return s.Email
	}
	return s.UserID
}

// Expired reports whether the absolute expiry has passed.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Idle reports whether the session has been inactive for at least timeout.
// A zero timeout or an unset LastSeen never idles out.
func (s Session) Idle(now time.Time, timeout time.Duration) bool {
	if timeout <= 0 || s.LastSeen.IsZero() {
		return false
	}
	return now.Sub(s.LastSeen) >= timeout
}

// IdleDeadline is the instant the session idles out, bounded by ExpiresAt.
func (s Session) IdleDeadline(timeout time.Duration) time.Time {
	if timeout <= 0 || s.LastSeen.IsZero() {
		return s.ExpiresAt
	}
	deadline := s.LastSeen.Add(timeout)
	if !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(deadline) {
		return s.ExpiresAt
	}
	return deadline
}
