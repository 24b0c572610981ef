package authroles

import (
	"strings"

	domainauth "github.com/dojoworks/dojo-admin/internal/domain/auth"
)

// GroupMapper maps IdP groups onto the five academy roles.
// When a user belongs to several mapped groups the most privileged role wins.
type GroupMapper struct {
	AdminGroup       string
	CoordinatorGroup string
	InstructorGroup  string
	StudentGroup     string
	GuardianGroup    string
}

func (m GroupMapper) groupFor(role domainauth.Role) string {
	switch role {
	case domainauth.RoleAdmin:
		return m.AdminGroup
	case domainauth.RoleCoordinator:
		return m.CoordinatorGroup
	case domainauth.RoleInstructor:
		return m.InstructorGroup
	case domainauth.RoleStudent:
		return m.StudentGroup
	case domainauth.RoleGuardian:
		return m.GuardianGroup
	default:
		return ""
	}
}

// Map returns the highest role whose group is present, or guest.
// Group names compare case-insensitively.
func (m GroupMapper) Map(groups []string) domainauth.Role {
	member := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		member[strings.ToLower(strings.TrimSpace(g))] = struct{}{}
	}
	for _, role := range domainauth.Roles() {
		group := strings.ToLower(strings.TrimSpace(m.groupFor(role)))
		if group == "" {
			continue
		}
		if _, ok := member[group]; ok {
			return role
		}
	}
	return domainauth.RoleGuest
}
