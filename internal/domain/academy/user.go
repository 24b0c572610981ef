package academy

import "strings"

// Profile is the role a user account holds in the academy API.
type Profile string

const (
	ProfileAdmin       Profile = "ADMIN"
	ProfileCoordinator Profile = "COORDENADOR"
	ProfileInstructor  Profile = "INSTRUTOR"
	ProfileStudent     Profile = "ALUNO"
	ProfileGuardian    Profile = "RESPONSAVEL"
)

// Profiles lists every profile.
func Profiles() []Profile {
	return []Profile{ProfileAdmin, ProfileCoordinator, ProfileInstructor, ProfileStudent, ProfileGuardian}
}

// Valid reports whether the profile is known.
func (p Profile) Valid() bool {
	for _, known := range Profiles() {
		if known == p {
			return true
		}
	}
	return false
}

// Label returns the display name of the profile.
func (p Profile) Label() string {
	switch p {
	case ProfileAdmin:
		return "Administrator"
	case ProfileCoordinator:
		return "Coordinator"
	case ProfileInstructor:
		return "Instructor"
	case ProfileStudent:
		return "Student"
	case ProfileGuardian:
		return "Guardian"
	default:
		return string(p)
	}
}

// ParseProfile normalizes a profile string and reports whether it is known.
func ParseProfile(v string) (Profile, bool) {
	p := Profile(strings.ToUpper(strings.TrimSpace(v)))
	return p, p.Valid()
}

// User is a login account of the academy API.
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"nome"`
	Email   string  `json:"email"`
	Profile Profile `json:"perfil"`
	Active  bool    `json:"ativo"`
}

// UserRequest is the body for creating or replacing a user. Password is only sent on create.
type UserRequest struct {
	Name     string  `json:"nome"`
	Email    string  `json:"email"`
	Profile  Profile `json:"perfil"`
	Active   bool    `json:"ativo"`
	Password string  `json:"senha,omitempty"`
}

// UserStatusRequest is the body of the user activation PATCH.
type UserStatusRequest struct {
	Active bool `json:"ativo"`
}
