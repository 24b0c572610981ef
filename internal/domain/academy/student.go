package academy

import (
	"strings"
	"time"
)

// AdultAge is the age from which a student may enroll without a guardian.
const AdultAge = 18

// StudentStatus is the registration state of a student.
type StudentStatus string

const (
	StudentActive   StudentStatus = "ATIVO"
	StudentInactive StudentStatus = "INATIVO"
)

// Valid reports whether the status is known.
func (s StudentStatus) Valid() bool {
	return s == StudentActive || s == StudentInactive
}

// Label returns the display name of the status.
func (s StudentStatus) Label() string {
	switch s {
	case StudentActive:
		return "Active"
	case StudentInactive:
		return "Inactive"
	default:
		return string(s)
	}
}

// StudentStatuses lists the statuses offered in filters and forms.
func StudentStatuses() []StudentStatus {
	return []StudentStatus{StudentActive, StudentInactive}
}

// Belt is a student's rank.
type Belt string

const (
	BeltWhite  Belt = "BRANCA"
	BeltGrey   Belt = "CINZA"
	BeltYellow Belt = "AMARELA"
	BeltOrange Belt = "LARANJA"
	BeltGreen  Belt = "VERDE"
	BeltBlue   Belt = "AZUL"
	BeltPurple Belt = "ROXA"
	BeltBrown  Belt = "MARROM"
	BeltBlack  Belt = "PRETA"
)

var beltOrder = []Belt{ //nolint:gochecknoglobals // fixed rank order
	BeltWhite, BeltGrey, BeltYellow, BeltOrange, BeltGreen, BeltBlue, BeltPurple, BeltBrown, BeltBlack,
}

var beltLabels = map[Belt]string{ //nolint:gochecknoglobals // read-only lookup
	BeltWhite:  "White",
	BeltGrey:   "Grey",
	BeltYellow: "Yellow",
	BeltOrange: "Orange",
	BeltGreen:  "Green",
	BeltBlue:   "Blue",
	BeltPurple: "Purple",
	BeltBrown:  "Brown",
	BeltBlack:  "Black",
}

// Belts returns every rank from lowest to highest.
func Belts() []Belt {
	out := make([]Belt, len(beltOrder))
	copy(out, beltOrder)
	return out
}

// Rank returns the zero-based position of the belt, or -1 when unknown.
func (b Belt) Rank() int {
	for i, candidate := range beltOrder {
		if candidate == b {
			return i
		}
	}
	return -1
}

// Label returns the display name of the belt.
func (b Belt) Label() string {
	if label, ok := beltLabels[b]; ok {
		return label
	}
	return string(b)
}

// CanPromote reports whether a higher rank exists.
func (b Belt) CanPromote() bool {
	r := b.Rank()
	return r >= 0 && r < len(beltOrder)-1
}

// CanDemote reports whether a lower rank exists.
func (b Belt) CanDemote() bool {
	return b.Rank() > 0
}

// ParseBelt normalizes a belt string and reports whether it is known.
func ParseBelt(v string) (Belt, bool) {
	b := Belt(strings.ToUpper(strings.TrimSpace(v)))
	return b, b.Rank() >= 0
}

// Address is a student's postal address.
type Address struct {
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento,omitempty"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"estado"`
	PostalCode   string `json:"cep"`
}

// Complete reports whether the address carries the fields the API requires.
func (a *Address) Complete() bool {
	if a == nil {
		return false
	}
	return strings.TrimSpace(a.Street) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.PostalCode) != ""
}

// GuardianRef is the guardian summary embedded in a student.
type GuardianRef struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Relationship string `json:"parentesco,omitempty"`
}

// Student is a person enrolled at the academy.
type Student struct {
	ID        int64         `json:"id"`
	Name      string        `json:"nome"`
	Email     string        `json:"email"`
	Document  string        `json:"cpf"`
	Phone     string        `json:"telefone,omitempty"`
	BirthDate Date          `json:"dataNascimento"`
	Status    StudentStatus `json:"status"`
	Belt      Belt          `json:"faixa"`
	Degree    int           `json:"grau"`
	Address   *Address      `json:"endereco,omitempty"`
	Guardians []GuardianRef `json:"responsaveis,omitempty"`
}

// Age returns the student's age in full years on the given day.
func (s *Student) Age(on time.Time) int {
	return s.BirthDate.AgeOn(on)
}

// IsMinor reports whether the student is under AdultAge on the given day.
func (s *Student) IsMinor(on time.Time) bool {
	return !s.BirthDate.IsZero() && s.Age(on) < AdultAge
}

// HasGuardian reports whether the student has guardian id linked.
func (s *Student) HasGuardian(id int64) bool {
	for _, g := range s.Guardians {
		if g.ID == id {
			return true
		}
	}
	return false
}

// StudentRequest is the body for creating (POST) or replacing (PUT) a student.
type StudentRequest struct {
	Name       string        `json:"nome"`
	Email      string        `json:"email"`
	Document   string        `json:"cpf"`
	Phone      string        `json:"telefone,omitempty"`
	BirthDate  Date          `json:"dataNascimento"`
	Status     StudentStatus `json:"status"`
	Belt       Belt          `json:"faixa"`
	Degree     int           `json:"grau"`
	Address    *Address      `json:"endereco,omitempty"`
	GuardianID *int64        `json:"responsavelId,omitempty"`
}

// StudentRef is the student summary embedded in guardians and groups.
type StudentRef struct {
	ID     int64         `json:"id"`
	Name   string        `json:"nome"`
	Belt   Belt          `json:"faixa,omitempty"`
	Status StudentStatus `json:"status,omitempty"`
}
