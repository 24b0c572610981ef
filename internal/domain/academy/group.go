package academy

import "strings"

// Modality is the martial art practised by a group.
type Modality string

const (
	ModalityJiuJitsu  Modality = "JIU_JITSU"
	ModalityJudo      Modality = "JUDO"
	ModalityKarate    Modality = "KARATE"
	ModalityMuayThai  Modality = "MUAY_THAI"
	ModalityTaekwondo Modality = "TAEKWONDO"
)

// Modalities lists the modalities offered in filters and forms.
func Modalities() []Modality {
	return []Modality{ModalityJiuJitsu, ModalityJudo, ModalityKarate, ModalityMuayThai, ModalityTaekwondo}
}

// Label returns the display name of the modality.
func (m Modality) Label() string {
	switch m {
	case ModalityJiuJitsu:
		return "Jiu-Jitsu"
	case ModalityJudo:
		return "Judo"
	case ModalityKarate:
		return "Karate"
	case ModalityMuayThai:
		return "Muay Thai"
	case ModalityTaekwondo:
		return "Taekwondo"
	default:
		return strings.ReplaceAll(string(m), "_", " ")
	}
}

// Valid reports whether the modality is known.
func (m Modality) Valid() bool {
	for _, known := range Modalities() {
		if known == m {
			return true
		}
	}
	return false
}

// Group is a standing class group (turma) students enroll in.
type Group struct {
	ID         int64        `json:"id"`
	Name       string       `json:"nome"`
	Modality   Modality     `json:"modalidade"`
	Instructor string       `json:"instrutor"`
	Schedule   string       `json:"horario"`
	Capacity   int          `json:"capacidade"`
	Active     bool         `json:"ativa"`
	Students   []StudentRef `json:"alunos,omitempty"`
}

// Enrolled returns the number of students on the roster.
func (g *Group) Enrolled() int {
	return len(g.Students)
}

// Full reports whether the roster reached capacity. A zero capacity means unlimited.
func (g *Group) Full() bool {
	return g.Capacity > 0 && len(g.Students) >= g.Capacity
}

// HasStudent reports whether the student is on the roster.
func (g *Group) HasStudent(id int64) bool {
	for _, s := range g.Students {
		if s.ID == id {
			return true
		}
	}
	return false
}

// GroupRequest is the body for creating or replacing a group.
type GroupRequest struct {
	Name       string   `json:"nome"`
	Modality   Modality `json:"modalidade"`
	Instructor string   `json:"instrutor"`
	Schedule   string   `json:"horario"`
	Capacity   int      `json:"capacidade"`
	Active     bool     `json:"ativa"`
}
