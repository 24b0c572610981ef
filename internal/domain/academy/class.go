package academy

import "strings"

// ClassStatus is the fixed lifecycle of a class session.
type ClassStatus string

const (
	ClassScheduled  ClassStatus = "AGENDADA"
	ClassInProgress ClassStatus = "EM_ANDAMENTO"
	ClassFinished   ClassStatus = "CONCLUIDA"
	ClassCanceled   ClassStatus = "CANCELADA"
)

// ClassStatuses lists every status in lifecycle order.
func ClassStatuses() []ClassStatus {
	return []ClassStatus{ClassScheduled, ClassInProgress, ClassFinished, ClassCanceled}
}

// Valid reports whether the status is one of the fixed values.
func (s ClassStatus) Valid() bool {
	for _, known := range ClassStatuses() {
		if known == s {
			return true
		}
	}
	return false
}

// Label returns the display name of the status.
func (s ClassStatus) Label() string {
	switch s {
	case ClassScheduled:
		return "Scheduled"
	case ClassInProgress:
		return "In progress"
	case ClassFinished:
		return "Finished"
	case ClassCanceled:
		return "Canceled"
	default:
		return string(s)
	}
}

// ParseClassStatus normalizes a status string and reports whether it is valid.
func ParseClassStatus(v string) (ClassStatus, bool) {
	s := ClassStatus(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.Valid()
}

// AcceptsAttendance reports whether attendance may be recorded for a class in this status.
func (s ClassStatus) AcceptsAttendance() bool {
	return s == ClassInProgress || s == ClassFinished
}

// Class is a single scheduled session of a group (aula).
type Class struct {
	ID          int64       `json:"id"`
	GroupID     int64       `json:"turmaId"`
	GroupName   string      `json:"turmaNome"`
	Date        Date        `json:"data"`
	StartTime   string      `json:"horaInicio"`
	EndTime     string      `json:"horaFim"`
	Status      ClassStatus `json:"status"`
	Modality    Modality    `json:"categoria"`
	Description string      `json:"descricao,omitempty"`
}

// ClassRequest is the body for creating or replacing a class.
type ClassRequest struct {
	GroupID     int64       `json:"turmaId"`
	Date        Date        `json:"data"`
	StartTime   string      `json:"horaInicio"`
	EndTime     string      `json:"horaFim"`
	Status      ClassStatus `json:"status"`
	Description string      `json:"descricao,omitempty"`
}

// ClassStatusRequest is the body of the class status PATCH.
type ClassStatusRequest struct {
	Status ClassStatus `json:"status"`
}
