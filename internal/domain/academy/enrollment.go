package academy

// EnrollmentStatus is the state of a student's enrollment in a group.
type EnrollmentStatus string

const (
	EnrollmentActive   EnrollmentStatus = "ATIVA"
	EnrollmentInactive EnrollmentStatus = "INATIVA"
)

// Valid reports whether the status is known.
func (s EnrollmentStatus) Valid() bool {
	return s == EnrollmentActive || s == EnrollmentInactive
}

// Toggled returns the opposite status.
func (s EnrollmentStatus) Toggled() EnrollmentStatus {
	if s == EnrollmentActive {
		return EnrollmentInactive
	}
	return EnrollmentActive
}

// Label returns the display name of the status.
func (s EnrollmentStatus) Label() string {
	switch s {
	case EnrollmentActive:
		return "Active"
	case EnrollmentInactive:
		return "Inactive"
	default:
		return string(s)
	}
}

// EnrollmentStatuses lists the statuses offered in filters.
func EnrollmentStatuses() []EnrollmentStatus {
	return []EnrollmentStatus{EnrollmentActive, EnrollmentInactive}
}

// Enrollment links a student to a group.
type Enrollment struct {
	ID          int64            `json:"id"`
	StudentID   int64            `json:"alunoId"`
	StudentName string           `json:"alunoNome"`
	GroupID     int64            `json:"turmaId"`
	GroupName   string           `json:"turmaNome"`
	EnrolledOn  Date             `json:"dataInscricao"`
	Status      EnrollmentStatus `json:"status"`
}

// EnrollmentRequest is the body for creating an enrollment.
type EnrollmentRequest struct {
	StudentID  int64 `json:"alunoId"`
	GroupID    int64 `json:"turmaId"`
	EnrolledOn Date  `json:"dataInscricao"`
}

// EnrollmentStatusRequest is the body of the enrollment status PATCH.
type EnrollmentStatusRequest struct {
	Status EnrollmentStatus `json:"status"`
}
