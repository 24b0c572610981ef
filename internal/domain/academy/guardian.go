package academy

// Guardian is a legal guardian responsible for one or more minor students.
type Guardian struct {
	ID           int64        `json:"id"`
	Name         string       `json:"nome"`
	Email        string       `json:"email"`
	Document     string       `json:"cpf"`
	Phone        string       `json:"telefone,omitempty"`
	Relationship string       `json:"parentesco,omitempty"`
	Students     []StudentRef `json:"alunos,omitempty"`
}

// GuardianRequest is the body for creating or replacing a guardian.
type GuardianRequest struct {
	Name         string `json:"nome"`
	Email        string `json:"email"`
	Document     string `json:"cpf"`
	Phone        string `json:"telefone,omitempty"`
	Relationship string `json:"parentesco,omitempty"`
}

// Relationships lists the kinships offered by the guardian form.
func Relationships() []string {
	return []string{"PAI", "MAE", "AVO", "TIO", "TUTOR_LEGAL", "OUTRO"}
}
