package academy

// Attendance records whether a student was present at a class.
type Attendance struct {
	ID          int64  `json:"id"`
	ClassID     int64  `json:"aulaId"`
	StudentID   int64  `json:"alunoId"`
	StudentName string `json:"alunoNome"`
	ClassDate   Date   `json:"dataAula"`
	GroupName   string `json:"turmaNome,omitempty"`
	Present     bool   `json:"presente"`
	Note        string `json:"observacao,omitempty"`
}

// AttendanceRequest is the body for recording (POST) or correcting (PATCH) attendance.
type AttendanceRequest struct {
	ClassID   int64  `json:"aulaId"`
	StudentID int64  `json:"alunoId"`
	Present   bool   `json:"presente"`
	Note      string `json:"observacao,omitempty"`
}

// AttendanceSummary aggregates attendance records.
type AttendanceSummary struct {
	Total   int
	Present int
}

// Absent returns the number of absences.
func (s AttendanceSummary) Absent() int {
	return s.Total - s.Present
}

// Rate returns the presence percentage rounded down, or 0 with no records.
func (s AttendanceSummary) Rate() int {
	if s.Total == 0 {
		return 0
	}
	return s.Present * 100 / s.Total
}

// Summarize counts presences in records.
func Summarize(records []Attendance) AttendanceSummary {
	sum := AttendanceSummary{Total: len(records)}
	for _, r := range records {
		if r.Present {
			sum.Present++
		}
	}
	return sum
}
