package academyapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

const studentsPath = "/alunos"

// StudentRepo talks to /alunos.
type StudentRepo struct {
	resource[academy.Student, academy.StudentRequest]
}

var _ core.StudentRepository = (*StudentRepo)(nil)

// NewStudentRepo builds a StudentRepo over cl.
func NewStudentRepo(cl *Client) *StudentRepo {
	return &StudentRepo{resource[academy.Student, academy.StudentRequest]{cl: cl, base: studentsPath}}
}

// FindByEmail resolves the student record of a signed-in student.
func (r *StudentRepo) FindByEmail(ctx context.Context, email string) (*academy.Student, error) {
	var out academy.Student
	if err := r.cl.get(ctx, idPath(studentsPath, "email", url.PathEscape(email)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Promote advances the student's belt rank.
func (r *StudentRepo) Promote(ctx context.Context, id int64) (*academy.Student, error) {
	return r.patch(ctx, nil, id, "promover")
}

// Demote lowers the student's belt rank.
func (r *StudentRepo) Demote(ctx context.Context, id int64) (*academy.Student, error) {
	return r.patch(ctx, nil, id, "rebaixar")
}

// LinkGuardian associates a guardian with the student.
func (r *StudentRepo) LinkGuardian(ctx context.Context, studentID, guardianID int64) error {
	return r.cl.send(ctx, http.MethodPatch, idPath(studentsPath, studentID, "responsaveis", guardianID), nil, nil)
}

// UnlinkGuardian dissociates a guardian from the student.
func (r *StudentRepo) UnlinkGuardian(ctx context.Context, studentID, guardianID int64) error {
	return r.cl.send(ctx, http.MethodDelete, idPath(studentsPath, studentID, "responsaveis", guardianID), nil, nil)
}

// Enrollments lists the student's enrollments.
func (r *StudentRepo) Enrollments(ctx context.Context, id int64) ([]academy.Enrollment, error) {
	return listAll[academy.Enrollment](ctx, r.cl, idPath(studentsPath, id, "inscricoes"))
}

// Attendance lists the student's attendance history.
func (r *StudentRepo) Attendance(ctx context.Context, id int64) ([]academy.Attendance, error) {
	return listAll[academy.Attendance](ctx, r.cl, idPath(studentsPath, id, "presencas"))
}
