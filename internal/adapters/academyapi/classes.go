package academyapi

import (
	"context"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

const classesPath = "/aulas"

// ClassRepo talks to /aulas.
type ClassRepo struct {
	resource[academy.Class, academy.ClassRequest]
}

var _ core.ClassRepository = (*ClassRepo)(nil)

// NewClassRepo builds a ClassRepo over cl.
func NewClassRepo(cl *Client) *ClassRepo {
	return &ClassRepo{resource[academy.Class, academy.ClassRequest]{cl: cl, base: classesPath}}
}

// SetStatus moves the class to one of the fixed statuses.
func (r *ClassRepo) SetStatus(ctx context.Context, id int64, status academy.ClassStatus) (*academy.Class, error) {
	return r.patch(ctx, academy.ClassStatusRequest{Status: status}, id, "status")
}

// Attendance lists the attendance sheet of a class.
func (r *ClassRepo) Attendance(ctx context.Context, id int64) ([]academy.Attendance, error) {
	return listAll[academy.Attendance](ctx, r.cl, idPath(classesPath, id, "presencas"))
}
