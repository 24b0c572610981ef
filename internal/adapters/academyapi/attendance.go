package academyapi

import (
	"context"
	"net/http"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

const attendancePath = "/presencas"

// AttendanceRepo talks to /presencas.
type AttendanceRepo struct {
	cl *Client
}

var _ core.AttendanceRepository = (*AttendanceRepo)(nil)

// NewAttendanceRepo builds an AttendanceRepo over cl.
func NewAttendanceRepo(cl *Client) *AttendanceRepo {
	return &AttendanceRepo{cl: cl}
}

// Record creates an attendance entry.
func (r *AttendanceRepo) Record(ctx context.Context, req academy.AttendanceRequest) (*academy.Attendance, error) {
	var out academy.Attendance
	if err := r.cl.send(ctx, http.MethodPost, attendancePath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update corrects an existing attendance entry.
func (r *AttendanceRepo) Update(
	ctx context.Context,
	id int64,
	req academy.AttendanceRequest,
) (*academy.Attendance, error) {
	var out academy.Attendance
	if err := r.cl.send(ctx, http.MethodPatch, idPath(attendancePath, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
