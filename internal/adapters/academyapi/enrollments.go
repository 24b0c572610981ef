package academyapi

import (
	"context"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

const enrollmentsPath = "/inscricoes"

// EnrollmentRepo talks to /inscricoes. Enrollments are never replaced, only toggled.
type EnrollmentRepo struct {
	res resource[academy.Enrollment, academy.EnrollmentRequest]
}

var _ core.EnrollmentRepository = (*EnrollmentRepo)(nil)

// NewEnrollmentRepo builds an EnrollmentRepo over cl.
func NewEnrollmentRepo(cl *Client) *EnrollmentRepo {
	return &EnrollmentRepo{res: resource[academy.Enrollment, academy.EnrollmentRequest]{cl: cl, base: enrollmentsPath}}
}

// List fetches one page of enrollments.
func (r *EnrollmentRepo) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Enrollment], error) {
	return r.res.List(ctx, req)
}

// GetByID fetches one enrollment.
func (r *EnrollmentRepo) GetByID(ctx context.Context, id int64) (*academy.Enrollment, error) {
	return r.res.GetByID(ctx, id)
}

// Create enrolls a student in a group.
func (r *EnrollmentRepo) Create(ctx context.Context, req academy.EnrollmentRequest) (*academy.Enrollment, error) {
	return r.res.Create(ctx, req)
}

// Delete removes an enrollment.
func (r *EnrollmentRepo) Delete(ctx context.Context, id int64) error {
	return r.res.Delete(ctx, id)
}

// SetStatus activates or deactivates an enrollment.
func (r *EnrollmentRepo) SetStatus(
	ctx context.Context,
	id int64,
	status academy.EnrollmentStatus,
) (*academy.Enrollment, error) {
	return r.res.patch(ctx, academy.EnrollmentStatusRequest{Status: status}, id, "status")
}
