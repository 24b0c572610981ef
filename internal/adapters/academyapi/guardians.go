package academyapi

import (
	"context"
	"net/url"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

const guardiansPath = "/responsaveis"

// GuardianRepo talks to /responsaveis.
type GuardianRepo struct {
	resource[academy.Guardian, academy.GuardianRequest]
}

var _ core.GuardianRepository = (*GuardianRepo)(nil)

// NewGuardianRepo builds a GuardianRepo over cl.
func NewGuardianRepo(cl *Client) *GuardianRepo {
	return &GuardianRepo{resource[academy.Guardian, academy.GuardianRequest]{cl: cl, base: guardiansPath}}
}

// FindByEmail resolves the guardian record of a signed-in guardian.
func (r *GuardianRepo) FindByEmail(ctx context.Context, email string) (*academy.Guardian, error) {
	var out academy.Guardian
	if err := r.cl.get(ctx, idPath(guardiansPath, "email", url.PathEscape(email)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Students lists the students linked to a guardian.
func (r *GuardianRepo) Students(ctx context.Context, id int64) ([]academy.StudentRef, error) {
	return listAll[academy.StudentRef](ctx, r.cl, idPath(guardiansPath, id, "alunos"))
}
