package academyapi

import (
	"context"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

const usersPath = "/usuarios"

// UserRepo talks to /usuarios.
type UserRepo struct {
	resource[academy.User, academy.UserRequest]
}

var _ core.UserRepository = (*UserRepo)(nil)

// NewUserRepo builds a UserRepo over cl.
func NewUserRepo(cl *Client) *UserRepo {
	return &UserRepo{resource[academy.User, academy.UserRequest]{cl: cl, base: usersPath}}
}

// SetActive enables or disables a login account.
func (r *UserRepo) SetActive(ctx context.Context, id int64, active bool) (*academy.User, error) {
	return r.patch(ctx, academy.UserStatusRequest{Active: active}, id, "status")
}
