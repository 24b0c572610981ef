package academyapi

import (
	"context"
	"net/http"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

const groupsPath = "/turmas"

// GroupRepo talks to /turmas.
type GroupRepo struct {
	resource[academy.Group, academy.GroupRequest]
}

var _ core.GroupRepository = (*GroupRepo)(nil)

// NewGroupRepo builds a GroupRepo over cl.
func NewGroupRepo(cl *Client) *GroupRepo {
	return &GroupRepo{resource[academy.Group, academy.GroupRequest]{cl: cl, base: groupsPath}}
}

// AddStudent puts a student on the group roster.
func (r *GroupRepo) AddStudent(ctx context.Context, groupID, studentID int64) error {
	return r.cl.send(ctx, http.MethodPatch, idPath(groupsPath, groupID, "alunos", studentID), nil, nil)
}

// RemoveStudent takes a student off the group roster.
func (r *GroupRepo) RemoveStudent(ctx context.Context, groupID, studentID int64) error {
	return r.cl.send(ctx, http.MethodDelete, idPath(groupsPath, groupID, "alunos", studentID), nil, nil)
}
