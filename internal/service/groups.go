package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// GroupServiceOptions groups dependencies for GroupService.
type GroupServiceOptions struct {
	Groups core.GroupRepository // Required
	Logger *slog.Logger
}

// GroupService handles groups (turmas) and their rosters.
type GroupService struct {
	groups core.GroupRepository
	logger *slog.Logger
}

// NewGroupService constructs a new GroupService.
func NewGroupService(opts GroupServiceOptions) *GroupService {
	if opts.Groups == nil {
		panic("GroupRepository is required")
	}
	return &GroupService{groups: opts.Groups, logger: componentLogger(opts.Logger, "group_service")}
}

// List returns one server page of groups.
func (s *GroupService) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.Group], error) {
	return s.groups.List(ctx, req)
}

// Get returns one group with its roster.
func (s *GroupService) Get(ctx context.Context, id int64) (*academy.Group, error) {
	if err := requireID(id, "group"); err != nil {
		return nil, err
	}
	return s.groups.GetByID(ctx, id)
}

// Create registers a group.
func (s *GroupService) Create(ctx context.Context, req academy.GroupRequest) (*academy.Group, error) {
	req = normalizeGroup(req)
	if err := validateGroup(req); err != nil {
		return nil, err
	}
	g, err := s.groups.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "group created", "group_id", g.ID)
	return g, nil
}

// Update replaces a group record.
func (s *GroupService) Update(ctx context.Context, id int64, req academy.GroupRequest) (*academy.Group, error) {
	if err := requireID(id, "group"); err != nil {
		return nil, err
	}
	req = normalizeGroup(req)
	if err := validateGroup(req); err != nil {
		return nil, err
	}
	return s.groups.Update(ctx, id, req)
}

// Delete removes a group.
func (s *GroupService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "group"); err != nil {
		return err
	}
	if err := s.groups.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "group deleted", "group_id", id)
	return nil
}

// AddStudent puts a student on the group roster. Rosters at capacity and
// students already listed are rejected before calling the API.
func (s *GroupService) AddStudent(ctx context.Context, groupID, studentID int64) error {
	if err := requireID(groupID, "group"); err != nil {
		return err
	}
	if err := requireID(studentID, "student"); err != nil {
		return err
	}
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if g.HasStudent(studentID) {
		return apperrors.Conflict("The student is already in this group.")
	}
	if g.Full() {
		return apperrors.Conflict("This group is full.")
	}
	if err := s.groups.AddStudent(ctx, groupID, studentID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "student added to group", "group_id", groupID, "student_id", studentID)
	return nil
}

// RemoveStudent takes a student off the group roster.
func (s *GroupService) RemoveStudent(ctx context.Context, groupID, studentID int64) error {
	if err := requireID(groupID, "group"); err != nil {
		return err
	}
	if err := requireID(studentID, "student"); err != nil {
		return err
	}
	if err := s.groups.RemoveStudent(ctx, groupID, studentID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "student removed from group", "group_id", groupID, "student_id", studentID)
	return nil
}

func normalizeGroup(req academy.GroupRequest) academy.GroupRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Instructor = strings.TrimSpace(req.Instructor)
	req.Schedule = strings.TrimSpace(req.Schedule)
	return req
}

func validateGroup(req academy.GroupRequest) error {
	if req.Name == "" {
		return apperrors.ValidationField("nome", "Name is required.")
	}
	if !req.Modality.Valid() {
		return apperrors.ValidationField("modalidade", "Choose a modality.")
	}
	if req.Capacity < 0 {
		return apperrors.ValidationField("capacidade", "Capacity cannot be negative.")
	}
	return nil
}
