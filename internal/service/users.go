package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dojoworks/dojo-admin/internal/core"
	"github.com/dojoworks/dojo-admin/internal/domain/academy"
	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// MinPasswordLength is the shortest password accepted for new accounts.
const MinPasswordLength = 8

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users  core.UserRepository // Required
	Logger *slog.Logger
}

// UserService manages login accounts.
type UserService struct {
	users  core.UserRepository
	logger *slog.Logger
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Users == nil {
		panic("UserRepository is required")
	}
	return &UserService{users: opts.Users, logger: componentLogger(opts.Logger, "user_service")}
}

// List returns one server page of users.
func (s *UserService) List(ctx context.Context, req academy.PageRequest) (*academy.Page[academy.User], error) {
	return s.users.List(ctx, req)
}

// Get returns one user.
func (s *UserService) Get(ctx context.Context, id int64) (*academy.User, error) {
	if err := requireID(id, "user"); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

// Create registers an account; a password is required.
func (s *UserService) Create(ctx context.Context, req academy.UserRequest) (*academy.User, error) {
	req = normalizeUser(req)
	if err := validateUser(req); err != nil {
		return nil, err
	}
	if len(req.Password) < MinPasswordLength {
		return nil, apperrors.ValidationField("senha", "Password must have at least 8 characters.")
	}
	u, err := s.users.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user created", "user_id", u.ID, "profile", u.Profile)
	return u, nil
}

// Update replaces an account. An empty password keeps the current one.
func (s *UserService) Update(ctx context.Context, id int64, req academy.UserRequest) (*academy.User, error) {
	if err := requireID(id, "user"); err != nil {
		return nil, err
	}
	req = normalizeUser(req)
	if err := validateUser(req); err != nil {
		return nil, err
	}
	if req.Password != "" && len(req.Password) < MinPasswordLength {
		return nil, apperrors.ValidationField("senha", "Password must have at least 8 characters.")
	}
	return s.users.Update(ctx, id, req)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "user"); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

// SetActive enables or disables an account.
func (s *UserService) SetActive(ctx context.Context, id int64, active bool) (*academy.User, error) {
	if err := requireID(id, "user"); err != nil {
		return nil, err
	}
	u, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user status changed", "user_id", id, "active", active)
	return u, nil
}

func normalizeUser(req academy.UserRequest) academy.UserRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return req
}

func validateUser(req academy.UserRequest) error {
	if req.Name == "" {
		return apperrors.ValidationField("nome", "Name is required.")
	}
	if req.Email == "" {
		return apperrors.ValidationField("email", "E-mail is required.")
	}
	if !req.Profile.Valid() {
		return apperrors.ValidationField("perfil", "Choose a profile.")
	}
	return nil
}
