package v1handler

import (
	"context"

	"vocab/internal/api/specs/v1specs"
	"vocab/internal/users"
	"vocab/pkg/domain"

	"github.com/google/uuid"
)

// DomainUserToV1Specs maps a user to its public representation. The password
// hash is never exposed.
func DomainUserToV1Specs(in *domain.User) *v1specs.User {
	return &v1specs.User{
		ID:        uuid.UUID(in.ID),
		Key:       in.Key,
		Name:      in.Name,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func optString(o v1specs.OptString) *string {
	v, ok := o.Get()
	if !ok {
		return nil
	}

	return &v
}

// CreateUser registers a new user.
func (h *Handler) CreateUser(ctx context.Context, req *v1specs.CreateUserRequest) (*v1specs.User, error) {
	u, err := h.deps.Users.Create(ctx, users.CreateParams{
		Key:      req.Key,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return DomainUserToV1Specs(u), nil
}

// GetUser returns a user by ID.
func (h *Handler) GetUser(ctx context.Context, params v1specs.GetUserParams) (*v1specs.User, error) {
	u, err := h.deps.Users.ByID(ctx, domain.UserID(params.ID))
	if err != nil {
		return nil, err
	}

	return DomainUserToV1Specs(u), nil
}

// GetUserByKey returns a user by key.
func (h *Handler) GetUserByKey(ctx context.Context, params v1specs.GetUserByKeyParams) (*v1specs.User, error) {
	u, err := h.deps.Users.ByKey(ctx, params.Key)
	if err != nil {
		return nil, err
	}

	return DomainUserToV1Specs(u), nil
}

// UpdateUser changes the key and/or name of a user.
func (h *Handler) UpdateUser(
	ctx context.Context,
	req *v1specs.UpdateUserRequest,
	params v1specs.UpdateUserParams,
) (*v1specs.User, error) {
	u, err := h.deps.Users.UpdateByID(ctx, domain.UserID(params.ID), users.UpdateParams{
		Key:  optString(req.Key),
		Name: optString(req.Name),
	})
	if err != nil {
		return nil, err
	}

	return DomainUserToV1Specs(u), nil
}

// DeleteUser removes a user and, through the foreign key, their word pairs.
func (h *Handler) DeleteUser(ctx context.Context, params v1specs.DeleteUserParams) error {
	return h.deps.Users.DeleteByID(ctx, domain.UserID(params.ID))
}

// VerifyPassword checks a password against the one stored for the key.
func (h *Handler) VerifyPassword(
	ctx context.Context,
	req *v1specs.VerifyPasswordRequest,
	params v1specs.VerifyPasswordParams,
) (*v1specs.User, error) {
	u, err := h.deps.Users.VerifyPassword(ctx, params.Key, req.Password)
	if err != nil {
		return nil, err
	}

	return DomainUserToV1Specs(u), nil
}
