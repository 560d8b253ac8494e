package users

import (
	"context"

	"vocab/pkg/domain"
)

// CreateParams is the input of Service.Create. Password is the raw secret.
type CreateParams struct {
	Key      string `validate:"min=3,max=30"`
	Name     string `validate:"min=2,max=20"`
	Password string `validate:"min=8,max=128"`
}

// UpdateParams lists the fields to change. Nil fields are left untouched.
type UpdateParams struct {
	Key  *string `validate:"omitnil,min=3,max=30"`
	Name *string `validate:"omitnil,min=2,max=20"`
}

//go:generate mockgen -package mockusers -source=interface.go -destination=mock/mockusers.go *
type Service interface {
	Create(ctx context.Context, params CreateParams) (*domain.User, error)
	ByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	ByKey(ctx context.Context, key string) (*domain.User, error)
	UpdateByID(ctx context.Context, id domain.UserID, params UpdateParams) (*domain.User, error)
	DeleteByID(ctx context.Context, id domain.UserID) error
	VerifyPassword(ctx context.Context, key, password string) (*domain.User, error)
}
