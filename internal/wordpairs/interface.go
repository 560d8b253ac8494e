package wordpairs

import (
	"context"

	"vocab/pkg/domain"
)

// CreateParams is the input of Service.Create.
type CreateParams struct {
	TargetText     string `validate:"min=1,max=100"`
	SourceText     string `validate:"min=1,max=100"`
	TargetLanguage string `validate:"min=1,max=5"`
	SourceLanguage string `validate:"min=1,max=5"`
}

//go:generate mockgen -package mockwordpairs -source=interface.go -destination=mock/mockwordpairs.go *
type Service interface {
	Create(ctx context.Context, userID domain.UserID, params CreateParams) (*domain.WordPair, error)
	CreateForKey(ctx context.Context, key string, params CreateParams) (*domain.WordPair, error)
	ByID(ctx context.Context, id domain.WordPairID) (*domain.WordPair, error)
	ByUserID(ctx context.Context, userID domain.UserID) ([]domain.WordPair, error)
	ByUserKey(ctx context.Context, key string) ([]domain.WordPair, error)
	DeleteByID(ctx context.Context, id domain.WordPairID) error
}
