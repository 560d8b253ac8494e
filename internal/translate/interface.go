package translate

import (
	"context"

	"vocab/pkg/domain"
)

//go:generate mockgen -package mocktranslate -source=interface.go -destination=mock/mocktranslate.go *
type Service interface {
	TranslateText(ctx context.Context, sourceText, targetLanguage, sourceLanguage string) (*domain.Translation, error)
}
