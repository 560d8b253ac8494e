package v1handler

import (
	"context"

	"vocab/internal/api/specs/v1specs"
	"vocab/pkg/domain"
)

func DomainTranslationToV1Specs(in *domain.Translation) *v1specs.Translation {
	return &v1specs.Translation{
		SourceText:     in.SourceText,
		TargetText:     in.TargetText,
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
	}
}

// Translate translates a text without storing anything.
func (h *Handler) Translate(ctx context.Context, req *v1specs.TranslateRequest) (*v1specs.Translation, error) {
	t, err := h.deps.Translate.TranslateText(ctx, req.SourceText, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		return nil, err
	}

	return DomainTranslationToV1Specs(t), nil
}
