// Package translate turns the translator adapter into a domain service with
// the application's error kinds.
package translate

import (
	"context"
	"errors"
	"strings"

	"vocab/pkg/domain"
	"vocab/pkg/logger"
	"vocab/pkg/serrors"
	"vocab/pkg/translator"

	"go.uber.org/zap"
)

type service struct {
	client translator.Client
}

// TranslateText translates sourceText from sourceLanguage into
// targetLanguage. Language codes are lower-cased before use.
func (s service) TranslateText(ctx context.Context,
	sourceText, targetLanguage, sourceLanguage string,
) (*domain.Translation, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, serrors.With(serrors.ErrInvalidInput, "nothing to translate")
	}
	sourceLanguage = domain.LanguageCode(sourceLanguage)
	targetLanguage = domain.LanguageCode(targetLanguage)

	out, err := s.client.Translate(ctx, sourceText, sourceLanguage, targetLanguage)
	if err != nil {
		if errors.Is(err, translator.ErrUnsupportedLanguage) {
			return nil, serrors.Wrap(serrors.ErrNotFoundLanguage, err, "language not supported")
		}
		logger.Error(ctx, "translator failure",
			zap.String("source_language", sourceLanguage),
			zap.String("target_language", targetLanguage),
			zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrTranslator, err, "could not translate text")
	}

	return &domain.Translation{
		SourceText:     sourceText,
		TargetText:     out,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	}, nil
}

// New creates a translate Service delegating to client.
func New(client translator.Client) Service {
	return &service{client: client}
}
