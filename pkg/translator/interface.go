// Package translator defines the machine-translation capability the
// translate service delegates to.
package translator

import (
	"context"
	"errors"
)

// ErrUnsupportedLanguage is returned when the source or target language code
// is not understood by the provider.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Client translates text between languages. Implementations are safe for
// concurrent use.
//
//go:generate mockgen -package mocktranslator -source=interface.go -destination=mock/mocktranslator.go *
type Client interface {
	// Translate returns text rendered in targetLang. sourceLang may be "auto"
	// to let the provider detect it.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
