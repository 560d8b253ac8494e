package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"vocab/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrConflict,
		serrors.ErrInvalidInput,
		serrors.ErrCrypto,
		serrors.ErrTranslator,
		serrors.ErrNotFoundLanguage,
		serrors.ErrDatabase,
		serrors.ErrUnauthenticated,
		serrors.ErrUnknown,
		serrors.ErrKeyAlreadyExists,
		serrors.ErrWordPairAlreadyExists,
		serrors.ErrInvalidKey,
		serrors.ErrInvalidPassword,
		serrors.ErrWrongPassword,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotErrorIs(t, serrors.ErrNotFound, serrors.ErrConflict)
	require.NotErrorIs(t, serrors.ErrKeyAlreadyExists, serrors.ErrWordPairAlreadyExists)
	require.NotErrorIs(t, serrors.ErrWrongPassword, serrors.ErrInvalidPassword)
	require.NotErrorIs(t, serrors.ErrWrongPassword, serrors.ErrInvalidInput)
}

func TestSubKindsMatchParent(t *testing.T) {
	tests := []struct {
		sub    serrors.Kind
		parent serrors.Kind
	}{
		{serrors.ErrKeyAlreadyExists, serrors.ErrConflict},
		{serrors.ErrWordPairAlreadyExists, serrors.ErrConflict},
		{serrors.ErrInvalidKey, serrors.ErrInvalidInput},
		{serrors.ErrInvalidPassword, serrors.ErrInvalidInput},
		{serrors.ErrWrongPassword, serrors.ErrUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.sub.Error(), func(t *testing.T) {
			err := serrors.Wrap(tt.sub, errors.New("cause"), "creating")
			require.ErrorIs(t, err, tt.sub)
			require.ErrorIs(t, err, tt.parent)
			require.Equal(t, tt.parent, tt.sub.Parent())
			require.NotErrorIs(t, serrors.KindOnly(tt.parent), tt.sub, "parent must not match its sub-kind")
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "user %q not found", "alice01")
	require.Equal(t, `user "alice01" not found`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrDatabase, base, "getting user")
	require.Equal(t, "getting user: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrDatabase, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrCrypto, base, "hashing password")
	require.Equal(t, serrors.ErrCrypto, e.Kind())
	require.Equal(t, "hashing password", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrUnknown, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrInvalidKey, serrors.KindOf(serrors.KindOnly(serrors.ErrInvalidKey)))

	wrapped := fmt.Errorf("handler: %w", serrors.With(serrors.ErrTranslator, "upstream failed"))
	require.Equal(t, serrors.ErrTranslator, serrors.KindOf(wrapped))
}
