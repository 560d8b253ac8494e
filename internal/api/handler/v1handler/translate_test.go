package v1handler_test

import (
	"errors"
	"net/http"
	"testing"

	"vocab/pkg/domain"
	"vocab/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTranslate(t *testing.T) {
	api := newTestAPI(t)
	api.translate.EXPECT().TranslateText(gomock.Any(), "hello", "de", "en").Return(&domain.Translation{
		SourceText:     "hello",
		TargetText:     "hallo",
		SourceLanguage: "en",
		TargetLanguage: "de",
	}, nil)

	rec := api.do(t, http.MethodPost, "/v1/translate",
		`{"source_text":"hello","target_language":"de","source_language":"en"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"source_text":"hello","target_text":"hallo","source_language":"en","target_language":"de"}`,
		rec.Body.String())
}

func TestTranslate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unsupported language",
			err:        serrors.With(serrors.ErrNotFoundLanguage, "language not found"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "NOT_FOUND_LANGUAGE",
		},
		{
			name:       "upstream failure",
			err:        serrors.Wrap(serrors.ErrTranslator, errors.New("503"), "translation failed"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "TRANSLATOR",
		},
		{
			name:       "empty text",
			err:        serrors.With(serrors.ErrInvalidInput, "source text is empty"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.translate.EXPECT().TranslateText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			rec := api.do(t, http.MethodPost, "/v1/translate",
				`{"source_text":"hello","target_language":"xx","source_language":"en"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}
