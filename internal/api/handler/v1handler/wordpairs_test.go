package v1handler_test

import (
	"context"
	"net/http"
	"testing"

	"vocab/internal/api/handler/v1handler"
	"vocab/internal/api/specs/v1specs"
	"vocab/internal/wordpairs"
	mockwordpairs "vocab/internal/wordpairs/mock"
	"vocab/pkg/domain"
	"vocab/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var wordPairID = domain.WordPairID(uuid.MustParse("0b6a3e1c-5d7f-4f0a-8c4e-2f9b1d6a7e30")) //nolint: gochecknoglobals

func testWordPair() *domain.WordPair {
	return &domain.WordPair{
		ID:             wordPairID,
		UserID:         userID,
		TargetText:     "Hallo Welt",
		SourceText:     "Hello World",
		TargetLanguage: "de",
		SourceLanguage: "en",
		CreatedAt:      now,
	}
}

const wordPairBody = `{"target_text":"hallo welt","source_text":"hello world","target_language":"DE","source_language":"en"}`

func wantParams() wordpairs.CreateParams {
	return wordpairs.CreateParams{
		TargetText:     "hallo welt",
		SourceText:     "hello world",
		TargetLanguage: "DE",
		SourceLanguage: "en",
	}
}

func TestCreateWordPair(t *testing.T) {
	api := newTestAPI(t)
	api.wordPairs.EXPECT().Create(gomock.Any(), userID, wantParams()).Return(testWordPair(), nil)

	rec := api.do(t, http.MethodPost, "/v1/users/"+userID.String()+"/wordpairs", wordPairBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got v1specs.WordPair
	require.NoError(t, got.UnmarshalJSON(rec.Body.Bytes()))
	require.Equal(t, uuid.UUID(wordPairID), got.ID)
	require.Equal(t, uuid.UUID(userID), got.UserID)
	require.Equal(t, "Hello World", got.SourceText)
	require.Equal(t, "de", got.TargetLanguage)
}

func TestCreateWordPair_Duplicate(t *testing.T) {
	api := newTestAPI(t)
	api.wordPairs.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrWordPairAlreadyExists, "word pair already exists"))

	rec := api.do(t, http.MethodPost, "/v1/users/"+userID.String()+"/wordpairs", wordPairBody)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "WORD_PAIR_ALREADY_EXISTS", decodeError(t, rec).Code)
}

func TestCreateWordPairForKey(t *testing.T) {
	api := newTestAPI(t)
	api.wordPairs.EXPECT().CreateForKey(gomock.Any(), "bob", wantParams()).Return(testWordPair(), nil)

	rec := api.do(t, http.MethodPost, "/v1/keys/bob/wordpairs", wordPairBody)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateWordPairForKey_UnknownKey(t *testing.T) {
	api := newTestAPI(t)
	api.wordPairs.EXPECT().CreateForKey(gomock.Any(), "ghost", gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, "user not found"))

	rec := api.do(t, http.MethodPost, "/v1/keys/ghost/wordpairs", wordPairBody)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListWordPairs(t *testing.T) {
	api := newTestAPI(t)
	api.wordPairs.EXPECT().ByUserID(gomock.Any(), userID).Return([]domain.WordPair{*testWordPair()}, nil)

	rec := api.do(t, http.MethodGet, "/v1/users/"+userID.String()+"/wordpairs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got v1specs.WordPairList
	require.NoError(t, got.UnmarshalJSON(rec.Body.Bytes()))
	require.Len(t, got.Items, 1)
	require.Equal(t, *v1handler.DomainWordPairToV1Specs(testWordPair()), got.Items[0])
}

func TestListWordPairsByKey_Empty(t *testing.T) {
	api := newTestAPI(t)
	api.wordPairs.EXPECT().ByUserKey(gomock.Any(), "bob").Return(nil, nil)

	rec := api.do(t, http.MethodGet, "/v1/keys/bob/wordpairs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestGetWordPair(t *testing.T) {
	api := newTestAPI(t)
	api.wordPairs.EXPECT().ByID(gomock.Any(), wordPairID).Return(testWordPair(), nil)

	rec := api.do(t, http.MethodGet, "/v1/wordpairs/"+wordPairID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteWordPair(t *testing.T) {
	api := newTestAPI(t)
	api.wordPairs.EXPECT().DeleteByID(gomock.Any(), wordPairID).Return(nil)
	api.wordPairs.EXPECT().DeleteByID(gomock.Any(), wordPairID).
		Return(serrors.With(serrors.ErrNotFound, "word pair not found"))

	rec := api.do(t, http.MethodDelete, "/v1/wordpairs/"+wordPairID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodDelete, "/v1/wordpairs/"+wordPairID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ListWordPairsByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockwordpairs.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{WordPairs: m})
	ctx := context.Background()

	m.EXPECT().ByUserKey(ctx, "bob").Return(nil, nil)

	res, err := h.ListWordPairsByKey(ctx, v1specs.ListWordPairsByKeyParams{Key: "bob"})
	require.NoError(t, err)
	require.NotNil(t, res.Items)
	require.Empty(t, res.Items)
}
