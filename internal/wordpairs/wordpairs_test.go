package wordpairs_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vocab/internal/wordpairs"
	"vocab/pkg/domain"
	"vocab/pkg/domain/domaintest"
	"vocab/pkg/serrors"
	"vocab/pkg/storage"
	mockstorage "vocab/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	us  *mockstorage.MockUserStorage
	ws  *mockstorage.MockWordPairStorage
	svc wordpairs.Service
}

func newTestService(t *testing.T) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	env := testEnv{
		us: mockstorage.NewMockUserStorage(ctrl),
		ws: mockstorage.NewMockWordPairStorage(ctrl),
	}
	st.EXPECT().Users().Return(env.us).AnyTimes()
	st.EXPECT().WordPairs().Return(env.ws).AnyTimes()
	env.svc = wordpairs.New(st, wordpairs.Options{
		IDs:   &domaintest.IDs{},
		Clock: domaintest.NewClock(time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)),
	})

	return env
}

func echoInsert(_ context.Context, wp domain.WordPair) (domain.WordPair, error) { return wp, nil }

var hello = wordpairs.CreateParams{TargetText: "hallo", SourceText: "hello", TargetLanguage: "DE", SourceLanguage: "EN"}

func TestCreate_Normalizes(t *testing.T) {
	env := newTestService(t)
	owner := domain.UserID(uuid.New())

	env.ws.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(echoInsert)

	wp, err := env.svc.Create(context.Background(), owner, hello)
	require.NoError(t, err)
	require.Equal(t, "Hallo", wp.TargetText)
	require.Equal(t, "Hello", wp.SourceText)
	require.Equal(t, "de", wp.TargetLanguage)
	require.Equal(t, "en", wp.SourceLanguage)
	require.Equal(t, owner, wp.UserID)
	require.NotEqual(t, uuid.Nil, uuid.UUID(wp.ID))
}

func TestCreate_Validation(t *testing.T) {
	tests := map[string]wordpairs.CreateParams{
		"empty target":  {TargetText: "", SourceText: "hello", TargetLanguage: "de", SourceLanguage: "en"},
		"blank source":  {TargetText: "hallo", SourceText: "   ", TargetLanguage: "de", SourceLanguage: "en"},
		"long text":     {TargetText: strings.Repeat("a", 101), SourceText: "hello", TargetLanguage: "de", SourceLanguage: "en"},
		"long language": {TargetText: "hallo", SourceText: "hello", TargetLanguage: "german", SourceLanguage: "en"},
		"no language":   {TargetText: "hallo", SourceText: "hello", TargetLanguage: "de", SourceLanguage: " "},
	}
	for name, params := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestService(t)

			_, err := env.svc.Create(context.Background(), domain.UserID{1}, params)
			require.ErrorIs(t, err, serrors.ErrInvalidInput)
		})
	}
}

func TestCreate_StorageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind serrors.Kind
	}{
		{"duplicate", storage.ErrConflict, serrors.ErrWordPairAlreadyExists},
		{"unknown owner", errors.New("FOREIGN KEY constraint failed"), serrors.ErrDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestService(t)
			env.ws.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(domain.WordPair{}, tt.err)

			_, err := env.svc.Create(context.Background(), domain.UserID{1}, hello)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestCreateForKey(t *testing.T) {
	env := newTestService(t)
	owner := domain.NewUser(&domaintest.IDs{}, domain.SystemClock{}, "alice01", "alice", "hash")

	env.us.EXPECT().SelectByKey(gomock.Any(), "alice01").Return(owner, nil)
	env.us.EXPECT().SelectByKey(gomock.Any(), "ghost01").Return(domain.User{}, storage.ErrNotFound)
	env.ws.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(echoInsert)

	wp, err := env.svc.CreateForKey(context.Background(), "alice01", hello)
	require.NoError(t, err)
	require.Equal(t, owner.ID, wp.UserID)

	_, err = env.svc.CreateForKey(context.Background(), "ghost01", hello)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestByUserID_EmptyIsNotAnError(t *testing.T) {
	env := newTestService(t)
	env.ws.EXPECT().SelectByUserID(gomock.Any(), gomock.Any()).Return(nil, nil)

	pairs, err := env.svc.ByUserID(context.Background(), domain.UserID{1})
	require.NoError(t, err)
	require.NotNil(t, pairs)
	require.Empty(t, pairs)
}

func TestByUserKey(t *testing.T) {
	env := newTestService(t)
	owner := domain.NewUser(&domaintest.IDs{}, domain.SystemClock{}, "alice01", "alice", "hash")
	pair := domain.WordPair{ID: domain.WordPairID{2}, UserID: owner.ID, SourceText: "Hello"}

	env.us.EXPECT().SelectByKey(gomock.Any(), "alice01").Return(owner, nil)
	env.us.EXPECT().SelectByKey(gomock.Any(), "broken").Return(domain.User{}, errors.New("i/o timeout"))
	env.ws.EXPECT().SelectByUserID(gomock.Any(), owner.ID).Return([]domain.WordPair{pair}, nil)

	pairs, err := env.svc.ByUserKey(context.Background(), "alice01")
	require.NoError(t, err)
	require.Equal(t, []domain.WordPair{pair}, pairs)

	_, err = env.svc.ByUserKey(context.Background(), "broken")
	require.ErrorIs(t, err, serrors.ErrDatabase)
}

func TestByIDAndDelete(t *testing.T) {
	env := newTestService(t)
	id := domain.WordPairID{3}

	env.ws.EXPECT().SelectByID(gomock.Any(), id).Return(domain.WordPair{ID: id}, nil)
	first := env.ws.EXPECT().DeleteByID(gomock.Any(), id).Return(nil)
	env.ws.EXPECT().DeleteByID(gomock.Any(), id).Return(storage.ErrNotFound).After(first)
	env.ws.EXPECT().SelectByID(gomock.Any(), id).Return(domain.WordPair{}, storage.ErrNotFound).After(first)

	ctx := context.Background()
	wp, err := env.svc.ByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, wp.ID)

	require.NoError(t, env.svc.DeleteByID(ctx, id))
	require.ErrorIs(t, env.svc.DeleteByID(ctx, id), serrors.ErrNotFound)

	_, err = env.svc.ByID(ctx, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
