package users_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vocab/internal/users"
	"vocab/pkg/domain"
	"vocab/pkg/domain/domaintest"
	"vocab/pkg/password"
	mockpassword "vocab/pkg/password/mock"
	"vocab/pkg/serrors"
	"vocab/pkg/storage"
	mockstorage "vocab/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	ctrl   *gomock.Controller
	st     *mockstorage.MockStorage
	us     *mockstorage.MockUserStorage
	hasher *mockpassword.MockHasher
	clock  *domaintest.Clock
	svc    users.Service
}

func newTestService(t *testing.T) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := testEnv{
		ctrl:   ctrl,
		st:     mockstorage.NewMockStorage(ctrl),
		us:     mockstorage.NewMockUserStorage(ctrl),
		hasher: mockpassword.NewMockHasher(ctrl),
		clock:  domaintest.NewClock(time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)),
	}
	env.st.EXPECT().Users().Return(env.us).AnyTimes()
	env.svc = users.New(env.st, env.hasher, users.Options{IDs: &domaintest.IDs{}, Clock: env.clock})

	return env
}

// expectWithTx wires Storage.WithTx to run the callback against a mock
// transaction exposing us.
func (e testEnv) expectWithTx() {
	e.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(e.ctrl)
			tx.EXPECT().Users().Return(e.us).AnyTimes()

			return cb(tx)
		},
	)
}

func echoInsert(_ context.Context, u domain.User) (domain.User, error) { return u, nil }

func TestCreate_Success(t *testing.T) {
	env := newTestService(t)

	env.hasher.EXPECT().Hash("secretpw").Return("$argon2id$hashed", nil)
	env.us.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(echoInsert)

	u, err := env.svc.Create(context.Background(), users.CreateParams{Key: "alice01", Name: "alice", Password: "secretpw"})
	require.NoError(t, err)
	require.Equal(t, "Alice", u.Name)
	require.Equal(t, "alice01", u.Key)
	require.Equal(t, "$argon2id$hashed", u.HashedPassword)
	require.NotEqual(t, "secretpw", u.HashedPassword)
	require.Equal(t, env.clock.Now(), u.CreatedAt)
	require.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params users.CreateParams
		kind   serrors.Kind
	}{
		{"short key", users.CreateParams{Key: "ab", Name: "alice", Password: "secretpw"}, serrors.ErrInvalidKey},
		{"long key", users.CreateParams{Key: strings.Repeat("k", 31), Name: "alice", Password: "secretpw"}, serrors.ErrInvalidKey},
		{"short password", users.CreateParams{Key: "alice01", Name: "alice", Password: "short"}, serrors.ErrInvalidPassword},
		{"short name", users.CreateParams{Key: "alice01", Name: "a", Password: "secretpw"}, serrors.ErrInvalidInput},
		{"blank name", users.CreateParams{Key: "alice01", Name: "    ", Password: "secretpw"}, serrors.ErrInvalidInput},
		{"long name", users.CreateParams{Key: "alice01", Name: strings.Repeat("n", 21), Password: "secretpw"}, serrors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestService(t)

			_, err := env.svc.Create(context.Background(), tt.params)
			require.ErrorIs(t, err, tt.kind)
			require.ErrorIs(t, err, serrors.ErrInvalidInput)
		})
	}
}

func TestCreate_DuplicateKey(t *testing.T) {
	env := newTestService(t)

	env.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil).Times(2)
	first := env.us.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(echoInsert)
	env.us.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(domain.User{}, storage.ErrConflict).After(first)

	params := users.CreateParams{Key: "alice01", Name: "alice", Password: "secretpw"}
	_, err := env.svc.Create(context.Background(), params)
	require.NoError(t, err)

	_, err = env.svc.Create(context.Background(), params)
	require.ErrorIs(t, err, serrors.ErrKeyAlreadyExists)
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, storage.ErrConflict)
}

func TestCreate_Failures(t *testing.T) {
	t.Run("hashing", func(t *testing.T) {
		env := newTestService(t)
		env.hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("no entropy"))

		_, err := env.svc.Create(context.Background(), users.CreateParams{Key: "alice01", Name: "alice", Password: "secretpw"})
		require.ErrorIs(t, err, serrors.ErrCrypto)
	})

	t.Run("database", func(t *testing.T) {
		env := newTestService(t)
		env.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
		env.us.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(domain.User{}, errors.New("connection reset"))

		_, err := env.svc.Create(context.Background(), users.CreateParams{Key: "alice01", Name: "alice", Password: "secretpw"})
		require.ErrorIs(t, err, serrors.ErrDatabase)
	})
}

func TestByIDAndKey(t *testing.T) {
	env := newTestService(t)
	stored := domain.NewUser(&domaintest.IDs{}, env.clock, "alice01", "alice", "hash")

	env.us.EXPECT().SelectByID(gomock.Any(), stored.ID).Return(stored, nil)
	env.us.EXPECT().SelectByKey(gomock.Any(), "alice01").Return(stored, nil)
	env.us.EXPECT().SelectByKey(gomock.Any(), "ghost01").Return(domain.User{}, storage.ErrNotFound)
	env.us.EXPECT().SelectByID(gomock.Any(), domain.UserID{9}).Return(domain.User{}, errors.New("timeout"))

	ctx := context.Background()
	u, err := env.svc.ByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored, *u)

	u, err = env.svc.ByKey(ctx, "alice01")
	require.NoError(t, err)
	require.Equal(t, stored, *u)

	_, err = env.svc.ByKey(ctx, "ghost01")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = env.svc.ByID(ctx, domain.UserID{9})
	require.ErrorIs(t, err, serrors.ErrDatabase)
}

func TestUpdateByID_KeyOnly(t *testing.T) {
	env := newTestService(t)
	stored := domain.NewUser(&domaintest.IDs{}, env.clock, "alice01", "alice", "hash")

	env.expectWithTx()
	env.us.EXPECT().SelectByID(gomock.Any(), stored.ID).Return(stored, nil)
	env.us.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoInsert)

	key := "alice02"
	u, err := env.svc.UpdateByID(context.Background(), stored.ID, users.UpdateParams{Key: &key})
	require.NoError(t, err)
	require.Equal(t, "alice02", u.Key)
	require.Equal(t, stored.Name, u.Name)
	require.Equal(t, stored.CreatedAt, u.CreatedAt)
	require.True(t, u.UpdatedAt.After(stored.UpdatedAt), "updated_at must move forward even on a frozen clock")
}

func TestUpdateByID_NameIsNormalized(t *testing.T) {
	env := newTestService(t)
	stored := domain.NewUser(&domaintest.IDs{}, env.clock, "alice01", "alice", "hash")

	env.expectWithTx()
	env.us.EXPECT().SelectByID(gomock.Any(), stored.ID).Return(stored, nil)
	env.us.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoInsert)

	name := "alice  cooper"
	u, err := env.svc.UpdateByID(context.Background(), stored.ID, users.UpdateParams{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Alice Cooper", u.Name)
	require.Equal(t, "alice01", u.Key)
}

func TestUpdateByID_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid key", func(t *testing.T) {
		env := newTestService(t)
		key := "x"
		_, err := env.svc.UpdateByID(ctx, domain.UserID{1}, users.UpdateParams{Key: &key})
		require.ErrorIs(t, err, serrors.ErrInvalidKey)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestService(t)
		env.expectWithTx()
		env.us.EXPECT().SelectByID(gomock.Any(), gomock.Any()).Return(domain.User{}, storage.ErrNotFound)

		key := "alice02"
		_, err := env.svc.UpdateByID(ctx, domain.UserID{1}, users.UpdateParams{Key: &key})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("key taken", func(t *testing.T) {
		env := newTestService(t)
		stored := domain.NewUser(&domaintest.IDs{}, env.clock, "alice01", "alice", "hash")
		env.expectWithTx()
		env.us.EXPECT().SelectByID(gomock.Any(), gomock.Any()).Return(stored, nil)
		env.us.EXPECT().Update(gomock.Any(), gomock.Any()).Return(domain.User{}, storage.ErrConflict)

		key := "bobby01"
		_, err := env.svc.UpdateByID(ctx, stored.ID, users.UpdateParams{Key: &key})
		require.ErrorIs(t, err, serrors.ErrKeyAlreadyExists)
	})

	t.Run("commit fails", func(t *testing.T) {
		env := newTestService(t)
		env.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("could not commit tx"))

		_, err := env.svc.UpdateByID(ctx, domain.UserID{1}, users.UpdateParams{})
		require.ErrorIs(t, err, serrors.ErrDatabase)
	})
}

func TestDeleteByID(t *testing.T) {
	env := newTestService(t)
	id := domain.UserID{7}

	first := env.us.EXPECT().DeleteByID(gomock.Any(), id).Return(nil)
	env.us.EXPECT().DeleteByID(gomock.Any(), id).Return(storage.ErrNotFound).After(first)

	require.NoError(t, env.svc.DeleteByID(context.Background(), id))
	require.ErrorIs(t, env.svc.DeleteByID(context.Background(), id), serrors.ErrNotFound)
}

func TestVerifyPassword(t *testing.T) {
	// real hasher with cheap parameters: the service must honour its errors
	hasher := password.New(password.Params{Memory: 64, Iterations: 1, Parallelism: 1})
	hashed, err := hasher.Hash("secretpw")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	us := mockstorage.NewMockUserStorage(ctrl)
	st.EXPECT().Users().Return(us).AnyTimes()
	svc := users.New(st, hasher, users.Options{})

	stored := domain.NewUser(domain.RandomIDs{}, domain.SystemClock{}, "alice01", "alice", hashed)
	broken := domain.NewUser(domain.RandomIDs{}, domain.SystemClock{}, "bobby01", "bob", "not-a-hash")
	us.EXPECT().SelectByKey(gomock.Any(), "alice01").Return(stored, nil).AnyTimes()
	us.EXPECT().SelectByKey(gomock.Any(), "bobby01").Return(broken, nil)

	ctx := context.Background()
	u, err := svc.VerifyPassword(ctx, "alice01", "secretpw")
	require.NoError(t, err)
	require.Equal(t, stored.ID, u.ID)

	_, err = svc.VerifyPassword(ctx, "alice01", "wrongpw1")
	require.ErrorIs(t, err, serrors.ErrWrongPassword)
	require.ErrorIs(t, err, serrors.ErrUnauthenticated)
	require.NotErrorIs(t, err, serrors.ErrInvalidInput)

	_, err = svc.VerifyPassword(ctx, "bobby01", "secretpw")
	require.ErrorIs(t, err, serrors.ErrCrypto)
}
