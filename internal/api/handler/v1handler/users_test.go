package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"vocab/internal/api/handler/v1handler"
	"vocab/internal/api/specs/v1specs"
	"vocab/internal/users"
	mockusers "vocab/internal/users/mock"
	"vocab/pkg/domain"
	"vocab/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	userID = domain.UserID(uuid.MustParse("6f1c1a52-8f0e-4a38-9a32-0d3f8a8f7c11")) //nolint: gochecknoglobals
	now    = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)                         //nolint: gochecknoglobals
)

func testUser() *domain.User {
	return &domain.User{
		ID:             userID,
		Key:            "bob",
		Name:           "Bob Smith",
		HashedPassword: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$a2V5",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCreateUser(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().
		Create(gomock.Any(), users.CreateParams{Key: "bob", Name: "bob smith", Password: "secret-pass"}).
		Return(testUser(), nil)

	rec := api.do(t, http.MethodPost, "/v1/users", `{"key":"bob","name":"bob smith","password":"secret-pass"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotContains(t, rec.Body.String(), "argon2id")
	require.NotContains(t, rec.Body.String(), "password")

	var got v1specs.User
	require.NoError(t, got.UnmarshalJSON(rec.Body.Bytes()))
	require.Equal(t, uuid.UUID(userID), got.ID)
	require.Equal(t, "Bob Smith", got.Name)
	require.True(t, now.Equal(got.CreatedAt))
}

func TestCreateUser_KeyAlreadyExists(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrKeyAlreadyExists, "key %q already exists", "bob"))

	rec := api.do(t, http.MethodPost, "/v1/users", `{"key":"bob","name":"Bob","password":"secret-pass"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "KEY_ALREADY_EXISTS", decodeError(t, rec).Code)
}

func TestGetUser(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().ByID(gomock.Any(), userID).Return(testUser(), nil)

	rec := api.do(t, http.MethodGet, "/v1/users/"+userID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got v1specs.User
	require.NoError(t, got.UnmarshalJSON(rec.Body.Bytes()))
	require.Equal(t, "bob", got.Key)
}

func TestGetUser_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().ByID(gomock.Any(), userID).Return(nil, serrors.With(serrors.ErrNotFound, "user not found"))

	rec := api.do(t, http.MethodGet, "/v1/users/"+userID.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, v1specs.Error{Code: "NOT_FOUND", Message: "user not found"}, decodeError(t, rec))
}

func TestGetUserByKey(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().ByKey(gomock.Any(), "bob").Return(testUser(), nil)

	rec := api.do(t, http.MethodGet, "/v1/keys/bob", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUser(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().UpdateByID(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, params users.UpdateParams) (*domain.User, error) {
			require.Nil(t, params.Key)
			require.NotNil(t, params.Name)
			require.Equal(t, "robert", *params.Name)

			u := testUser()
			u.Name = "Robert"

			return u, nil
		})

	rec := api.do(t, http.MethodPatch, "/v1/users/"+userID.String(), `{"name":"robert"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got v1specs.User
	require.NoError(t, got.UnmarshalJSON(rec.Body.Bytes()))
	require.Equal(t, "Robert", got.Name)
}

func TestUpdateUser_InvalidKey(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().UpdateByID(gomock.Any(), userID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrInvalidKey, "key is invalid"))

	rec := api.do(t, http.MethodPatch, "/v1/users/"+userID.String(), `{"key":"x"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "INVALID_KEY", decodeError(t, rec).Code)
}

func TestDeleteUser(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().DeleteByID(gomock.Any(), userID).Return(nil)

	rec := api.do(t, http.MethodDelete, "/v1/users/"+userID.String(), "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestDeleteUser_Database(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().DeleteByID(gomock.Any(), userID).
		Return(serrors.With(serrors.ErrDatabase, "could not delete user"))

	rec := api.do(t, http.MethodDelete, "/v1/users/"+userID.String(), "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, v1specs.Error{Code: "DATABASE", Message: "internal error"}, decodeError(t, rec))
}

func TestVerifyPassword(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().VerifyPassword(gomock.Any(), "bob", "secret-pass").Return(testUser(), nil)
	api.users.EXPECT().VerifyPassword(gomock.Any(), "bob", "wrong-pass").
		Return(nil, serrors.Wrap(serrors.ErrWrongPassword, errors.New("password does not match"), "wrong password"))

	rec := api.do(t, http.MethodPost, "/v1/keys/bob/verify", `{"password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/keys/bob/verify", `{"password":"wrong-pass"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, v1specs.Error{Code: "WRONG_PASSWORD", Message: "wrong password"}, decodeError(t, rec))
}

func TestCreateUser_ShortPassword(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrInvalidPassword, "password must be at least 8 characters"))

	rec := api.do(t, http.MethodPost, "/v1/users", `{"key":"bob","name":"Bob","password":"short"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "INVALID_PASSWORD", decodeError(t, rec).Code)
}

func TestHandler_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockusers.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Users: m})
	ctx := context.Background()

	key := "robert01"
	m.EXPECT().UpdateByID(ctx, userID, users.UpdateParams{Key: &key}).Return(testUser(), nil)

	res, err := h.UpdateUser(ctx,
		&v1specs.UpdateUserRequest{Key: v1specs.NewOptString(key)},
		v1specs.UpdateUserParams{ID: uuid.UUID(userID)})
	require.NoError(t, err)
	require.Equal(t, v1handler.DomainUserToV1Specs(testUser()), res)
}

func TestHandler_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockusers.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Users: m})
	ctx := context.Background()

	m.EXPECT().DeleteByID(ctx, userID).Return(serrors.With(serrors.ErrNotFound, "user not found"))

	err := h.DeleteUser(ctx, v1specs.DeleteUserParams{ID: uuid.UUID(userID)})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
