// Package users implements account management: creation with password
// hashing, lookups, partial updates and deletion.
package users

import (
	"context"
	"errors"

	"vocab/pkg/domain"
	"vocab/pkg/logger"
	"vocab/pkg/password"
	"vocab/pkg/serrors"
	"vocab/pkg/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Options carries the collaborators a Service needs besides storage. Nil
// fields fall back to random IDs and the system clock.
type Options struct {
	IDs   domain.IDGenerator
	Clock domain.Clock
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage  storage.Storage
	hasher   password.Hasher
	ids      domain.IDGenerator
	clock    domain.Clock
	validate *validator.Validate
}

// fieldKinds maps a failing struct field to the error kind reported for it.
var fieldKinds = map[string]serrors.Kind{ //nolint: gochecknoglobals
	"Key":      serrors.ErrInvalidKey,
	"Password": serrors.ErrInvalidPassword,
}

func (s service) check(params any) error {
	err := s.validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		kind, ok := fieldKinds[fe.Field()]
		if !ok {
			kind = serrors.ErrInvalidInput
		}

		return serrors.Wrap(kind, err, "invalid %s", fe.Field())
	}

	return serrors.Wrap(serrors.ErrInvalidInput, err, "invalid user")
}

// fromStorage classifies a storage error once: not found, key conflict or a
// generic database failure (which is logged).
func fromStorage(ctx context.Context, err error, key, action string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return serrors.Wrap(serrors.ErrNotFound, err, "user not found")
	case errors.Is(err, storage.ErrConflict):
		return serrors.Wrap(serrors.ErrKeyAlreadyExists, err, "key %q already exists", key)
	default:
		logger.Error(ctx, "user storage failure", zap.String("action", action), zap.Error(err))

		return serrors.Wrap(serrors.ErrDatabase, err, "could not %s", action)
	}
}

// Create validates params, hashes the password and stores a new user.
func (s service) Create(ctx context.Context, params CreateParams) (*domain.User, error) {
	params.Name = domain.TitleCase(params.Name)
	if err := s.check(params); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		logger.Error(ctx, "could not hash password", zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrCrypto, err, "could not hash password")
	}

	user, err := s.storage.Users().Insert(ctx, domain.NewUser(s.ids, s.clock, params.Key, params.Name, hashed))
	if err != nil {
		return nil, fromStorage(ctx, err, params.Key, "create user")
	}
	logger.Debug(ctx, "user created", zap.Stringer("user_id", user.ID))

	return &user, nil
}

func (s service) ByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.Users().SelectByID(ctx, id)
	if err != nil {
		return nil, fromStorage(ctx, err, "", "get user")
	}

	return &user, nil
}

func (s service) ByKey(ctx context.Context, key string) (*domain.User, error) {
	user, err := s.storage.Users().SelectByKey(ctx, key)
	if err != nil {
		return nil, fromStorage(ctx, err, key, "get user")
	}

	return &user, nil
}

// UpdateByID merges the present fields of params into the stored user. The
// read and the write happen in one transaction with the row locked.
func (s service) UpdateByID(ctx context.Context, id domain.UserID, params UpdateParams) (*domain.User, error) {
	if params.Name != nil {
		name := domain.TitleCase(*params.Name)
		params.Name = &name
	}
	if err := s.check(params); err != nil {
		return nil, err
	}

	var key string
	if params.Key != nil {
		key = *params.Key
	}

	var updated domain.User
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.Users().SelectByID(ctx, id)
		if err != nil {
			return fromStorage(ctx, err, key, "get user")
		}

		user.Update(s.clock, domain.UserChanges{Key: params.Key, Name: params.Name})

		updated, err = tx.Users().Update(ctx, user)
		if err != nil {
			return fromStorage(ctx, err, key, "update user")
		}

		return nil
	})
	if err != nil {
		var se *serrors.Error
		if errors.As(err, &se) {
			return nil, err
		}

		return nil, fromStorage(ctx, err, key, "update user")
	}

	return &updated, nil
}

func (s service) DeleteByID(ctx context.Context, id domain.UserID) error {
	if err := s.storage.Users().DeleteByID(ctx, id); err != nil {
		return fromStorage(ctx, err, "", "delete user")
	}

	return nil
}

// VerifyPassword checks raw against the stored hash of the user owning key.
// It is a credential check only; no session is created.
func (s service) VerifyPassword(ctx context.Context, key, raw string) (*domain.User, error) {
	user, err := s.ByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Verify(raw, user.HashedPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, serrors.Wrap(serrors.ErrWrongPassword, err, "wrong password")
		}
		logger.Error(ctx, "could not verify password", zap.Stringer("user_id", user.ID), zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrCrypto, err, "could not verify password")
	}

	return user, nil
}

// New creates a user Service on top of storage, hashing passwords with hasher.
func New(storage storage.Storage, hasher password.Hasher, opts Options) Service {
	s := &service{
		storage:  storage,
		hasher:   hasher,
		ids:      opts.IDs,
		clock:    opts.Clock,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	if s.ids == nil {
		s.ids = domain.RandomIDs{}
	}
	if s.clock == nil {
		s.clock = domain.SystemClock{}
	}

	return s
}
