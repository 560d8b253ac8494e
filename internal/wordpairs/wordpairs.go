// Package wordpairs manages the word pairs users collect for studying.
package wordpairs

import (
	"context"
	"errors"

	"vocab/pkg/domain"
	"vocab/pkg/logger"
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
	ids      domain.IDGenerator
	clock    domain.Clock
	validate *validator.Validate
}

func fromStorage(ctx context.Context, err error, action string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return serrors.Wrap(serrors.ErrNotFound, err, "word pair not found")
	case errors.Is(err, storage.ErrConflict):
		return serrors.Wrap(serrors.ErrWordPairAlreadyExists, err, "word pair already exists")
	default:
		logger.Error(ctx, "word pair storage failure", zap.String("action", action), zap.Error(err))

		return serrors.Wrap(serrors.ErrDatabase, err, "could not %s", action)
	}
}

// Create normalizes and stores a new word pair owned by userID. An unknown
// owner is reported by the store as a failed foreign key, i.e. ErrDatabase.
func (s service) Create(ctx context.Context, userID domain.UserID, params CreateParams) (*domain.WordPair, error) {
	fields := domain.WordPairFields{
		TargetText:     domain.TitleCase(params.TargetText),
		SourceText:     domain.TitleCase(params.SourceText),
		TargetLanguage: domain.LanguageCode(params.TargetLanguage),
		SourceLanguage: domain.LanguageCode(params.SourceLanguage),
	}
	if err := s.validate.Struct(CreateParams(fields)); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidInput, err, "invalid word pair")
	}

	wp, err := s.storage.WordPairs().Insert(ctx, domain.NewWordPair(s.ids, s.clock, userID, fields))
	if err != nil {
		return nil, fromStorage(ctx, err, "create word pair")
	}

	return &wp, nil
}

// CreateForKey is Create for the user owning key.
func (s service) CreateForKey(ctx context.Context, key string, params CreateParams) (*domain.WordPair, error) {
	owner, err := s.owner(ctx, key)
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, owner, params)
}

func (s service) ByID(ctx context.Context, id domain.WordPairID) (*domain.WordPair, error) {
	wp, err := s.storage.WordPairs().SelectByID(ctx, id)
	if err != nil {
		return nil, fromStorage(ctx, err, "get word pair")
	}

	return &wp, nil
}

// ByUserID lists the pairs of userID, oldest first. Unknown users simply have
// no pairs.
func (s service) ByUserID(ctx context.Context, userID domain.UserID) ([]domain.WordPair, error) {
	pairs, err := s.storage.WordPairs().SelectByUserID(ctx, userID)
	if err != nil {
		return nil, fromStorage(ctx, err, "list word pairs")
	}
	if pairs == nil {
		pairs = []domain.WordPair{}
	}

	return pairs, nil
}

// ByUserKey lists the pairs of the user owning key. Unlike ByUserID an
// unknown key is ErrNotFound.
func (s service) ByUserKey(ctx context.Context, key string) ([]domain.WordPair, error) {
	owner, err := s.owner(ctx, key)
	if err != nil {
		return nil, err
	}

	return s.ByUserID(ctx, owner)
}

func (s service) DeleteByID(ctx context.Context, id domain.WordPairID) error {
	if err := s.storage.WordPairs().DeleteByID(ctx, id); err != nil {
		return fromStorage(ctx, err, "delete word pair")
	}

	return nil
}

func (s service) owner(ctx context.Context, key string) (domain.UserID, error) {
	user, err := s.storage.Users().SelectByKey(ctx, key)
	if err == nil {
		return user.ID, nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return domain.UserID{}, serrors.Wrap(serrors.ErrNotFound, err, "user %q not found", key)
	}
	logger.Error(ctx, "user storage failure", zap.String("action", "resolve key"), zap.Error(err))

	return domain.UserID{}, serrors.Wrap(serrors.ErrDatabase, err, "could not resolve user key")
}

// New creates a word pair Service on top of storage.
func New(storage storage.Storage, opts Options) Service {
	s := &service{
		storage:  storage,
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
