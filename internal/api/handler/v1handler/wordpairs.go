package v1handler

import (
	"context"

	"vocab/internal/api/specs/v1specs"
	"vocab/internal/wordpairs"
	"vocab/pkg/domain"

	"github.com/google/uuid"
)

func DomainWordPairToV1Specs(in *domain.WordPair) *v1specs.WordPair {
	return &v1specs.WordPair{
		ID:             uuid.UUID(in.ID),
		UserID:         uuid.UUID(in.UserID),
		TargetText:     in.TargetText,
		SourceText:     in.SourceText,
		TargetLanguage: in.TargetLanguage,
		SourceLanguage: in.SourceLanguage,
		CreatedAt:      in.CreatedAt,
	}
}

// DomainWordPairsToV1Specs always yields a non-nil Items slice so an empty
// list encodes as [].
func DomainWordPairsToV1Specs(in []domain.WordPair) *v1specs.WordPairList {
	items := make([]v1specs.WordPair, 0, len(in))
	for i := range in {
		items = append(items, *DomainWordPairToV1Specs(&in[i]))
	}

	return &v1specs.WordPairList{Items: items}
}

func createParams(req *v1specs.CreateWordPairRequest) wordpairs.CreateParams {
	return wordpairs.CreateParams{
		TargetText:     req.TargetText,
		SourceText:     req.SourceText,
		TargetLanguage: req.TargetLanguage,
		SourceLanguage: req.SourceLanguage,
	}
}

// CreateWordPair adds a word pair to the user identified by ID.
func (h *Handler) CreateWordPair(
	ctx context.Context,
	req *v1specs.CreateWordPairRequest,
	params v1specs.CreateWordPairParams,
) (*v1specs.WordPair, error) {
	wp, err := h.deps.WordPairs.Create(ctx, domain.UserID(params.ID), createParams(req))
	if err != nil {
		return nil, err
	}

	return DomainWordPairToV1Specs(wp), nil
}

// CreateWordPairForKey adds a word pair to the user identified by key.
func (h *Handler) CreateWordPairForKey(
	ctx context.Context,
	req *v1specs.CreateWordPairRequest,
	params v1specs.CreateWordPairForKeyParams,
) (*v1specs.WordPair, error) {
	wp, err := h.deps.WordPairs.CreateForKey(ctx, params.Key, createParams(req))
	if err != nil {
		return nil, err
	}

	return DomainWordPairToV1Specs(wp), nil
}

// ListWordPairs returns every word pair of the user identified by ID.
func (h *Handler) ListWordPairs(ctx context.Context, params v1specs.ListWordPairsParams) (*v1specs.WordPairList, error) {
	pairs, err := h.deps.WordPairs.ByUserID(ctx, domain.UserID(params.ID))
	if err != nil {
		return nil, err
	}

	return DomainWordPairsToV1Specs(pairs), nil
}

// ListWordPairsByKey returns every word pair of the user identified by key.
func (h *Handler) ListWordPairsByKey(
	ctx context.Context,
	params v1specs.ListWordPairsByKeyParams,
) (*v1specs.WordPairList, error) {
	pairs, err := h.deps.WordPairs.ByUserKey(ctx, params.Key)
	if err != nil {
		return nil, err
	}

	return DomainWordPairsToV1Specs(pairs), nil
}

// GetWordPair returns a word pair by ID.
func (h *Handler) GetWordPair(ctx context.Context, params v1specs.GetWordPairParams) (*v1specs.WordPair, error) {
	wp, err := h.deps.WordPairs.ByID(ctx, domain.WordPairID(params.ID))
	if err != nil {
		return nil, err
	}

	return DomainWordPairToV1Specs(wp), nil
}

// DeleteWordPair removes a word pair by ID.
func (h *Handler) DeleteWordPair(ctx context.Context, params v1specs.DeleteWordPairParams) error {
	return h.deps.WordPairs.DeleteByID(ctx, domain.WordPairID(params.ID))
}
