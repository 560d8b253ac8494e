package sqlstore

import (
	"context"

	"vocab/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

type wordPairs struct {
	table[domain.WordPair, domain.WordPairID, WordPairRow, *WordPairRow]
}

func (w wordPairs) SelectByUserID(ctx context.Context, userID domain.UserID) ([]domain.WordPair, error) {
	return w.selectMany(ctx,
		[]exp.OrderedExpression{goqu.C("created_at").Asc(), goqu.C("id").Asc()},
		goqu.C("user_id").Eq(uuid.UUID(userID)))
}
