package sqlstore

import (
	"context"

	"vocab/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

type users struct {
	table[domain.User, domain.UserID, UserRow, *UserRow]
}

func (u users) SelectByKey(ctx context.Context, key string) (domain.User, error) {
	return u.selectOne(ctx, false, goqu.C("key").Eq(key))
}

func (u users) Update(ctx context.Context, user domain.User) (domain.User, error) {
	return u.update(ctx, user)
}
