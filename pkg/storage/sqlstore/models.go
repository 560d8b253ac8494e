package sqlstore

import (
	"time"

	"vocab/pkg/domain"

	"github.com/google/uuid"
)

const (
	usersTable     = "users"
	wordPairsTable = "word_pairs"
)

// ToStorageTime converts t to the naive timestamp stored in TIMESTAMP
// columns: the UTC wall clock, without an offset, at domain.TimePrecision.
func ToStorageTime(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC).
		Truncate(domain.TimePrecision)
}

// FromStorageTime reads a naive timestamp back as UTC. Whatever location the
// driver attached is ignored; only the wall clock counts.
func FromStorageTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC).
		Truncate(domain.TimePrecision)
}

// UserRow is the users table row.
type UserRow struct {
	ID             uuid.UUID `db:"id"              goqu:"skipupdate"`
	HashedPassword string    `db:"hashed_password"`
	Key            string    `db:"key"`
	Name           string    `db:"name"`
	CreatedAt      time.Time `db:"created_at"      goqu:"skipupdate"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r *UserRow) ToDomain() domain.User {
	return domain.User{
		ID:             domain.UserID(r.ID),
		Key:            r.Key,
		Name:           r.Name,
		HashedPassword: r.HashedPassword,
		CreatedAt:      FromStorageTime(r.CreatedAt),
		UpdatedAt:      FromStorageTime(r.UpdatedAt),
	}
}

func (r *UserRow) FromDomain(u domain.User) {
	*r = UserRow{
		ID:             uuid.UUID(u.ID),
		HashedPassword: u.HashedPassword,
		Key:            u.Key,
		Name:           u.Name,
		CreatedAt:      ToStorageTime(u.CreatedAt),
		UpdatedAt:      ToStorageTime(u.UpdatedAt),
	}
}

func (r *UserRow) PrimaryKey() uuid.UUID { return r.ID }

// WordPairRow is the word_pairs table row.
type WordPairRow struct {
	ID             uuid.UUID `db:"id"              goqu:"skipupdate"`
	UserID         uuid.UUID `db:"user_id"`
	TargetText     string    `db:"target_text"`
	SourceText     string    `db:"source_text"`
	TargetLanguage string    `db:"target_language"`
	SourceLanguage string    `db:"source_language"`
	CreatedAt      time.Time `db:"created_at"      goqu:"skipupdate"`
}

func (r *WordPairRow) ToDomain() domain.WordPair {
	return domain.WordPair{
		ID:             domain.WordPairID(r.ID),
		UserID:         domain.UserID(r.UserID),
		TargetText:     r.TargetText,
		SourceText:     r.SourceText,
		TargetLanguage: r.TargetLanguage,
		SourceLanguage: r.SourceLanguage,
		CreatedAt:      FromStorageTime(r.CreatedAt),
	}
}

func (r *WordPairRow) FromDomain(wp domain.WordPair) {
	*r = WordPairRow{
		ID:             uuid.UUID(wp.ID),
		UserID:         uuid.UUID(wp.UserID),
		TargetText:     wp.TargetText,
		SourceText:     wp.SourceText,
		TargetLanguage: wp.TargetLanguage,
		SourceLanguage: wp.SourceLanguage,
		CreatedAt:      ToStorageTime(wp.CreatedAt),
	}
}

func (r *WordPairRow) PrimaryKey() uuid.UUID { return r.ID }
