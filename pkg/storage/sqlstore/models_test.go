package sqlstore_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"vocab/pkg/domain"
	"vocab/pkg/domain/domaintest"
	"vocab/pkg/storage/sqlstore"

	"github.com/stretchr/testify/require"
)

func TestStorageTime(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*3600)
	in := time.Date(2024, time.July, 1, 1, 30, 0, 987654321, berlin)

	stored := sqlstore.ToStorageTime(in)
	require.Equal(t, time.Date(2024, time.June, 30, 23, 30, 0, 987654000, time.UTC), stored)

	// a driver that hands the naive value back in another location
	local := time.Date(2024, time.June, 30, 23, 30, 0, 987654000, time.FixedZone("Z", 7*3600))
	require.Equal(t, stored, sqlstore.FromStorageTime(local))

	// round trip is exact to the microsecond
	require.True(t, sqlstore.FromStorageTime(stored).Equal(in.Truncate(time.Microsecond)))
}

func TestUserRowRoundTrip(t *testing.T) {
	clock := domaintest.NewClock(time.Date(2023, time.January, 2, 3, 4, 5, 600700800, time.Local))
	u := domain.NewUser(&domaintest.IDs{}, clock, "alice01", "alice", "hash")
	clock.Advance(1500 * time.Nanosecond)
	name := "bob"
	u.Update(clock, domain.UserChanges{Name: &name})

	var row sqlstore.UserRow
	row.FromDomain(u)
	require.Equal(t, u, row.ToDomain())
	require.Equal(t, "Bob", row.Name)
}

func TestWordPairRowRoundTrip(t *testing.T) {
	ids := &domaintest.IDs{}
	clock := domaintest.NewClock(time.Date(2023, time.January, 2, 3, 4, 5, 999999999, time.UTC))
	owner := domain.NewUser(ids, clock, "alice01", "alice", "hash")
	wp := domain.NewWordPair(ids, clock, owner.ID, domain.WordPairFields{
		TargetText: "hallo", SourceText: "hello", TargetLanguage: "DE", SourceLanguage: "EN",
	})

	var row sqlstore.WordPairRow
	row.FromDomain(wp)
	require.Equal(t, wp, row.ToDomain())
	require.Equal(t, owner.ID, domain.UserID(row.UserID))
}

func TestRowTimestampsRoundTrip(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	instants := map[string]time.Time{
		"epoch":                time.Unix(0, 0),
		"pre 1970":             time.Date(1969, time.December, 31, 23, 59, 59, 999999500, time.UTC),
		"pre 1970 negative ns": time.Unix(-1, 1),
		"early year":           time.Date(1001, time.March, 3, 4, 5, 6, 7000, time.UTC),
		"exact second":         time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC),
		"exact microsecond":    time.Date(2024, time.February, 29, 12, 0, 0, 1000, time.UTC),
		"below microsecond":    time.Date(2024, time.February, 29, 12, 0, 0, 999, time.UTC),
		"last nanosecond":      time.Date(2024, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		"fixed zone":           time.Date(2024, time.July, 1, 1, 30, 0, 987654321, time.FixedZone("", -9*3600-30*60)),
		"dst start":            time.Date(2024, time.March, 10, 3, 0, 0, 500, newYork),
		"dst end ambiguous":    time.Date(2024, time.November, 3, 1, 30, 0, 123456789, newYork),
		"standard time":        time.Date(2024, time.January, 15, 8, 0, 0, 1, newYork),
		"local":                time.Date(2023, time.January, 2, 3, 4, 5, 600700800, time.Local),
		"far future":           time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		"far future zone":      time.Date(3000, time.June, 1, 0, 0, 0, 1001, newYork),
	}
	for name, instant := range instants {
		t.Run(name, func(t *testing.T) {
			want := domain.Timestamp(instant)

			require.Equal(t, want, sqlstore.FromStorageTime(sqlstore.ToStorageTime(instant)))

			var userRow sqlstore.UserRow
			userRow.FromDomain(domain.User{CreatedAt: instant, UpdatedAt: instant})
			u := userRow.ToDomain()
			require.Equal(t, want, u.CreatedAt)
			require.Equal(t, want, u.UpdatedAt)

			var pairRow sqlstore.WordPairRow
			pairRow.FromDomain(domain.WordPair{CreatedAt: instant})
			require.Equal(t, want, pairRow.ToDomain().CreatedAt)
		})
	}
}
