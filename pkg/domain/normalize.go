package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TimePrecision is the resolution domain timestamps are kept at. It matches
// what both supported SQL engines store for a TIMESTAMP column.
const TimePrecision = time.Microsecond

// TitleCase collapses runs of whitespace into a single space, trims the
// result and upper-cases the first letter of every word. It is idempotent.
func TitleCase(s string) string {
	// Caser keeps internal state, so one is created per call.
	return cases.Title(language.Und).String(strings.Join(strings.Fields(s), " "))
}

// LanguageCode trims and lower-cases a language code ("EN " -> "en").
func LanguageCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Timestamp converts t to UTC at TimePrecision.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(TimePrecision)
}
