package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// ParseUserID parses the canonical textual form of a user ID.
func ParseUserID(s string) (UserID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("could not parse user id: %w", err)
	}

	return UserID(u), nil
}

// WordPairID uniquely identifies a word pair.
type WordPairID uuid.UUID

func (id WordPairID) String() string { return uuid.UUID(id).String() }

// ParseWordPairID parses the canonical textual form of a word pair ID.
func ParseWordPairID(s string) (WordPairID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return WordPairID{}, fmt.Errorf("could not parse word pair id: %w", err)
	}

	return WordPairID(u), nil
}

// IDGenerator hands out fresh identifiers for new entities.
type IDGenerator interface {
	NewID() uuid.UUID
}

// RandomIDs generates random (version 4) UUIDs.
type RandomIDs struct{}

func (RandomIDs) NewID() uuid.UUID { return uuid.New() }

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
