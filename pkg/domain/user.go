package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Key is the unique human-chosen handle, Name is
// a display name kept in title case.
type User struct {
	ID             UserID
	Key            string
	Name           string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser builds a user with a fresh ID and both timestamps set to now. The
// password must already be hashed.
func NewUser(ids IDGenerator, clock Clock, key, name, hashedPassword string) User {
	now := Timestamp(clock.Now())

	return User{
		ID:             UserID(ids.NewID()),
		Key:            key,
		Name:           TitleCase(name),
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UserChanges lists optional replacements for a user's mutable fields. Nil
// fields are left as they are.
type UserChanges struct {
	Key  *string
	Name *string
}

// Update applies the present fields of changes and refreshes UpdatedAt. The
// new UpdatedAt is always strictly after the previous one, even if the clock
// has not moved by a full TimePrecision tick.
func (u *User) Update(clock Clock, changes UserChanges) {
	if changes.Key != nil {
		u.Key = *changes.Key
	}
	if changes.Name != nil {
		u.Name = TitleCase(*changes.Name)
	}

	now := Timestamp(clock.Now())
	if !now.After(u.UpdatedAt) {
		now = u.UpdatedAt.Add(TimePrecision)
	}
	u.UpdatedAt = now
}

// IsZero reports whether u is the zero User.
func (u User) IsZero() bool { return uuid.UUID(u.ID) == uuid.Nil }
