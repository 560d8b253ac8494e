package password_test

import (
	"strings"
	"testing"

	"vocab/pkg/password"

	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast; the format is the same.
var testParams = password.Params{Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

func TestHashAndVerify(t *testing.T) {
	h := password.New(testParams)

	hashed, err := h.Hash("secretpw")
	require.NoError(t, err)
	require.NotEqual(t, "secretpw", hashed)
	require.True(t, strings.HasPrefix(hashed, "$argon2id$v=19$m=64,t=1,p=1$"), hashed)

	require.NoError(t, h.Verify("secretpw", hashed))
	require.ErrorIs(t, h.Verify("wrongpw1", hashed), password.ErrMismatch)
}

func TestHashUsesFreshSalt(t *testing.T) {
	h := password.New(testParams)

	a, err := h.Hash("secretpw")
	require.NoError(t, err)
	b, err := h.Hash("secretpw")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyUsesStoredParameters(t *testing.T) {
	old := password.New(testParams)
	hashed, err := old.Hash("secretpw")
	require.NoError(t, err)

	// a hasher configured differently still verifies older hashes
	current := password.New(password.Params{Memory: 128, Iterations: 2, Parallelism: 2})
	require.NoError(t, current.Verify("secretpw", hashed))
}

func TestDefaults(t *testing.T) {
	h := password.New(password.Params{})
	hashed, err := h.Hash("secretpw")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hashed, "$argon2id$v=19$m=19456,t=2,p=1$"), hashed)
}

func TestVerifyInvalidHash(t *testing.T) {
	h := password.New(testParams)

	tests := map[string]string{
		"empty":           "",
		"plain text":      "secretpw",
		"bcrypt":          "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		"wrong version":   "$argon2id$v=16$m=64,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"bad params":      "$argon2id$v=19$m=x,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"zero memory":     "$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"bad salt base64": "$argon2id$v=19$m=64,t=1,p=1$!!!$a2V5a2V5a2V5a2V5a2V5aw",
		"empty key":       "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$",
		"empty salt":      "$argon2id$v=19$m=64,t=1,p=1$$a2V5a2V5a2V5a2V5a2V5aw",
		"trailing junk":   "$argon2id$v=19$m=64,t=1,p=1xyz$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"version junk":    "$argon2id$v=19x$m=64,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"extra parameter": "$argon2id$v=19$m=64,t=1,p=1,k=2$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"reordered":       "$argon2id$v=19$t=1,m=64,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"negative":        "$argon2id$v=19$m=-64,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"p overflow":      "$argon2id$v=19$m=64,t=1,p=256$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
		"m overflow":      "$argon2id$v=19$m=4294967296,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5a2V5aw",
	}
	for name, hashed := range tests {
		t.Run(name, func(t *testing.T) {
			err := h.Verify("secretpw", hashed)
			require.ErrorIs(t, err, password.ErrInvalidHash)
			require.NotErrorIs(t, err, password.ErrMismatch)
		})
	}
}
