// Package password hashes and verifies user passwords with argon2id. Hashes
// are self-describing PHC strings, so parameters can change over time without
// invalidating stored hashes.
//
//go:generate mockgen -package mockpassword -source=password.go -destination=mock/mockpassword.go Hasher
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrMismatch is returned by Verify when the password does not match the hash.
	ErrMismatch = errors.New("password does not match")
	// ErrInvalidHash is returned when a stored hash cannot be parsed or uses an
	// unsupported algorithm or version.
	ErrInvalidHash = errors.New("invalid password hash")
)

// Hasher turns raw passwords into storable hashes and checks them later.
type Hasher interface {
	// Hash returns a PHC-formatted hash of raw using a fresh random salt.
	Hash(raw string) (string, error)
	// Verify returns nil if raw matches hashed, ErrMismatch if it does not and
	// ErrInvalidHash if hashed is malformed.
	Verify(raw, hashed string) error
}

// Params are the argon2id cost parameters.
type Params struct {
	// Memory in KiB.
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams match the OWASP minimum recommendation for argon2id.
var DefaultParams = Params{ //nolint: gochecknoglobals
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2id implements Hasher. It holds no mutable state and is safe for
// concurrent use.
type Argon2id struct {
	params Params
}

var _ Hasher = (*Argon2id)(nil)

// New returns an argon2id hasher. Zero fields of params fall back to DefaultParams.
func New(params Params) *Argon2id {
	if params.Memory == 0 {
		params.Memory = DefaultParams.Memory
	}
	if params.Iterations == 0 {
		params.Iterations = DefaultParams.Iterations
	}
	if params.Parallelism == 0 {
		params.Parallelism = DefaultParams.Parallelism
	}
	if params.SaltLength == 0 {
		params.SaltLength = DefaultParams.SaltLength
	}
	if params.KeyLength == 0 {
		params.KeyLength = DefaultParams.KeyLength
	}

	return &Argon2id{params: params}
}

var b64 = base64.RawStdEncoding //nolint: gochecknoglobals

func (a *Argon2id) Hash(raw string) (string, error) {
	salt := make([]byte, a.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(raw), salt, a.params.Iterations, a.params.Memory, a.params.Parallelism, a.params.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.params.Memory,
		a.params.Iterations,
		a.params.Parallelism,
		b64.EncodeToString(salt),
		b64.EncodeToString(key)), nil
}

func (a *Argon2id) Verify(raw, hashed string) error {
	p, salt, key, err := decode(hashed)
	if err != nil {
		return err
	}

	other := argon2.IDKey([]byte(raw), salt, p.Iterations, p.Memory, p.Parallelism, uint32(len(key))) //nolint: gosec
	if subtle.ConstantTimeCompare(key, other) != 1 {
		return ErrMismatch
	}

	return nil
}

// decode splits "$argon2id$v=19$m=19456,t=2,p=1$<salt>$<key>".
func decode(hashed string) (Params, []byte, []byte, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[0] != "" {
		return Params{}, nil, nil, fmt.Errorf("%w: unexpected number of segments", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return Params{}, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidHash, parts[1])
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return Params{}, nil, nil, fmt.Errorf("%w: missing version", ErrInvalidHash)
	}
	v, err := strconv.ParseUint(version, 10, 32)
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: could not parse version: %w", ErrInvalidHash, err)
	}
	if v != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHash, v)
	}

	p, err := decodeParams(parts[3])
	if err != nil {
		return Params{}, nil, nil, err
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: could not decode salt: %w", ErrInvalidHash, err)
	}
	if len(salt) == 0 {
		return Params{}, nil, nil, fmt.Errorf("%w: empty salt", ErrInvalidHash)
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: could not decode key: %w", ErrInvalidHash, err)
	}
	if len(key) == 0 {
		return Params{}, nil, nil, fmt.Errorf("%w: empty key", ErrInvalidHash)
	}

	return p, salt, key, nil
}

// decodeParams parses exactly "m=<uint32>,t=<uint32>,p=<uint8>".
func decodeParams(s string) (Params, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Params{}, fmt.Errorf("%w: unexpected parameters %q", ErrInvalidHash, s)
	}

	var values [3]uint64
	for i, name := range [3]string{"m", "t", "p"} {
		raw, ok := strings.CutPrefix(fields[i], name+"=")
		if !ok {
			return Params{}, fmt.Errorf("%w: expected parameter %q at position %d", ErrInvalidHash, name, i)
		}
		bitSize := 32
		if name == "p" {
			bitSize = 8
		}
		v, err := strconv.ParseUint(raw, 10, bitSize)
		if err != nil {
			return Params{}, fmt.Errorf("%w: could not parse parameter %q: %w", ErrInvalidHash, name, err)
		}
		if v == 0 {
			return Params{}, fmt.Errorf("%w: zero cost parameter %q", ErrInvalidHash, name)
		}
		values[i] = v
	}

	return Params{
		Memory:      uint32(values[0]), //nolint: gosec
		Iterations:  uint32(values[1]), //nolint: gosec
		Parallelism: uint8(values[2]),  //nolint: gosec
	}, nil
}
