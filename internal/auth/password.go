// Package auth hashes and verifies the write-protection password.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidHash is returned for strings that are not a PHC-encoded argon2id hash.
var ErrInvalidHash = errors.New("invalid argon2id hash")

// Params are the argon2id cost parameters.
type Params struct {
	Memory  uint32 // KiB
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultParams follow the OWASP argon2id baseline.
var DefaultParams = Params{
	Memory:  64 * 1024,
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// Hash is a decoded argon2id hash.
type Hash struct {
	Params Params
	Salt   []byte
	Key    []byte
}

// HashPassword derives an argon2id key from password and returns it encoded as
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>.
func HashPassword(password string, p Params) (string, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// ParseHash decodes an encoded argon2id hash.
func ParseHash(encoded string) (*Hash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected 6 '$'-separated fields", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return nil, fmt.Errorf("%w: algorithm %q", ErrInvalidHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, fmt.Errorf("%w: version: %v", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHash, version)
	}

	var h Hash
	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.Params.Memory, &h.Params.Time, &threads); err != nil {
		return nil, fmt.Errorf("%w: parameters: %v", ErrInvalidHash, err)
	}
	if threads == 0 || threads > 255 || h.Params.Time == 0 || h.Params.Memory == 0 {
		return nil, fmt.Errorf("%w: parameters out of range", ErrInvalidHash)
	}
	h.Params.Threads = uint8(threads)

	var err error
	if h.Salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	if h.Key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("%w: key: %v", ErrInvalidHash, err)
	}
	if len(h.Key) == 0 {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidHash)
	}
	h.Params.SaltLen = uint32(len(h.Salt))
	h.Params.KeyLen = uint32(len(h.Key))

	return &h, nil
}

// Matches reports whether password derives the stored key. Comparison is
// constant-time.
func (h *Hash) Matches(password string) bool {
	key := argon2.IDKey([]byte(password), h.Salt, h.Params.Time, h.Params.Memory, h.Params.Threads, h.Params.KeyLen)
	return subtle.ConstantTimeCompare(h.Key, key) == 1
}

// VerifyPassword parses encoded and checks password against it.
func VerifyPassword(password, encoded string) (bool, error) {
	h, err := ParseHash(encoded)
	if err != nil {
		return false, err
	}
	return h.Matches(password), nil
}

// Credentials is a username plus decoded password hash used for Basic auth.
type Credentials struct {
	User string
	hash *Hash
}

// NewCredentials parses encodedHash once so requests only pay for the key
// derivation.
func NewCredentials(user, encodedHash string) (*Credentials, error) {
	h, err := ParseHash(encodedHash)
	if err != nil {
		return nil, err
	}
	return &Credentials{User: user, hash: h}, nil
}

// Verify checks a username and password pair.
func (c *Credentials) Verify(user, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1
	passMatch := c.hash.Matches(password)
	return userMatch && passMatch
}
