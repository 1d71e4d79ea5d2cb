// Package credential derives and verifies journalist password hashes with
// scrypt, a memory-hard KDF. Work-factor parameters are carried in a Params
// value so they can be stored next to each hash; verification always runs
// under the parameters the hash was created with.
package credential

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	// SaltLen is the exact salt length accepted by Hash and Verify.
	SaltLen = 32
	// KeyLen is the length of the derived hash in bytes.
	KeyLen = 64
)

// Params are the scrypt work factors: CPU/memory cost exponent N, block size
// R and parallelism P. Raising them makes brute force more expensive and
// logins slower in equal measure.
type Params struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// DefaultParams returns the work factors used for newly provisioned
// accounts. Existing hashes keep verifying under their stored parameters
// when these change.
func DefaultParams() Params {
	return Params{N: 1 << 14, R: 8, P: 1}
}

// GenerateSalt returns SaltLen bytes from the OS's CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "generate salt")
	}
	return salt, nil
}

// Hash derives the KeyLen-byte scrypt hash of password under salt and p.
func Hash(password string, salt []byte, p Params) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(salt) != SaltLen {
		return nil, errors.Wrapf(ErrInvalidSalt, "got %d bytes", len(salt))
	}
	hash, err := scrypt.Key([]byte(password), salt, p.N, p.R, p.P, KeyLen)
	if err != nil {
		return nil, errors.Wrap(err, "scrypt")
	}
	return hash, nil
}

// Verify recomputes the hash of password under salt and p and compares it to
// want. The comparison is constant time in the hash material so a mismatch
// leaks nothing through timing.
func Verify(password string, salt, want []byte, p Params) (bool, error) {
	got, err := Hash(password, salt, p)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
