package credential

import "github.com/pkg/errors"

// Input errors are fatal to the current operation: a password is never
// partially hashed, truncated, or padded.
var (
	ErrEmptyPassword = errors.New("password must not be empty")
	ErrInvalidSalt   = errors.New("salt must be exactly SaltLen bytes")
)

// IsInputError reports whether err is a malformed-argument failure from this
// package, as opposed to an operational one.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyPassword) || errors.Is(err, ErrInvalidSalt)
}
