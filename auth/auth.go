// Package auth authenticates journalist staff accounts against the record
// store. Rate limiting and lockout policy belong to the caller.
package auth

import (
	"time"

	"github.com/pkg/errors"

	"github.com/openwhistle/tipline/model"
	"github.com/openwhistle/tipline/store"
)

// ErrInvalidCredentials means the account exists but the password did not
// match. Callers should present this and store.ErrNotFound as the same
// generic failure to avoid username enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// IsInvalidCredentials reports whether err represents ErrInvalidCredentials.
func IsInvalidCredentials(err error) bool { return errors.Is(err, ErrInvalidCredentials) }

// Login authenticates a journalist by username and password.
//
// Zero accounts with that username is store.ErrNotFound; more than one is
// store.ErrIntegrityConflict, surfaced as-is rather than picking one; a
// password mismatch is ErrInvalidCredentials. No path writes anything, so a
// failed attempt has no side effect; callers stamp last_access with
// TouchLastAccess after success.
func Login(sess *store.Session, username string, password string) (*model.Journalist, error) {
	var journalist model.Journalist
	if err := sess.ExactlyOne(&journalist, "username = ?", username); err != nil {
		return nil, err
	}
	ok, err := journalist.ValidPassword(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(ErrInvalidCredentials, "journalist %s", username)
	}
	return &journalist, nil
}

// TouchLastAccess stamps the journalist's last_access time. Kept out of
// Login so the verification path stays free of writes.
func TouchLastAccess(sess *store.Session, journalist *model.Journalist) error {
	now := time.Now()
	journalist.LastAccess = &now
	return sess.Update(journalist)
}
