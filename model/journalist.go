package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"

	"github.com/openwhistle/tipline/credential"
)

/*

Journalist is a staff account authenticated by password.

Id: primary key
Username: unique login name
PwSalt: 32 random bytes generated once at provisioning; regenerating the salt
	without regenerating the hash bricks the account, so rotation always
	replaces both together
PwHash: scrypt hash of (password, PwSalt) under PwParams
PwParams: the work factors the hash was derived with, stored per record so
	tuning the defaults never strands existing hashes
IsAdmin: grants the admin interface
CreatedOn: provisioning time
LastAccess: nil until the first successful login; stamped by the caller after
	authentication, never on a failed attempt
*/

type Journalist struct {
	Id         string `gorm:"primaryKey"`
	Username   string `gorm:"size:255;not null;uniqueIndex"`
	PwSalt     []byte `gorm:"size:32"`
	PwHash     []byte `gorm:"size:256"`
	PwParams   datatypes.JSON
	IsAdmin    bool
	CreatedOn  time.Time `gorm:"autoCreateTime"`
	LastAccess *time.Time
}

// NewJournalist provisions an account from a plaintext password: generate a
// salt, derive the hash under the current default work factors, store all
// three. The plaintext is not retained past this call.
func NewJournalist(username string, password string, isAdmin bool) (*Journalist, error) {
	salt, err := credential.GenerateSalt()
	if err != nil {
		return nil, err
	}
	params := credential.DefaultParams()
	hash, err := credential.Hash(password, salt, params)
	if err != nil {
		return nil, err
	}
	rawParams, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &Journalist{
		Id:       uuid.New().String(),
		Username: username,
		PwSalt:   salt,
		PwHash:   hash,
		PwParams: datatypes.JSON(rawParams),
		IsAdmin:  isAdmin,
	}, nil
}

// HashParams returns the work factors the stored hash was derived with. Rows
// from before parameters were stored verify under the current defaults; a
// blob that no longer parses is data corruption and comes back as an error
// rather than a silent fallback that would masquerade as a wrong password.
func (j *Journalist) HashParams() (credential.Params, error) {
	if len(j.PwParams) == 0 {
		return credential.DefaultParams(), nil
	}
	var p credential.Params
	if err := json.Unmarshal(j.PwParams, &p); err != nil {
		return credential.Params{}, errors.Wrapf(err, "corrupt stored hash parameters for journalist %s", j.Username)
	}
	return p, nil
}

// ValidPassword reports whether password matches the stored hash.
func (j *Journalist) ValidPassword(password string) (bool, error) {
	params, err := j.HashParams()
	if err != nil {
		return false, err
	}
	return credential.Verify(password, j.PwSalt, j.PwHash, params)
}
