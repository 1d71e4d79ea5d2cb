package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwhistle/tipline/credential"
)

func TestNewJournalist(t *testing.T) {
	journalist, err := NewJournalist("dellsberg", "pentagon papers", true)
	require.NoError(t, err)

	assert.Equal(t, "dellsberg", journalist.Username)
	assert.Len(t, journalist.PwSalt, credential.SaltLen)
	assert.Len(t, journalist.PwHash, credential.KeyLen)
	assert.True(t, journalist.IsAdmin)
	assert.Nil(t, journalist.LastAccess)

	// The work factors the hash was derived under are stored on the record.
	var stored credential.Params
	require.NoError(t, json.Unmarshal(journalist.PwParams, &stored))
	assert.Equal(t, credential.DefaultParams(), stored)
}

func TestValidPassword(t *testing.T) {
	journalist, err := NewJournalist("dellsberg", "pentagon papers", false)
	require.NoError(t, err)

	ok, err := journalist.ValidPassword("pentagon papers")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = journalist.ValidPassword("pentagon paper")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashParamsLegacyFallback(t *testing.T) {
	// Rows created before parameters were stored verify under the defaults.
	journalist := &Journalist{Username: "legacy"}
	params, err := journalist.HashParams()
	require.NoError(t, err)
	assert.Equal(t, credential.DefaultParams(), params)
}

func TestHashParamsCorruptBlob(t *testing.T) {
	// A params blob that no longer parses is corruption, not a wrong
	// password: it surfaces as an error all the way through ValidPassword.
	journalist, err := NewJournalist("dellsberg", "pentagon papers", false)
	require.NoError(t, err)
	journalist.PwParams = []byte("{not json")

	_, err = journalist.HashParams()
	assert.Error(t, err)

	_, err = journalist.ValidPassword("pentagon papers")
	assert.Error(t, err)
}
