package store

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskFileStoreSize(t *testing.T) {
	root := t.TempDir()
	fs := DiskFileStore{Root: root}

	require.NoError(t, os.MkdirAll(filepath.Join(root, "fs-id-1"), 0700))
	payload := []byte("pretend this is an encrypted submission")
	require.NoError(t, ioutil.WriteFile(fs.Path("fs-id-1", "1-msg.gpg"), payload, 0600))

	size, err := fs.Size("fs-id-1", "1-msg.gpg")
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), size)
}

func TestDiskFileStoreMissingFile(t *testing.T) {
	fs := DiskFileStore{Root: t.TempDir()}

	_, err := fs.Size("fs-id-1", "never-written-msg.gpg")
	assert.True(t, IsNotFound(err))
}

func TestDiskFileStorePath(t *testing.T) {
	fs := DiskFileStore{Root: "/var/lib/tipline/store"}
	assert.Equal(t, "/var/lib/tipline/store/fs-id-1/1-msg.gpg", fs.Path("fs-id-1", "1-msg.gpg"))
}
