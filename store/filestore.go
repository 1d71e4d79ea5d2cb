package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/openwhistle/tipline/model"
)

// DiskFileStore is the size lookup used when submissions are recorded.
var _ model.SubmissionSizer = DiskFileStore{}

// DiskFileStore resolves submission files inside the vault's per-source
// directory layout. Files are written there, already encrypted, by the
// submission pipeline; this layer only resolves paths and sizes.
type DiskFileStore struct {
	Root string
}

// Path returns the location of filename within the source's directory.
func (f DiskFileStore) Path(filesystemId string, filename string) string {
	return filepath.Join(f.Root, filesystemId, filename)
}

// Size returns the byte size of a stored submission file. A missing file is
// ErrNotFound; the caller must not create a record for it.
func (f DiskFileStore) Size(filesystemId string, filename string) (int64, error) {
	info, err := os.Stat(f.Path(filesystemId, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrapf(ErrNotFound, "submission file %s/%s", filesystemId, filename)
		}
		return 0, errors.Wrapf(err, "stat %s/%s", filesystemId, filename)
	}
	return info.Size(), nil
}
