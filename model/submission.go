package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

/*

Submission is one encrypted artifact a source submitted. Files arrive in the
submission vault already encrypted; this layer only records them.

Id: primary key
SourceID: owning source, "belongs-to" relation
Filename: immutable name of the stored file; the suffix is the sole type
	discriminator ("...msg.gpg" is a message, "...doc.zip.gpg" is a document)
Size: byte size read from the vault once at creation, never recomputed
Downloaded: set when a journalist fetched the artifact
CreatedAt: insertion time, keeps submissions of a source in creation order
*/

type Submission struct {
	Id         string `gorm:"primaryKey"`
	SourceID   string `gorm:"not null;index"`
	Filename   string `gorm:"size:255;not null"`
	Size       int64  `gorm:"not null"`
	Downloaded bool   `gorm:"default:false"`
	CreatedAt  time.Time
}

// SubmissionSizer resolves the on-disk byte size of a stored submission
// file. Implemented by store.DiskFileStore.
type SubmissionSizer interface {
	Size(filesystemId string, filename string) (int64, error)
}

// NewSubmission records an artifact that already landed in the vault. The
// size lookup is synchronous; if the backing file is missing the lookup
// error comes back and no Submission is produced.
func NewSubmission(sizer SubmissionSizer, source *Source, filename string) (*Submission, error) {
	size, err := sizer.Size(source.FilesystemId, filename)
	if err != nil {
		return nil, errors.Wrapf(err, "record submission %s", filename)
	}
	return &Submission{
		Id:       uuid.New().String(),
		SourceID: source.Id,
		Filename: filename,
		Size:     size,
	}, nil
}

type submissionKind int

const (
	submissionUnknown submissionKind = iota
	submissionMessage
	submissionDocument
)

// classifySubmission maps a filename suffix to an artifact kind. Anything
// outside the two known suffixes is unknown and excluded from the aggregate;
// a new artifact type needs a case here to become countable.
func classifySubmission(filename string) submissionKind {
	switch {
	case strings.HasSuffix(filename, "msg.gpg"):
		return submissionMessage
	case strings.HasSuffix(filename, "doc.zip.gpg"):
		return submissionDocument
	default:
		return submissionUnknown
	}
}
