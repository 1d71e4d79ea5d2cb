package model

import (
	"time"

	"github.com/google/uuid"
)

/*

Source is one pseudonymous tipster.

Id: primary key, use to identify a source
FilesystemId: opaque identifier assigned by the session layer when the tip
	session begins; unique, immutable, and never regenerated here
JournalistDesignation: the display label a journalist assigned to this source,
	mutable; see Slugify for the filesystem-safe derived form
Flagged: marks a source a journalist wants to keep an eye on
Pending: sources are "pending" and don't get displayed to journalists until
	they submit something; flips to false exactly once, on first interaction
InteractionCount: how many interactions have happened, used by the session
	layer for per-interaction filenames; monotonically non-decreasing
LastUpdated: time of the last mutation
Star: journalist star marker, "has-one" relation, at most one per source
Submissions: artifacts this source submitted, "has-many" relation, in
	insertion order
*/

type Source struct {
	Id                    string       `gorm:"primaryKey"`
	FilesystemId          string       `gorm:"size:96;uniqueIndex"`
	JournalistDesignation string       `gorm:"size:255;not null"`
	Flagged               bool         `gorm:"default:false"`
	Pending               bool         `gorm:"default:true"`
	InteractionCount      int          `gorm:"not null;default:0"`
	LastUpdated           time.Time    `gorm:"autoUpdateTime"`
	Star                  *SourceStar  `gorm:"constraint:OnDelete:CASCADE;"`
	Submissions           []Submission `gorm:"constraint:OnDelete:CASCADE;"`
}

// NewSource starts tracking a tipster whose session the external layer just
// opened. The filesystem identifier is supplied, never derived here.
func NewSource(filesystemId string, journalistDesignation string) *Source {
	return &Source{
		Id:                    uuid.New().String(),
		FilesystemId:          filesystemId,
		JournalistDesignation: journalistDesignation,
		Pending:               true,
	}
}

// JournalistFilename returns the filesystem-safe slug of the designation.
func (s *Source) JournalistFilename() string {
	return Slugify(s.JournalistDesignation)
}

// RecordInteraction bumps the interaction counter and clears the pending
// marker. The counter never decreases; pending only ever flips to false.
func (s *Source) RecordInteraction() {
	s.InteractionCount++
	s.Pending = false
}

// DocumentsMessagesCount classifies the loaded submissions by filename
// suffix and returns counts keyed "messages" and "documents". Filenames with
// an unknown suffix are not counted. The result is computed on every call,
// never cached on the record; callers that change Submissions just call
// again.
func (s *Source) DocumentsMessagesCount() map[string]int {
	counts := map[string]int{"messages": 0, "documents": 0}
	for i := range s.Submissions {
		switch classifySubmission(s.Submissions[i].Filename) {
		case submissionMessage:
			counts["messages"]++
		case submissionDocument:
			counts["documents"]++
		}
	}
	return counts
}
