package model

import "github.com/google/uuid"

/*

SourceStar is the journalist-facing star marker on a Source. At most one row
exists per source; after the first star action the starred state is toggled
in place, not recreated.
*/

type SourceStar struct {
	Id       string `gorm:"primaryKey"`
	SourceID string `gorm:"uniqueIndex"`
	Starred  bool   `gorm:"default:true"`
}

// NewSourceStar creates the star marker for a source's first star action.
func NewSourceStar(source *Source, starred bool) *SourceStar {
	return &SourceStar{
		Id:       uuid.New().String(),
		SourceID: source.Id,
		Starred:  starred,
	}
}

// StarComparison is the outcome of comparing two star markers.
type StarComparison int

const (
	StarsNotComparable StarComparison = iota
	StarsEqual
	StarsNotEqual
)

// CompareSourceStars reports value equality over (source reference,
// identity, starred). Nil operands are NotComparable rather than unequal so
// callers can tell "different star" apart from "nothing to compare".
func CompareSourceStars(a, b *SourceStar) StarComparison {
	if a == nil || b == nil {
		return StarsNotComparable
	}
	if a.SourceID == b.SourceID && a.Id == b.Id && a.Starred == b.Starred {
		return StarsEqual
	}
	return StarsNotEqual
}
