package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSourceStars(t *testing.T) {
	source := NewSource("fs-id-5", "Starred Swan")
	star := NewSourceStar(source, true)

	same := *star
	assert.Equal(t, StarsEqual, CompareSourceStars(star, &same))

	toggled := *star
	toggled.Starred = false
	assert.Equal(t, StarsNotEqual, CompareSourceStars(star, &toggled))

	other := NewSourceStar(source, true)
	assert.Equal(t, StarsNotEqual, CompareSourceStars(star, other))

	assert.Equal(t, StarsNotComparable, CompareSourceStars(star, nil))
	assert.Equal(t, StarsNotComparable, CompareSourceStars(nil, nil))
}
