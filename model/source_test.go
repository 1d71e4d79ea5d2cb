package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDocumentsMessagesCount(t *testing.T) {
	source := NewSource("fs-id-1", "Grumpy Tortoise")
	source.Submissions = []Submission{
		{Filename: "1-grumpy_tortoise-msg.gpg"},
		{Filename: "2-grumpy_tortoise-doc.zip.gpg"},
		{Filename: "3-grumpy_tortoise-other.gpg"},
	}

	want := map[string]int{"messages": 1, "documents": 1}
	assert.Empty(t, cmp.Diff(want, source.DocumentsMessagesCount()))
}

func TestDocumentsMessagesCountRecomputes(t *testing.T) {
	source := NewSource("fs-id-2", "Quiet Falcon")
	assert.Empty(t, cmp.Diff(map[string]int{"messages": 0, "documents": 0}, source.DocumentsMessagesCount()))

	// No hidden memoization: a changed collection changes the next result.
	source.Submissions = append(source.Submissions, Submission{Filename: "1-quiet_falcon-msg.gpg"})
	assert.Equal(t, 1, source.DocumentsMessagesCount()["messages"])
}

func TestRecordInteraction(t *testing.T) {
	source := NewSource("fs-id-3", "Pending Panther")
	assert.True(t, source.Pending)
	assert.Equal(t, 0, source.InteractionCount)

	source.RecordInteraction()
	assert.False(t, source.Pending)
	assert.Equal(t, 1, source.InteractionCount)

	source.RecordInteraction()
	assert.False(t, source.Pending)
	assert.Equal(t, 2, source.InteractionCount)
}

func TestJournalistFilename(t *testing.T) {
	source := NewSource("fs-id-4", "Ann A!")
	assert.Equal(t, "ann_a", source.JournalistFilename())
}
