package model

import "strings"

// Slugify converts a journalist-assigned designation into a filesystem-safe
// slug: lower-case, spaces become underscores, and every character outside
// [a-z0-9_-] is dropped. The mapping is lossy and non-injective; distinct
// designations can collapse to the same slug and callers must tolerate or
// detect collisions themselves.
func Slugify(label string) string {
	lowered := strings.ReplaceAll(strings.ToLower(label), " ", "_")
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
