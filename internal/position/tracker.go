// SPDX-License-Identifier: Apache-2.0

package position

// Tracker converts character indexes into byte offsets for one document.
// Matchers scan rune-by-rune but callers need byte-addressable spans for
// highlighting and redaction tooling, so the char-boundary table is built
// once per document and lookups are O(1).
type Tracker struct {
	byteLen    int
	boundaries []int
}

// NewTracker builds the char-boundary table for text.
func NewTracker(text string) *Tracker {
	boundaries := make([]int, 0, len(text))
	for i := range text {
		boundaries = append(boundaries, i)
	}
	return &Tracker{
		byteLen:    len(text),
		boundaries: boundaries,
	}
}

// ByteOffset returns the byte offset of the character at charIdx. An index
// equal to the character count acts as an end-of-string sentinel and returns
// the byte length. Out-of-range indexes clamp rather than panic.
func (t *Tracker) ByteOffset(charIdx int) int {
	if charIdx < 0 {
		return 0
	}
	if charIdx >= len(t.boundaries) {
		return t.byteLen
	}
	return t.boundaries[charIdx]
}

// CharCount returns the number of characters in the tracked text.
func (t *Tracker) CharCount() int {
	return len(t.boundaries)
}
