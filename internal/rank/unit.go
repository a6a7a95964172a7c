package rank

import (
	"sort"
)

// Unit is one sentence or chunk taking part in ranking.
//
// Identity is the text alone: two units with identical Text are the same
// graph node even when they come from different pages or positions.
type Unit struct {
	Text          string
	OriginalIndex int
	PageID        string

	words map[string]struct{}
}

// NewUnit builds a unit with the default tokenizer.
func NewUnit(text string, originalIndex int, pageID string) Unit {
	return defaultTokenizer.NewUnit(text, originalIndex, pageID)
}

// Key returns the identity of the unit.
func (u Unit) Key() string {
	return u.Text
}

// Equal reports whether u and other are the same node.
func (u Unit) Equal(other Unit) bool {
	return u.Text == other.Text
}

// Length is the size of the word set.
func (u Unit) Length() int {
	return len(u.words)
}

// Words returns the word set, sorted.
func (u Unit) Words() []string {
	out := make([]string, 0, len(u.words))
	for w := range u.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// HasWord reports whether w is in the word set.
func (u Unit) HasWord(w string) bool {
	_, ok := u.words[w]
	return ok
}

// Dedup keeps the first unit of each text, preserving order.
func Dedup(units []Unit) []Unit {
	seen := make(map[string]struct{}, len(units))
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		if _, ok := seen[u.Key()]; ok {
			continue
		}
		seen[u.Key()] = struct{}{}
		out = append(out, u)
	}
	return out
}
