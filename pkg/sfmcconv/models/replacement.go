package models

// Replacement is one old→new pair of a ReplacementMap.
type Replacement struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ReplacementMap is an insertion-ordered mapping from old to new strings.
// Setting an existing key keeps its original position and overwrites the value.
type ReplacementMap struct {
	pairs []Replacement
	index map[string]int
}

// NewReplacementMap returns an empty map.
func NewReplacementMap() *ReplacementMap {
	return &ReplacementMap{index: make(map[string]int)}
}

// Set records old→repl.
func (m *ReplacementMap) Set(old, repl string) {
	if i, ok := m.index[old]; ok {
		m.pairs[i].New = repl
		return
	}
	m.index[old] = len(m.pairs)
	m.pairs = append(m.pairs, Replacement{Old: old, New: repl})
}

// Len returns the number of pairs. A nil map has length zero.
func (m *ReplacementMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Pairs returns a copy of the pairs in insertion order.
func (m *ReplacementMap) Pairs() []Replacement {
	if m == nil {
		return nil
	}
	out := make([]Replacement, len(m.pairs))
	copy(out, m.pairs)
	return out
}
