// Package hashing provides Zobrist position hashing, the repetition table
// used by the draw rules and a shared node cache for perft.
package hashing

// RepetitionTable counts how often each position hash has occurred in a
// game. It is owned by a single game and is not safe for concurrent use.
type RepetitionTable struct {
	// counts maps position hash to number of occurrences
	counts map[uint64]int
	// maxCount is the highest count recorded so far
	maxCount int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Record adds one occurrence of hash and returns the new count.
func (t *RepetitionTable) Record(hash uint64) int {
	t.counts[hash]++
	n := t.counts[hash]
	if n > t.maxCount {
		t.maxCount = n
	}
	return n
}

// Count returns how often hash has occurred.
func (t *RepetitionTable) Count(hash uint64) int {
	return t.counts[hash]
}

// MaxCount returns the highest occurrence count of any position.
func (t *RepetitionTable) MaxCount() int {
	return t.maxCount
}

// Len returns the number of distinct positions seen.
func (t *RepetitionTable) Len() int {
	return len(t.counts)
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[uint64]int)
	t.maxCount = 0
}

// Clone returns an independent copy of the table.
func (t *RepetitionTable) Clone() *RepetitionTable {
	c := &RepetitionTable{counts: make(map[uint64]int, len(t.counts)), maxCount: t.maxCount}
	for k, v := range t.counts {
		c.counts[k] = v
	}
	return c
}
