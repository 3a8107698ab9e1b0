package goosemg

// RepetitionTable counts how often each layout key (see Board.LayoutKey) has
// occurred in a game. It belongs to the game session, not to a position:
// Push when a position is reached, Pop when the move leading to it is undone.
type RepetitionTable struct {
	counts map[string]int
	n      int
}

// NewRepetitionTable returns an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[string]int)}
}

// Push records one occurrence of key and returns the new count.
func (t *RepetitionTable) Push(key string) int {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	t.counts[key]++
	t.n++
	return t.counts[key]
}

// Pop removes one occurrence of key. Popping an absent key is a no-op.
func (t *RepetitionTable) Pop(key string) {
	c, ok := t.counts[key]
	if !ok {
		return
	}
	if c <= 1 {
		delete(t.counts, key)
	} else {
		t.counts[key] = c - 1
	}
	t.n--
}

// Count returns how many times key has occurred.
func (t *RepetitionTable) Count(key string) int {
	if t == nil {
		return 0
	}
	return t.counts[key]
}

// Len returns the total number of recorded occurrences.
func (t *RepetitionTable) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Clone returns an independent copy of the table.
func (t *RepetitionTable) Clone() *RepetitionTable {
	c := &RepetitionTable{counts: make(map[string]int, len(t.counts)), n: t.n}
	for k, v := range t.counts {
		c.counts[k] = v
	}
	return c
}
