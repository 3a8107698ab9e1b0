package engine

import (
	gm "github.com/petthauk/chess-ml/goosemg"
)

// TransTable caches evaluator scores by layout key while one tree is grown.
// The evaluator does not change until the tree is dropped, so entries never
// go stale. Transpositions reached by different move orders share an entry.
type TransTable struct {
	entries map[string]float64
	Probes  int
	Hits    int
}

func newTransTable() *TransTable {
	return &TransTable{entries: make(map[string]float64, 1024)}
}

// probe returns the cached score for key, evaluating b on a miss.
func (tt *TransTable) probe(key string, b *gm.Board, eval Evaluator) float64 {
	tt.Probes++
	if s, ok := tt.entries[key]; ok {
		tt.Hits++
		return s
	}
	s := eval.Evaluate(b)
	tt.entries[key] = s
	return s
}
