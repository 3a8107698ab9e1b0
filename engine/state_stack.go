package engine

import (
	gm "github.com/petthauk/chess-ml/goosemg"
)

// stateStack lets the search look at repetitions along a speculative line
// without leaving traces in the live game's repetition table: the keys of
// the line are pushed, the position is judged, and every key is popped again.
type stateStack struct {
	reps *gm.RepetitionTable
	keys []string
}

func newStateStack(reps *gm.RepetitionTable) *stateStack {
	if reps == nil {
		reps = gm.NewRepetitionTable()
	}
	return &stateStack{reps: reps}
}

// pushLine records the positions from the root's child down to n. The root
// itself is already counted by the game.
func (s *stateStack) pushLine(n *SearchNode) {
	start := len(s.keys)
	for p := n; p != nil && p.Parent != nil; p = p.Parent {
		s.keys = append(s.keys, p.key)
	}
	for _, k := range s.keys[start:] {
		s.reps.Push(k)
	}
}

func (s *stateStack) popAll() {
	for i := len(s.keys) - 1; i >= 0; i-- {
		s.reps.Pop(s.keys[i])
	}
	s.keys = s.keys[:0]
}

// status judges n's position as if the line leading to it had been played.
func (s *stateStack) status(n *SearchNode) gm.Outcome {
	s.pushLine(n)
	defer s.popAll()
	return n.Board.Status(s.reps)
}
