package engine

import (
	"testing"

	gm "github.com/petthauk/chess-ml/goosemg"
)

func mustGame(t testing.TB, fen string, moves ...string) *gm.Game {
	t.Helper()
	g, err := gm.NewGame(fen)
	if err != nil {
		t.Fatalf("NewGame(%q): %v", fen, err)
	}
	for _, s := range moves {
		if err := g.PlayString(s); err != nil {
			t.Fatalf("play %s: %v", s, err)
		}
	}
	return g
}

// node builds a hand-made tree node; side is the side to move at the node.
func node(side gm.Color, score float64, children ...*SearchNode) *SearchNode {
	b := gm.NewEmptyBoard()
	b.SetSideToMove(side)
	n := &SearchNode{Board: b, Score: score, Children: children}
	for _, c := range children {
		c.Parent = n
	}
	return n
}

func leaf(score float64) *SearchNode { return node(gm.White, score) }

// sideEval scores every position by its side to move only.
type sideEval struct{ white, black float64 }

func (e sideEval) Evaluate(b *gm.Board) float64 {
	if b.SideToMove() == gm.White {
		return e.white
	}
	return e.black
}

// recordingLearner is a sideEval that remembers the targets it was taught.
type recordingLearner struct {
	sideEval
	targets []float64
}

func (l *recordingLearner) Learn(b *gm.Board, target float64) (float64, error) {
	l.targets = append(l.targets, target)
	return l.Evaluate(b), nil
}
