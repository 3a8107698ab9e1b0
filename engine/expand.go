package engine

import (
	"sort"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// tree holds the state of one decision's expansion phase.
type tree struct {
	root   *SearchNode
	eval   Evaluator
	states *stateStack
	tt     *TransTable
	open   frontier
	nodes  int
	seq    int
}

func newTree(b *gm.Board, eval Evaluator, reps *gm.RepetitionTable) *tree {
	t := &tree{eval: eval, states: newStateStack(reps), tt: newTransTable()}
	root := &SearchNode{Board: b, Move: gm.NoMove, key: b.LayoutKey()}
	root.Outcome = b.Status(reps)
	if root.Outcome.Over() {
		root.Score = terminalScore(root.Outcome.Result)
	} else {
		root.Score = t.tt.probe(root.key, b, eval)
	}
	t.root = root
	t.nodes = 1
	t.open.push(root)
	return t
}

// expandUntil pops frontier nodes and expands them until stop reports true
// or nothing is left. The root is always expanded, whatever stop says.
func (t *tree) expandUntil(stop func() bool) {
	for t.open.Len() > 0 {
		if t.root.expanded && stop() {
			return
		}
		n := t.open.pop()
		if n.Terminal() || n.expanded {
			continue
		}
		t.expand(n)
	}
}

// expand attaches one child per legal move of n, including every promotion
// choice, scores the children and queues them.
func (t *tree) expand(n *SearchNode) {
	n.expanded = true
	moves := n.Board.LegalMoves()
	n.Children = make([]*SearchNode, 0, len(moves))
	// Scores are seen by the side choosing among n's children, so each
	// side's best replies come out of the frontier first.
	mover := n.SideToMove()
	parentScaled := perspective(n.Score, mover)
	for _, m := range moves {
		b := n.Board.Clone()
		b.MakeMove(m)
		t.seq++
		c := &SearchNode{
			Board:  b,
			Move:   m,
			Parent: n,
			Depth:  n.Depth + 1,
			key:    b.LayoutKey(),
			seq:    t.seq,
		}
		c.Outcome = t.states.status(c)
		if c.Outcome.Over() {
			c.Score = terminalScore(c.Outcome.Result)
		} else {
			c.Score = t.tt.probe(c.key, b, t.eval)
		}
		c.sortKey = priority(parentScaled, perspective(c.Score, mover))
		n.Children = append(n.Children, c)
		if !c.Terminal() {
			t.open.push(c)
		}
	}
	t.nodes += len(n.Children)
	sortChildren(n)
}

// sortChildren orders children best-first for the side to move at n,
// keeping generation order among equal scores.
func sortChildren(n *SearchNode) {
	if n.SideToMove() == gm.White {
		sort.SliceStable(n.Children, func(i, j int) bool { return n.Children[i].Score > n.Children[j].Score })
	} else {
		sort.SliceStable(n.Children, func(i, j int) bool { return n.Children[i].Score < n.Children[j].Score })
	}
}
