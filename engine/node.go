package engine

import (
	gm "github.com/petthauk/chess-ml/goosemg"
)

// SearchNode is one position in the search tree. Nodes belong to a single
// decision and are discarded once a move has been chosen.
type SearchNode struct {
	Board   *gm.Board  // position after Move
	Move    gm.Move    // edge from Parent; NoMove at the root
	Score   float64    // evaluator score, or the exact result of a finished game
	Outcome gm.Outcome // termination status of Board
	Parent  *SearchNode
	// Children are ordered best-first for the side to move at this node.
	Children []*SearchNode
	Depth    int

	key      string  // layout key, for repetition tracking
	sortKey  float64 // frontier priority
	seq      int     // creation order, breaks priority ties
	expanded bool
}

// SideToMove is the side to move in this node's position.
func (n *SearchNode) SideToMove() gm.Color { return n.Board.SideToMove() }

// Terminal reports whether the game is over in this node's position.
func (n *SearchNode) Terminal() bool { return n.Outcome.Over() }

// Promotion returns the promotion piece type on the edge into this node.
func (n *SearchNode) Promotion() gm.PieceType { return n.Move.Promotion }

// terminalScore maps a finished game onto the evaluator's scale.
func terminalScore(r gm.Result) float64 {
	switch r {
	case gm.WhiteWins:
		return WinScore
	case gm.BlackWins:
		return LossScore
	}
	return DrawScore
}

// perspective converts a white-win probability to side's point of view.
func perspective(score float64, side gm.Color) float64 {
	if side == gm.White {
		return score
	}
	return 1 - score
}

// countNodes returns the size of the subtree rooted at n and its deepest ply.
func countNodes(n *SearchNode) (nodes, depth int) {
	nodes, depth = 1, n.Depth
	for _, c := range n.Children {
		cn, cd := countNodes(c)
		nodes += cn
		if cd > depth {
			depth = cd
		}
	}
	return nodes, depth
}
