package engine

import (
	"math"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// Minimax scores the tree under n with alpha-beta pruning and returns the
// value of n together with the child that attains it (nil at a leaf).
// White maximizes, Black minimizes. Among equal values the earliest child
// wins. A child worth WinScore (or LossScore for Black) ends the scan.
func Minimax(n *SearchNode, alpha, beta float64) (float64, *SearchNode) {
	var visited int
	return alphaBeta(n, alpha, beta, &visited)
}

func alphaBeta(n *SearchNode, alpha, beta float64, visited *int) (float64, *SearchNode) {
	*visited++
	if len(n.Children) == 0 {
		return n.Score, nil
	}
	var best *SearchNode
	if n.SideToMove() == gm.White {
		value := math.Inf(-1)
		for _, c := range n.Children {
			v, _ := alphaBeta(c, alpha, beta, visited)
			if v > value {
				value, best = v, c
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta || value >= WinScore {
				break
			}
		}
		return value, best
	}
	value := math.Inf(1)
	for _, c := range n.Children {
		v, _ := alphaBeta(c, alpha, beta, visited)
		if v < value {
			value, best = v, c
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta || value <= LossScore {
			break
		}
	}
	return value, best
}

// FullMinimax scores the tree under n without pruning. It is the reference
// Minimax must agree with.
func FullMinimax(n *SearchNode) (float64, *SearchNode) {
	if len(n.Children) == 0 {
		return n.Score, nil
	}
	var best *SearchNode
	maximize := n.SideToMove() == gm.White
	value := math.Inf(1)
	if maximize {
		value = math.Inf(-1)
	}
	for _, c := range n.Children {
		v, _ := FullMinimax(c)
		if (maximize && v > value) || (!maximize && v < value) {
			value, best = v, c
		}
	}
	return value, best
}
