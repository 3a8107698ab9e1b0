package engine

import (
	"math"
	"testing"

	gm "github.com/petthauk/chess-ml/goosemg"
)

func TestMinimax_ThreeLevels(t *testing.T) {
	a := node(gm.Black, 0.5, leaf(0.3), leaf(0.9))
	b := node(gm.Black, 0.5, leaf(0.6), leaf(0.7))
	c := node(gm.Black, 0.5, leaf(0.2), leaf(0.8))
	root := node(gm.White, 0.5, a, b, c)

	var visited int
	v, best := alphaBeta(root, math.Inf(-1), math.Inf(1), &visited)
	fv, fbest := FullMinimax(root)
	if v != 0.6 || best != b {
		t.Fatalf("alpha-beta: got %v (%p), want 0.6 (%p)", v, best, b)
	}
	if v != fv || best != fbest {
		t.Fatalf("alpha-beta %v disagrees with full minimax %v", v, fv)
	}
	total, _ := countNodes(root)
	if visited != total-1 {
		t.Fatalf("visited %d nodes, want %d (c's second leaf pruned)", visited, total-1)
	}
}

func TestMinimax_TieGoesToFirstChild(t *testing.T) {
	for _, side := range []gm.Color{gm.White, gm.Black} {
		first, second := leaf(0.5), leaf(0.5)
		root := node(side, 0.5, first, second)
		if _, best := Minimax(root, math.Inf(-1), math.Inf(1)); best != first {
			t.Fatalf("%v to move: tie resolved to a later child", side)
		}
		if _, best := FullMinimax(root); best != first {
			t.Fatalf("%v to move: full minimax tie resolved to a later child", side)
		}
	}
}

func TestMinimax_DecisiveChildEndsScan(t *testing.T) {
	cases := []struct {
		side gm.Color
		win  float64
	}{
		{gm.White, WinScore},
		{gm.Black, LossScore},
	}
	for _, tc := range cases {
		win := leaf(tc.win)
		rest := node(tc.side.Other(), 0.5, leaf(0.4), leaf(0.6))
		root := node(tc.side, 0.5, win, rest)
		var visited int
		v, best := alphaBeta(root, math.Inf(-1), math.Inf(1), &visited)
		if v != tc.win || best != win {
			t.Fatalf("%v: got %v, want %v from the first child", tc.side, v, tc.win)
		}
		if visited != 2 {
			t.Fatalf("%v: visited %d nodes, want 2", tc.side, visited)
		}
	}
}

func TestMinimax_Leaf(t *testing.T) {
	n := leaf(0.42)
	v, best := Minimax(n, math.Inf(-1), math.Inf(1))
	if v != 0.42 || best != nil {
		t.Fatalf("leaf: got %v %v", v, best)
	}
}
