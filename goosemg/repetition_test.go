package goosemg_test

import (
	"errors"
	"testing"

	gm "github.com/petthauk/chess-ml/goosemg"
)

var knightShuffle = []string{"g1f3", "g8f6", "f3g1", "f6g8"}

func TestThreefoldRepetition_KnightShuffle(t *testing.T) {
	g, err := gm.NewGame(gm.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	play := func(moves ...string) {
		t.Helper()
		for _, m := range moves {
			if err := g.PlayString(m); err != nil {
				t.Fatalf("play %s: %v", m, err)
			}
		}
	}

	play(knightShuffle...)
	if got := g.Repetitions().Count(g.Board().LayoutKey()); got != 2 {
		t.Fatalf("after one cycle: count %d want 2", got)
	}
	if g.Status().Over() {
		t.Fatalf("should not be threefold yet after one cycle")
	}

	play(knightShuffle...)
	want := gm.Outcome{Result: gm.Draw, Reason: gm.ReasonRepetition}
	if got := g.Status(); got != want {
		t.Fatalf("after two cycles: got %v want %v", got, want)
	}

	// Taking the last move back un-counts the position.
	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.Status().Over() {
		t.Fatalf("undo should reopen the game")
	}
	if got := g.Repetitions().Count(gm.FENStartPos[:len(gm.FENStartPos)-4]); got != 2 {
		t.Fatalf("start position count after undo: got %d want 2", got)
	}
}

func TestRepetitionTablePushPop(t *testing.T) {
	rt := gm.NewRepetitionTable()
	if n := rt.Push("a"); n != 1 {
		t.Fatalf("first push: %d", n)
	}
	rt.Push("a")
	rt.Push("b")
	c := rt.Clone()
	rt.Pop("a")
	rt.Pop("a")
	rt.Pop("missing")
	if rt.Count("a") != 0 || rt.Count("b") != 1 || rt.Len() != 1 {
		t.Fatalf("after pops: a=%d b=%d len=%d", rt.Count("a"), rt.Count("b"), rt.Len())
	}
	if c.Count("a") != 2 || c.Len() != 3 {
		t.Fatalf("clone changed: a=%d len=%d", c.Count("a"), c.Len())
	}
	var nilTable *gm.RepetitionTable
	if nilTable.Count("a") != 0 {
		t.Fatalf("nil table must count zero")
	}
}

func TestGameRejectsIllegalMoves(t *testing.T) {
	g, err := gm.NewGame(gm.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"e2e5", "e7e5", "e1e2", "a1a3"} {
		if err := g.PlayString(s); !errors.Is(err, gm.ErrIllegalMove) {
			t.Fatalf("%s: expected ErrIllegalMove, got %v", s, err)
		}
	}
	if err := g.Play(gm.NoMove); !errors.Is(err, gm.ErrIllegalMove) {
		t.Fatalf("NoMove: expected ErrIllegalMove, got %v", err)
	}
	if g.Ply() != 0 || g.Board().ToFEN() != gm.FENStartPos {
		t.Fatalf("rejected moves changed the game")
	}
	if err := g.Undo(); !errors.Is(err, gm.ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestGameHistory(t *testing.T) {
	g, err := gm.NewGame(gm.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"e2e4", "e7e5", "g1f3"} {
		if err := g.PlayString(s); err != nil {
			t.Fatal(err)
		}
	}
	moves := g.Moves()
	if len(moves) != 3 || moves[2].String() != "g1f3" {
		t.Fatalf("history: %v", moves)
	}
	if g.StartFEN() != gm.FENStartPos || g.SideToMove() != gm.Black {
		t.Fatalf("unexpected session state")
	}
}
