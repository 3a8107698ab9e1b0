package goosemg_test

import (
	"testing"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// Every legal move, made and unmade, must leave the position untouched.
func TestMakeUnmakeRestoresEveryMove(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		b := mustFEN(t, fen)
		for _, m := range b.LegalMoves() {
			st := b.MakeMove(m)
			if !b.Validate() {
				t.Fatalf("%s: board invalid after %s: %s", fen, m, b.ToFEN())
			}
			b.UnmakeMove(st)
			if got := b.ToFEN(); got != fen {
				t.Fatalf("%s: unmake %s gave %s", fen, m, got)
			}
		}
	}
}

func TestApplyUndoClosure(t *testing.T) {
	b := mustFEN(t, gm.FENStartPos)
	undo := b.Apply(mv(t, "e2e4"))
	if b.PieceAt(sq(t, "e4")) != gm.WhitePawn || b.SideToMove() != gm.Black {
		t.Fatalf("e2e4 not applied: %s", b.ToFEN())
	}
	undo()
	if b.ToFEN() != gm.FENStartPos {
		t.Fatalf("undo did not restore: %s", b.ToFEN())
	}
}

func TestMakeMoveBookkeeping(t *testing.T) {
	cases := []struct {
		name, fen, move, want string
	}{
		{"double push sets ep", gm.FENStartPos, "e2e4",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"black move bumps fullmove", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "g8f6",
			"rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2"},
		{"white castles short", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 5 10", "e1g1",
			"r3k2r/8/8/8/8/8/8/R4RK1 b kq - 6 10"},
		{"black castles long", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 5 10", "e8c8",
			"2kr3r/8/8/8/8/8/8/R3K2R w KQ - 6 11"},
		{"rook move drops one right", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1b1",
			"r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1"},
		{"capture on rook square drops right", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 1", "a1a8",
			"R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1"},
		{"promotion resets clock", "4k3/1P6/8/8/8/8/8/4K3 w - - 9 30", "b7b8q",
			"1Q2k3/8/8/8/8/8/8/4K3 b - - 0 30"},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", "e5d6",
			"k7/8/3P4/8/8/8/8/7K b - - 0 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			st := b.MakeMove(mv(t, tc.move))
			if got := b.ToFEN(); got != tc.want {
				t.Fatalf("after %s:\n got %s\nwant %s", tc.move, got, tc.want)
			}
			b.UnmakeMove(st)
			if got := b.ToFEN(); got != tc.fen {
				t.Fatalf("unmake %s:\n got %s\nwant %s", tc.move, got, tc.fen)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustFEN(t, gm.FENStartPos)
	c := b.Clone()
	c.MakeMove(mv(t, "d2d4"))
	if b.ToFEN() != gm.FENStartPos {
		t.Fatalf("clone shares state with original")
	}
}
