package goosemg_test

import (
	"testing"

	gm "github.com/petthauk/chess-ml/goosemg"
)

func TestCheckmate_FoolsMate(t *testing.T) {
	// Fool's mate: Black just played Qh4#, White to move and is checkmated
	b := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !b.InCheck(gm.White) {
		t.Fatalf("expected White to be in check")
	}
	if len(b.LegalMoves()) != 0 || b.HasLegalMoves() {
		t.Fatalf("expected no legal moves for White in mate")
	}
	if !b.InCheckmate() || b.InStalemate() {
		t.Fatalf("expected checkmate, not stalemate")
	}
	want := gm.Outcome{Result: gm.BlackWins, Reason: gm.ReasonCheckmate}
	if got := b.Status(nil); got != want {
		t.Fatalf("Status: got %v want %v", got, want)
	}
}

func TestStalemate_Basic(t *testing.T) {
	b := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if b.InCheck(gm.Black) {
		t.Fatalf("expected Black not in check")
	}
	if b.HasLegalMoves() {
		t.Fatalf("expected no legal moves for Black in stalemate")
	}
	want := gm.Outcome{Result: gm.Draw, Reason: gm.ReasonStalemate}
	if got := b.Status(nil); got != want {
		t.Fatalf("Status: got %v want %v", got, want)
	}
}

func TestMatingMovesDetected(t *testing.T) {
	cases := []struct {
		name, fen, move string
	}{
		{"queen supported by bishop", "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1", "g6g7"},
		{"back rank", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gm.NewGame(tc.fen)
			if err != nil {
				t.Fatal(err)
			}
			if err := g.PlayString(tc.move); err != nil {
				t.Fatalf("play %s: %v", tc.move, err)
			}
			want := gm.Outcome{Result: gm.WhiteWins, Reason: gm.ReasonCheckmate}
			if got := g.Status(); got != want {
				t.Fatalf("Status: got %v want %v", got, want)
			}
			if err := g.PlayString("h8g8"); err != gm.ErrGameOver {
				t.Fatalf("expected ErrGameOver, got %v", err)
			}
		})
	}
}

func TestStatusDraws(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want gm.Outcome
	}{
		{"bare kings", "8/8/8/4k3/8/8/8/4K3 w - - 0 1", gm.Outcome{Result: gm.Draw, Reason: gm.ReasonInsufficientMaterial}},
		{"fifty moves", "8/8/8/4k3/8/8/8/R3K3 w - - 100 80", gm.Outcome{Result: gm.Draw, Reason: gm.ReasonFiftyMove}},
		{"ninety-nine plies", "8/8/8/4k3/8/8/8/R3K3 w - - 99 80", gm.Outcome{}},
		{"lone rook is enough", "8/8/8/4k3/8/8/8/R3K3 w - - 0 1", gm.Outcome{}},
		{"missing black king", "8/8/8/8/8/8/8/4K3 b - - 0 1", gm.Outcome{Result: gm.WhiteWins, Reason: gm.ReasonMissingKing}},
		{"missing white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", gm.Outcome{Result: gm.BlackWins, Reason: gm.ReasonMissingKing}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustFEN(t, tc.fen).Status(nil); got != tc.want {
				t.Fatalf("Status: got %v want %v", got, tc.want)
			}
		})
	}
}

// Checkmate outranks the fifty-move rule when both apply on the same ply.
func TestStatusPriority(t *testing.T) {
	g, err := gm.NewGame("6k1/5ppp/8/8/8/8/8/R5K1 w - - 99 60")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.PlayString("a1a8"); err != nil {
		t.Fatal(err)
	}
	if g.Board().HalfmoveClock() != 100 {
		t.Fatalf("halfmove clock: got %d", g.Board().HalfmoveClock())
	}
	if got := g.Status(); got.Reason != gm.ReasonCheckmate || got.Result != gm.WhiteWins {
		t.Fatalf("Status: got %v want checkmate", got)
	}
}

func TestResultStrings(t *testing.T) {
	if gm.WhiteWins.String() != "1-0" || gm.BlackWins.String() != "0-1" || gm.Draw.String() != "1/2-1/2" || gm.Ongoing.String() != "*" {
		t.Fatalf("unexpected PGN result tokens")
	}
	if c, ok := gm.BlackWins.Winner(); !ok || c != gm.Black {
		t.Fatalf("BlackWins.Winner: got %v %v", c, ok)
	}
	if _, ok := gm.Draw.Winner(); ok {
		t.Fatalf("draw has no winner")
	}
}
