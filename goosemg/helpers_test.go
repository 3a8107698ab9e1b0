package goosemg_test

import (
	"testing"

	gm "github.com/petthauk/chess-ml/goosemg"
)

func mustFEN(t testing.TB, fen string) *gm.Board {
	t.Helper()
	b, err := gm.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func sq(t testing.TB, name string) gm.Square {
	t.Helper()
	s, err := gm.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return s
}

func mv(t testing.TB, s string) gm.Move {
	t.Helper()
	m, err := gm.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

func moveStrings(moves []gm.Move) map[string]bool {
	out := make(map[string]bool, len(moves))
	for _, m := range moves {
		out[m.String()] = true
	}
	return out
}

// emptyBoard returns a board with no pieces.
func emptyBoard(t *testing.T) *gm.Board {
	t.Helper()
	return mustFEN(t, "8/8/8/8/8/8/8/8 w - - 0 1")
}
