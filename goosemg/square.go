package goosemg

import (
	"errors"
	"math/bits"
)

// Square represents a board position (0-63), a1 = 0, h1 = 7, a8 = 56.
type Square int

const NoSquare Square = -1

// Named squares used by castling.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the zero-based file (a = 0).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the zero-based rank (rank 1 = 0).
func (s Square) Rank() int { return int(s) / 8 }

// Offset returns the square reached by moving df files and dr ranks, and
// whether it is still on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, r := s.File()+df, s.Rank()+dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// String returns algebraic notation such as "e4", or "-" for NoSquare.
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

var errBadSquare = errors.New("invalid square")

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, errBadSquare
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// SquareSet is a set of squares stored as a 64-bit mask.
type SquareSet uint64

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool { return s&(1<<uint(sq)) != 0 }

// With returns the set with sq added.
func (s SquareSet) With(sq Square) SquareSet { return s | 1<<uint(sq) }

// Len returns the number of squares in the set.
func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Squares lists the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, Square(bits.TrailingZeros64(m)))
	}
	return out
}
