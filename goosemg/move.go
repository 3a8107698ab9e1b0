package goosemg

import (
	"fmt"
	"strings"
)

// Move is a from/to pair with an optional promotion piece type. Every pawn
// move onto the last rank carries a promotion; the generator emits one Move
// per promotion type.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NoMove is the zero-value sentinel returned when no move is available.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove constructs a non-promoting move.
func NewMove(from, to Square) Move { return Move{From: from, To: to} }

// IsPromotion reports whether the move carries a promotion choice.
func (m Move) IsPromotion() bool { return m.Promotion != PieceTypeNone }

var promoChars = [...]byte{PieceTypeKnight: 'n', PieceTypeBishop: 'b', PieceTypeRook: 'r', PieceTypeQueen: 'q'}

// String returns the move in long algebraic (UCI) form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.From == NoSquare {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() && int(m.Promotion) < len(promoChars) {
		sb.WriteByte(promoChars[m.Promotion])
	}
	return sb.String()
}

// ParseMove parses a long algebraic move string ("e2e4", "a7a8n").
// It does not check legality.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move %q: wrong length", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q: %w", s, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.Promotion = PieceTypeQueen
		case 'r':
			m.Promotion = PieceTypeRook
		case 'b':
			m.Promotion = PieceTypeBishop
		case 'n':
			m.Promotion = PieceTypeKnight
		default:
			return NoMove, fmt.Errorf("invalid move %q: bad promotion piece", s)
		}
	}
	return m, nil
}
