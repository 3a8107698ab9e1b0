package goosemg

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// PromotionTypes lists the piece types a pawn may promote to, in generation order.
var PromotionTypes = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return NoPiece
	}
	if color == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Board is an 8x8 mailbox position: piece placement plus side to move,
// castling rights, en passant target and the two move clocks.
//
// A Board is mutated in place by MakeMove and restored by UnmakeMove.
// Copying the struct value (see Clone) yields an independent position.
type Board struct {
	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant)
	pieces [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int

	// FEN text details kept so ToFEN reproduces what ParseFEN read:
	// the castling letters in their original order and how many trailing
	// clock fields the input left out.
	castlingOrder string
	omitClocks    int
}

// NewEmptyBoard returns a board with no pieces, White to move and no rights.
func NewEmptyBoard() *Board {
	return &Board{enPassantSquare: NoSquare, fullmoveNumber: 1}
}

// Clone returns an independent copy of the position.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// SetPiece places p on sq, replacing whatever was there. Passing NoPiece clears the square.
func (b *Board) SetPiece(sq Square, p Piece) { b.pieces[int(sq)] = p }

// ClearSquare empties sq.
func (b *Board) ClearSquare(sq Square) { b.pieces[int(sq)] = NoPiece }

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the current full move number (starts at 1, incremented after Black moves).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// EnPassantSquare returns the en passant target square, or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// SideToMove returns the side whose turn it is.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove sets the side to move and clears the en passant target,
// which is only meaningful for the side that was due to move.
func (b *Board) SetSideToMove(c Color) {
	if b.sideToMove != c {
		b.enPassantSquare = NoSquare
	}
	b.sideToMove = c
}

// CastlingRights returns the current castling rights.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// SetCastlingRights replaces the castling rights.
func (b *Board) SetCastlingRights(cr CastlingRights) { b.castlingRights = cr }

// KingSquare returns the square of side's king, or NoSquare when it is missing.
func (b *Board) KingSquare(side Color) Square {
	king := PieceFromType(side, PieceTypeKing)
	for sq := Square(0); sq < 64; sq++ {
		if b.pieces[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// countPieces returns the number of pieces of side, and how many of them are not kings.
func (b *Board) countPieces(side Color) (total, nonKing int) {
	for _, p := range b.pieces {
		if p == NoPiece || p.Color() != side {
			continue
		}
		total++
		if p.Type() != PieceTypeKing {
			nonKing++
		}
	}
	return total, nonKing
}

// Validate performs basic consistency checks: at most one king per side,
// no pawns on the first or last rank and a plausible en passant square.
func (b *Board) Validate() bool {
	var kings [2]int
	for sq, p := range b.pieces {
		if p == NoPiece {
			continue
		}
		if p.Type() > PieceTypeKing || p&^(8|7) != 0 {
			return false
		}
		if p.Type() == PieceTypeKing {
			kings[p.Color()]++
		}
		if p.Type() == PieceTypePawn {
			r := Square(sq).Rank()
			if r == 0 || r == 7 {
				return false
			}
		}
	}
	if kings[White] > 1 || kings[Black] > 1 {
		return false
	}
	if ep := b.enPassantSquare; ep != NoSquare {
		if b.sideToMove == White && ep.Rank() != 5 {
			return false
		}
		if b.sideToMove == Black && ep.Rank() != 2 {
			return false
		}
	}
	return true
}
