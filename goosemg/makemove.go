package goosemg

// MoveState holds what MakeMove overwrote, so UnmakeMove can restore the
// position exactly.
type MoveState struct {
	move          Move
	moved         Piece
	captured      Piece
	capturedOn    Square
	rookFrom      Square // for castling undo
	rookTo        Square // for castling undo
	prevSide      Color
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
}

// Move returns the move this state was recorded for.
func (st MoveState) Move() Move { return st.move }

// Captured returns the captured piece, or NoPiece.
func (st MoveState) Captured() Piece { return st.captured }

// castleMask[sq] holds the rights lost when a piece leaves or lands on sq.
var castleMask [64]CastlingRights

func init() {
	castleMask[E1] = CastlingWhiteK | CastlingWhiteQ
	castleMask[H1] = CastlingWhiteK
	castleMask[A1] = CastlingWhiteQ
	castleMask[E8] = CastlingBlackK | CastlingBlackQ
	castleMask[H8] = CastlingBlackK
	castleMask[A8] = CastlingBlackQ
}

// MakeMove applies m to the board and returns the record needed to undo it.
// The move is trusted: it must come from LegalMoves/PseudoMoves for this
// position. Self-check is not tested here.
func (b *Board) MakeMove(m Move) (st MoveState) {
	from, to := m.From, m.To
	moved := b.pieces[from]
	us := moved.Color()

	st.move = m
	st.moved = moved
	st.captured = b.pieces[to]
	st.capturedOn = to
	st.rookFrom, st.rookTo = NoSquare, NoSquare
	st.prevSide = b.sideToMove
	st.prevCastling = b.castlingRights
	st.prevEnPassant = b.enPassantSquare
	st.prevHalfmove = b.halfmoveClock
	st.prevFullmove = b.fullmoveNumber

	isPawn := moved.Type() == PieceTypePawn

	// En passant: the captured pawn is behind 'to', not on it.
	if isPawn && to == b.enPassantSquare && st.captured == NoPiece && from.File() != to.File() {
		if victim := b.enPassantVictim(to, us); victim != NoSquare {
			st.captured = b.pieces[victim]
			st.capturedOn = victim
			b.pieces[victim] = NoPiece
		}
	}

	// Castling: relocate the rook as well.
	if moved.Type() == PieceTypeKing && abs(to.File()-from.File()) == 2 {
		for _, cs := range castleSpecs[us] {
			if cs.king == from && cs.kingTo == to {
				st.rookFrom, st.rookTo = cs.rook, cs.rookTo
				b.pieces[cs.rookTo] = b.pieces[cs.rook]
				b.pieces[cs.rook] = NoPiece
				break
			}
		}
	}

	// Move the piece (or promote)
	b.pieces[from] = NoPiece
	if m.IsPromotion() {
		b.pieces[to] = PieceFromType(us, m.Promotion)
	} else {
		b.pieces[to] = moved
	}

	b.castlingRights &^= castleMask[from] | castleMask[to]

	b.enPassantSquare = NoSquare
	if isPawn && abs(to.Rank()-from.Rank()) == 2 {
		b.enPassantSquare = NewSquare(from.File(), (from.Rank()+to.Rank())/2)
	}

	if isPawn || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = us.Other()
	return st
}

// UnmakeMove reverts the move recorded in st. States must be undone in
// reverse order of MakeMove.
func (b *Board) UnmakeMove(st MoveState) {
	from, to := st.move.From, st.move.To
	b.pieces[from] = st.moved
	b.pieces[to] = NoPiece
	if st.captured != NoPiece {
		b.pieces[st.capturedOn] = st.captured
	}
	if st.rookFrom != NoSquare {
		b.pieces[st.rookFrom] = b.pieces[st.rookTo]
		b.pieces[st.rookTo] = NoPiece
	}
	b.sideToMove = st.prevSide
	b.castlingRights = st.prevCastling
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
}

// Apply makes m and returns a closure that undoes it.
//
//	undo := b.Apply(m)
//	defer undo()
func (b *Board) Apply(m Move) func() {
	st := b.MakeMove(m)
	return func() { b.UnmakeMove(st) }
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
