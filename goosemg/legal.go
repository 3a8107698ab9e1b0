package goosemg

// LegalMovesFrom returns the legal moves of the piece on sq. An empty square
// or a piece of the side not to move yields no moves.
func (b *Board) LegalMovesFrom(sq Square) []Move {
	p := b.pieces[sq]
	if p == NoPiece || p.Color() != b.sideToMove {
		return nil
	}
	return b.filterLegal(b.PseudoMoves(sq), nil)
}

// LegalMoves returns every legal move for the side to move, scanning squares
// from a1 to h8.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, 64)
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece || p.Color() != b.sideToMove {
			continue
		}
		moves = b.filterLegal(b.PseudoMoves(sq), moves)
	}
	return moves
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece || p.Color() != b.sideToMove {
			continue
		}
		for _, m := range b.PseudoMoves(sq) {
			if b.isLegal(m) {
				return true
			}
		}
	}
	return false
}

// filterLegal appends to dst every candidate that does not leave the mover in check.
func (b *Board) filterLegal(candidates []Move, dst []Move) []Move {
	for _, m := range candidates {
		if b.isLegal(m) {
			dst = append(dst, m)
		}
	}
	return dst
}

// isLegal makes m, tests the mover's king and restores the board.
func (b *Board) isLegal(m Move) bool {
	us := b.sideToMove
	st := b.MakeMove(m)
	ok := !b.InCheck(us)
	b.UnmakeMove(st)
	return ok
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}
