package goosemg

// ============================================================================
// Offset tables
// ============================================================================

// offset is a (file, rank) step on the board.
type offset struct{ df, dr int }

var (
	knightOffsets = [8]offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8]offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	rookDirs      = [4]offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDirs    = [4]offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenDirs     = [8]offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// sliderDirs returns the ray directions of a sliding piece type, or nil.
func sliderDirs(pt PieceType) []offset {
	switch pt {
	case PieceTypeBishop:
		return bishopDirs[:]
	case PieceTypeRook:
		return rookDirs[:]
	case PieceTypeQueen:
		return queenDirs[:]
	}
	return nil
}

// pawnForward returns the rank step of a pawn of the given color.
func pawnForward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// ============================================================================
// Attacks (non-recursive: no check filtering, no castling)
// ============================================================================

// attacksFrom returns the squares the piece on sq attacks. Pawns attack their
// two forward diagonals regardless of occupancy; sliders stop at (and include)
// the first occupied square.
func (b *Board) attacksFrom(sq Square) SquareSet {
	p := b.pieces[sq]
	var set SquareSet
	switch p.Type() {
	case PieceTypeNone:
		return 0
	case PieceTypePawn:
		fwd := pawnForward(p.Color())
		for _, df := range [2]int{-1, 1} {
			if to, ok := sq.Offset(df, fwd); ok {
				set = set.With(to)
			}
		}
	case PieceTypeKnight:
		for _, o := range knightOffsets {
			if to, ok := sq.Offset(o.df, o.dr); ok {
				set = set.With(to)
			}
		}
	case PieceTypeKing:
		for _, o := range kingOffsets {
			if to, ok := sq.Offset(o.df, o.dr); ok {
				set = set.With(to)
			}
		}
	default:
		for _, d := range sliderDirs(p.Type()) {
			for to, ok := sq.Offset(d.df, d.dr); ok; to, ok = to.Offset(d.df, d.dr) {
				set = set.With(to)
				if b.pieces[to] != NoPiece {
					break
				}
			}
		}
	}
	return set
}

// AttackedSquares returns every square attacked by side's pieces.
func (b *Board) AttackedSquares(side Color) SquareSet {
	var set SquareSet
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p != NoPiece && p.Color() == side {
			set |= b.attacksFrom(sq)
		}
	}
	return set
}

// IsSquareAttacked reports whether sq is attacked by any piece of side by.
// It looks outward from sq instead of enumerating every attacker.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns: an attacking pawn sits one rank behind sq from its own point of view.
	pawn := PieceFromType(by, PieceTypePawn)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, -pawnForward(by)); ok && b.pieces[from] == pawn {
			return true
		}
	}
	knight := PieceFromType(by, PieceTypeKnight)
	for _, o := range knightOffsets {
		if from, ok := sq.Offset(o.df, o.dr); ok && b.pieces[from] == knight {
			return true
		}
	}
	king := PieceFromType(by, PieceTypeKing)
	for _, o := range kingOffsets {
		if from, ok := sq.Offset(o.df, o.dr); ok && b.pieces[from] == king {
			return true
		}
	}
	queen := PieceFromType(by, PieceTypeQueen)
	if b.rayHits(sq, rookDirs[:], PieceFromType(by, PieceTypeRook), queen) {
		return true
	}
	return b.rayHits(sq, bishopDirs[:], PieceFromType(by, PieceTypeBishop), queen)
}

// rayHits walks each direction from sq and reports whether the first
// occupied square holds one of the two given pieces.
func (b *Board) rayHits(sq Square, dirs []offset, p1, p2 Piece) bool {
	for _, d := range dirs {
		for to, ok := sq.Offset(d.df, d.dr); ok; to, ok = to.Offset(d.df, d.dr) {
			p := b.pieces[to]
			if p == NoPiece {
				continue
			}
			if p == p1 || p == p2 {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether side's king is attacked. A missing king is not in
// check; callers detect that case through Status.
func (b *Board) InCheck(side Color) bool {
	k := b.KingSquare(side)
	if k == NoSquare {
		return false
	}
	return b.IsSquareAttacked(k, side.Other())
}

// ============================================================================
// Pseudo-legal moves
// ============================================================================

// PseudoMoves returns the moves of the piece on sq allowed by movement rules
// alone, without checking whether they leave the mover's king in check.
// Pawn moves onto the last rank are expanded into one move per promotion type.
// En passant is only generated for the side to move.
func (b *Board) PseudoMoves(sq Square) []Move {
	p := b.pieces[sq]
	if p == NoPiece {
		return nil
	}
	us := p.Color()
	moves := make([]Move, 0, 28)
	switch p.Type() {
	case PieceTypePawn:
		moves = b.pawnMoves(moves, sq, us)
	case PieceTypeKnight:
		moves = b.stepMoves(moves, sq, us, knightOffsets[:])
	case PieceTypeKing:
		moves = b.stepMoves(moves, sq, us, kingOffsets[:])
		moves = b.castlingMoves(moves, sq, us)
	default:
		for _, d := range sliderDirs(p.Type()) {
			for to, ok := sq.Offset(d.df, d.dr); ok; to, ok = to.Offset(d.df, d.dr) {
				target := b.pieces[to]
				if target == NoPiece {
					moves = append(moves, Move{From: sq, To: to})
					continue
				}
				if target.Color() != us {
					moves = append(moves, Move{From: sq, To: to})
				}
				break
			}
		}
	}
	return moves
}

func (b *Board) stepMoves(moves []Move, sq Square, us Color, offs []offset) []Move {
	for _, o := range offs {
		to, ok := sq.Offset(o.df, o.dr)
		if !ok {
			continue
		}
		if t := b.pieces[to]; t == NoPiece || t.Color() != us {
			moves = append(moves, Move{From: sq, To: to})
		}
	}
	return moves
}

func (b *Board) pawnMoves(moves []Move, sq Square, us Color) []Move {
	fwd := pawnForward(us)
	startRank, lastRank := 1, 7
	if us == Black {
		startRank, lastRank = 6, 0
	}
	add := func(to Square) {
		if to.Rank() != lastRank {
			moves = append(moves, Move{From: sq, To: to})
			return
		}
		for _, pt := range PromotionTypes {
			moves = append(moves, Move{From: sq, To: to, Promotion: pt})
		}
	}

	// Pushes
	if one, ok := sq.Offset(0, fwd); ok && b.pieces[one] == NoPiece {
		add(one)
		if sq.Rank() == startRank {
			if two, ok := sq.Offset(0, 2*fwd); ok && b.pieces[two] == NoPiece {
				add(two)
			}
		}
	}

	// Captures, including en passant onto the recorded target
	for _, df := range [2]int{-1, 1} {
		to, ok := sq.Offset(df, fwd)
		if !ok {
			continue
		}
		if t := b.pieces[to]; t != NoPiece {
			if t.Color() != us {
				add(to)
			}
			continue
		}
		if to == b.enPassantSquare && us == b.sideToMove && b.enPassantVictim(to, us) != NoSquare {
			add(to)
		}
	}
	return moves
}

// enPassantVictim returns the square of the pawn captured by an en passant
// capture onto target, or NoSquare when no enemy pawn stands there.
func (b *Board) enPassantVictim(target Square, us Color) Square {
	victim, ok := target.Offset(0, -pawnForward(us))
	if !ok || b.pieces[victim] != PieceFromType(us.Other(), PieceTypePawn) {
		return NoSquare
	}
	return victim
}

// castleSpec describes one castling move.
type castleSpec struct {
	right          CastlingRights
	king, kingTo   Square
	rook, rookTo   Square
	empty, transit []Square
}

var castleSpecs = [2][2]castleSpec{
	White: {
		{CastlingWhiteK, E1, G1, H1, F1, []Square{F1, G1}, []Square{E1, F1, G1}},
		{CastlingWhiteQ, E1, C1, A1, D1, []Square{D1, C1, B1}, []Square{E1, D1, C1}},
	},
	Black: {
		{CastlingBlackK, E8, G8, H8, F8, []Square{F8, G8}, []Square{E8, F8, G8}},
		{CastlingBlackQ, E8, C8, A8, D8, []Square{D8, C8, B8}, []Square{E8, D8, C8}},
	},
}

// castlingMoves appends castling moves for the king on sq. Castling needs
// the right, the king and rook on their home squares, an empty path and no
// attacked square among those the king stands on or crosses.
func (b *Board) castlingMoves(moves []Move, sq Square, us Color) []Move {
	rook := PieceFromType(us, PieceTypeRook)
	for _, cs := range castleSpecs[us] {
		if b.castlingRights&cs.right == 0 || sq != cs.king || b.pieces[cs.rook] != rook {
			continue
		}
		if !b.allEmpty(cs.empty) || b.anyAttacked(cs.transit, us.Other()) {
			continue
		}
		moves = append(moves, Move{From: cs.king, To: cs.kingTo})
	}
	return moves
}

func (b *Board) allEmpty(squares []Square) bool {
	for _, s := range squares {
		if b.pieces[s] != NoPiece {
			return false
		}
	}
	return true
}

func (b *Board) anyAttacked(squares []Square, by Color) bool {
	for _, s := range squares {
		if b.IsSquareAttacked(s, by) {
			return true
		}
	}
	return false
}
