package engine

import (
	"math"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// Piece base values in centipawns.
var pieceValue = [7]int{
	gm.PieceTypeKing: 0, gm.PieceTypePawn: 100, gm.PieceTypeKnight: 316, gm.PieceTypeBishop: 331, gm.PieceTypeRook: 494, gm.PieceTypeQueen: 993,
}

// materialScale is the centipawn difference that maps to a logit of 1.
const materialScale = 400.0

// MaterialEvaluator scores positions by material balance squashed into a
// white-win probability. It does not learn; it is a baseline opponent and a
// deterministic stand-in for a network in tests.
type MaterialEvaluator struct{}

// Evaluate implements Evaluator.
func (MaterialEvaluator) Evaluate(b *gm.Board) float64 {
	return 1 / (1 + math.Exp(-float64(Material(b))/materialScale))
}

// Material returns White's material minus Black's, in centipawns.
func Material(b *gm.Board) int {
	score := 0
	for sq := gm.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == gm.NoPiece {
			continue
		}
		v := pieceValue[p.Type()]
		if p.Color() == gm.Black {
			v = -v
		}
		score += v
	}
	return score
}
