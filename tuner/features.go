package tuner

import (
	gm "github.com/petthauk/chess-ml/goosemg"
)

// Encoder turns a position into the fixed-length input vector of a Network.
type Encoder interface {
	Encode(b *gm.Board) []float64
}

// planesPerSquare is the number of one-hot inputs per board square.
const planesPerSquare = 12

// PlaneEncoder one-hot encodes every square in FEN order (a8..h8, a7..h1)
// as 12 inputs: black pawn, white pawn, black knight, white knight, ...,
// black king, white king. With SideToMove set, one extra input is 1 when
// White is to move and 0 otherwise.
type PlaneEncoder struct {
	SideToMove bool
}

// Encode implements Encoder.
func (e PlaneEncoder) Encode(b *gm.Board) []float64 {
	n := 64 * planesPerSquare
	if e.SideToMove {
		n++
	}
	out := make([]float64, n)
	i := 0
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if p := b.PieceAt(gm.NewSquare(file, rank)); p != gm.NoPiece {
				idx := (int(p.Type()) - 1) * 2
				if p.Color() == gm.White {
					idx++
				}
				out[i*planesPerSquare+idx] = 1
			}
			i++
		}
	}
	if e.SideToMove && b.SideToMove() == gm.White {
		out[n-1] = 1
	}
	return out
}

// InputWidth measures enc's output length on the standard start position.
func InputWidth(enc Encoder) int {
	b, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		panic(err)
	}
	return len(enc.Encode(b))
}
