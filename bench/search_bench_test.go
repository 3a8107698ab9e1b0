package bench

import (
	"math/rand"
	"testing"
	"time"

	"github.com/petthauk/chess-ml/engine"
	gm "github.com/petthauk/chess-ml/goosemg"
	"github.com/petthauk/chess-ml/tuner"
)

func newEvaluator(b *testing.B) *tuner.Evaluator {
	enc := tuner.PlaneEncoder{}
	net, err := tuner.NewNetwork([]int{tuner.InputWidth(enc), 30, 1}, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatalf("NewNetwork: %v", err)
	}
	ev, err := tuner.NewEvaluator(net, enc, 0.1)
	if err != nil {
		b.Fatalf("NewEvaluator: %v", err)
	}
	return ev
}

func BenchmarkPredict_Initial(b *testing.B) {
	ev := newEvaluator(b)
	board, _ := gm.ParseFEN(gm.FENStartPos)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ev.Evaluate(board)
	}
}

func BenchmarkLearn_Initial(b *testing.B) {
	ev := newEvaluator(b)
	board, _ := gm.ParseFEN(gm.FENStartPos)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ev.Learn(board, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}

func benchChooseMove(b *testing.B, eval engine.Evaluator, nodes int) {
	game, err := gm.NewGame(gm.FENStartPos)
	if err != nil {
		b.Fatalf("NewGame: %v", err)
	}
	s := engine.NewSearcher(eval)
	s.Budget = time.Hour
	s.MaxNodes = nodes
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.ChooseMove(game); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChooseMove_Material_1k(b *testing.B) {
	benchChooseMove(b, engine.MaterialEvaluator{}, 1000)
}

func BenchmarkChooseMove_Network_1k(b *testing.B) {
	benchChooseMove(b, newEvaluator(b), 1000)
}
