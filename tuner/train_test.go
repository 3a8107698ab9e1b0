package tuner

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	gm "github.com/petthauk/chess-ml/goosemg"
)

func gameSamples(t *testing.T, enc Encoder, fens ...string) []Sample {
	t.Helper()
	var out []Sample
	for _, f := range fens {
		b, err := gm.ParseFEN(f)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, Sample{Input: enc.Encode(b)})
	}
	return out
}

func TestTrainGameReducesLoss(t *testing.T) {
	enc := PlaneEncoder{}
	samples := gameSamples(t, enc,
		gm.FENStartPos,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
	)
	for _, opt := range []string{"sgd", "adam"} {
		t.Run(opt, func(t *testing.T) {
			net := newTestNet(t, InputWidth(enc), 8, 1)
			tr, err := NewTrainer(net, TrainConfig{LR: 0.02, Optimizer: opt, Epochs: 1}, zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			prev := -1.0
			for i := 0; i < 5; i++ {
				loss, err := tr.TrainGame(context.Background(), samples, TargetWhiteWin)
				if err != nil {
					t.Fatal(err)
				}
				if prev >= 0 && loss >= prev {
					t.Fatalf("round %d: loss %v did not drop below %v", i, loss, prev)
				}
				prev = loss
			}
		})
	}
}

func TestTrainGameHonoursContext(t *testing.T) {
	enc := PlaneEncoder{}
	net := newTestNet(t, InputWidth(enc), 4, 1)
	tr, err := NewTrainer(net, DefaultTrainConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := tr.TrainGame(ctx, gameSamples(t, enc, gm.FENStartPos), TargetDraw); err == nil {
		t.Fatalf("expected context error")
	}
	if _, err := NewTrainer(net, TrainConfig{Optimizer: "rmsprop"}, zerolog.Nop()); err == nil {
		t.Fatalf("expected unknown optimizer error")
	}
}

func TestEvaluatorLearnPersists(t *testing.T) {
	enc := PlaneEncoder{}
	net := newTestNet(t, InputWidth(enc), 6, 1)
	ev, err := NewEvaluator(net, enc, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	ev.Path = t.TempDir() + "/weights.json"
	b, _ := gm.ParseFEN(gm.FENStartPos)

	before := ev.Evaluate(b)
	got, err := ev.Learn(b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != before {
		t.Fatalf("Learn returned %v, Evaluate said %v", got, before)
	}
	after := ev.Evaluate(b)
	if !(after < before) {
		t.Fatalf("prediction did not move toward 0: %v -> %v", before, after)
	}
	loaded, err := LoadJSON(ev.Path)
	if err != nil {
		t.Fatalf("weights not persisted: %v", err)
	}
	if p, _ := loaded.Predict(enc.Encode(b)); p != after {
		t.Fatalf("persisted network predicts %v, live %v", p, after)
	}

	if _, err := NewEvaluator(newTestNet(t, 10, 1), enc, 0.1); err == nil {
		t.Fatalf("expected width mismatch error")
	}
}
