package tuner

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Trainer applies end-of-game batch updates to a network.
type Trainer struct {
	Net    *Network
	Opt    Optimizer
	Cfg    TrainConfig
	Logger zerolog.Logger
}

// NewTrainer builds a trainer with the optimizer named in cfg.
func NewTrainer(net *Network, cfg TrainConfig, logger zerolog.Logger) (*Trainer, error) {
	if cfg.Epochs <= 0 {
		cfg.Epochs = 1
	}
	var opt Optimizer
	switch cfg.Optimizer {
	case "", "sgd":
		opt = &SGD{LR: cfg.LR}
	case "adam":
		opt = NewAdam(cfg.LR)
	default:
		return nil, fmt.Errorf("tuner: unknown optimizer %q", cfg.Optimizer)
	}
	return &Trainer{Net: net, Opt: opt, Cfg: cfg, Logger: logger}, nil
}

// TrainGame trains every sample toward the same target (the game outcome).
// Each epoch averages the per-sample gradients and takes one optimizer step.
// It returns the mean squared error measured before the first step.
func (tr *Trainer) TrainGame(ctx context.Context, samples []Sample, target float64) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	t0 := time.Now()
	var firstLoss float64
	for ep := 1; ep <= tr.Cfg.Epochs; ep++ {
		grads := zerosLike(tr.Net.layers)
		totalLoss := 0.0
		for i := range samples {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			p, acts := tr.Net.Predict(samples[i].Input)
			totalLoss += mse(p, target)
			g := tr.Net.Gradients(acts, p, target)
			for l := range grads {
				for k, v := range g[l].Data {
					grads[l].Data[k] += v
				}
			}
		}
		inv := 1.0 / float64(len(samples))
		for l := range grads {
			for k := range grads[l].Data {
				grads[l].Data[k] *= inv
			}
		}
		tr.Opt.Step(tr.Net.layers, grads)

		loss := totalLoss * inv
		if ep == 1 {
			firstLoss = loss
		}
		tr.Logger.Debug().
			Int("epoch", ep).
			Float64("loss", loss).
			Float64("target", target).
			Int("n", len(samples)).
			Msg("train epoch")
	}
	tr.Logger.Info().
		Float64("loss", firstLoss).
		Float64("target", target).
		Int("samples", len(samples)).
		Dur("took", time.Since(t0)).
		Msg("trained on game")
	return firstLoss, nil
}
