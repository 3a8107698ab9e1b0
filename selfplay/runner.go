package selfplay

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/petthauk/chess-ml/engine"
	gm "github.com/petthauk/chess-ml/goosemg"
	"github.com/petthauk/chess-ml/tuner"
)

// GameRecord is one finished self-play game.
type GameRecord struct {
	StartFEN string
	Moves    []gm.Move
	Outcome  gm.Outcome
	Result   gm.Result
	// Capped is set when the game hit MaxPlies and was scored as a draw.
	Capped bool
	Loss   float64 // training loss before the end-of-game update
}

// Termination describes how the game ended.
func (r GameRecord) Termination() string {
	if r.Capped {
		return "max plies"
	}
	return r.Outcome.Reason.String()
}

// Target is the training target for the game's result, from White's side.
func (r GameRecord) Target() float64 {
	switch r.Result {
	case gm.WhiteWins:
		return tuner.TargetWhiteWin
	case gm.BlackWins:
		return tuner.TargetBlackWin
	}
	return tuner.TargetDraw
}

// Runner plays the network against itself and trains it on the outcomes.
type Runner struct {
	Cfg     Config
	Net     *tuner.Network
	Eval    *tuner.Evaluator
	Trainer *tuner.Trainer
	PGN     *PGNWriter
	Logger  zerolog.Logger
}

// NewRunner loads (or creates) the weights named in cfg and wires the
// evaluator, trainer and PGN archive around them.
func NewRunner(cfg Config, logger zerolog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	enc := tuner.PlaneEncoder{SideToMove: cfg.SideToMove}
	sizes := append([]int{tuner.InputWidth(enc)}, cfg.Hidden...)
	sizes = append(sizes, 1)
	rng := rand.New(rand.NewSource(cfg.Seed))

	var net *tuner.Network
	var err error
	if cfg.WeightsPath == "" {
		net, err = tuner.NewNetwork(sizes, rng)
	} else {
		var created bool
		net, created, err = tuner.LoadOrInit(cfg.WeightsPath, sizes, rng)
		if created {
			logger.Info().Str("path", cfg.WeightsPath).Ints("sizes", sizes).Msg("initialized new weights")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("selfplay: weights: %w", err)
	}

	ev, err := tuner.NewEvaluator(net, enc, cfg.BootstrapLR)
	if err != nil {
		return nil, err
	}
	// Bootstrap updates are saved as soon as they are made.
	ev.Path = cfg.WeightsPath
	tr, err := tuner.NewTrainer(net, cfg.Train, logger)
	if err != nil {
		return nil, err
	}
	r := &Runner{Cfg: cfg, Net: net, Eval: ev, Trainer: tr, Logger: logger}
	if cfg.PGNDir != "" {
		r.PGN = &PGNWriter{Dir: cfg.PGNDir}
	}
	return r, nil
}

// staticOnly hides Learn so the searcher skips bootstrap updates.
type staticOnly struct{ engine.Evaluator }

func (r *Runner) searcher() *engine.Searcher {
	var ev engine.Evaluator = r.Eval
	if !r.Cfg.Bootstrap {
		ev = staticOnly{r.Eval}
	}
	s := engine.NewSearcher(ev)
	s.Budget = r.Cfg.MoveBudget
	if s.Budget <= 0 {
		// Node-limited only.
		s.Budget = 365 * 24 * time.Hour
	}
	s.MaxNodes = r.Cfg.MaxNodes
	s.Logger = r.Logger
	return s
}

// PlayGame plays one game from the configured start position, then trains
// the network on every position visited toward the game's result.
func (r *Runner) PlayGame(ctx context.Context) (GameRecord, error) {
	game, err := gm.NewGame(r.Cfg.StartFEN)
	if err != nil {
		return GameRecord{}, err
	}
	s := r.searcher()
	rec := GameRecord{StartFEN: game.StartFEN()}
	samples := []tuner.Sample{{Input: r.Eval.Enc.Encode(game.Board())}}

	for {
		if err := ctx.Err(); err != nil {
			return rec, err
		}
		if rec.Outcome = game.Status(); rec.Outcome.Over() {
			rec.Result = rec.Outcome.Result
			break
		}
		if game.Ply() >= r.Cfg.MaxPlies {
			rec.Capped = true
			rec.Result = gm.Draw
			break
		}
		d, err := s.Play(game)
		if err != nil {
			if errors.Is(err, engine.ErrNoLegalMoves) || errors.Is(err, engine.ErrGameOver) {
				continue
			}
			return rec, fmt.Errorf("selfplay: ply %d: %w", game.Ply()+1, err)
		}
		samples = append(samples, tuner.Sample{Input: r.Eval.Enc.Encode(game.Board())})
		r.Logger.Debug().
			Int("ply", game.Ply()).
			Str("move", d.Move.String()).
			Float64("score", d.Score).
			Int("nodes", d.Nodes).
			Msg("move")
	}
	rec.Moves = game.Moves()

	loss, err := r.Trainer.TrainGame(ctx, samples, rec.Target())
	if err != nil {
		return rec, fmt.Errorf("selfplay: train: %w", err)
	}
	rec.Loss = loss
	if r.Cfg.WeightsPath != "" {
		if err := tuner.SaveJSON(r.Cfg.WeightsPath, r.Net); err != nil {
			return rec, fmt.Errorf("selfplay: save weights: %w", err)
		}
	}
	return rec, nil
}

// Run plays Cfg.Games games, updating the results log and the PGN archive
// after each one, and returns the final tally.
func (r *Runner) Run(ctx context.Context) (Results, error) {
	var tally Results
	if r.Cfg.ResultsPath != "" {
		var err error
		if tally, err = LoadResults(r.Cfg.ResultsPath); err != nil {
			return tally, err
		}
	}
	for i := 0; i < r.Cfg.Games; i++ {
		start := time.Now()
		rec, err := r.PlayGame(ctx)
		if err != nil {
			return tally, err
		}
		tally.Add(rec.Result)
		if r.Cfg.ResultsPath != "" {
			if err := SaveResults(r.Cfg.ResultsPath, tally); err != nil {
				return tally, err
			}
		}
		if r.PGN != nil {
			if path, err := r.PGN.Write(rec, tally.GamesPlayed); err != nil {
				r.Logger.Error().Err(err).Int("round", tally.GamesPlayed).Msg("pgn export failed")
			} else {
				r.Logger.Debug().Str("path", path).Msg("pgn written")
			}
		}
		r.Logger.Info().
			Int("game", tally.GamesPlayed).
			Str("result", rec.Result.String()).
			Str("termination", rec.Termination()).
			Int("plies", len(rec.Moves)).
			Float64("loss", rec.Loss).
			Dur("took", time.Since(start)).
			Msg("game finished")
	}
	return tally, nil
}
