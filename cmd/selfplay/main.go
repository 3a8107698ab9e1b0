package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/petthauk/chess-ml/selfplay"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (flags override it)")
	games := flag.Int("games", 0, "number of games to play")
	budget := flag.Duration("budget", 0, "thinking time per move")
	maxNodes := flag.Int("nodes", 0, "node limit per move (0 = time only)")
	weights := flag.String("weights", "", "weights file")
	results := flag.String("results", "", "results log file")
	pgnDir := flag.String("pgn", "", "directory for PGN archives (empty = none)")
	fen := flag.String("fen", "", "start position")
	seed := flag.Int64("seed", 0, "seed for new weights")
	noBootstrap := flag.Bool("no-bootstrap", false, "disable per-move learning")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	cfg := selfplay.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = selfplay.LoadConfig(*configPath); err != nil {
			logger.Fatal().Err(err).Msg("config")
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "budget":
			cfg.MoveBudget = *budget
		case "nodes":
			cfg.MaxNodes = *maxNodes
		case "weights":
			cfg.WeightsPath = *weights
		case "results":
			cfg.ResultsPath = *results
		case "pgn":
			cfg.PGNDir = *pgnDir
		case "fen":
			cfg.StartFEN = *fen
		case "seed":
			cfg.Seed = *seed
		case "no-bootstrap":
			cfg.Bootstrap = !*noBootstrap
		}
	})

	runner, err := selfplay.NewRunner(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("setup")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	tally, err := runner.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("self-play stopped")
	}
	logger.Info().
		Int("games", tally.GamesPlayed).
		Int("white", tally.WhiteWins).
		Int("black", tally.BlackWins).
		Int("draw", tally.Draws).
		Msg("results")
	if err != nil {
		os.Exit(1)
	}
}
