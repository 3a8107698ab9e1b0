package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"github.com/petthauk/chess-ml/engine"
	gm "github.com/petthauk/chess-ml/goosemg"
	"github.com/petthauk/chess-ml/tuner"
)

func main() {
	// --- Flags ---
	budgetFlag := flag.Duration("budget", time.Second, "thinking time per search")
	nodesFlag := flag.Int("nodes", 0, "node limit per search (0 = time only)")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	weightsFlag := flag.String("weights", "", "network weights (empty = material evaluator)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			logger.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	var eval engine.Evaluator = engine.MaterialEvaluator{}
	if *weightsFlag != "" {
		enc := tuner.PlaneEncoder{}
		net, _, err := tuner.LoadOrInit(*weightsFlag, []int{tuner.InputWidth(enc), 30, 1}, rand.New(rand.NewSource(1)))
		if err != nil {
			logger.Fatal().Err(err).Msg("weights")
		}
		ev, err := tuner.NewEvaluator(net, enc, 0)
		if err != nil {
			logger.Fatal().Err(err).Msg("evaluator")
		}
		eval = ev
	}

	fen := gm.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	fmt.Printf("searchbench: fen=%q budget=%v nodes=%d repeat=%d\n", fen, *budgetFlag, *nodesFlag, *repeatFlag)

	s := engine.NewSearcher(eval)
	s.Budget = *budgetFlag
	s.MaxNodes = *nodesFlag

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh game for each run
		game, err := gm.NewGame(fen)
		if err != nil {
			logger.Fatal().Err(err).Msg("bad FEN")
		}
		d, err := s.ChooseMove(game)
		if err != nil {
			logger.Fatal().Err(err).Msg("search")
		}
		fmt.Printf("iteration %d: bestmove %v score=%.4f nodes=%d depth=%d time=%v\n",
			i+1, d.Move, d.Score, d.Nodes, d.Depth, d.Elapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
