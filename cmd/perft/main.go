package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/rs/zerolog"

	gm "github.com/petthauk/chess-ml/goosemg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -suite is given)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check the divide counts against dragontoothmg")
	suite := flag.String("suite", "", "YAML file with perft cases to run in parallel")
	jobs := flag.Int("jobs", runtime.NumCPU(), "Parallel cases in -suite mode")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	if *suite != "" {
		cases, err := loadSuite(*suite)
		if err != nil {
			logger.Fatal().Err(err).Msg("load suite")
		}
		if err := runSuite(context.Background(), cases, *jobs, logger); err != nil {
			logger.Fatal().Err(err).Msg("suite failed")
		}
		return
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		diffs := verifyDivide(board, *depth)
		for _, d := range diffs {
			logger.Error().Str("move", d.move).Uint64("ours", d.ours).Uint64("dragontooth", d.theirs).Msg("divide mismatch")
		}
		if len(diffs) > 0 {
			os.Exit(1)
		}
		logger.Info().Str("fen", *fen).Int("depth", *depth).Msg("divide matches dragontoothmg")
		return
	}

	if *divide {
		div := gm.PerftDivide(board, *depth)
		moves := make([]gm.Move, 0, len(div))
		var sum uint64
		for m, n := range div {
			moves = append(moves, m)
			sum += n
		}
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			logger.Fatal().Err(err).Msg("creating cpuprofile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += gm.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nodes := totalNodes / uint64(max(*repeat, 1))
	fmt.Printf("Nodes: %d\n", nodes)
	logger.Info().
		Int("depth", *depth).
		Uint64("nodes", nodes).
		Dur("elapsed", elapsed).
		Float64("nps", float64(totalNodes)/elapsed.Seconds()).
		Msg("perft")
}
