package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// suiteCase is one entry of a perft suite file:
//
//	- name: kiwipete
//	  fen: r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1
//	  depth: 3
//	  nodes: 97862
type suiteCase struct {
	Name  string `yaml:"name"`
	FEN   string `yaml:"fen"`
	Depth int    `yaml:"depth"`
	Nodes uint64 `yaml:"nodes"`
}

func loadSuite(path string) ([]suiteCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cases []suiteCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	for i, c := range cases {
		if c.Depth <= 0 {
			return nil, fmt.Errorf("case %d (%s): depth must be > 0", i, c.Name)
		}
		if _, err := gm.ParseFEN(c.FEN); err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i, c.Name, err)
		}
	}
	return cases, nil
}

// runSuite runs every case, at most jobs at a time, and fails on the first
// node count that differs from the expected one.
func runSuite(ctx context.Context, cases []suiteCase, jobs int, logger zerolog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, c := range cases {
		c := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := gm.ParseFEN(c.FEN)
			if err != nil {
				return err
			}
			start := time.Now()
			got := gm.Perft(b, c.Depth)
			ev := logger.Info()
			if got != c.Nodes {
				ev = logger.Error()
			}
			ev.Str("case", c.Name).Int("depth", c.Depth).Uint64("nodes", got).Uint64("want", c.Nodes).
				Dur("elapsed", time.Since(start)).Msg("perft case")
			if got != c.Nodes {
				return fmt.Errorf("%s: depth %d: got %d nodes, want %d", c.Name, c.Depth, got, c.Nodes)
			}
			return nil
		})
	}
	return g.Wait()
}

type divideDiff struct {
	move         string
	ours, theirs uint64
}

// verifyDivide compares PerftDivide with dragontoothmg move by move.
func verifyDivide(b *gm.Board, depth int) []divideDiff {
	ours := make(map[string]uint64)
	for m, n := range gm.PerftDivide(b, depth) {
		ours[m.String()] = n
	}
	theirs := dragonDivide(b.ToFEN(), depth)

	keys := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	var diffs []divideDiff
	for _, k := range keys {
		if ours[k] != theirs[k] {
			diffs = append(diffs, divideDiff{move: k, ours: ours[k], theirs: theirs[k]})
		}
	}
	return diffs
}

func dragonDivide(fen string, depth int) map[string]uint64 {
	board := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		out[m.String()] = dragonPerft(&board, depth-1)
		unapply()
	}
	return out
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		n += dragonPerft(b, depth-1)
		unapply()
	}
	return n
}
