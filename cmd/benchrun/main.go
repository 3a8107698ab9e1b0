package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

const perftSuite = `- name: initial
  fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
  depth: 4
  nodes: 197281
- name: kiwipete
  fen: r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1
  depth: 3
  nodes: 97862
- name: position3
  fen: 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1
  depth: 4
  nodes: 43238
- name: position4
  fen: r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1
  depth: 3
  nodes: 9467
- name: position5
  fen: rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8
  depth: 3
  nodes: 62379
`

// perftStep writes the perft suite to a temp dir, hands it to cmd/perft
// through runCmd and removes the dir again before returning the exit code.
func perftStep(runCmd func(name string, args ...string) int) int {
	dir, err := os.MkdirTemp("", "benchrun")
	if err != nil {
		fmt.Fprintf(os.Stderr, "temp dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(dir)
	suite := filepath.Join(dir, "suite.yaml")
	if err := os.WriteFile(suite, []byte(perftSuite), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write suite: %v\n", err)
		return 1
	}
	return runCmd("go", "run", "./cmd/perft", "-suite", suite)
}

func main() {
	// Runs the benchmarks in bench/, the perft suite and a short search.
	// Usage: go run ./cmd/benchrun
	budget := flag.String("budget", "1s", "search budget for the searchbench step")
	flag.Parse()

	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft suite:")
	if code := perftStep(run); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nSearch:")
	run("go", "run", "./cmd/searchbench", "-budget", *budget, "-repeat", "3")
}
