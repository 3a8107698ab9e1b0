package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================

// Scores are white-win probabilities. Finished games are scored exactly.
const (
	WinScore  = 1.0
	LossScore = 0.0
	DrawScore = 0.5
)

// DefaultBudget is the wall-clock time spent growing the tree when a
// Searcher has no Budget set.
const DefaultBudget = 2 * time.Second

var (
	// ErrNoLegalMoves means the search was asked to move in a position
	// without legal moves. Terminal positions must be caught before searching.
	ErrNoLegalMoves = errors.New("engine: no legal moves to choose from")
	// ErrGameOver means the game already ended by a drawing rule.
	ErrGameOver = errors.New("engine: game is over")
)

// Evaluator scores a position as the probability that White wins.
type Evaluator interface {
	Evaluate(b *gm.Board) float64
}

// Learner is an Evaluator that can be nudged toward a target score.
// Learn returns the score it predicted before updating.
type Learner interface {
	Evaluator
	Learn(b *gm.Board, target float64) (float64, error)
}

// Decision is the result of one search.
type Decision struct {
	Move     gm.Move
	Score    float64 // minimax value of the chosen child
	Static   float64 // evaluator score of the chosen child
	Nodes    int
	Depth    int
	EvalHits int // evaluations served by the transposition cache
	Elapsed  time.Duration
	Learned  bool    // a bootstrap update was applied after the move
	Replayed float64 // evaluator score of the new position before the update
}

// Searcher grows a search tree best-first under a time budget, then picks a
// move with minimax and alpha-beta pruning.
type Searcher struct {
	Eval   Evaluator
	Budget time.Duration
	// MaxNodes stops expansion once the tree holds this many nodes (0 = no limit).
	MaxNodes int
	Logger   zerolog.Logger

	now func() time.Time
}

// NewSearcher returns a Searcher with the default budget and a silent logger.
func NewSearcher(eval Evaluator) *Searcher {
	return &Searcher{Eval: eval, Budget: DefaultBudget, Logger: zerolog.Nop()}
}

// ChooseMove searches the live position of game for its side to move. The
// live board and repetition table are left as they were.
func (s *Searcher) ChooseMove(game *gm.Game) (Decision, error) {
	board := game.Board()
	if !board.HasLegalMoves() {
		return Decision{}, ErrNoLegalMoves
	}
	if st := game.Status(); st.Over() {
		return Decision{}, fmt.Errorf("%w: %s", ErrGameOver, st)
	}

	budget := s.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	th := newTimeHandler(budget, s.now)
	t := newTree(board.Clone(), s.Eval, game.Repetitions())
	t.expandUntil(func() bool {
		return th.TimeStatus() || (s.MaxNodes > 0 && t.nodes >= s.MaxNodes)
	})

	value, best := Minimax(t.root, math.Inf(-1), math.Inf(1))
	if best == nil {
		// The root always gets expanded and has at least one legal move.
		return Decision{}, ErrNoLegalMoves
	}
	nodes, depth := countNodes(t.root)
	d := Decision{
		Move:     best.Move,
		Score:    value,
		Static:   best.Score,
		Nodes:    nodes,
		Depth:    depth,
		EvalHits: t.tt.Hits,
		Elapsed:  th.Elapsed(),
	}
	s.Logger.Debug().
		Str("fen", board.ToFEN()).
		Str("move", d.Move.String()).
		Float64("score", d.Score).
		Float64("static", d.Static).
		Int("nodes", d.Nodes).
		Int("depth", d.Depth).
		Int("eval_hits", d.EvalHits).
		Dur("elapsed", d.Elapsed).
		Msg("search done")
	return d, nil
}

// Play chooses a move, plays it on the live game and, when the evaluator
// can learn, bootstraps it toward the score the tree gave that move.
func (s *Searcher) Play(game *gm.Game) (Decision, error) {
	d, err := s.ChooseMove(game)
	if err != nil {
		return d, err
	}
	if err := game.Play(d.Move); err != nil {
		return d, fmt.Errorf("engine: commit %s: %w", d.Move, err)
	}
	if err := s.bootstrap(game.Board(), &d); err != nil {
		return d, err
	}
	return d, nil
}
