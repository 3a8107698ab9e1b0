package engine

import (
	"fmt"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// bootstrap re-evaluates the position reached by d.Move and, if it differs
// from the tree's verdict, moves the evaluator one step toward that verdict.
// Evaluators that cannot learn are left alone.
func (s *Searcher) bootstrap(b *gm.Board, d *Decision) error {
	l, ok := s.Eval.(Learner)
	if !ok {
		return nil
	}
	d.Replayed = l.Evaluate(b)
	if d.Replayed == d.Score {
		return nil
	}
	if _, err := l.Learn(b, d.Score); err != nil {
		return fmt.Errorf("engine: bootstrap update: %w", err)
	}
	d.Learned = true
	s.Logger.Debug().
		Str("move", d.Move.String()).
		Float64("before", d.Replayed).
		Float64("target", d.Score).
		Msg("bootstrap update")
	return nil
}
