package tuner

import (
	"fmt"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// Evaluator scores positions with a Network. Scores are the estimated
// probability that White wins.
type Evaluator struct {
	Net          *Network
	Enc          Encoder
	LearningRate float64
	// Path, when set, is where Learn persists the updated weights.
	Path string
}

// NewEvaluator pairs a network with an encoder whose output width must match
// the network's input width.
func NewEvaluator(net *Network, enc Encoder, learningRate float64) (*Evaluator, error) {
	if w := InputWidth(enc); w != net.InputWidth() {
		return nil, fmt.Errorf("tuner: encoder width %d does not match network input %d", w, net.InputWidth())
	}
	return &Evaluator{Net: net, Enc: enc, LearningRate: learningRate}, nil
}

// Evaluate returns the network's white-win probability for b.
func (e *Evaluator) Evaluate(b *gm.Board) float64 {
	p, _ := e.Net.Predict(e.Enc.Encode(b))
	return p
}

// Learn moves the network one backprop step toward target for b, commits the
// new weights and saves them when Path is set. It returns the prediction made
// before the update.
func (e *Evaluator) Learn(b *gm.Board, target float64) (float64, error) {
	p, acts := e.Net.Predict(e.Enc.Encode(b))
	if p == target {
		return p, nil
	}
	if err := e.Net.Commit(e.Net.Backprop(acts, p, target, e.LearningRate)); err != nil {
		return p, err
	}
	if e.Path != "" {
		if err := SaveJSON(e.Path, e.Net); err != nil {
			return p, fmt.Errorf("persist weights: %w", err)
		}
	}
	return p, nil
}
