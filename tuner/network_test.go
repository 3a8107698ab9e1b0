package tuner

import (
	"math"
	"math/rand"
	"testing"
)

func newTestNet(t *testing.T, sizes ...int) *Network {
	t.Helper()
	n, err := NewNetwork(sizes, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	return n
}

func TestNewNetworkShapes(t *testing.T) {
	n := newTestNet(t, 6, 4, 1)
	if got := n.InputWidth(); got != 6 {
		t.Fatalf("InputWidth: got %d want 6", got)
	}
	w := n.Weights()
	if len(w) != 2 || w[0].Rows != 7 || w[0].Cols != 4 || w[1].Rows != 5 || w[1].Cols != 1 {
		t.Fatalf("unexpected shapes: %+v", n.Sizes())
	}
	for _, bad := range [][]int{{6}, {6, 4, 2}, {0, 1}} {
		if _, err := NewNetwork(bad, rand.New(rand.NewSource(1))); err == nil {
			t.Fatalf("expected error for sizes %v", bad)
		}
	}
}

func TestPredictRangeAndBias(t *testing.T) {
	n := newTestNet(t, 3, 2, 1)
	p, acts := n.Predict([]float64{1, 0, 1})
	if p <= 0 || p >= 1 {
		t.Fatalf("prediction out of range: %v", p)
	}
	if len(acts.Inputs) != 2 || acts.Inputs[0][0] != -1 || acts.Inputs[1][0] != -1 {
		t.Fatalf("bias input missing: %+v", acts.Inputs)
	}
	if acts.Outputs[1][0] != p {
		t.Fatalf("output activation %v != prediction %v", acts.Outputs[1][0], p)
	}
}

func TestPredictPanicsOnWidthMismatch(t *testing.T) {
	n := newTestNet(t, 3, 2, 1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for wrong input width")
		}
	}()
	n.Predict([]float64{1, 2})
}

func TestBackpropDoesNotMutateUntilCommit(t *testing.T) {
	n := newTestNet(t, 4, 3, 1)
	before := n.Weights()
	x := []float64{1, 0, 0, 1}
	p, acts := n.Predict(x)
	updated := n.Backprop(acts, p, 1, 0.5)
	after := n.Weights()
	for l := range before {
		for i := range before[l].Data {
			if before[l].Data[i] != after[l].Data[i] {
				t.Fatalf("Backprop mutated layer %d", l)
			}
		}
	}
	if err := n.Commit(updated); err != nil {
		t.Fatal(err)
	}
	if p2, _ := n.Predict(x); !(p2 > p) {
		t.Fatalf("commit did not move prediction up: %v -> %v", p, p2)
	}
	if err := n.Commit(updated[:1]); err == nil {
		t.Fatalf("expected shape mismatch error")
	}
}

// Repeating the same backprop step keeps moving the prediction toward the target.
func TestBackpropMonotone(t *testing.T) {
	for _, target := range []float64{0, 1} {
		n := newTestNet(t, 5, 4, 1)
		x := []float64{1, 0, 1, 0, 1}
		p0, acts := n.Predict(x)
		prevDist := math.Abs(p0 - target)
		for i := 0; i < 10; i++ {
			if err := n.Commit(n.Backprop(acts, p0, target, 0.05)); err != nil {
				t.Fatal(err)
			}
			p, _ := n.Predict(x)
			d := math.Abs(p - target)
			if d >= prevDist {
				t.Fatalf("target %v step %d: distance %v did not shrink from %v", target, i, d, prevDist)
			}
			prevDist = d
		}
	}
}

// Analytic gradients agree with finite differences of the squared error.
func TestGradientsMatchFiniteDifferences(t *testing.T) {
	n := newTestNet(t, 3, 3, 2, 1)
	x := []float64{0.5, -1, 1}
	const target = 0.8
	p, acts := n.Predict(x)
	grads := n.Gradients(acts, p, target)

	const h = 1e-6
	for l := range n.layers {
		for i := range n.layers[l].Data {
			orig := n.layers[l].Data[i]
			n.layers[l].Data[i] = orig + h
			up, _ := n.Predict(x)
			n.layers[l].Data[i] = orig - h
			down, _ := n.Predict(x)
			n.layers[l].Data[i] = orig
			num := (mse(up, target) - mse(down, target)) / (2 * h)
			if math.Abs(num-grads[l].Data[i]) > 1e-6 {
				t.Fatalf("layer %d weight %d: analytic %v numeric %v", l, i, grads[l].Data[i], num)
			}
		}
	}
}

func TestNewNetworkFromWeightsValidates(t *testing.T) {
	good := newTestNet(t, 2, 2, 1).Weights()
	if _, err := NewNetworkFromWeights(good); err != nil {
		t.Fatalf("valid weights rejected: %v", err)
	}
	bad := []Matrix{NewMatrix(3, 2), NewMatrix(4, 1)}
	if _, err := NewNetworkFromWeights(bad); err == nil {
		t.Fatalf("expected error for mismatched layers")
	}
}
