package tuner

import (
	"fmt"
	"math/rand"
)

// biasInput is the constant fed into every layer's bias row.
const biasInput = -1.0

// initScale multiplies standard-normal samples when creating fresh weights.
const initScale = 0.1

// Network is a fully connected feed-forward network with a sigmoid at every
// layer, including the single output. Layer l maps sizes[l] inputs to
// sizes[l+1] outputs through a (sizes[l]+1) x sizes[l+1] weight matrix whose
// first row multiplies the constant bias input.
type Network struct {
	layers []Matrix
	act    Activation
}

// Activations records what a forward pass saw: the bias-extended input of
// every layer and every layer's output.
type Activations struct {
	Inputs  [][]float64
	Outputs [][]float64
}

// NewNetwork creates a network with the given layer sizes (input width
// first, 1 last) and weights drawn from N(0, 1) * 0.1.
func NewNetwork(sizes []int, rng *rand.Rand) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("tuner: need at least input and output sizes, got %v", sizes)
	}
	if sizes[len(sizes)-1] != 1 {
		return nil, fmt.Errorf("tuner: output layer must have 1 unit, got %d", sizes[len(sizes)-1])
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("tuner: invalid layer size in %v", sizes)
		}
	}
	layers := make([]Matrix, len(sizes)-1)
	for l := range layers {
		m := NewMatrix(sizes[l]+1, sizes[l+1])
		for i := range m.Data {
			m.Data[i] = rng.NormFloat64() * initScale
		}
		layers[l] = m
	}
	return &Network{layers: layers, act: Sigmoid{}}, nil
}

// NewNetworkFromWeights wraps existing weight matrices after checking that
// consecutive layers fit together.
func NewNetworkFromWeights(layers []Matrix) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("tuner: no layers")
	}
	for l, m := range layers {
		if m.Rows < 2 || m.Cols < 1 || len(m.Data) != m.Rows*m.Cols {
			return nil, fmt.Errorf("tuner: layer %d has malformed shape %dx%d (%d values)", l, m.Rows, m.Cols, len(m.Data))
		}
		if l > 0 && layers[l-1].Cols+1 != m.Rows {
			return nil, fmt.Errorf("tuner: layer %d expects %d inputs, previous layer has %d outputs", l, m.Rows-1, layers[l-1].Cols)
		}
	}
	if layers[len(layers)-1].Cols != 1 {
		return nil, fmt.Errorf("tuner: output layer must have 1 unit")
	}
	return &Network{layers: cloneMatrices(layers), act: Sigmoid{}}, nil
}

// InputWidth returns the number of inputs the network expects.
func (n *Network) InputWidth() int { return n.layers[0].Rows - 1 }

// Sizes returns the layer sizes, input width first.
func (n *Network) Sizes() []int {
	sizes := []int{n.InputWidth()}
	for _, m := range n.layers {
		sizes = append(sizes, m.Cols)
	}
	return sizes
}

// Weights returns a copy of the weight matrices.
func (n *Network) Weights() []Matrix { return cloneMatrices(n.layers) }

// Clone returns an independent copy of the network.
func (n *Network) Clone() *Network {
	return &Network{layers: cloneMatrices(n.layers), act: n.act}
}

// Predict runs a forward pass and returns the output in [0, 1] together
// with the activations needed by Backprop. It panics if len(x) differs from
// InputWidth: the width is fixed when the network is built.
func (n *Network) Predict(x []float64) (float64, Activations) {
	if len(x) != n.InputWidth() {
		panic(fmt.Sprintf("tuner: input has %d values, network expects %d", len(x), n.InputWidth()))
	}
	acts := Activations{
		Inputs:  make([][]float64, len(n.layers)),
		Outputs: make([][]float64, len(n.layers)),
	}
	a := x
	for l, w := range n.layers {
		in := withBias(a)
		out := make([]float64, w.Cols)
		for j := 0; j < w.Cols; j++ {
			var z float64
			for i, v := range in {
				z += v * w.Data[i*w.Cols+j]
			}
			out[j] = n.act.Sigma(z)
		}
		acts.Inputs[l] = in
		acts.Outputs[l] = out
		a = out
	}
	return a[0], acts
}

// Gradients returns d(predicted-target)^2 / dW for every layer, given the
// activations of the forward pass that produced predicted.
func (n *Network) Gradients(acts Activations, predicted, target float64) []Matrix {
	grads := zerosLike(n.layers)
	last := len(n.layers) - 1

	// Output delta: dL/dy * sigma'(y)
	delta := []float64{msePrime(predicted, target) * n.act.SigmaPrime(acts.Outputs[last][0])}
	for l := last; l >= 0; l-- {
		w, g, in := n.layers[l], grads[l], acts.Inputs[l]
		for i, v := range in {
			for j, d := range delta {
				g.Data[i*g.Cols+j] = d * v
			}
		}
		if l == 0 {
			break
		}
		// Propagate through the non-bias rows to the previous layer's outputs.
		prev := acts.Outputs[l-1]
		next := make([]float64, len(prev))
		for i := range prev {
			var s float64
			for j, d := range delta {
				s += w.Data[(i+1)*w.Cols+j] * d
			}
			next[i] = s * n.act.SigmaPrime(prev[i])
		}
		delta = next
	}
	return grads
}

// Backprop returns new weight matrices moved one gradient step of size
// learningRate toward target: w -= learningRate * delta * upstreamActivation.
// The network itself is left untouched until Commit.
func (n *Network) Backprop(acts Activations, predicted, target, learningRate float64) []Matrix {
	grads := n.Gradients(acts, predicted, target)
	updated := cloneMatrices(n.layers)
	for l := range updated {
		for i := range updated[l].Data {
			updated[l].Data[i] -= learningRate * grads[l].Data[i]
		}
	}
	return updated
}

// Commit replaces the network's weights. The matrices must have the
// network's shapes.
func (n *Network) Commit(weights []Matrix) error {
	if !sameShape(n.layers, weights) {
		return fmt.Errorf("tuner: commit shape mismatch")
	}
	n.layers = cloneMatrices(weights)
	return nil
}

func withBias(a []float64) []float64 {
	out := make([]float64, len(a)+1)
	out[0] = biasInput
	copy(out[1:], a)
	return out
}
