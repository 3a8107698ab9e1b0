package tuner

import "math"

// Activation is a differentiable squashing function.
// SigmaPrime takes the activation output, not its input.
type Activation interface {
	Sigma(x float64) float64
	SigmaPrime(y float64) float64
}

// Sigmoid is the logistic function 1/(1+e^-x).
type Sigmoid struct{}

func (Sigmoid) Sigma(x float64) float64 {
	if x > 40 {
		return 1
	}
	if x < -40 {
		return 0
	}
	return 1.0 / (1.0 + math.Exp(-x))
}

func (Sigmoid) SigmaPrime(y float64) float64 { return y * (1 - y) }
