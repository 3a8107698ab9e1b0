package tuner

import "math"

// Optimizer applies a gradient to the network's weight matrices in place.
type Optimizer interface {
	Step(params []Matrix, grads []Matrix)
}

// SGD is plain gradient descent: w -= LR * g.
type SGD struct {
	LR float64
}

func (opt *SGD) Step(params []Matrix, grads []Matrix) {
	for l := range params {
		p, g := params[l].Data, grads[l].Data
		for i := range p {
			p[i] -= opt.LR * g[i]
		}
	}
}

type Adam struct {
	M, V  [][]float64 // First and second moment estimates, one slice per layer
	LR    float64
	Beta1 float64 // Typically 0.9
	Beta2 float64 // Typically 0.999
	Eps   float64
	T     int // Timestep (for bias correction)
}

func NewAdam(lr float64) *Adam {
	return &Adam{
		LR:    lr,
		Beta1: 0.9,
		Beta2: 0.999,
		Eps:   1e-8,
	}
}

// ensure (re)allocates the moment buffers when the parameter shapes change.
func (opt *Adam) ensure(params []Matrix) {
	ok := len(opt.M) == len(params)
	for l := 0; ok && l < len(params); l++ {
		ok = len(opt.M[l]) == len(params[l].Data)
	}
	if ok {
		return
	}
	opt.M = make([][]float64, len(params))
	opt.V = make([][]float64, len(params))
	for l := range params {
		opt.M[l] = make([]float64, len(params[l].Data))
		opt.V[l] = make([]float64, len(params[l].Data))
	}
	opt.T = 0
}

func (opt *Adam) Step(params []Matrix, grads []Matrix) {
	opt.ensure(params)
	opt.T++

	// Bias correction factors
	bc1 := 1.0 - math.Pow(opt.Beta1, float64(opt.T))
	bc2 := 1.0 - math.Pow(opt.Beta2, float64(opt.T))

	for l := range params {
		p, g, m, v := params[l].Data, grads[l].Data, opt.M[l], opt.V[l]
		for i := range p {
			gi := g[i]
			if gi == 0 {
				continue
			}

			// Update biased moments
			m[i] = opt.Beta1*m[i] + (1-opt.Beta1)*gi
			v[i] = opt.Beta2*v[i] + (1-opt.Beta2)*gi*gi

			// Bias-corrected estimates
			mHat := m[i] / bc1
			vHat := v[i] / bc2

			p[i] -= opt.LR * mHat / (math.Sqrt(vHat) + opt.Eps)
		}
	}
}
