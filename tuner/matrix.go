package tuner

// Matrix is a dense row-major matrix. A layer's weights use one row per
// input plus a leading bias row, and one column per output.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// At returns element (i, j).
func (m Matrix) At(i, j int) float64 { return m.Data[i*m.Cols+j] }

// Set assigns element (i, j).
func (m Matrix) Set(i, j int, v float64) { m.Data[i*m.Cols+j] = v }

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	c := Matrix{Rows: m.Rows, Cols: m.Cols, Data: make([]float64, len(m.Data))}
	copy(c.Data, m.Data)
	return c
}

func cloneMatrices(ms []Matrix) []Matrix {
	out := make([]Matrix, len(ms))
	for i := range ms {
		out[i] = ms[i].Clone()
	}
	return out
}

func zerosLike(ms []Matrix) []Matrix {
	out := make([]Matrix, len(ms))
	for i := range ms {
		out[i] = NewMatrix(ms[i].Rows, ms[i].Cols)
	}
	return out
}

func sameShape(a, b []Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rows != b[i].Rows || a[i].Cols != b[i].Cols {
			return false
		}
	}
	return true
}
