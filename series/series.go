// Package series is the list of (n, m, amplitude, phase) terms of a 2D
// pattern, the form in which coefficients leave the symmetry engine for
// the renderer and for persistence.
//
// A term means a_nm·z^n·conj(z)^m for point symmetry, or
// a_nm·exp(2πi·⟨(n,m), z⟩) for wallpaper symmetry; the container does not
// care which.
package series

import (
	"github.com/katalvlaran/symmetry/freq"
	"github.com/katalvlaran/symmetry/polar"
)

// Term is one coefficient together with its frequencies.
type Term struct {
	Freq freq.Frequency2D
	Coef polar.Polar
}

// NewTerm builds a term from raw numbers.
func NewTerm(n, m int, r, theta float64) Term {
	return Term{Freq: freq.Frequency2D{N: n, M: m}, Coef: polar.New(r, theta)}
}

// Tuple flattens the term to (n, m, amplitude, phase).
func (t Term) Tuple() [4]float64 {
	return [4]float64{float64(t.Freq.N), float64(t.Freq.M), t.Coef.R, t.Coef.Theta}
}

// FromTuple is the inverse of Tuple; frequencies are truncated to integers.
func FromTuple(tp [4]float64) Term {
	return NewTerm(int(tp[0]), int(tp[1]), tp[2], tp[3])
}

// Series is an ordered list of terms.
type Series struct {
	Terms []Term
}

// Len returns the number of terms.
func (s *Series) Len() int {
	return len(s.Terms)
}

// Normalize rescales amplitudes so their sum is 1.
// A series whose amplitudes sum to zero is left unchanged.
func (s *Series) Normalize() {
	sum := 0.0
	for _, t := range s.Terms {
		sum += t.Coef.R
	}
	if sum == 0 {
		return
	}
	for i := range s.Terms {
		s.Terms[i].Coef = s.Terms[i].Coef.Scale(1 / sum)
	}
}

// FrequencyArray packs frequencies as [n1, m1, n2, m2, ...].
func (s *Series) FrequencyArray() []int {
	out := make([]int, 0, 2*len(s.Terms))
	for _, t := range s.Terms {
		out = append(out, t.Freq.N, t.Freq.M)
	}

	return out
}

// CoefficientArray packs coefficients as [r1, θ1, r2, θ2, ...].
func (s *Series) CoefficientArray() []float64 {
	out := make([]float64, 0, 2*len(s.Terms))
	for _, t := range s.Terms {
		out = append(out, t.Coef.R, t.Coef.Theta)
	}

	return out
}

// Dedupe keeps one term per frequency pair. Later terms overwrite earlier
// ones but keep the position of the first occurrence.
func (s *Series) Dedupe() {
	pos := make(map[freq.Frequency2D]int, len(s.Terms))
	out := s.Terms[:0]
	for _, t := range s.Terms {
		if i, ok := pos[t.Freq]; ok {
			out[i] = t
			continue
		}
		pos[t.Freq] = len(out)
		out = append(out, t)
	}
	s.Terms = out
}

// Lookup returns the coefficient stored for f, if any.
func (s *Series) Lookup(f freq.Frequency2D) (polar.Polar, bool) {
	for i := len(s.Terms) - 1; i >= 0; i-- {
		if s.Terms[i].Freq == f {
			return s.Terms[i].Coef, true
		}
	}

	return polar.Polar{}, false
}
