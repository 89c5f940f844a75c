// SPDX-License-Identifier: MIT

package wallpaper

import (
	"math"

	"github.com/katalvlaran/symmetry/freq"
	"github.com/katalvlaran/symmetry/polar"
	"gonum.org/v1/gonum/spatial/r2"
)

const thirdTurn = 2 * math.Pi / 3

// Basis returns the two lattice basis vectors in the renderer's
// coordinates. An unknown lattice yields the unit square.
func (l Lattice) Basis() [2]r2.Vec {
	switch l {
	case Rectangle:
		return [2]r2.Vec{{X: 2, Y: 0}, {X: 0, Y: 1}}
	case Rhombus:
		return [2]r2.Vec{{X: 1, Y: 2}, {X: 1, Y: -2}}
	case Hexagon:
		return [2]r2.Vec{{X: 1, Y: 0}, {X: math.Cos(thirdTurn), Y: math.Sin(thirdTurn)}}
	case Parallelogram:
		return [2]r2.Vec{{X: 1, Y: 0}, {X: 1, Y: 2}}
	default:
		return [2]r2.Vec{{X: 1, Y: 0}, {X: 0, Y: 1}}
	}
}

// Orbit returns the frequencies the base rule ties to f, excluding f.
//
//	square:  (m, -n), (-n, -m), (-m, n)
//	hexagon: (m, -(n+m)), (-(n+m), n)
func (b BaseRule) Orbit(f freq.Frequency2D) []freq.Frequency2D {
	n, m := f.N, f.M
	switch b {
	case SquareBase:
		return []freq.Frequency2D{{N: m, M: -n}, {N: -n, M: -m}, {N: -m, M: n}}
	case HexagonBase:
		return []freq.Frequency2D{{N: m, M: -(n + m)}, {N: -(n + m), M: n}}
	default:
		return nil
	}
}

// Apply returns the partner frequencies of f.
func (p Partner) Apply(f freq.Frequency2D) freq.Frequency2D {
	n, m := f.N, f.M
	switch p {
	case Negate:
		return freq.Negate(f)
	case NegateN:
		return freq.Frequency2D{N: -n, M: m}
	case NegateM:
		return freq.Frequency2D{N: n, M: -m}
	case Swap:
		return freq.Swap(f)
	case NegateSwap:
		return freq.Frequency2D{N: -m, M: -n}
	case NegateMSwap:
		return freq.Frequency2D{N: -m, M: n}
	default:
		return f
	}
}

// sign is (-1)^k.
func sign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// Sign returns the factor the negation applies for source frequencies f.
func (n Negation) Sign(f freq.Frequency2D) float64 {
	switch n {
	case NegateAll:
		return -1
	case NegateByN:
		return sign(f.N)
	case NegateByM:
		return sign(f.M)
	case NegateByNM:
		return sign(f.N + f.M)
	case NegateByM1:
		return sign(f.M + 1)
	case NegateByN1:
		return sign(f.N + 1)
	case NegateByNM1:
		return sign(f.N + f.M + 1)
	default:
		return 1
	}
}

// Apply multiplies the amplitude of term by the sign for source
// frequencies f. The phase is kept; a negative amplitude is valid.
func (n Negation) Apply(term polar.Polar, f freq.Frequency2D) polar.Polar {
	if n == NoNegation {
		return term
	}

	return term.Scale(n.Sign(f))
}
