// Package polar provides the polar-form complex coefficient a_nm = r·e^(iθ)
// used throughout the symmetry engine, together with the few operations the
// constraint rules need: conjugation, multiplication, roots of unity and
// projection onto a line through the origin.
//
// Amplitudes may be negative while rules are being applied (a negation
// rule flips the sign of r rather than adding π to θ); every operation is
// defined on such values through the rectangular form.
package polar

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polar is a complex number r·e^(iθ).
type Polar struct {
	R     float64
	Theta float64
}

var (
	// Zero is the additive identity.
	Zero = Polar{R: 0, Theta: 0}
	// One is the multiplicative identity.
	One = Polar{R: 1, Theta: 0}
)

// New builds r·e^(iθ).
func New(r, theta float64) Polar {
	return Polar{R: r, Theta: theta}
}

// FromRect converts a rectangular complex number to polar form with
// θ in [0, 2π).
func FromRect(c complex128) Polar {
	theta := math.Atan2(imag(c), real(c))
	if theta < 0 {
		theta += 2 * math.Pi
	}

	return Polar{R: cmplx.Abs(c), Theta: theta}
}

// Rect returns the rectangular form r·cos θ + i·r·sin θ.
func (p Polar) Rect() complex128 {
	return cmplx.Rect(p.R, p.Theta)
}

// Vec returns the rectangular form as a plane vector.
func (p Polar) Vec() r2.Vec {
	c := p.Rect()
	return r2.Vec{X: real(c), Y: imag(c)}
}

// IsZero reports whether the amplitude is exactly zero.
func (p Polar) IsZero() bool {
	return p.R == 0
}

// Scale multiplies the amplitude by factor.
func (p Polar) Scale(factor float64) Polar {
	return Polar{R: factor * p.R, Theta: p.Theta}
}

// Rotate adds angle to the phase.
func (p Polar) Rotate(angle float64) Polar {
	return Polar{R: p.R, Theta: p.Theta + angle}
}

// Conj returns the complex conjugate r·e^(-iθ).
func (p Polar) Conj() Polar {
	return Polar{R: p.R, Theta: -p.Theta}
}

// Mul multiplies two polar numbers: amplitudes multiply, phases add.
func (p Polar) Mul(q Polar) Polar {
	return Polar{R: p.R * q.R, Theta: p.Theta + q.Theta}
}

// Pow raises p to the real power n: r^n·e^(inθ).
func (p Polar) Pow(n float64) Polar {
	return Polar{R: math.Pow(p.R, n), Theta: p.Theta * n}
}

// RootOfUnity returns rotate_k^power = e^(2πi·power/k).
// k must be positive.
func RootOfUnity(k, power int) Polar {
	return Polar{R: 1, Theta: 2 * math.Pi * float64(power) / float64(k)}
}

// Dot is the planar dot product of two complex numbers seen as vectors.
func Dot(a, b complex128) float64 {
	return r2.Dot(r2.Vec{X: real(a), Y: imag(a)}, r2.Vec{X: real(b), Y: imag(b)})
}

// ProjectOnto projects term onto the line through the origin spanned by
// the unit-amplitude direction. The result lies on that line: its
// amplitude is the signed length of the projection and its phase is the
// direction's phase.
func ProjectOnto(term, direction Polar) Polar {
	length := Dot(term.Rect(), direction.Rect())
	return direction.Scale(length)
}

// Equal reports whether a and b denote the same complex number within tol,
// comparing rectangular components.
func Equal(a, b Polar, tol float64) bool {
	ca, cb := a.Rect(), b.Rect()
	return scalar.EqualWithinAbs(real(ca), real(cb), tol) &&
		scalar.EqualWithinAbs(imag(ca), imag(cb), tol)
}
