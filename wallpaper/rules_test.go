// File: wallpaper/rules_test.go
package wallpaper_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/symmetry/freq"
	"github.com/katalvlaran/symmetry/polar"
	"github.com/katalvlaran/symmetry/wallpaper"
	"github.com/stretchr/testify/assert"
)

func fr(n, m int) freq.Frequency2D { return freq.Frequency2D{N: n, M: m} }

// TestBaseRule_Orbit checks both orbits and the empty one.
func TestBaseRule_Orbit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []freq.Frequency2D{fr(2, -1), fr(-1, -2), fr(-2, 1)}, wallpaper.SquareBase.Orbit(fr(1, 2)))
	assert.Equal(t, []freq.Frequency2D{fr(2, -3), fr(-3, 1)}, wallpaper.HexagonBase.Orbit(fr(1, 2)))
	assert.Empty(t, wallpaper.NoBase.Orbit(fr(1, 2)))

	// applying the hexagon orbit step three times returns to the start
	f := fr(3, -1)
	step := func(f freq.Frequency2D) freq.Frequency2D { return wallpaper.HexagonBase.Orbit(f)[0] }
	assert.Equal(t, f, step(step(step(f))))
}

// TestPartner_Apply covers every partner on (1, 2).
func TestPartner_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    wallpaper.Partner
		want freq.Frequency2D
	}{
		{wallpaper.Negate, fr(-1, -2)},
		{wallpaper.NegateN, fr(-1, 2)},
		{wallpaper.NegateM, fr(1, -2)},
		{wallpaper.Swap, fr(2, 1)},
		{wallpaper.NegateSwap, fr(-2, -1)},
		{wallpaper.NegateMSwap, fr(-2, 1)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.p.Apply(fr(1, 2)), tc.p.String())
		if tc.p != wallpaper.NegateMSwap {
			assert.Equal(t, fr(1, 2), tc.p.Apply(tc.p.Apply(fr(1, 2))), "%s is an involution", tc.p)
		}
	}
	// quarter turn: order four
	q := wallpaper.NegateMSwap
	assert.Equal(t, fr(1, 2), q.Apply(q.Apply(q.Apply(q.Apply(fr(1, 2))))))
}

// TestNegation_Sign covers every negation on source (1, 2).
func TestNegation_Sign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    wallpaper.Negation
		want float64
	}{
		{wallpaper.NoNegation, 1},
		{wallpaper.NegateAll, -1},
		{wallpaper.NegateByN, -1},
		{wallpaper.NegateByM, 1},
		{wallpaper.NegateByNM, -1},
		{wallpaper.NegateByM1, -1},
		{wallpaper.NegateByN1, 1},
		{wallpaper.NegateByNM1, 1},
	}
	term := polar.New(2, 0.7)
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.n.Sign(fr(1, 2)), tc.n.String())
		got := tc.n.Apply(term, fr(1, 2))
		assert.Equal(t, tc.want*2, got.R, tc.n.String())
		assert.Equal(t, 0.7, got.Theta, tc.n.String())
	}
	// negative exponents keep their parity
	assert.Equal(t, -1.0, wallpaper.NegateByN.Sign(fr(-3, 0)))
}

// TestLattice_Basis checks the hexagonal basis and the fallback.
func TestLattice_Basis(t *testing.T) {
	t.Parallel()

	hex := wallpaper.Hexagon.Basis()
	assert.InDelta(t, -0.5, hex[1].X, 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, hex[1].Y, 1e-12)
	assert.Equal(t, 2.0, wallpaper.Rectangle.Basis()[0].X)
	assert.Equal(t, wallpaper.Square.Basis(), wallpaper.Lattice(99).Basis())
	assert.Equal(t, "Lattice(99)", wallpaper.Lattice(99).String())
}
