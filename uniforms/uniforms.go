// Package uniforms packs a series and its symmetry metadata into the
// fixed-size float32 arrays a fragment shader reads.
//
// Every array is padded with zeros to maxTerms entries so the block can be
// uploaded to uniform arrays of constant length; Count tells the shader how
// many entries are live.
package uniforms

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symmetry/series"
	"github.com/katalvlaran/symmetry/wallpaper"
)

var (
	// ErrTooManyTerms indicates a series longer than the uniform arrays.
	ErrTooManyTerms = errors.New("uniforms: series has more terms than the shader accepts")
	// ErrBadCapacity indicates a non-positive maxTerms.
	ErrBadCapacity = errors.New("uniforms: capacity must be positive")
	// ErrSingularLattice indicates a lattice basis that cannot be inverted.
	ErrSingularLattice = errors.New("uniforms: lattice basis is singular")
)

// Block is the point-symmetry uniform block.
type Block struct {
	Count        int32
	Frequencies  []float32 // n0, m0, n1, m1, ...
	Coefficients []float32 // r0, θ0, r1, θ1, ...
	Rect         []float32 // re0, im0, re1, im1, ...
}

// Pack flattens s into a Block with room for maxTerms terms.
func Pack(s series.Series, maxTerms int) (Block, error) {
	if maxTerms <= 0 {
		return Block{}, fmt.Errorf("%w: got %d", ErrBadCapacity, maxTerms)
	}
	if s.Len() > maxTerms {
		return Block{}, fmt.Errorf("%w: %d > %d", ErrTooManyTerms, s.Len(), maxTerms)
	}

	b := Block{
		Count:        int32(s.Len()),
		Frequencies:  make([]float32, 2*maxTerms),
		Coefficients: make([]float32, 2*maxTerms),
		Rect:         make([]float32, 2*maxTerms),
	}
	for i, t := range s.Terms {
		r, theta := float32(t.Coef.R), float32(t.Coef.Theta)
		b.Frequencies[2*i] = float32(t.Freq.N)
		b.Frequencies[2*i+1] = float32(t.Freq.M)
		b.Coefficients[2*i] = r
		b.Coefficients[2*i+1] = theta
		b.Rect[2*i] = r * math32.Cos(theta)
		b.Rect[2*i+1] = r * math32.Sin(theta)
	}

	return b, nil
}

// WallpaperBlock adds the lattice and two-color metadata.
type WallpaperBlock struct {
	Block
	Lattice        [4]float32 // row-major basis vectors
	InverseLattice [9]float32 // 3×3 homogeneous inverse of Lattice
	ColorReversing int32
	Parity         int32
}

// PackWallpaper packs s together with the description of g.
func PackWallpaper(g *wallpaper.Group, s series.Series, maxTerms int) (WallpaperBlock, error) {
	if g == nil {
		return WallpaperBlock{}, fmt.Errorf("%w: nil group", wallpaper.ErrUnknownGroup)
	}
	b, err := Pack(s, maxTerms)
	if err != nil {
		return WallpaperBlock{}, err
	}

	basis := g.Lattice.Basis()
	a := mat.NewDense(2, 2, []float64{basis[0].X, basis[0].Y, basis[1].X, basis[1].Y})
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return WallpaperBlock{}, fmt.Errorf("%w: %s: %v", ErrSingularLattice, g.Lattice, err)
	}

	return WallpaperBlock{
		Block: b,
		Lattice: [4]float32{
			float32(basis[0].X), float32(basis[0].Y),
			float32(basis[1].X), float32(basis[1].Y),
		},
		InverseLattice: [9]float32{
			float32(inv.At(0, 0)), float32(inv.At(0, 1)), 0,
			float32(inv.At(1, 0)), float32(inv.At(1, 1)), 0,
			0, 0, 1,
		},
		ColorReversing: int32(g.ColorReversing),
		Parity:         int32(g.Parity),
	}, nil
}
