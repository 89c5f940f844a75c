// SPDX-License-Identifier: MIT

package wallpaper

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/symmetry/freq"
	"github.com/katalvlaran/symmetry/grid"
	"github.com/katalvlaran/symmetry/polar"
	"github.com/katalvlaran/symmetry/series"
)

// Editor applies a wallpaper group to a size×size coefficient grid whose
// cell (row, col) holds the term with n = signed col, m = signed row.
type Editor struct {
	size   int
	group  *Group
	logger *slog.Logger
}

// NewEditor builds an editor for g on a size×size grid.
// Returns grid.ErrBadSize or ErrUnknownGroup for a nil group.
func NewEditor(size int, g *Group, opts ...Option) (*Editor, error) {
	if err := grid.ValidateSize(size); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: nil group", ErrUnknownGroup)
	}
	o := gatherOptions(opts)

	return &Editor{size: size, group: g, logger: o.logger}, nil
}

// Size returns the grid size.
func (e *Editor) Size() int { return e.size }

// Group returns the group the editor enforces.
func (e *Editor) Group() *Group { return e.group }

// FrequencyMap labels a cell with (n, m) = (signed col, signed row).
func (e *Editor) FrequencyMap(idx grid.Indices) (freq.Frequency2D, error) {
	signed, err := grid.ToSigned(idx, e.size)
	if err != nil {
		return freq.Frequency2D{}, err
	}

	return freq.Frequency2D{N: signed.Col, M: signed.Row}, nil
}

// InverseFrequencyMap returns the cell holding f, or grid.ErrOutOfRange.
func (e *Editor) InverseFrequencyMap(f freq.Frequency2D) (grid.Indices, error) {
	return grid.ToUnsigned(grid.Indices{Row: f.M, Col: f.N}, e.size)
}

// IsEditable reports whether a cell may be edited. Hexagonal orbits
// involve -(n+m), so cells with |n+m| beyond the grid radius are locked.
func (e *Editor) IsEditable(idx grid.Indices) (bool, error) {
	f, err := e.FrequencyMap(idx)
	if err != nil {
		return false, err
	}
	if e.group.BaseRule != HexagonBase {
		return true, nil
	}

	return abs(f.N+f.M) <= grid.Center(e.size), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// UpdateCoefficients writes term at flat index and every coefficient the
// group ties to it into coeffs, last write wins.
//
// With a base rule the orbit members share term scaled by 1/orbit size;
// each rule then maps over the list and appends. Frequencies that fall
// outside the grid are skipped and logged at debug level. Nothing is
// written on error.
func (e *Editor) UpdateCoefficients(coeffs []polar.Polar, index int, term polar.Polar) error {
	if len(coeffs) != e.size*e.size {
		return fmt.Errorf("%w: got %d, want %d", ErrCoefficientCount, len(coeffs), e.size*e.size)
	}
	idx, err := grid.ToIndices2D(index, e.size)
	if err != nil {
		return err
	}
	f, err := e.FrequencyMap(idx)
	if err != nil {
		return err
	}

	base := term
	if e.group.BaseRule != NoBase {
		base = term.Scale(1 / float64(len(e.group.BaseRule.Orbit(f))+1))
	}

	terms := orbit(e.group, f, term, base)
	writes := make([]int, len(terms))
	for i, t := range terms {
		cell, err := e.InverseFrequencyMap(t.Freq)
		if errors.Is(err, grid.ErrOutOfRange) {
			e.logger.Debug("partner frequency outside grid, skipped",
				slog.String("group", e.group.ID),
				slog.String("freq", t.Freq.String()))
			writes[i] = -1
			continue
		}
		if err != nil {
			return err
		}
		if writes[i], err = grid.ToIndex1D(cell, e.size); err != nil {
			return err
		}
	}
	for i, w := range writes {
		if w >= 0 {
			coeffs[w] = terms[i].Coef
		}
	}

	return nil
}

// Terms collects the non-zero coefficients of editable cells as a series,
// in row-major order.
func (e *Editor) Terms(coeffs []polar.Polar) (series.Series, error) {
	if len(coeffs) != e.size*e.size {
		return series.Series{}, fmt.Errorf("%w: got %d, want %d", ErrCoefficientCount, len(coeffs), e.size*e.size)
	}

	var out series.Series
	for i, c := range coeffs {
		if c.IsZero() {
			continue
		}
		idx, err := grid.ToIndices2D(i, e.size)
		if err != nil {
			return series.Series{}, err
		}
		editable, err := e.IsEditable(idx)
		if err != nil {
			return series.Series{}, err
		}
		if !editable {
			continue
		}
		f, err := e.FrequencyMap(idx)
		if err != nil {
			return series.Series{}, err
		}
		out.Terms = append(out.Terms, series.Term{Freq: f, Coef: c})
	}

	return out, nil
}
