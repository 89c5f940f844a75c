// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/symmetry.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a non-positive grid size.
	ErrBadSize = errors.New("grid: size must be positive")
	// ErrOutOfRange indicates indices outside [0, size) in either axis.
	ErrOutOfRange = errors.New("grid: indices out of range")
	// ErrUnknownPartner indicates a PartnerType outside the closed set.
	ErrUnknownPartner = errors.New("grid: unknown partner type")
)

// Indices addresses a single cell of a square grid.
// Depending on context the pair is unsigned (0 ≤ Row,Col < size) or
// signed (centered, see ToSigned).
type Indices struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (idx Indices) String() string {
	return fmt.Sprintf("(%d,%d)", idx.Row, idx.Col)
}

// PartnerType selects which grid involution relates a cell to the cell a
// symmetry rule pairs it with.
type PartnerType int

const (
	// Identity pairs a cell with itself.
	Identity PartnerType = iota
	// FlipCol mirrors the column: (row, size-1-col).
	FlipCol
	// FlipRow mirrors the row: (size-1-row, col).
	FlipRow
	// FlipBoth mirrors both axes: (size-1-row, size-1-col).
	FlipBoth
)

// PartnerTypes lists every PartnerType in declaration order.
var PartnerTypes = []PartnerType{Identity, FlipCol, FlipRow, FlipBoth}

// String returns the snake_case name used by presets and logs.
func (p PartnerType) String() string {
	switch p {
	case Identity:
		return "identity"
	case FlipCol:
		return "flip_col"
	case FlipRow:
		return "flip_row"
	case FlipBoth:
		return "flip_both"
	default:
		return fmt.Sprintf("PartnerType(%d)", int(p))
	}
}
