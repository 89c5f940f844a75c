package grid

import "fmt"

// ValidateSize returns ErrBadSize unless size > 0.
func ValidateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadSize, size)
	}

	return nil
}

// InBounds reports whether idx lies within a size×size grid.
// Complexity: O(1).
func InBounds(idx Indices, size int) bool {
	return idx.Row >= 0 && idx.Row < size && idx.Col >= 0 && idx.Col < size
}

// validate checks size first, then bounds.
func validate(idx Indices, size int) error {
	if err := ValidateSize(size); err != nil {
		return err
	}
	if !InBounds(idx, size) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfRange, idx, size, size)
	}

	return nil
}

// Center returns the offset of the middle cell, floor(size/2).
func Center(size int) int {
	return size / 2
}

// ToIndex1D maps idx to a row-major offset: Row*size + Col.
// Returns ErrBadSize or ErrOutOfRange on invalid input.
// Complexity: O(1).
func ToIndex1D(idx Indices, size int) (int, error) {
	if err := validate(idx, size); err != nil {
		return 0, err
	}

	return idx.Row*size + idx.Col, nil
}

// ToIndices2D converts a row-major offset back to unsigned indices.
// Returns ErrBadSize or ErrOutOfRange on invalid input.
// Complexity: O(1).
func ToIndices2D(index, size int) (Indices, error) {
	if err := ValidateSize(size); err != nil {
		return Indices{}, err
	}
	if index < 0 || index >= size*size {
		return Indices{}, fmt.Errorf("%w: flat index %d in %dx%d grid", ErrOutOfRange, index, size, size)
	}

	return Indices{Row: index / size, Col: index % size}, nil
}

// ToSigned centers unsigned indices on the middle cell.
//
//	col' = col - center
//	row' = (size-1-row) - center
//
// The row is flipped before centering so that increasing signed rows point
// upwards on screen.
func ToSigned(idx Indices, size int) (Indices, error) {
	if err := validate(idx, size); err != nil {
		return Indices{}, err
	}
	c := Center(size)

	return Indices{
		Row: (size - 1 - idx.Row) - c,
		Col: idx.Col - c,
	}, nil
}

// ToUnsigned is the exact inverse of ToSigned. Signed indices whose
// unsigned image falls outside the grid are rejected with ErrOutOfRange.
func ToUnsigned(signed Indices, size int) (Indices, error) {
	if err := ValidateSize(size); err != nil {
		return Indices{}, err
	}
	c := Center(size)
	idx := Indices{
		Row: size - 1 - (signed.Row + c),
		Col: signed.Col + c,
	}
	if !InBounds(idx, size) {
		return Indices{}, fmt.Errorf("%w: signed %s in %dx%d grid", ErrOutOfRange, signed, size, size)
	}

	return idx, nil
}
