// File: grid/grid_test.go
package grid_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/grid"
	"github.com/stretchr/testify/require"
)

// TestToIndices2D_Errors covers bad sizes and out-of-range flat indices.
func TestToIndices2D_Errors(t *testing.T) {
	t.Parallel()

	_, err := grid.ToIndices2D(3, 0)
	require.ErrorIs(t, err, grid.ErrBadSize)
	_, err = grid.ToIndices2D(3, -1)
	require.ErrorIs(t, err, grid.ErrBadSize)
	_, err = grid.ToIndices2D(-1, 4)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = grid.ToIndices2D(16, 4)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestToIndices2D_Converts checks row-major decoding.
func TestToIndices2D_Converts(t *testing.T) {
	t.Parallel()

	idx, err := grid.ToIndices2D(0, 4)
	require.NoError(t, err)
	require.Equal(t, grid.Indices{Row: 0, Col: 0}, idx)

	idx, err = grid.ToIndices2D(4, 4)
	require.NoError(t, err)
	require.Equal(t, grid.Indices{Row: 1, Col: 0}, idx)
}

// TestToIndex1D covers error priority (size before bounds) and encoding.
func TestToIndex1D(t *testing.T) {
	t.Parallel()

	cell := grid.Indices{Row: 2, Col: 1}
	_, err := grid.ToIndex1D(cell, 0)
	require.ErrorIs(t, err, grid.ErrBadSize)
	_, err = grid.ToIndex1D(cell, -1)
	require.ErrorIs(t, err, grid.ErrBadSize)

	for _, bad := range []grid.Indices{{Row: -1}, {Row: 20}, {Col: -1}, {Col: 20}} {
		_, err = grid.ToIndex1D(bad, 4)
		require.ErrorIs(t, err, grid.ErrOutOfRange, "cell %v", bad)
	}

	index, err := grid.ToIndex1D(cell, 4)
	require.NoError(t, err)
	require.Equal(t, 9, index)
}

// TestFlatRoundTrip checks ToIndices2D ∘ ToIndex1D on every cell.
func TestFlatRoundTrip(t *testing.T) {
	t.Parallel()

	for size := 1; size <= 6; size++ {
		for i := 0; i < size*size; i++ {
			idx, err := grid.ToIndices2D(i, size)
			require.NoError(t, err)
			back, err := grid.ToIndex1D(idx, size)
			require.NoError(t, err)
			require.Equal(t, i, back)
		}
	}
}

// TestToSigned_KnownValues pins the centering convention on a 5×5 grid.
func TestToSigned_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   grid.Indices
		want grid.Indices
	}{
		{"center", grid.Indices{Row: 2, Col: 2}, grid.Indices{Row: 0, Col: 0}},
		{"top left", grid.Indices{Row: 0, Col: 0}, grid.Indices{Row: 2, Col: -2}},
		{"bottom right", grid.Indices{Row: 4, Col: 4}, grid.Indices{Row: -2, Col: 2}},
		{"upper right", grid.Indices{Row: 1, Col: 3}, grid.Indices{Row: 1, Col: 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := grid.ToSigned(tc.in, 5)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestSignedRoundTrip checks ToUnsigned(ToSigned(p)) == p for odd and even sizes.
func TestSignedRoundTrip(t *testing.T) {
	t.Parallel()

	for size := 1; size <= 8; size++ {
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				p := grid.Indices{Row: row, Col: col}
				signed, err := grid.ToSigned(p, size)
				require.NoError(t, err)
				back, err := grid.ToUnsigned(signed, size)
				require.NoError(t, err)
				require.Equal(t, p, back, "size %d", size)
			}
		}
	}
}

// TestSigned_Errors rejects bad sizes and out-of-range input on both directions.
func TestSigned_Errors(t *testing.T) {
	t.Parallel()

	_, err := grid.ToSigned(grid.Indices{}, 0)
	require.ErrorIs(t, err, grid.ErrBadSize)
	_, err = grid.ToSigned(grid.Indices{Row: 5}, 5)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = grid.ToUnsigned(grid.Indices{}, -3)
	require.ErrorIs(t, err, grid.ErrBadSize)
	_, err = grid.ToUnsigned(grid.Indices{Row: 3}, 5)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = grid.ToUnsigned(grid.Indices{Col: -3}, 5)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}
