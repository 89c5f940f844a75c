// File: grid/orbits_test.go
package grid_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrbits_Sizes counts classes for each combination of flips.
func TestOrbits_Sizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		types []grid.PartnerType
		want  int
	}{
		{"none", nil, 9},
		{"identity", []grid.PartnerType{grid.Identity}, 9},
		{"flip_col", []grid.PartnerType{grid.FlipCol}, 6},
		{"flip_both", []grid.PartnerType{grid.FlipBoth}, 5},
		{"flip_col and flip_row", []grid.PartnerType{grid.FlipCol, grid.FlipRow}, 4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			orbits, err := grid.Orbits(3, tc.types)
			require.NoError(t, err)
			assert.Len(t, orbits, tc.want)

			cells := 0
			for _, o := range orbits {
				cells += len(o)
			}
			assert.Equal(t, 9, cells, "orbits partition the grid")
		})
	}
}

// TestOrbits_Members checks one class of the two-flip group.
func TestOrbits_Members(t *testing.T) {
	t.Parallel()

	orbits, err := grid.Orbits(3, []grid.PartnerType{grid.FlipCol, grid.FlipRow})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 6, 8}, orbits[0])
	assert.Equal(t, []int{4}, orbits[len(orbits)-1])

	_, err = grid.Orbits(0, nil)
	require.ErrorIs(t, err, grid.ErrBadSize)
	_, err = grid.Orbits(3, []grid.PartnerType{grid.PartnerType(9)})
	require.ErrorIs(t, err, grid.ErrUnknownPartner)
}
