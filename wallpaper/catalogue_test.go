// File: wallpaper/catalogue_test.go
package wallpaper_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/wallpaper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCatalogue_RoundTrip resolves every name to a group and back.
func TestCatalogue_RoundTrip(t *testing.T) {
	t.Parallel()

	require.Len(t, wallpaper.Groups, 17)
	require.Len(t, wallpaper.ColorReversingGroups, 46)

	names := wallpaper.Names()
	require.Len(t, names, 63)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		require.False(t, seen[name], "duplicate %s", name)
		seen[name] = true

		g, err := wallpaper.FindGroup(name)
		require.NoError(t, err, name)
		id, err := wallpaper.GroupID(g)
		require.NoError(t, err, name)
		assert.Equal(t, name, id)
	}
}

// TestCatalogue_Metadata: only two-color groups carry reversal metadata.
func TestCatalogue_Metadata(t *testing.T) {
	t.Parallel()

	for _, g := range wallpaper.Groups {
		assert.False(t, wallpaper.IsColorReversing(g.ID), g.ID)
		assert.Equal(t, wallpaper.NoReversal, g.ColorReversing, g.ID)
		assert.Equal(t, wallpaper.NoParity, g.Parity, g.ID)
	}
	for _, g := range wallpaper.ColorReversingGroups {
		assert.True(t, wallpaper.IsColorReversing(g.ID), g.ID)
		assert.NotEqual(t, wallpaper.NoReversal, g.ColorReversing, g.ID)
		if g.BaseRule == wallpaper.SquareBase {
			assert.Equal(t, wallpaper.Square, g.Lattice, g.ID)
		}
		if g.BaseRule == wallpaper.HexagonBase {
			assert.Equal(t, wallpaper.Hexagon, g.Lattice, g.ID)
		}
	}
}

// TestFindGroup_Spot checks a few entries field by field.
func TestFindGroup_Spot(t *testing.T) {
	t.Parallel()

	g, err := wallpaper.FindGroup("p4g_p4")
	require.NoError(t, err)
	assert.Equal(t, wallpaper.Square, g.Lattice)
	assert.Equal(t, wallpaper.SquareBase, g.BaseRule)
	assert.Equal(t, wallpaper.Horizontal, g.ColorReversing)
	assert.Equal(t, []wallpaper.Rule{
		{Partner: wallpaper.NegateMSwap},
		{Partner: wallpaper.Swap, Negate: wallpaper.NegateByNM1},
	}, g.Rules)

	g, err = wallpaper.FindGroup("p1_p1")
	require.NoError(t, err)
	assert.Empty(t, g.Rules)
	assert.Equal(t, wallpaper.OddNM, g.Parity)
	assert.Equal(t, wallpaper.Vertical, g.ColorReversing)
}

// TestGroupID_Structural resolves copies without a usable ID.
func TestGroupID_Structural(t *testing.T) {
	t.Parallel()

	orig, err := wallpaper.FindGroup("p4m")
	require.NoError(t, err)
	clone := *orig
	clone.ID = ""
	id, err := wallpaper.GroupID(&clone)
	require.NoError(t, err)
	assert.Equal(t, "p4m", id)

	// a wrong ID does not win over the structure
	clone.ID = "p1"
	id, err = wallpaper.GroupID(&clone)
	require.NoError(t, err)
	assert.Equal(t, "p4m", id)
}

// TestCatalogue_Errors covers unknown names and descriptors.
func TestCatalogue_Errors(t *testing.T) {
	t.Parallel()

	_, err := wallpaper.FindGroup("p5")
	require.ErrorIs(t, err, wallpaper.ErrUnknownGroup)

	_, err = wallpaper.GroupID(nil)
	require.ErrorIs(t, err, wallpaper.ErrUnknownGroup)

	odd := &wallpaper.Group{Lattice: wallpaper.Hexagon, Rules: []wallpaper.Rule{{Partner: wallpaper.NegateN}}}
	_, err = wallpaper.GroupID(odd)
	require.ErrorIs(t, err, wallpaper.ErrUnknownGroup)

	assert.False(t, wallpaper.IsColorReversing("p5"))
}
