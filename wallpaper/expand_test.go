// File: wallpaper/expand_test.go
package wallpaper_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/freq"
	"github.com/katalvlaran/symmetry/series"
	"github.com/katalvlaran/symmetry/wallpaper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGroup(t testing.TB, name string) *wallpaper.Group {
	t.Helper()
	g, err := wallpaper.FindGroup(name)
	require.NoError(t, err)
	return g
}

func freqs(terms []series.Term) []freq.Frequency2D {
	out := make([]freq.Frequency2D, len(terms))
	for i, t := range terms {
		out[i] = t.Freq
	}
	return out
}

// TestExpand_P4 keeps amplitude and phase across the square orbit.
func TestExpand_P4(t *testing.T) {
	t.Parallel()

	got := wallpaper.Expand(mustGroup(t, "p4"), series.NewTerm(1, 2, 1, 0))
	assert.Equal(t, []freq.Frequency2D{fr(1, 2), fr(2, -1), fr(-1, -2), fr(-2, 1)}, freqs(got))
	for _, term := range got {
		assert.Equal(t, 1.0, term.Coef.R)
		assert.Equal(t, 0.0, term.Coef.Theta)
	}

	got = wallpaper.Expand(mustGroup(t, "p4"), series.NewTerm(1, 0, 0.5, 2))
	assert.Equal(t, []freq.Frequency2D{fr(1, 0), fr(0, -1), fr(-1, 0), fr(0, 1)}, freqs(got))
	for _, term := range got {
		assert.Equal(t, series.NewTerm(0, 0, 0.5, 2).Coef, term.Coef)
	}
}

// TestExpand_Pg: the glide sign depends on the source n.
func TestExpand_Pg(t *testing.T) {
	t.Parallel()

	pg := mustGroup(t, "pg")
	assert.Equal(t,
		[]series.Term{series.NewTerm(2, 1, 1, 0), series.NewTerm(2, -1, 1, 0)},
		wallpaper.Expand(pg, series.NewTerm(2, 1, 1, 0)))
	assert.Equal(t,
		[]series.Term{series.NewTerm(1, 1, 1, 0), series.NewTerm(1, -1, -1, 0)},
		wallpaper.Expand(pg, series.NewTerm(1, 1, 1, 0)))
}

// TestExpand_SignFromSource: the partner's own frequencies would give the
// opposite sign.
func TestExpand_SignFromSource(t *testing.T) {
	t.Parallel()

	g := &wallpaper.Group{Lattice: wallpaper.Rectangle, Rules: []wallpaper.Rule{{Partner: wallpaper.Swap, Negate: wallpaper.NegateByN}}}
	got := wallpaper.Expand(g, series.NewTerm(1, 2, 3, 0))
	require.Len(t, got, 2)
	assert.Equal(t, series.NewTerm(2, 1, -3, 0), got[1])
}

// TestExpand_Sizes: b·2^r terms.
func TestExpand_Sizes(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"p1": 1, "p2": 2, "pmm": 4, "p4": 4, "p4m": 8, "p3": 3, "p6m": 12,
		"p4m_pmm": 8, "p6m_p6": 12,
	}
	for name, want := range tests {
		assert.Len(t, wallpaper.Expand(mustGroup(t, name), series.NewTerm(1, 2, 1, 0)), want, name)
	}
}

// TestExpandSeries concatenates per-term expansions.
func TestExpandSeries(t *testing.T) {
	t.Parallel()

	s := series.Series{Terms: []series.Term{series.NewTerm(1, 0, 1, 0), series.NewTerm(0, 2, 0.5, 1)}}
	got := wallpaper.ExpandSeries(mustGroup(t, "p2"), s)
	assert.Equal(t, []freq.Frequency2D{fr(1, 0), fr(-1, 0), fr(0, 2), fr(0, -2)}, freqs(got.Terms))
}
