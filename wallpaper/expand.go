// SPDX-License-Identifier: MIT

package wallpaper

import (
	"github.com/katalvlaran/symmetry/freq"
	"github.com/katalvlaran/symmetry/polar"
	"github.com/katalvlaran/symmetry/series"
)

// orbit builds the term list for one edit. The base orbit shares baseValue;
// each rule then maps over the whole list and appends the results.
func orbit(g *Group, f freq.Frequency2D, first, baseValue polar.Polar) []series.Term {
	terms := []series.Term{{Freq: f, Coef: first}}
	if g.BaseRule != NoBase {
		terms[0].Coef = baseValue
		for _, p := range g.BaseRule.Orbit(f) {
			terms = append(terms, series.Term{Freq: p, Coef: baseValue})
		}
	}

	for _, r := range g.Rules {
		added := make([]series.Term, len(terms))
		for i, t := range terms {
			added[i] = series.Term{
				Freq: r.Partner.Apply(t.Freq),
				Coef: r.Negate.Apply(t.Coef, t.Freq),
			}
		}
		terms = append(terms, added...)
	}

	return terms
}

// Expand returns every term the group generates from term, starting with
// term itself: the base orbit in order, then one block per rule.
// Amplitudes are not rescaled. The result may repeat a frequency; a later
// entry overrides an earlier one (see series.Series.Dedupe).
func Expand(g *Group, term series.Term) []series.Term {
	return orbit(g, term.Freq, term.Coef, term.Coef)
}

// ExpandSeries expands every term of s in order and concatenates the results.
func ExpandSeries(g *Group, s series.Series) series.Series {
	var out series.Series
	for _, t := range s.Terms {
		out.Terms = append(out.Terms, Expand(g, t)...)
	}

	return out
}
