// SPDX-License-Identifier: MIT

package rosette

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/symmetry/freq"
	"github.com/katalvlaran/symmetry/grid"
	"github.com/katalvlaran/symmetry/polar"
	"github.com/katalvlaran/symmetry/series"
)

// Symmetry combines one optional self rule and any number of partner rules
// over a size×size coefficient grid. It is immutable once built.
type Symmetry struct {
	size         int
	selfRule     Rule
	hasSelf      bool
	partnerRules []Rule
	logger       *slog.Logger
}

// Update is one coefficient write produced by Propagate.
type Update struct {
	Index   int          // row-major offset
	Indices grid.Indices // unsigned cell
	Value   polar.Polar
}

// validateRules rejects empty lists, invalid rules and two rules sharing a
// partner type, which would make propagation ambiguous.
func validateRules(rules []Rule) error {
	if len(rules) == 0 {
		return ErrNoRules
	}
	seen := make(map[grid.PartnerType]bool, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		pt := PartnerTypeOf(r)
		if seen[pt] {
			return fmt.Errorf("%w: %s", ErrDuplicatePartner, pt)
		}
		seen[pt] = true
	}

	return nil
}

// New builds a Symmetry for a size×size grid.
// The identity-partnered rule (if any) becomes the self rule; the others
// keep their order as partner rules.
// Returns grid.ErrBadSize, ErrNoRules, ErrBadRule or ErrDuplicatePartner.
func New(size int, rules []Rule, opts ...Option) (*Symmetry, error) {
	if err := grid.ValidateSize(size); err != nil {
		return nil, err
	}
	if err := validateRules(rules); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	s := &Symmetry{size: size, logger: o.logger}
	for _, r := range rules {
		if PartnerTypeOf(r) == grid.Identity {
			s.selfRule = r
			s.hasSelf = true
			continue
		}
		s.partnerRules = append(s.partnerRules, r)
	}

	return s, nil
}

// Size returns the grid size.
func (s *Symmetry) Size() int { return s.size }

// SelfRule returns the self rule, if one was given.
func (s *Symmetry) SelfRule() (Rule, bool) { return s.selfRule, s.hasSelf }

// PartnerRules returns a copy of the partner rules in order.
func (s *Symmetry) PartnerRules() []Rule {
	out := make([]Rule, len(s.partnerRules))
	copy(out, s.partnerRules)
	return out
}

// FirstRule is the rule that decides grid layout and editability:
// the self rule if present, otherwise the first partner rule.
func (s *Symmetry) FirstRule() Rule {
	if s.hasSelf {
		return s.selfRule
	}

	return s.partnerRules[0]
}

// diffSum converts unsigned indices to the (diff, sum) of the first rule.
func (s *Symmetry) diffSum(idx grid.Indices) (freq.DiffSum, error) {
	signed, err := grid.ToSigned(idx, s.size)
	if err != nil {
		return freq.DiffSum{}, err
	}

	return IndicesToDiffSum(signed, s.FirstRule()), nil
}

// IsEditable reports whether a cell can hold a term. It is false exactly
// for the sentinel cells where diff is odd and sum is 0.
func (s *Symmetry) IsEditable(idx grid.Indices) (bool, error) {
	ds, err := s.diffSum(idx)
	if err != nil {
		return false, err
	}

	return ds.Diff%2 == 0 || ds.Sum != 0, nil
}

// FrequencyMap labels a cell with its frequencies (n, m).
func (s *Symmetry) FrequencyMap(idx grid.Indices) (freq.Frequency2D, error) {
	ds, err := s.diffSum(idx)
	if err != nil {
		return freq.Frequency2D{}, err
	}

	return freq.FromDiffSum(ds), nil
}

// pending is a cell and the value the rules require there.
type pending struct {
	idx   grid.Indices
	value polar.Polar
}

// Propagate computes, without touching any array, every coefficient write
// required when the cell at flat index receives term.
//
// Algorithm:
//  1. Enforce the self rule on term (projection, zero fallback or pass-through).
//  2. Seed the list with (cell, enforced term).
//  3. For each partner rule in order, map over the current list, compute
//     each entry's partner cell and value, and append the results.
//  4. Return the list in order; later writes win on shared cells.
//
// With r partner rules the list holds at most 2^r entries.
func (s *Symmetry) Propagate(index int, term polar.Polar) ([]Update, error) {
	idx, err := grid.ToIndices2D(index, s.size)
	if err != nil {
		return nil, err
	}
	signed, err := grid.ToSigned(idx, s.size)
	if err != nil {
		return nil, err
	}

	first := term
	if s.hasSelf {
		diff := FreqDiff(s.selfRule, signed.Col)
		enforced, ok, err := EnforceSelfConstraint(s.selfRule, diff, term)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Warn("term invalid for rotation constraint, setting to 0",
				slog.Int("index", index),
				slog.Int("diff", diff),
				slog.String("rule", s.selfRule.String()))
		}
		first = enforced
	}

	list := []pending{{idx: idx, value: first}}
	for _, r := range s.partnerRules {
		pt := PartnerTypeOf(r)
		added := make([]pending, 0, len(list))
		for _, p := range list {
			partner, err := pt.Partner(p.idx, s.size)
			if err != nil {
				return nil, err
			}
			partnerSigned, err := grid.ToSigned(partner, s.size)
			if err != nil {
				return nil, err
			}
			value, err := PartnerTerm(r, FreqDiff(r, partnerSigned.Col), p.value)
			if err != nil {
				return nil, err
			}
			added = append(added, pending{idx: partner, value: value})
		}
		list = append(list, added...)
	}

	updates := make([]Update, len(list))
	for i, p := range list {
		flat, err := grid.ToIndex1D(p.idx, s.size)
		if err != nil {
			return nil, err
		}
		updates[i] = Update{Index: flat, Indices: p.idx, Value: p.value}
	}

	return updates, nil
}

// UpdateCoefficients writes term at flat index and every partner
// coefficient the rules require into coeffs, last write wins.
// coeffs must have exactly size² entries; nothing is written on error.
// Not safe for concurrent use on the same slice.
func (s *Symmetry) UpdateCoefficients(coeffs []polar.Polar, index int, term polar.Polar) error {
	if len(coeffs) != s.size*s.size {
		return fmt.Errorf("%w: got %d, want %d", ErrCoefficientCount, len(coeffs), s.size*s.size)
	}
	updates, err := s.Propagate(index, term)
	if err != nil {
		return err
	}
	for _, u := range updates {
		coeffs[u.Index] = u.Value
	}

	return nil
}

// Terms collects the non-zero coefficients of editable cells as a series
// labelled by FrequencyMap, in row-major order.
func (s *Symmetry) Terms(coeffs []polar.Polar) (series.Series, error) {
	if len(coeffs) != s.size*s.size {
		return series.Series{}, fmt.Errorf("%w: got %d, want %d", ErrCoefficientCount, len(coeffs), s.size*s.size)
	}

	var out series.Series
	for i, c := range coeffs {
		if c.IsZero() {
			continue
		}
		idx, err := grid.ToIndices2D(i, s.size)
		if err != nil {
			return series.Series{}, err
		}
		editable, err := s.IsEditable(idx)
		if err != nil {
			return series.Series{}, err
		}
		if !editable {
			continue
		}
		f, err := s.FrequencyMap(idx)
		if err != nil {
			return series.Series{}, err
		}
		out.Terms = append(out.Terms, series.Term{Freq: f, Coef: c})
	}

	return out, nil
}

// Orbits groups the cells that an edit links together: each class is the
// set of row-major offsets one UpdateCoefficients call can write.
func (s *Symmetry) Orbits() ([][]int, error) {
	types := make([]grid.PartnerType, len(s.partnerRules))
	for i, r := range s.partnerRules {
		types[i] = PartnerTypeOf(r)
	}

	return grid.Orbits(s.size, types)
}
