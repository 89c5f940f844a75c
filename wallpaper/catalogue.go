// SPDX-License-Identifier: MIT

package wallpaper

import (
	"fmt"
	"slices"
)

func rules(rs ...Rule) []Rule { return rs }

// Groups are the 17 one-color wallpaper groups.
var Groups = []Group{
	// general lattice
	{ID: "p1", Lattice: Parallelogram},
	{ID: "p2", Lattice: Parallelogram, Rules: rules(Rule{Partner: Negate})},
	// rhombic lattice
	{ID: "cm", Lattice: Rhombus, Rules: rules(Rule{Partner: Swap})},
	{ID: "cmm", Lattice: Rhombus, Rules: rules(Rule{Partner: Negate}, Rule{Partner: Swap})},
	// rectangular lattice
	{ID: "pm", Lattice: Rectangle, Rules: rules(Rule{Partner: NegateM})},
	{ID: "pg", Lattice: Rectangle, Rules: rules(Rule{NegateM, NegateByN})},
	{ID: "pmm", Lattice: Rectangle, Rules: rules(Rule{Partner: Negate}, Rule{Partner: NegateN})},
	{ID: "pmg", Lattice: Rectangle, Rules: rules(Rule{Partner: Negate}, Rule{NegateM, NegateByN})},
	{ID: "pgg", Lattice: Rectangle, Rules: rules(Rule{Partner: Negate}, Rule{NegateM, NegateByNM})},
	// square lattice
	{ID: "p4", Lattice: Square, BaseRule: SquareBase},
	{ID: "p4m", Lattice: Square, BaseRule: SquareBase, Rules: rules(Rule{Partner: Swap})},
	{ID: "p4g", Lattice: Square, BaseRule: SquareBase, Rules: rules(Rule{Swap, NegateByNM})},
	// hexagonal lattice
	{ID: "p3", Lattice: Hexagon, BaseRule: HexagonBase},
	{ID: "p31m", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Partner: Swap})},
	{ID: "p3m1", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Partner: NegateSwap})},
	{ID: "p6", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Partner: Negate})},
	{ID: "p6m", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Partner: Negate}, Rule{Partner: Swap})},
}

// ColorReversingGroups are the 46 two-color groups, named
// <full symmetry>_<symmetry preserving the colors>.
var ColorReversingGroups = []Group{
	// parallelogram
	{ID: "p1_p1", Lattice: Parallelogram, Parity: OddNM, ColorReversing: Vertical},
	{ID: "p2_p1", Lattice: Parallelogram, Rules: rules(Rule{Negate, NegateAll}), ColorReversing: Vertical},
	{ID: "p2_p2", Lattice: Parallelogram, Rules: rules(Rule{Partner: Negate}), Parity: OddNM, ColorReversing: Vertical},

	// rectangle, one rule
	{ID: "pg_p1", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM1}), ColorReversing: Vertical},
	{ID: "pm_p1", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateAll}), ColorReversing: Horizontal},
	{ID: "pg_pg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM}), Parity: OddN, ColorReversing: Vertical},
	{ID: "pm_pg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM}), Parity: OddM, ColorReversing: Vertical},
	{ID: "cm_pg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM}), Parity: OddNM, ColorReversing: Vertical},
	{ID: "pmg_pg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM}, Rule{Negate, NegateAll}), ColorReversing: Horizontal},
	{ID: "pgg_pg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByNM}, Rule{Negate, NegateAll}), ColorReversing: Horizontal},
	{ID: "pm_pm_1", Lattice: Rectangle, Rules: rules(Rule{Partner: NegateN}), Parity: OddN, ColorReversing: Horizontal},
	{ID: "pm_pm_2", Lattice: Rectangle, Rules: rules(Rule{Partner: NegateN}), Parity: OddM, ColorReversing: Horizontal},
	{ID: "cm_pm", Lattice: Rectangle, Rules: rules(Rule{Partner: NegateN}), Parity: OddNM, ColorReversing: Horizontal},
	{ID: "pmm_pm", Lattice: Rectangle, Rules: rules(Rule{Partner: NegateN}, Rule{Negate, NegateAll}), ColorReversing: Vertical},
	{ID: "pmg_pm", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM1}, Rule{Negate, NegateAll}), ColorReversing: Vertical},

	// rhombus
	{ID: "cm_p1", Lattice: Rhombus, Rules: rules(Rule{Swap, NegateAll}), ColorReversing: Horizontal},
	{ID: "cmm_p2", Lattice: Rhombus, Rules: rules(Rule{Swap, NegateAll}, Rule{Partner: Negate}), ColorReversing: Horizontal},
	{ID: "pm_cm", Lattice: Rhombus, Rules: rules(Rule{Partner: Swap}), Parity: OddNM, ColorReversing: Horizontal},
	{ID: "cmm_cm", Lattice: Rhombus, Rules: rules(Rule{Swap, NegateAll}, Rule{Negate, NegateAll}), ColorReversing: Vertical},
	{ID: "pmm_cmm", Lattice: Rhombus, Rules: rules(Rule{Partner: Swap}, Rule{Partner: Negate}), Parity: OddNM, ColorReversing: Vertical},

	// rectangle, two rules
	{ID: "pmm_p2", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateAll}, Rule{Partner: Negate}), ColorReversing: Horizontal},
	{ID: "pmg_p2", Lattice: Rectangle, Rules: rules(Rule{Swap, NegateByM1}, Rule{Partner: Negate}), ColorReversing: Horizontal},
	{ID: "pgg_p2", Lattice: Rectangle, Rules: rules(Rule{Swap, NegateByNM1}, Rule{Partner: Negate}), ColorReversing: Horizontal},
	{ID: "pmm_pmm", Lattice: Rectangle, Rules: rules(Rule{Partner: NegateN}, Rule{Partner: Negate}), Parity: OddN, ColorReversing: Vertical},
	{ID: "cmm_pmm", Lattice: Rectangle, Rules: rules(Rule{Partner: NegateN}, Rule{Partner: Negate}), Parity: OddNM, ColorReversing: Horizontal},
	{ID: "pmm_pmg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM}, Rule{Partner: Negate}), Parity: OddM, ColorReversing: Horizontal},
	{ID: "pmg_pmg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM}, Rule{Partner: Negate}), Parity: OddN, ColorReversing: Horizontal},
	{ID: "cmm_pmg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByM}, Rule{Partner: Negate}), Parity: OddNM, ColorReversing: Vertical},
	{ID: "pmg_pgg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByNM}, Rule{Partner: Negate}), Parity: OddN, ColorReversing: Vertical},
	{ID: "cmm_pgg", Lattice: Rectangle, Rules: rules(Rule{NegateN, NegateByNM}, Rule{Partner: Negate}), Parity: OddNM, ColorReversing: Horizontal},

	// square, no base rule
	{ID: "p4_p2", Lattice: Square, Rules: rules(Rule{Partner: Negate}, Rule{NegateMSwap, NegateAll}), ColorReversing: Horizontal},
	{ID: "p4m_pmm", Lattice: Square, Rules: rules(Rule{Partner: Negate}, Rule{NegateMSwap, NegateAll}, Rule{Swap, NegateAll}), ColorReversing: Horizontal},
	{ID: "p4g_pgg", Lattice: Square, Rules: rules(Rule{Partner: Negate}, Rule{NegateMSwap, NegateAll}, Rule{Swap, NegateByNM1}), ColorReversing: Vertical},
	{ID: "p4m_cmm", Lattice: Square, Rules: rules(Rule{Partner: Negate}, Rule{NegateMSwap, NegateAll}, Rule{Partner: Swap}), ColorReversing: Vertical},
	{ID: "p4g_cmm", Lattice: Square, Rules: rules(Rule{Partner: Negate}, Rule{NegateMSwap, NegateAll}, Rule{Swap, NegateByNM}), ColorReversing: Vertical},

	// square, square base rule
	{ID: "p4_p4", Lattice: Square, BaseRule: SquareBase, Rules: rules(Rule{Partner: NegateMSwap}), Parity: OddNM, ColorReversing: Vertical},
	{ID: "p4m_p4", Lattice: Square, BaseRule: SquareBase, Rules: rules(Rule{Partner: NegateMSwap}, Rule{Swap, NegateAll}), ColorReversing: Vertical},
	{ID: "p4g_p4", Lattice: Square, BaseRule: SquareBase, Rules: rules(Rule{Partner: NegateMSwap}, Rule{Swap, NegateByNM1}), ColorReversing: Horizontal},
	{ID: "p4m_p4m", Lattice: Square, BaseRule: SquareBase, Rules: rules(Rule{Partner: NegateMSwap}, Rule{Partner: Swap}), Parity: OddNM, ColorReversing: Vertical},
	{ID: "p4m_p4g", Lattice: Square, BaseRule: SquareBase, Rules: rules(Rule{Partner: NegateMSwap}, Rule{Swap, NegateByNM}), Parity: OddNM, ColorReversing: Vertical},

	// hexagon
	{ID: "p31m_p3", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Swap, NegateAll}), ColorReversing: Horizontal},
	{ID: "p3m1_p3", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{NegateSwap, NegateAll}), ColorReversing: Horizontal},
	{ID: "p6_p3", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Negate, NegateAll}), ColorReversing: Horizontal},
	{ID: "p6m_p31m", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Partner: Swap}, Rule{Negate, NegateAll}), ColorReversing: Vertical},
	{ID: "p6m_p3m1", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Partner: NegateSwap}, Rule{Negate, NegateAll}), ColorReversing: Vertical},
	{ID: "p6m_p6", Lattice: Hexagon, BaseRule: HexagonBase, Rules: rules(Rule{Partner: Negate}, Rule{Swap, NegateAll}), ColorReversing: Vertical},
}

// index maps every catalogued name to its entry. Built once; read-only.
var (
	index    = make(map[string]*Group, len(Groups)+len(ColorReversingGroups))
	reversed = make(map[string]bool, len(ColorReversingGroups))
)

func init() {
	for i := range Groups {
		index[Groups[i].ID] = &Groups[i]
	}
	for i := range ColorReversingGroups {
		index[ColorReversingGroups[i].ID] = &ColorReversingGroups[i]
		reversed[ColorReversingGroups[i].ID] = true
	}
}

// FindGroup returns the catalogued group named name.
func FindGroup(name string) (*Group, error) {
	g, ok := index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}

	return g, nil
}

// sameShape compares everything but the ID.
func sameShape(a, b *Group) bool {
	return a.Lattice == b.Lattice &&
		a.BaseRule == b.BaseRule &&
		a.Parity == b.Parity &&
		a.ColorReversing == b.ColorReversing &&
		slices.Equal(a.Rules, b.Rules)
}

// GroupID returns the catalogue name of g. A group carrying a catalogued
// ID resolves directly; otherwise the first entry with the same lattice,
// rules and metadata is used.
func GroupID(g *Group) (string, error) {
	if g == nil {
		return "", fmt.Errorf("%w: nil group", ErrUnknownGroup)
	}
	if known, ok := index[g.ID]; ok && sameShape(known, g) {
		return g.ID, nil
	}
	for _, list := range [][]Group{Groups, ColorReversingGroups} {
		for i := range list {
			if sameShape(&list[i], g) {
				return list[i].ID, nil
			}
		}
	}

	return "", fmt.Errorf("%w: no catalogued group matches %s lattice with %d rules", ErrUnknownGroup, g.Lattice, len(g.Rules))
}

// Names lists the one-color groups, then the two-color groups, in
// catalogue order.
func Names() []string {
	out := make([]string, 0, len(Groups)+len(ColorReversingGroups))
	for _, g := range Groups {
		out = append(out, g.ID)
	}
	for _, g := range ColorReversingGroups {
		out = append(out, g.ID)
	}

	return out
}

// IsColorReversing reports whether name is a two-color group.
func IsColorReversing(name string) bool {
	return reversed[name]
}
