// SPDX-License-Identifier: MIT

package rosette

import (
	"fmt"

	"github.com/katalvlaran/symmetry/freq"
	"github.com/katalvlaran/symmetry/grid"
	"github.com/katalvlaran/symmetry/polar"
)

// PartnerTypeOf returns the grid involution a rule induces.
//
// A mirror on exactly one side of the equation swaps (n, m) → (m, n),
// which flips the column (diff → -diff). An inversion negates both
// frequencies and flips both axes; combined with the swap only the row
// (sum → -sum) is flipped. The cases reduce to:
//
//	invert ∧ swap → FlipRow
//	invert        → FlipBoth
//	swap          → FlipCol
//	otherwise     → Identity
func PartnerTypeOf(r Rule) grid.PartnerType {
	swap := r.InputReflection != r.OutputReflection
	invert := r.InputInversion

	switch {
	case invert && swap:
		return grid.FlipRow
	case invert:
		return grid.FlipBoth
	case swap:
		return grid.FlipCol
	default:
		return grid.Identity
	}
}

// inputFlips counts the involutions applied to the input.
func inputFlips(r Rule) int {
	n := 0
	if r.InputInversion {
		n++
	}
	if r.InputReflection {
		n++
	}

	return n
}

// RotationPower returns the exponent P in
//
//	partner = rotate_k^P · (conj?) original
//
// P = inputSign·[InputRotation]·diff - outputSign·OutputRotations, where
// inputSign is -1 for an odd number of input flips and outputSign is -1
// when the output is mirrored.
func RotationPower(r Rule, diff int) int {
	inputSign := 1
	if inputFlips(r)%2 == 1 {
		inputSign = -1
	}
	inputRotation := 0
	if r.InputRotation {
		inputRotation = 1
	}
	outputSign := 1
	if r.OutputReflection {
		outputSign = -1
	}

	return inputSign*inputRotation*diff - outputSign*r.OutputRotations
}

// isPureRotation reports whether r reads f∘rotate_k = rotate_k^u∘f.
func isPureRotation(r Rule) bool {
	return r.InputRotation && !r.InputReflection && !r.InputInversion && !r.OutputReflection
}

// FreqDiff returns the frequency difference n-m for a signed grid column.
//
// Only a pure rotation rule constrains which differences are legal:
// a_nm = rotate_k^(diff-u) a_nm holds iff diff ≡ u (mod k). For such rules
// the column is reparametrised as diff = k·col + u so that every column is
// legal. Every other rule uses the column as-is; rules with reflections
// constrain values or pair cells, not columns.
func FreqDiff(r Rule, signedCol int) int {
	if !isPureRotation(r) {
		return signedCol
	}

	return r.RotationFolds*signedCol + r.OutputRotations
}

// IndicesToDiffSum picks the (diff, sum) diagonal of a signed grid cell.
func IndicesToDiffSum(signed grid.Indices, r Rule) freq.DiffSum {
	diff := FreqDiff(r, signed.Col)
	return freq.DiffSum{Diff: diff, Sum: freq.DiffRowToSum(diff, signed.Row)}
}

// mod is the non-negative remainder of x modulo n.
func mod(x, n int) int {
	return ((x % n) + n) % n
}

// EnforceSelfConstraint forces term to satisfy a self rule
//
//	a_nm = rotate_k^P (mirror?) a_nm
//
// With an output mirror the constraint puts a_nm on the line through the
// origin at angle (2π/k)·P; term is projected onto that line. Without a
// mirror the constraint only holds when P ≡ 0 (mod k); otherwise the term is
// replaced by zero and ok is false. Any other term passes through unchanged.
//
// Returns ErrNotSelfRule if r does not pair a cell with itself.
func EnforceSelfConstraint(r Rule, diff int, term polar.Polar) (out polar.Polar, ok bool, err error) {
	if pt := PartnerTypeOf(r); pt != grid.Identity {
		return polar.Polar{}, false, fmt.Errorf("%w: partner type %s", ErrNotSelfRule, pt)
	}

	folds := r.RotationFolds
	power := RotationPower(r, diff)

	if r.OutputReflection {
		direction := polar.RootOfUnity(folds, power)
		return polar.ProjectOnto(term, direction), true, nil
	}

	if mod(power, folds) != 0 {
		return polar.Zero, false, nil
	}

	return term, true, nil
}

// PartnerTerm computes the coefficient a partner rule requires at the
// partner cell: rotate_k^P applied to term, conjugated first when the
// output is mirrored. diff is the partner cell's frequency difference.
//
// Returns ErrSelfRule if r pairs a cell with itself.
func PartnerTerm(r Rule, diff int, term polar.Polar) (polar.Polar, error) {
	if PartnerTypeOf(r) == grid.Identity {
		return polar.Polar{}, ErrSelfRule
	}

	flipped := term
	if r.OutputReflection {
		flipped = term.Conj()
	}
	factor := polar.RootOfUnity(r.RotationFolds, RotationPower(r, diff))

	return flipped.Mul(factor), nil
}
