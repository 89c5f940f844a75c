// SPDX-License-Identifier: MIT

package rosette

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rosette operations.
var (
	// ErrNoRules indicates an empty rule list.
	ErrNoRules = errors.New("rosette: at least one rule is required")
	// ErrDuplicatePartner indicates two rules resolving to the same partner type.
	ErrDuplicatePartner = errors.New("rosette: multiple rules with the same pairing")
	// ErrBadRule indicates a rule with non-positive folds or negative output rotations.
	ErrBadRule = errors.New("rosette: invalid rule")
	// ErrCoefficientCount indicates a coefficient slice whose length is not size².
	ErrCoefficientCount = errors.New("rosette: coefficient count does not match grid")
	// ErrNotSelfRule indicates a partner rule passed where a self rule is required.
	ErrNotSelfRule = errors.New("rosette: rule is not a self-partner constraint")
	// ErrSelfRule indicates a self rule passed where a partner rule is required.
	ErrSelfRule = errors.New("rosette: rule is a self-partner constraint")
	// ErrUnknownOption indicates an unknown group option id.
	ErrUnknownOption = errors.New("rosette: unknown group option")
)

// Rule describes one point symmetry
//
//	f rotate_k? invert? mirror? = rotate_k^u mirror? f
//
// RotationFolds is k, OutputRotations is u.
type Rule struct {
	RotationFolds    int
	InputRotation    bool
	InputReflection  bool
	InputInversion   bool
	OutputRotations  int
	OutputReflection bool
}

// Identity is the trivial rule f = f.
var Identity = Rule{RotationFolds: 1}

// Validate returns ErrBadRule for RotationFolds < 1 or OutputRotations < 0.
func (r Rule) Validate() error {
	if r.RotationFolds < 1 {
		return fmt.Errorf("%w: rotation folds %d < 1", ErrBadRule, r.RotationFolds)
	}
	if r.OutputRotations < 0 {
		return fmt.Errorf("%w: output rotations %d < 0", ErrBadRule, r.OutputRotations)
	}

	return nil
}

// String renders the rule as an equation, e.g. "f∘rot5∘mirror = mirror∘f".
func (r Rule) String() string {
	in := []string{"f"}
	if r.InputRotation {
		in = append(in, fmt.Sprintf("rot%d", r.RotationFolds))
	}
	if r.InputInversion {
		in = append(in, "invert")
	}
	if r.InputReflection {
		in = append(in, "mirror")
	}

	var out []string
	if r.OutputRotations != 0 {
		out = append(out, fmt.Sprintf("rot%d^%d", r.RotationFolds, r.OutputRotations))
	}
	if r.OutputReflection {
		out = append(out, "mirror")
	}
	out = append(out, "f")

	return strings.Join(in, "∘") + " = " + strings.Join(out, "∘")
}
