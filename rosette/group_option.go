package rosette

import "fmt"

// InputSymmetry is the input side of a rule as offered by an editor.
type InputSymmetry int

const (
	// SymIdentity: f = …
	SymIdentity InputSymmetry = iota
	// SymRotation: f∘rotate_k = …
	SymRotation
	// SymMirror: f∘mirror = …
	SymMirror
	// SymComplexInversion: f∘invert = …
	SymComplexInversion
	// SymCircleInversion: f∘invert∘mirror = …
	SymCircleInversion
	// SymRotoInversion: f∘rotate_k∘invert∘mirror = …
	SymRotoInversion
)

// String returns the label shown to users.
func (s InputSymmetry) String() string {
	switch s {
	case SymIdentity:
		return "Identity"
	case SymRotation:
		return "Rotation"
	case SymMirror:
		return "Mirror"
	case SymComplexInversion:
		return "Complex-inversion"
	case SymCircleInversion:
		return "Circle Inversion"
	case SymRotoInversion:
		return "Roto-inversion"
	default:
		return ""
	}
}

// HasRotation reports whether the input is rotated.
func (s InputSymmetry) HasRotation() bool {
	return s == SymRotation || s == SymRotoInversion
}

// HasReflection reports whether the input is mirrored.
func (s InputSymmetry) HasReflection() bool {
	switch s {
	case SymMirror, SymCircleInversion, SymRotoInversion:
		return true
	}

	return false
}

// HasInversion reports whether the input is inverted.
func (s InputSymmetry) HasInversion() bool {
	switch s {
	case SymComplexInversion, SymCircleInversion, SymRotoInversion:
		return true
	}

	return false
}

// Constraint is one rule slot of a group option.
// When OutputReflectionEditable is false the output side is never mirrored.
type Constraint struct {
	Input                    InputSymmetry
	OutputReflectionEditable bool
}

// Choice holds the output side a user picked for one Constraint.
type Choice struct {
	OutputRotations  int
	OutputReflection bool
}

// GroupOption is a named rosette preset: one to three constraints that
// together generate the group.
type GroupOption struct {
	ID          string
	Label       string
	Constraints []Constraint
}

// Rules turns the option into rules with k = folds. choices are matched to
// constraints by position; missing choices default to no output transform.
// The resulting list is validated exactly as New would.
func (g GroupOption) Rules(folds int, choices ...Choice) ([]Rule, error) {
	if len(choices) > len(g.Constraints) {
		return nil, fmt.Errorf("%w: %s takes %d choices, got %d", ErrBadRule, g.ID, len(g.Constraints), len(choices))
	}

	rules := make([]Rule, len(g.Constraints))
	for i, c := range g.Constraints {
		var ch Choice
		if i < len(choices) {
			ch = choices[i]
		}
		rules[i] = Rule{
			RotationFolds:    folds,
			InputRotation:    c.Input.HasRotation(),
			InputReflection:  c.Input.HasReflection(),
			InputInversion:   c.Input.HasInversion(),
			OutputRotations:  ch.OutputRotations,
			OutputReflection: c.OutputReflectionEditable && ch.OutputReflection,
		}
	}
	if err := validateRules(rules); err != nil {
		return nil, fmt.Errorf("%s: %w", g.ID, err)
	}

	return rules, nil
}

func single(in InputSymmetry) []Constraint {
	return []Constraint{{Input: in, OutputReflectionEditable: true}}
}

// NoRotationOptions are the presets without input rotation.
var NoRotationOptions = []GroupOption{
	{ID: "identity", Label: "No Symmetry", Constraints: single(SymIdentity)},
	{ID: "mirror_x", Label: "Mirror", Constraints: single(SymMirror)},
	{ID: "inversion", Label: "Circle inversion", Constraints: single(SymCircleInversion)},
	{ID: "reciprocal", Label: "Complex inversion", Constraints: single(SymComplexInversion)},
	{ID: "mirror_inversion", Label: "Mirror + Complex inversion", Constraints: []Constraint{
		{Input: SymMirror, OutputReflectionEditable: true},
		{Input: SymComplexInversion, OutputReflectionEditable: true},
	}},
}

// RotationOptions are the presets built on a k-fold rotation, named after
// the frieze group they produce.
var RotationOptions = []GroupOption{
	{ID: "p1", Label: "Rotation", Constraints: single(SymRotation)},
	{ID: "p11g", Label: "Roto-inversion", Constraints: single(SymRotoInversion)},
	{ID: "p1m1", Label: "Rotation + Mirror", Constraints: []Constraint{
		{Input: SymRotation, OutputReflectionEditable: true},
		{Input: SymMirror, OutputReflectionEditable: false},
	}},
	{ID: "p11m", Label: "Rotation + Circle inversion", Constraints: []Constraint{
		{Input: SymRotation, OutputReflectionEditable: true},
		{Input: SymCircleInversion, OutputReflectionEditable: true},
	}},
	{ID: "p2", Label: "Rotation + Complex inversion", Constraints: []Constraint{
		{Input: SymRotation, OutputReflectionEditable: true},
		{Input: SymComplexInversion, OutputReflectionEditable: true},
	}},
	{ID: "p2mg", Label: "Roto-inversion + Mirror", Constraints: []Constraint{
		{Input: SymRotoInversion, OutputReflectionEditable: true},
		{Input: SymMirror, OutputReflectionEditable: true},
	}},
	{ID: "p2mm", Label: "Rotation + Complex Inversion + Mirror", Constraints: []Constraint{
		{Input: SymRotation, OutputReflectionEditable: true},
		{Input: SymComplexInversion, OutputReflectionEditable: true},
		{Input: SymMirror, OutputReflectionEditable: false},
	}},
}

// FindOption looks an option up by id in both preset lists.
func FindOption(id string) (GroupOption, error) {
	for _, list := range [][]GroupOption{NoRotationOptions, RotationOptions} {
		for _, g := range list {
			if g.ID == id {
				return g, nil
			}
		}
	}

	return GroupOption{}, fmt.Errorf("%w: %q", ErrUnknownOption, id)
}
