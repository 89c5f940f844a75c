// Package rosette enforces point (rosette) symmetry on the coefficient grid
// of a complex polynomial f(z) = Σ a_nm z^n conj(z)^m.
//
// 🚀 What is a rule?
//
//	A Rule states one symmetry law of the form
//
//	  f ∘ rotate_k^l ∘ invert^p ∘ mirror^q = rotate_k^u ∘ mirror^v ∘ f
//
//	where rotate_k(z) = e^(2πi/k)·z, invert(z) = 1/z, mirror(z) = conj(z),
//	l, p, q, v ∈ {0, 1} and u counts "color turns" applied to the output.
//	Rewritten on coefficients, every law relates a_nm to the coefficient of
//	one partner cell of the grid:
//
//	  a' = rotate_k^P · (conj?) a
//
//	The partner cell is found by one of the grid involutions (identity,
//	flip_col, flip_row, flip_both) and P depends on the frequency
//	difference n-m.
//
// ✨ Key features:
//   - PartnerTypeOf / RotationPower / FreqDiff: derived quantities of a rule.
//   - Symmetry: combines one self rule and any number of partner rules,
//     reports which cells are editable, labels cells with (n, m), and
//     propagates an edit to every partner coefficient.
//   - GroupOption: the rosette presets an editor offers, turned into rules.
//
// ⚙️ Usage:
//
//	sym, err := rosette.New(7, []rosette.Rule{
//	  {RotationFolds: 5, InputRotation: true},
//	  {RotationFolds: 5, InputReflection: true},
//	})
//	// handle ErrNoRules / ErrDuplicatePartner
//	err = sym.UpdateCoefficients(coeffs, index, polar.New(1, 0))
//
// Concurrency:
//
//	Symmetry is immutable after New and safe for concurrent reads.
//	UpdateCoefficients writes through the caller's slice and is not
//	re-entrant: serialise it against readers of that slice.
//
// Errors:
//   - ErrNoRules, ErrDuplicatePartner, ErrBadRule at construction.
//   - ErrCoefficientCount when the coefficient slice has the wrong length.
//   - ErrNotSelfRule / ErrSelfRule when a rule is used on the wrong side.
//   - ErrUnknownOption for an unknown GroupOption id.
package rosette
