// Package wallpaper describes the 17 wallpaper groups and their 46
// two-color (color-reversing) variants in frequency space, and applies them
// to the terms of a Fourier series
//
//	f(z) = Σ a_nm · exp(2πi · ⟨(n, m), z⟩)
//
// where z is expressed in the coordinates of a lattice.
//
// What:
//
//   - Lattice: the five lattice shapes and their basis vectors.
//   - BaseRule: the rotational orbit of square (4-fold) and hexagonal
//     (3-fold) lattices.
//   - Partner and Negation: one reflection or half-turn in frequency space
//     and the sign change it imposes on the coefficient.
//   - Group: a catalogued descriptor combining the above, plus the Parity
//     and ColorReversing metadata the renderer needs for two-color groups.
//   - Expand: the full list of terms one term generates under a group.
//   - Editor: the same propagation applied to a size×size coefficient grid.
//
// Why:
//
//   - Every wallpaper symmetry acts on frequencies as a small linear map
//     and on coefficients as a sign. Storing groups as data keeps the
//     engine a single loop: base orbit first, then each rule maps over the
//     growing list and appends.
//
// Complexity:
//
//   - Expand: O(b·2^r) terms for a base orbit of b ≤ 4 and r ≤ 3 rules.
//   - FindGroup / GroupID: O(1) map lookups; the structural fallback of
//     GroupID is O(groups).
//
// Errors:
//
//   - ErrUnknownGroup: name or descriptor not in the catalogue.
//   - ErrCoefficientCount: coefficient slice length is not size².
//   - grid.ErrBadSize / grid.ErrOutOfRange from the editor's coordinates.
package wallpaper
