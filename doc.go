// Package symmetry is a constraint engine for symmetric patterns built from
// truncated complex series: rosettes and friezes in the plane, and the 17
// wallpaper groups plus their 46 two-color variants on a lattice.
//
// 🚀 What is symmetry?
//
//	A pattern is a sum of terms a_nm·z^n·conj(z)^m (point symmetry) or
//	a_nm·exp(2πi⟨(n,m), z⟩) (wallpaper symmetry). A symmetry law ties the
//	coefficient of one term to the coefficients of its partners. The engine
//	keeps an editable grid of coefficients consistent with the laws:
//		• Coordinates: unsigned cells, signed cells, frequency diagonals
//		• Rosette rules: rotations, mirrors, inversions and color turns
//		• Wallpaper groups: lattices, base orbits, partner and sign rules
//		• Uniform packing: float32 blocks for a fragment shader
//
// ✨ Why symmetry?
//
//   - Every edit propagates to all partners in one call
//   - Invalid edits are corrected (projected or zeroed), never rejected late
//   - Groups are plain data: look them up by name, round trip by ID
//
// Everything is organized under these subpackages:
//
//	grid/      — cell indices, signed coordinates, partner involutions, orbits
//	freq/      — frequency pairs and their (diff, sum) diagonals
//	polar/     — polar complex coefficients, roots of unity, projection
//	series/    — ordered term lists handed to the renderer
//	rosette/   — point symmetry rules, the orchestrator, editor presets
//	wallpaper/ — wallpaper group catalogue, expansion, grid editor
//	uniforms/  — shader uniform packing
//	config/    — TOML / YAML session files
//	cmd/symtool — command-line front end
//
//	go get github.com/katalvlaran/symmetry
package symmetry
