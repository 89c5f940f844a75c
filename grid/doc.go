// Package grid maps between the cells of a square coefficient grid and
// the coordinate systems the symmetry engine works in.
//
// What:
//
//   - Indices addresses one cell, either unsigned (0 ≤ Row,Col < size) or
//     signed (centered on the middle cell, rows increasing upwards).
//   - ToIndex1D / ToIndices2D flatten a cell into a row-major offset and back.
//   - ToSigned / ToUnsigned are exact two-sided inverses.
//   - PartnerType names the four grid involutions a symmetry rule can induce:
//     Identity, FlipCol, FlipRow and FlipBoth.
//
// Why:
//
//   - An editor picks unsigned cells; symmetry rules are stated in signed
//     frequency space. Every conversion is validated so that a bad index is
//     reported before any coefficient is touched.
//
// Complexity:
//
//   - Every operation is O(1) in time and memory.
//
// Errors:
//
//   - ErrBadSize: grid size is not positive.
//   - ErrOutOfRange: indices (or a flat index) fall outside the grid.
//   - ErrUnknownPartner: a PartnerType value outside the closed set.
package grid
