package freq

import "fmt"

// Frequency2D is the pair of exponents (n, m) of one series term.
type Frequency2D struct {
	N, M int
}

// String renders the pair as "(n,m)".
func (f Frequency2D) String() string {
	return fmt.Sprintf("(%d,%d)", f.N, f.M)
}

// Swap exchanges n and m.
func Swap(f Frequency2D) Frequency2D {
	return Frequency2D{N: f.M, M: f.N}
}

// Negate flips the sign of both frequencies.
func Negate(f Frequency2D) Frequency2D {
	return Frequency2D{N: -f.N, M: -f.M}
}

// DiffSum is the diagonal form (n-m, n+m) of a frequency pair.
type DiffSum struct {
	Diff, Sum int
}

// Valid reports whether Diff and Sum share parity, which is exactly when
// the pair maps back to integral frequencies.
func (ds DiffSum) Valid() bool {
	return (ds.Diff-ds.Sum)%2 == 0
}

// ToDiffSum converts (n, m) to (n-m, n+m).
func ToDiffSum(f Frequency2D) DiffSum {
	return DiffSum{Diff: f.N - f.M, Sum: f.N + f.M}
}

// FromDiffSum recovers (n, m) = ((diff+sum)/2, (sum-diff)/2).
// The result is only meaningful when ds.Valid().
func FromDiffSum(ds DiffSum) Frequency2D {
	return Frequency2D{
		N: (ds.Diff + ds.Sum) / 2,
		M: (ds.Sum - ds.Diff) / 2,
	}
}

// DiffRowToSum picks the sum for the cell of a grid column with frequency
// difference diff and signed row signedRow.
//
//   - even diff: sum = 2·row, every row is a valid diagonal.
//   - odd diff, row 0: sum = 0. The pair is not integral; this is the
//     sentinel for a cell with no valid term.
//   - odd diff, row ≠ 0: sum = 2·sign(row)·max(|row|-0.5, 0), which walks
//     …,-5,-3,-1,(0),1,3,5,… so odd diagonals line up with even ones.
func DiffRowToSum(diff, signedRow int) int {
	if diff%2 == 0 {
		return 2 * signedRow
	}

	switch {
	case signedRow > 0:
		return 2*signedRow - 1
	case signedRow < 0:
		return 2*signedRow + 1
	default:
		return 0
	}
}
