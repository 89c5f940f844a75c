// Package freq holds the integer frequency pairs (n, m) that index the
// terms z^n·conj(z)^m of a pattern, and the diagonal (diff, sum)
// coordinates the symmetry rules are written in.
//
// Expanding a single term in polar form gives
//
//	z^n conj(z)^m = r^(n+m) · e^(iθ(n-m))
//
// so rotational behaviour depends only on diff = n-m and radial behaviour
// only on sum = n+m. ToDiffSum and FromDiffSum are exact inverses on pairs
// of equal parity; DiffRowToSum picks, for a grid row, a sum that keeps
// every (diff, sum) pair integral.
package freq
