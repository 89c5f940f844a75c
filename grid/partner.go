package grid

import "fmt"

// Partner returns the cell paired with idx under p.
// Every partner function is an involution: p.Partner(p.Partner(x)) == x.
// Returns ErrBadSize, ErrOutOfRange or ErrUnknownPartner.
// Complexity: O(1).
func (p PartnerType) Partner(idx Indices, size int) (Indices, error) {
	if err := validate(idx, size); err != nil {
		return Indices{}, err
	}
	last := size - 1

	switch p {
	case Identity:
		return idx, nil
	case FlipCol:
		return Indices{Row: idx.Row, Col: last - idx.Col}, nil
	case FlipRow:
		return Indices{Row: last - idx.Row, Col: idx.Col}, nil
	case FlipBoth:
		return Indices{Row: last - idx.Row, Col: last - idx.Col}, nil
	default:
		return Indices{}, fmt.Errorf("%w: %d", ErrUnknownPartner, int(p))
	}
}
