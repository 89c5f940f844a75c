// SPDX-License-Identifier: MIT

package wallpaper

import (
	"errors"
	"fmt"
)

// Sentinel errors for wallpaper operations.
var (
	// ErrUnknownGroup indicates a name or descriptor outside the catalogue.
	ErrUnknownGroup = errors.New("wallpaper: unknown wallpaper group")
	// ErrCoefficientCount indicates a coefficient slice whose length is not size².
	ErrCoefficientCount = errors.New("wallpaper: coefficient count does not match grid")
)

// Lattice is the shape of the period lattice.
type Lattice int

const (
	Parallelogram Lattice = iota
	Rectangle
	Rhombus
	Square
	Hexagon
)

var latticeNames = [...]string{"parallelogram", "rectangle", "rhombus", "square", "hexagon"}

func (l Lattice) String() string {
	if l < 0 || int(l) >= len(latticeNames) {
		return fmt.Sprintf("Lattice(%d)", int(l))
	}

	return latticeNames[l]
}

// BaseRule is the rotational orbit shared by every term of a square or
// hexagonal group.
type BaseRule int

const (
	NoBase BaseRule = iota
	SquareBase
	HexagonBase
)

func (b BaseRule) String() string {
	switch b {
	case NoBase:
		return "none"
	case SquareBase:
		return "square"
	case HexagonBase:
		return "hexagon"
	default:
		return fmt.Sprintf("BaseRule(%d)", int(b))
	}
}

// Partner maps a frequency pair to the pair a symmetry ties it to.
type Partner int

const (
	Negate      Partner = iota // (-n, -m)
	NegateN                    // (-n, m)
	NegateM                    // (n, -m)
	Swap                       // (m, n)
	NegateSwap                 // (-m, -n)
	NegateMSwap                // (-m, n)
)

var partnerNames = [...]string{"negate", "negate_n", "negate_m", "swap", "negate_swap", "negate_m_swap"}

func (p Partner) String() string {
	if p < 0 || int(p) >= len(partnerNames) {
		return fmt.Sprintf("Partner(%d)", int(p))
	}

	return partnerNames[p]
}

// Negation is the sign a partner coefficient picks up. The sign is
// computed from the frequencies of the source term, not the partner.
type Negation int

const (
	NoNegation  Negation = iota
	NegateAll            // -1
	NegateByN            // (-1)^n
	NegateByM            // (-1)^m
	NegateByNM           // (-1)^(n+m)
	NegateByM1           // (-1)^(m+1)
	NegateByN1           // (-1)^(n+1)
	NegateByNM1          // (-1)^(n+m+1)
)

var negationNames = [...]string{"none", "negate", "negate_n", "negate_m", "negate_nm", "negate_m1", "negate_n1", "negate_nm1"}

func (n Negation) String() string {
	if n < 0 || int(n) >= len(negationNames) {
		return fmt.Sprintf("Negation(%d)", int(n))
	}

	return negationNames[n]
}

// Parity restricts which terms a two-color group allows. It is passed
// through to the renderer unchanged.
type Parity int

const (
	NoParity Parity = iota
	OddN
	OddM
	OddNM
)

var parityNames = [...]string{"none", "odd_n", "odd_m", "odd_nm"}

func (p Parity) String() string {
	if p < 0 || int(p) >= len(parityNames) {
		return fmt.Sprintf("Parity(%d)", int(p))
	}

	return parityNames[p]
}

// ColorReversing selects which half of the palette is flipped. The values
// are the ones the renderer expects.
type ColorReversing int

const (
	NoReversal ColorReversing = 0
	Horizontal ColorReversing = 1 // lower half-plane flipped
	Vertical   ColorReversing = 2 // left half-plane flipped
)

func (c ColorReversing) String() string {
	switch c {
	case NoReversal:
		return "none"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("ColorReversing(%d)", int(c))
	}
}

// Rule pairs a frequency partner with the sign of its coefficient.
type Rule struct {
	Partner Partner
	Negate  Negation
}

func (r Rule) String() string {
	if r.Negate == NoNegation {
		return r.Partner.String()
	}

	return r.Partner.String() + "/" + r.Negate.String()
}

// Group is a catalogued wallpaper group. Groups are read-only; use
// FindGroup to obtain one.
type Group struct {
	ID             string
	Lattice        Lattice
	BaseRule       BaseRule
	Rules          []Rule
	Parity         Parity
	ColorReversing ColorReversing
}
