// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

// A Trit is a balanced-ternary signal value.
//
type Trit int8

// The three signal values. The numeric values matter: a Trit doubles as a
// balanced-ternary digit, and the total order Minus < Neutral < Plus is what
// the min/max style gates are defined on.
//
const (
	Minus   Trit = -1
	Neutral Trit = 0
	Plus    Trit = 1
)

// TritOf converts a raw balanced-ternary digit to a Trit. It returns a
// BadTritError if v is not one of -1, 0 or 1.
//
func TritOf(v int) (Trit, error) {
	if v < -1 || v > 1 {
		return Neutral, BadTritError(v)
	}
	return Trit(v), nil
}

// String returns the canonical display name of t: "(+)", "(0)" or "(-)".
//
func (t Trit) String() string {
	switch t {
	case Plus:
		return "(+)"
	case Minus:
		return "(-)"
	default:
		return "(0)"
	}
}

// Negate returns the sign flip of t. Neutral is its own negation.
//
func (t Trit) Negate() Trit { return -t }

// Inc rotates t one step forward on the Minus→Neutral→Plus→Minus ring.
//
func (t Trit) Inc() Trit {
	if t == Plus {
		return Minus
	}
	return t + 1
}

// Dec rotates t one step backward on the ring, undoing Inc.
//
func (t Trit) Dec() Trit {
	if t == Minus {
		return Plus
	}
	return t - 1
}

// Min returns the smaller of a and b under Minus < Neutral < Plus.
//
func Min(a, b Trit) Trit {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
//
func Max(a, b Trit) Trit {
	if a > b {
		return a
	}
	return b
}
