package crt

import "fmt"

// Method - Collision Resolution Technique used by a table
type Method int

// SeparateChaining - Each bucket holds a chain of records, colliding keys are appended to the chain
const SeparateChaining Method = 0

// LinearProbing - Open addressing where the probe moves one slot at a time
const LinearProbing Method = 1

// QuadraticProbing - Open addressing where the probe offset grows with the square of the iteration
const QuadraticProbing Method = 2

// DoubleHashing - Open addressing where the probe step is given by a secondary hash of the key
const DoubleHashing Method = 3

// Methods - All supported collision resolution techniques in the order of their ids
var Methods = []Method{SeparateChaining, LinearProbing, QuadraticProbing, DoubleHashing}

// IsValid - Returns true if the method is one of the supported techniques
func (M Method) IsValid() bool {
	return M >= SeparateChaining && M <= DoubleHashing
}

// IsOpenAddressing - Returns true if the method stores records directly in slots
func (M Method) IsOpenAddressing() bool {
	return M == LinearProbing || M == QuadraticProbing || M == DoubleHashing
}

// String - Returns a display name for the method
func (M Method) String() string {
	switch M {
	case SeparateChaining:
		return "Separate Chaining"
	case LinearProbing:
		return "Linear Probing"
	case QuadraticProbing:
		return "Quadratic Probing"
	case DoubleHashing:
		return "Double Hashing"
	}

	return fmt.Sprintf("Unknown (%d)", int(M))
}

// ParseMethod - Returns the method matching a short name as used on command lines
// (chaining, linear, quadratic, double).
func ParseMethod(name string) (method Method, err error) {
	switch name {
	case "chaining", "separate":
		method = SeparateChaining
	case "linear":
		method = LinearProbing
	case "quadratic":
		method = QuadraticProbing
	case "double":
		method = DoubleHashing
	default:
		err = fmt.Errorf("unknown collision resolution technique %q", name)
	}

	return
}
