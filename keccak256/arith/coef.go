package arith

import (
	"github.com/junyu0312/zkevm-circuits/internal/debug"
)

// Scalers of the base-9 digit sum decoded by Coef9:
//
//	f_logic(a, b, c, d) = a ^ (^b & c) ^ d
//	f_arith(a, b, c, d) = A1*a + A2*b + A3*c + A4*d
//
// for bits a, b, c, d. f_arith stays below 9 and determines f_logic
// injectively, which is what makes the base-9 encoding work. The gate
// layer uses the same weights when it accumulates the four lanes.
const (
	A1 uint64 = 2
	A2 uint64 = 1
	A3 uint64 = 3
	A4 uint64 = 2
)

// coef9Table maps the nine possible values of f_arith to f_logic.
var coef9Table = [9]uint8{0, 0, 1, 1, 0, 0, 1, 1, 0}

// Coef13 maps the carry-free sum of up to twelve bits, held in one
// base-13 digit, to the XOR of those bits. XOR of n bits asks whether
// their sum is odd, so the answer is the parity of the digit.
//
// x must be below 13; the check runs in debug builds only.
func Coef13(x uint8) uint8 {
	debug.Assert(x < 13, "base-13 digit out of range")
	return x & 1
}

// Coef9 maps a base-9 digit A1*a + A2*b + A3*c + A4*d back to the bit
// a ^ (^b & c) ^ d.
//
// x must be below 9; the check runs in debug builds only.
func Coef9(x uint8) uint8 {
	debug.Assert(x < 9, "base-9 digit out of range")
	return coef9Table[x]
}
