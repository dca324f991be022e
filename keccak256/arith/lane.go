package arith

import (
	"math/big"
)

// CoefFn rewrites a single digit during a lane conversion.
type CoefFn func(uint8) uint8

// ToBase13 spreads the 64 bits of a word over base-13 digits, one bit
// per digit: bit i becomes the coefficient of 13^i. The value grows to
// roughly 237 bits, which is the price paid for digit-wise addition of
// up to twelve lanes without carries.
func ToBase13(a uint64) *big.Int {
	return toBase(a, Base13)
}

// ToBase9 spreads the 64 bits of a word over base-9 digits, one bit per
// digit, ahead of the non-linear step.
func ToBase9(a uint64) *big.Int {
	return toBase(a, Base9)
}

func toBase(a uint64, base Base) *big.Int {
	b := big.NewInt(int64(base))
	d := new(big.Int)
	res := new(big.Int)
	for i := 63; i >= 0; i-- {
		res.Mul(res, b)
		res.Add(res, d.SetUint64((a>>i)&1))
	}
	return res
}

// Convert re-encodes lane digit by digit: big-endian decomposition in
// from, coef applied to every digit independently, recomposition in to.
// A rewritten digit that does not fit the target base makes the result
// malformed, and malformed lanes deterministically decode to the zero
// lane (see FromDigitsLE).
func Convert(lane *big.Int, from, to Base, coef CoefFn) *big.Int {
	digits := digitsBE(lane, from)
	for i, d := range digits {
		digits[i] = coef(d)
	}
	return fromDigitsBE(digits, to)
}

// ConvertB9ToB13 decodes every base-9 digit with Coef9 and re-encodes
// the resulting bits in base 13, readying a lane that went through the
// non-linear step for the next linear accumulation.
func ConvertB9ToB13(lane *big.Int) *big.Int {
	return Convert(lane, Base9, Base13, Coef9)
}

// ConvertB9ToBinary decodes a base-9 lane into the native word it
// represents, applying Coef9 to every digit.
func ConvertB9ToBinary(lane *big.Int) uint64 {
	return Convert(lane, Base9, Binary, Coef9).Uint64()
}

// FromBase9 re-bases a canonical base-9 lane, whose digits are already
// 0 or 1, back to the native word without reinterpreting digits. Digits
// above 1 make the lane malformed here and it decodes to zero.
func FromBase9(lane *big.Int) uint64 {
	return Convert(lane, Base9, Binary, func(x uint8) uint8 { return x }).Uint64()
}

// FromBase13 is the base-13 twin of FromBase9.
func FromBase13(lane *big.Int) uint64 {
	return Convert(lane, Base13, Binary, func(x uint8) uint8 { return x }).Uint64()
}

// ConvertB13ToB9 converts the base-13 output of the linear step into
// the base-9 encoding consumed by the non-linear step, rotating the
// lane left by rot bit positions on the way.
//
// The linear accumulation leaves a lane as 65 base-13 digits in which
// digit 0 and digit 64 are the two halves of the same wrapped bit
// position. The two are folded back together first; the rotation then
// decides where the folded digit lands: the 63 middle digits are split
// at 63-rot and swapped around it, so that the folded digit sits at
// offset rot of the rotated 64-digit sequence. Coef13 finally turns
// every digit into the XOR bit it accumulated.
//
// rot must be in [0, 63].
func ConvertB13ToB9(lane *big.Int, rot int) *big.Int {
	if rot < 0 || rot > 63 {
		panic("lane rotation out of range")
	}
	chunks := DigitsLE(lane, Base13, WithNbDigits(65))
	// digit 0 and digit 64 were separated by the accumulation; merge
	// them back into one slot.
	special := chunks[0] + chunks[64]
	middle := chunks[1:64]
	left, right := middle[:63-rot], middle[63-rot:]

	rotated := make([]uint8, 0, 64)
	rotated = append(rotated, right...)
	rotated = append(rotated, special)
	rotated = append(rotated, left...)
	for i, d := range rotated {
		rotated[i] = Coef13(d)
	}
	return FromDigitsLE(rotated, Base9)
}
