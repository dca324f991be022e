// Package arith implements the multi-base lane arithmetic of the Keccak
// proving pipeline.
//
// A Keccak state is a 5×5 matrix of 64-bit lanes combined with XOR, AND
// and NOT. A constraint system checks additions and multiplications over
// a prime field, not boolean operations, so the lanes are re-encoded in
// positional bases wide enough that summing several lanes never carries
// between digit positions: every bit of a word becomes one digit of a
// base-13 or base-9 number.
//
// In base 13 up to twelve lanes can be added digit-wise before a digit
// could overflow; the parity of an accumulated digit is the XOR of the
// bits it collected (Coef13). In base 9 the weighted sum
// A1*a + A2*b + A3*c + A4*d of four lanes keeps every digit below 9,
// and the digit value determines a ^ (^b & c) ^ d, the non-linear
// combinator of the permutation, by table lookup (Coef9).
//
// The converters in this package move single lanes between the native
// word form and the two encodings. ConvertB13ToB9 additionally applies
// the lane rotation of the linear step, folding the wrapped 65th digit
// produced by the accumulation back into its slot. StateMatrix carries
// the 25 arbitrary-precision lanes of one state snapshot, and the field
// bridge (ToFieldElements and friends) hands them to the BN254
// constraint layer as witness scalars.
package arith
