package arith

import (
	"errors"
	"math/big"
	"slices"

	"github.com/junyu0312/zkevm-circuits/internal/debug"
)

// Base identifies a positional numeral base used to encode a lane.
type Base uint8

const (
	// Binary is the native one-bit-per-digit base of a machine word.
	Binary Base = 2
	// Base9 hosts the non-linear step: the weighted sum of four
	// bit-lanes keeps every digit below 9.
	Base9 Base = 9
	// Base13 hosts the linear step: up to twelve bit-lanes can be
	// summed digit-wise without carrying into a neighbour position.
	Base13 Base = 13
)

// DigitOption configures a digit decomposition.
type DigitOption func(*digitConfig) error

type digitConfig struct {
	nbDigits int
}

// WithNbDigits declares the length of the digit sequence. Shorter
// decompositions are zero-padded on the high end. nbDigits must be > 0.
func WithNbDigits(nbDigits int) DigitOption {
	return func(cfg *digitConfig) error {
		if nbDigits <= 0 {
			return errors.New("nbDigits <= 0")
		}
		cfg.nbDigits = nbDigits
		return nil
	}
}

// DigitsLE returns the little-endian digits of lane in the given base.
// With WithNbDigits the sequence has exactly the declared length; a lane
// needing more digits than declared is a contract violation, checked in
// debug builds only, and keeps the low digits otherwise.
func DigitsLE(lane *big.Int, base Base, opts ...DigitOption) []uint8 {
	var cfg digitConfig
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			panic(err)
		}
	}

	digits := digitsLE(lane, base)
	if cfg.nbDigits > 0 {
		debug.Assert(len(digits) <= cfg.nbDigits, "lane does not fit the declared digit count")
		if len(digits) >= cfg.nbDigits {
			return digits[:cfg.nbDigits]
		}
		padded := make([]uint8, cfg.nbDigits)
		copy(padded, digits)
		digits = padded
	}
	return digits
}

// FromDigitsLE recomposes little-endian digits into a lane. Any digit
// outside [0, base) makes the sequence malformed and the result is the
// zero lane; valid pipelines never produce such a sequence, and callers
// must not rely on the fallback for control flow.
func FromDigitsLE(digits []uint8, base Base) *big.Int {
	b := big.NewInt(int64(base))
	d := new(big.Int)
	res := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] >= uint8(base) {
			return new(big.Int)
		}
		res.Mul(res, b)
		res.Add(res, d.SetUint64(uint64(digits[i])))
	}
	return res
}

func digitsLE(lane *big.Int, base Base) []uint8 {
	debug.Assert(lane.Sign() >= 0, "negative lane")
	if lane.Sign() <= 0 {
		return []uint8{0}
	}
	b := big.NewInt(int64(base))
	q := new(big.Int).Set(lane)
	r := new(big.Int)
	var digits []uint8
	for q.Sign() > 0 {
		q.QuoRem(q, b, r)
		digits = append(digits, uint8(r.Uint64()))
	}
	return digits
}

func digitsBE(lane *big.Int, base Base) []uint8 {
	digits := digitsLE(lane, base)
	slices.Reverse(digits)
	return digits
}

func fromDigitsBE(digits []uint8, base Base) *big.Int {
	b := big.NewInt(int64(base))
	d := new(big.Int)
	res := new(big.Int)
	for _, digit := range digits {
		if digit >= uint8(base) {
			return new(big.Int)
		}
		res.Mul(res, b)
		res.Add(res, d.SetUint64(uint64(digit)))
	}
	return res
}
