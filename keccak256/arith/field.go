package arith

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"

	"github.com/junyu0312/zkevm-circuits/internal/debug"
)

// ErrLaneOverflow reports a lane that cannot be embedded in the scalar
// field without reduction.
var ErrLaneOverflow = errors.New("lane value exceeds the field modulus")

var frModulus = fr.Modulus()

// ToFieldElements embeds all 25 lanes into the bn254 scalar field, in
// flat (x*Width + y) order. A lane that is negative or not strictly
// below the field modulus makes the whole conversion fail with a
// wrapped ErrLaneOverflow naming the offending coordinate; no lane is
// ever silently reduced. Lanes are converted in parallel.
func (m *StateMatrix) ToFieldElements() ([NbLanes]fr.Element, error) {
	var elems [NbLanes]fr.Element
	var g errgroup.Group
	for x := 0; x < Width; x++ {
		for y := 0; y < Width; y++ {
			g.Go(func() error {
				lane := &m.xy[offset(x, y)]
				if !laneInField(lane) {
					return fmt.Errorf("lane (%d,%d): %w", x, y, ErrLaneOverflow)
				}
				elems[offset(x, y)].SetBigInt(lane)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return [NbLanes]fr.Element{}, err
	}
	return elems, nil
}

// FromFieldElements rebuilds a state matrix from 25 field elements in
// flat (x*Width + y) order. Elements are taken at their canonical
// value, so the round trip through ToFieldElements is exact for every
// in-range lane.
func FromFieldElements(elems [NbLanes]fr.Element) *StateMatrix {
	m := NewStateMatrix()
	for i := range elems {
		elems[i].BigInt(&m.xy[i])
	}
	return m
}

// StateFromElements packs field elements holding 64-bit words into a
// native state, again in flat order. Fewer than NbLanes elements leave
// the remaining lanes zero; more than NbLanes is a programming error
// and panics. Elements wider than a word are a contract violation,
// checked in debug builds, and release builds keep the low word.
func StateFromElements(elems []fr.Element) State {
	if len(elems) > NbLanes {
		panic("too many field elements for a state")
	}
	var s State
	var b [fr.Bytes]byte
	for i := range elems {
		fr.LittleEndian.PutElement(&b, elems[i])
		debug.Assert(isZero(b[8:]), "field element exceeds the 64-bit window")
		s[i/Width][i%Width] = binary.LittleEndian.Uint64(b[:8])
	}
	return s
}

// ElementFromRadixBE folds big-endian digits into a field element by a
// Horner evaluation in base, entirely inside the field. Digits must be
// below the base; that is checked in debug builds only, release builds
// fold whatever they are given.
func ElementFromRadixBE(digits []uint8, base Base) fr.Element {
	var acc, b, d fr.Element
	b.SetUint64(uint64(base))
	for _, digit := range digits {
		debug.Assert(digit < uint8(base), "digit out of range for base")
		acc.Mul(&acc, &b)
		d.SetUint64(uint64(digit))
		acc.Add(&acc, &d)
	}
	return acc
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// laneInField reports whether v can be embedded without reduction.
func laneInField(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(frModulus) < 0
}
