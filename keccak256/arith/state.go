package arith

import (
	"encoding/binary"
	"math/big"

	"github.com/junyu0312/zkevm-circuits/internal/debug"
)

// Width is the side of the Keccak state matrix.
const Width = 5

// NbLanes is the number of 64-bit lanes in one state.
const NbLanes = Width * Width

// State is the native form of a Keccak state: a Width×Width matrix of
// 64-bit words, indexed [x][y].
type State [Width][Width]uint64

// StateMatrix holds one arbitrary-precision lane per state coordinate.
// Lanes travel through base-13 and base-9 encodings whose magnitudes
// exceed a machine word, hence the big.Int representation. The zero
// value is a valid all-zero state.
type StateMatrix struct {
	xy [NbLanes]big.Int
}

// NewStateMatrix returns a state matrix with all 25 lanes zero.
func NewStateMatrix() *StateMatrix {
	return &StateMatrix{}
}

// offset maps a coordinate pair to the flat lane index. Out-of-range
// coordinates are a programming error and always panic.
func offset(x, y int) int {
	if x < 0 || x >= Width || y < 0 || y >= Width {
		panic("state coordinates out of range")
	}
	return x*Width + y
}

// At returns the lane at (x, y). The returned pointer aliases the
// matrix: writing through it mutates the state in place.
func (m *StateMatrix) At(x, y int) *big.Int {
	return &m.xy[offset(x, y)]
}

// Set copies v into the lane at (x, y).
func (m *StateMatrix) Set(x, y int, v *big.Int) {
	m.xy[offset(x, y)].Set(v)
}

// Clone returns a deep copy of the matrix.
func (m *StateMatrix) Clone() *StateMatrix {
	out := NewStateMatrix()
	for i := range m.xy {
		out.xy[i].Set(&m.xy[i])
	}
	return out
}

// Transform returns a new matrix in which every lane is f applied to
// the lane of m at the same coordinate. f receives its own copy of the
// source lane and the result holds its own copy of f's output, so the
// two matrices never share a lane.
func (m *StateMatrix) Transform(f func(*big.Int) *big.Int) *StateMatrix {
	out := NewStateMatrix()
	for x := 0; x < Width; x++ {
		for y := 0; y < Width; y++ {
			lane := new(big.Int).Set(m.At(x, y))
			out.xy[offset(x, y)].Set(f(lane))
		}
	}
	return out
}

// StateMatrixFromState lifts native words into big.Int lanes.
func StateMatrixFromState(s State) *StateMatrix {
	m := NewStateMatrix()
	for x := 0; x < Width; x++ {
		for y := 0; y < Width; y++ {
			m.xy[offset(x, y)].SetUint64(s[x][y])
		}
	}
	return m
}

// State packs the matrix back into native words. Every lane must fit
// the 64-bit window; a wider lane is a contract violation, checked in
// debug builds, and release builds keep its low word.
func (m *StateMatrix) State() State {
	var s State
	for x := 0; x < Width; x++ {
		for y := 0; y < Width; y++ {
			lane := &m.xy[offset(x, y)]
			debug.Assert(lane.Sign() >= 0 && lane.BitLen() <= 64, "lane exceeds the 64-bit window")
			s[x][y] = wordFromLane(lane)
		}
	}
	return s
}

// wordFromLane reads the low 64-bit window of a lane byte-wise.
func wordFromLane(lane *big.Int) uint64 {
	bb := lane.Bytes()
	if len(bb) > 8 {
		bb = bb[len(bb)-8:]
	}
	var buf [8]byte
	copy(buf[8-len(bb):], bb)
	return binary.BigEndian.Uint64(buf[:])
}
