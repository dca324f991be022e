package arith

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/junyu0312/zkevm-circuits/debug"
)

var bigIntCmp = cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })

// lanes flattens a matrix into fresh lane copies, for diffing.
func lanes(m *StateMatrix) []*big.Int {
	out := make([]*big.Int, 0, NbLanes)
	for x := 0; x < Width; x++ {
		for y := 0; y < Width; y++ {
			out = append(out, new(big.Int).Set(m.At(x, y)))
		}
	}
	return out
}

func TestStateMatrixZeroValue(t *testing.T) {
	assert := require.New(t)

	m := NewStateMatrix()
	for x := 0; x < Width; x++ {
		for y := 0; y < Width; y++ {
			assert.Zero(m.At(x, y).Sign())
		}
	}
	assert.Equal(State{}, m.State())
}

func TestStateMatrixSetAndAt(t *testing.T) {
	assert := require.New(t)
	m := NewStateMatrix()

	v := big.NewInt(42)
	m.Set(1, 2, v)
	v.SetInt64(7)
	assert.Equal(int64(42), m.At(1, 2).Int64(), "Set keeps its own copy")

	m.At(1, 2).SetInt64(8)
	assert.Equal(int64(8), m.At(1, 2).Int64(), "At exposes the live lane")
}

func TestStateMatrixCoordinatesOutOfRange(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {Width, 0}, {0, Width}} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("coordinates (%d,%d) will panic", c[0], c[1])
				}
			}()
			NewStateMatrix().At(c[0], c[1])
		}()
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("out-of-range Set will panic")
		}
	}()
	NewStateMatrix().Set(Width, Width, big.NewInt(1))
}

func TestStateMatrixClone(t *testing.T) {
	assert := require.New(t)

	m := NewStateMatrix()
	m.Set(2, 3, big.NewInt(11))
	c := m.Clone()
	c.At(2, 3).SetInt64(99)

	assert.Equal(int64(11), m.At(2, 3).Int64())
	assert.Equal(int64(99), c.At(2, 3).Int64())
}

func TestStateMatrixTransform(t *testing.T) {
	assert := require.New(t)

	m := NewStateMatrix()
	m.Set(0, 0, big.NewInt(3))
	m.Set(4, 4, big.NewInt(7))

	doubled := m.Transform(func(v *big.Int) *big.Int { return v.Lsh(v, 1) })

	assert.Equal(int64(6), doubled.At(0, 0).Int64())
	assert.Equal(int64(14), doubled.At(4, 4).Int64())
	// the source is untouched even though f mutates its argument
	assert.Equal(int64(3), m.At(0, 0).Int64())

	halved := doubled.Transform(func(v *big.Int) *big.Int { return v.Rsh(v, 1) })
	if diff := cmp.Diff(lanes(m), lanes(halved), bigIntCmp); diff != "" {
		t.Fatalf("transform round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStateRoundTrip(t *testing.T) {
	assert := require.New(t)
	rng := rand.New(rand.NewSource(uint64(time.Now().Unix()))) //#nosec G404 weak rng is fine here

	var s State
	for x := 0; x < Width; x++ {
		for y := 0; y < Width; y++ {
			s[x][y] = rng.Uint64()
		}
	}

	assert.Equal(s, StateMatrixFromState(s).State())
}

func TestStateLowWordWindow(t *testing.T) {
	m := NewStateMatrix()
	wide := new(big.Int).Lsh(big.NewInt(1), 64)
	wide.Add(wide, big.NewInt(5))
	m.Set(3, 1, wide)

	if debug.Debug {
		defer func() {
			if r := recover(); r == nil {
				t.Fatalf("an oversized lane will fail the debug assertion")
			}
		}()
	}

	s := m.State()
	if !debug.Debug {
		require.New(t).Equal(uint64(5), s[3][1])
	}
}
