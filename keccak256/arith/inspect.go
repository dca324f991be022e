package arith

import (
	"math/big"

	"github.com/junyu0312/zkevm-circuits/logger"
)

// Inspect logs a lane at debug level, with its 65 little-endian digits
// in base. Useful when chasing one lane through the permutation; the
// output is suppressed unless debug logging is enabled.
func Inspect(lane *big.Int, name string, base Base) {
	digits := DigitsLE(lane, base, WithNbDigits(65))
	log := logger.Logger()
	log.Debug().
		Str("name", name).
		Str("value", lane.String()).
		Uint8("base", uint8(base)).
		Hex("digitsLE", digits).
		Msg("inspect lane")
}
