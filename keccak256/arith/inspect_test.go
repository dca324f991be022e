package arith

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/junyu0312/zkevm-circuits/logger"
)

func TestInspect(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	restore := logger.Logger()
	logger.Set(zerolog.New(&buf))
	defer logger.Set(restore)

	Inspect(ToBase13(5), "theta input", Base13)

	out := buf.String()
	assert.Contains(out, "inspect lane")
	assert.Contains(out, "theta input")
	assert.Contains(out, `"base":13`)
}
