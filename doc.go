// Package zkevmcircuits provides witness-side arithmetic for proving a
// Keccak hash computation inside a zero-knowledge circuit.
//
// The heart of the module is [github.com/junyu0312/zkevm-circuits/keccak256/arith],
// which re-encodes the 64-bit lanes of the 5×5 Keccak state into base-13
// and base-9 positional representations. In those bases the boolean
// mixing steps of the permutation become plain additions that a
// constraint system can check, and the digit codecs recover the boolean
// results afterwards.
//
// The constraint layer itself (gate configuration, proving, trie
// validation) lives outside this module; it consumes the field elements
// produced by the bridge in keccak256/arith.
package zkevmcircuits

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
