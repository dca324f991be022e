// Package debug exposes the build-time debug flag.
//
// Building with -tags=debug turns on the soft precondition checks of the
// arithmetic core (digit ranges, declared digit-sequence lengths, byte
// windows) and keeps the logger verbose under go test. Without the tag
// those checks compile to nothing.
package debug
