//go:build !debug

package debug

// Assert does nothing if the debug flag is not provided.
// If the debug flag is provided, it panics when condition is false.
func Assert(condition bool, message ...string) {
}
