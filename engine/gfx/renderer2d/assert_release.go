//go:build !batchdebug

package renderer2d

// Stubbed no-op version when the "batchdebug" build tag is not set.
func assertf(cond bool, format string, args ...any) {}
