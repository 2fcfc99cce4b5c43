//go:build batchdebug

package renderer2d

import "fmt"

// assertf panics when cond is false. Only compiled in with the "batchdebug" tag.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("renderer2d: "+format, args...))
	}
}
