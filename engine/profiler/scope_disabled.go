//go:build !profile

package profiler

import "errors"

// ErrDisabled is returned when the binary was built without the "profile" tag.
var ErrDisabled = errors.New("profiler: built without the profile tag")

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func WriteSpeedscope(path string) error { return ErrDisabled }
