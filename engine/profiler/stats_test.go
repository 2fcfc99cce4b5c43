package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimer(t *testing.T) {
	ft := NewFrameTimer(3)
	assert.Zero(t, ft.Average())
	assert.Zero(t, ft.FPS())

	now := time.Unix(0, 0)
	ft.Tick(now)
	for _, ms := range []int{10, 20, 30} {
		now = now.Add(time.Duration(ms) * time.Millisecond)
		ft.Tick(now)
	}
	assert.Equal(t, 20*time.Millisecond, ft.Average())
	assert.InDelta(t, 50, ft.FPS(), 1e-9)

	// the oldest sample falls out of the window
	now = now.Add(40 * time.Millisecond)
	ft.Tick(now)
	assert.Equal(t, 30*time.Millisecond, ft.Average())
	assert.Equal(t, uint64(5), ft.Frames())
}

func TestReadMemory(t *testing.T) {
	m := ReadMemory()
	assert.Positive(t, m.Alloc)
	assert.Positive(t, m.Goroutines)
	assert.Positive(t, m.CPUs)
}

func TestStartIsCallableWithoutInit(t *testing.T) {
	assert.NotPanics(t, func() { Start("scope")() })
}
