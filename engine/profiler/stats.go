// Package profiler measures frames and, with the "profile" build tag, records
// named scopes that can be written out as a speedscope profile.
package profiler

import (
	"runtime"
	"time"
)

// Memory is a snapshot of the Go runtime's heap and scheduler counters.
type Memory struct {
	Alloc      uint64
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

// ReadMemory stops the world briefly; call it at most once per frame.
func ReadMemory() Memory {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Memory{
		Alloc:      m.Alloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}

// FrameTimer averages frame durations over a fixed window.
type FrameTimer struct {
	last    time.Time
	samples []time.Duration
	next    int
	full    bool
	frames  uint64
}

func NewFrameTimer(window int) *FrameTimer {
	return &FrameTimer{samples: make([]time.Duration, max(window, 1))}
}

// Tick marks the start of a frame at now.
func (t *FrameTimer) Tick(now time.Time) {
	t.frames++
	if !t.last.IsZero() {
		t.samples[t.next] = now.Sub(t.last)
		t.next++
		if t.next == len(t.samples) {
			t.next, t.full = 0, true
		}
	}
	t.last = now
}

func (t *FrameTimer) Frames() uint64 { return t.frames }

// Average is the mean frame duration of the window, 0 before two ticks.
func (t *FrameTimer) Average() time.Duration {
	n := t.next
	if t.full {
		n = len(t.samples)
	}
	if n == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.samples[:n] {
		sum += d
	}
	return sum / time.Duration(n)
}

func (t *FrameTimer) FPS() float64 {
	avg := t.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
