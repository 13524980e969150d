package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timers keyed by "subsystem.operation" names, e.g. "render.drawLights".

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	frameStart  time.Time
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("render.drawFloor")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the totals and marks the start of a new frame
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	frameStart = time.Now()
	mu.Unlock()
}

// FrameElapsed returns the time since the last ResetFrame
func FrameElapsed() time.Duration {
	mu.Lock()
	defer mu.Unlock()
	if frameStart.IsZero() {
		return 0
	}
	return time.Since(frameStart)
}

// Snapshot returns a copy of current per-frame totals
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every timer whose name starts with prefix
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// TopN formats the n slowest timers of the current frame.
// Example: "render.drawArtefact:4.2ms, render.frameBegin:0.3ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", p.name, float64(p.dur.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}
