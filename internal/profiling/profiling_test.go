package profiling

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	stop := Track("render.drawFloor")
	stop()
	stop = Track("render.drawFloor")
	stop()
	_, ok := Snapshot()["render.drawFloor"]
	assert.True(t, ok)
}

func TestSumWithPrefixAndTopN(t *testing.T) {
	ResetFrame()
	record("render.drawFloor", 2*time.Millisecond)
	record("render.drawLights", 1*time.Millisecond)
	record("glfw.SwapBuffers", 5*time.Millisecond)

	assert.Equal(t, 3*time.Millisecond, SumWithPrefix("render."))
	assert.Equal(t, "glfw.SwapBuffers:5.0ms, render.drawFloor:2.0ms", TopN(2))
	assert.Equal(t, 3, len(strings.Split(TopN(10), ", ")))
}

func TestResetFrameClears(t *testing.T) {
	record("x", time.Second)
	ResetFrame()
	assert.Empty(t, Snapshot())
	assert.Equal(t, "", TopN(3))
	assert.GreaterOrEqual(t, FrameElapsed(), time.Duration(0))
}
