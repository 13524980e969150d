package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectNDC(t *testing.T) {
	v := rectNDC(0, 0, 400, 300, 800, 600)
	assert.Equal(t, [12]float32{
		-1, 1,
		0, 1,
		0, 0,
		-1, 1,
		0, 0,
		-1, 0,
	}, v)

	// full screen covers clip space
	v = rectNDC(0, 0, 800, 600, 800, 600)
	assert.Equal(t, float32(1), v[2])
	assert.Equal(t, float32(-1), v[5])
}

func TestViewportBeforeInit(t *testing.T) {
	u := NewUI("assets/shaders/ui")
	u.SetViewport(0, -5)
	assert.Equal(t, float32(1), u.width)
	assert.Equal(t, float32(1), u.height)
	u.SetViewport(1280, 720)
	assert.Equal(t, float32(1280), u.width)
}
