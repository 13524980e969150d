package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopRestores(t *testing.T) {
	s := New()
	view := mgl32.LookAtV(mgl32.Vec3{0, 5, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	s.Load(view)

	s.Push()
	s.MultScale(mgl32.Vec3{3, 0.1, 3})
	s.MultTranslation(mgl32.Vec3{0, -0.05, 0})
	assert.Equal(t, 1, s.Depth())
	assert.NotEqual(t, view, s.Current())

	require.NoError(t, s.Pop())
	assert.Equal(t, view, s.Current())
	assert.Equal(t, 0, s.Depth())
}

func TestPopUnderflow(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Pop(), ErrStackUnderflow)
	assert.Equal(t, mgl32.Ident4(), s.Current())
}

func TestMultOrder(t *testing.T) {
	s := New()
	s.MultTranslation(mgl32.Vec3{1, 0, 0})
	s.MultScale(mgl32.Vec3{2, 2, 2})

	// scale applies first, then translation
	p := s.Current().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 3, p.X(), 1e-6)
}

func TestRotationY(t *testing.T) {
	s := New()
	s.MultRotationY(90)
	p := s.Current().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-6)
	assert.InDelta(t, -1, p.Z(), 1e-6)
}

func TestNormalMatrixUndoesNonUniformScale(t *testing.T) {
	s := New()
	s.MultScale(mgl32.Vec3{2, 1, 1})
	n := s.NormalMatrix().Mul3x1(mgl32.Vec3{1, 1, 0})
	assert.InDelta(t, 0.5, n.X(), 1e-6)
	assert.InDelta(t, 1, n.Y(), 1e-6)
}

func TestReset(t *testing.T) {
	s := New()
	s.Push()
	s.Push()
	s.MultScale(mgl32.Vec3{2, 2, 2})
	s.Reset()
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, mgl32.Ident4(), s.Current())
}
