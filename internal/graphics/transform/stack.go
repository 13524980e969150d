package transform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrStackUnderflow is returned when Pop is called with nothing pushed
var ErrStackUnderflow = errors.New("transform stack: pop without matching push")

// Stack is a model-view matrix stack. The top is the current matrix; Push saves a
// copy of it and Pop restores the last saved one.
type Stack struct {
	current mgl32.Mat4
	saved   []mgl32.Mat4
}

// New returns a stack whose current matrix is the identity
func New() *Stack {
	return &Stack{current: mgl32.Ident4(), saved: make([]mgl32.Mat4, 0, 8)}
}

// Load replaces the current matrix
func (s *Stack) Load(m mgl32.Mat4) { s.current = m }

// Current returns the composed matrix
func (s *Stack) Current() mgl32.Mat4 { return s.current }

// Depth is the number of pushes without a matching pop
func (s *Stack) Depth() int { return len(s.saved) }

// Push saves the current matrix
func (s *Stack) Push() {
	s.saved = append(s.saved, s.current)
}

// Pop restores the most recently pushed matrix
func (s *Stack) Pop() error {
	n := len(s.saved)
	if n == 0 {
		return ErrStackUnderflow
	}
	s.current = s.saved[n-1]
	s.saved = s.saved[:n-1]
	return nil
}

// Mult right-multiplies the current matrix by m
func (s *Stack) Mult(m mgl32.Mat4) { s.current = s.current.Mul4(m) }

func (s *Stack) MultTranslation(v mgl32.Vec3) {
	s.Mult(mgl32.Translate3D(v[0], v[1], v[2]))
}

func (s *Stack) MultScale(v mgl32.Vec3) {
	s.Mult(mgl32.Scale3D(v[0], v[1], v[2]))
}

// MultRotationY rotates about the Y axis by the given angle in degrees
func (s *Stack) MultRotationY(degrees float32) {
	s.Mult(mgl32.HomogRotate3DY(mgl32.DegToRad(degrees)))
}

// Reset drops all saved matrices and loads the identity
func (s *Stack) Reset() {
	s.current = mgl32.Ident4()
	s.saved = s.saved[:0]
}

// NormalMatrix returns the inverse transpose of the current matrix's upper 3x3
func (s *Stack) NormalMatrix() mgl32.Mat3 {
	return s.current.Mat3().Inv().Transpose()
}
