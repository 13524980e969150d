package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cube returns a unit cube with flat-shaded faces
func Cube() *Geometry {
	faces := []struct {
		n    mgl32.Vec3
		u, v mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	var b builder
	for _, f := range faces {
		c := f.n.Mul(0.5)
		u, v := f.u.Mul(0.5), f.v.Mul(0.5)
		a := b.vertex(c.Sub(u).Sub(v), f.n)
		b1 := b.vertex(c.Add(u).Sub(v), f.n)
		c1 := b.vertex(c.Add(u).Add(v), f.n)
		d := b.vertex(c.Sub(u).Add(v), f.n)
		b.quad(a, b1, c1, d)
	}
	return b.finish()
}

// Pyramid returns a square pyramid with its base on y=-0.5 and apex at y=0.5
func Pyramid() *Geometry {
	apex := mgl32.Vec3{0, 0.5, 0}
	base := [4]mgl32.Vec3{
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, -0.5, -0.5},
		{-0.5, -0.5, -0.5},
	}

	var b builder
	for i := 0; i < 4; i++ {
		p0, p1 := base[i], base[(i+1)%4]
		n := p1.Sub(p0).Cross(apex.Sub(p0))
		b.tri(b.vertex(p0, n), b.vertex(p1, n), b.vertex(apex, n))
	}

	down := mgl32.Vec3{0, -1, 0}
	a := b.vertex(base[0], down)
	c := b.vertex(base[3], down)
	d := b.vertex(base[2], down)
	e := b.vertex(base[1], down)
	b.quad(a, c, d, e)
	return b.finish()
}

// Cylinder returns a capped cylinder of radius 0.5 and height 1 around the Y axis
func Cylinder(slices int) *Geometry {
	slices = max(slices, 3)
	var b builder

	ring := func(i int) (mgl32.Vec3, mgl32.Vec3) {
		angle := 2 * math32.Pi * float32(i) / float32(slices)
		sin, cos := math32.Sincos(angle)
		return mgl32.Vec3{0.5 * cos, 0, -0.5 * sin}, mgl32.Vec3{cos, 0, -sin}
	}

	// side
	first := uint32(b.g.VertexCount())
	for i := 0; i <= slices; i++ {
		p, n := ring(i)
		b.vertex(p.Add(mgl32.Vec3{0, -0.5, 0}), n)
		b.vertex(p.Add(mgl32.Vec3{0, 0.5, 0}), n)
	}
	for i := 0; i < slices; i++ {
		lo := first + uint32(2*i)
		b.quad(lo, lo+2, lo+3, lo+1)
	}

	// caps
	for _, y := range []float32{0.5, -0.5} {
		n := mgl32.Vec3{0, y * 2, 0}
		center := b.vertex(mgl32.Vec3{0, y, 0}, n)
		start := uint32(b.g.VertexCount())
		for i := 0; i < slices; i++ {
			p, _ := ring(i)
			b.vertex(p.Add(mgl32.Vec3{0, y, 0}), n)
		}
		for i := 0; i < slices; i++ {
			cur := start + uint32(i)
			next := start + uint32((i+1)%slices)
			if y > 0 {
				b.tri(center, cur, next)
			} else {
				b.tri(center, next, cur)
			}
		}
	}
	return b.finish()
}

// Sphere returns a UV sphere of radius 0.5
func Sphere(stacks, sectors int) *Geometry {
	stacks = max(stacks, 2)
	sectors = max(sectors, 3)
	var b builder

	for i := 0; i <= stacks; i++ {
		phi := math32.Pi * float32(i) / float32(stacks)
		sinPhi, cosPhi := math32.Sincos(phi)
		for j := 0; j <= sectors; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(sectors)
			sinTheta, cosTheta := math32.Sincos(theta)
			n := mgl32.Vec3{sinPhi * cosTheta, cosPhi, -sinPhi * sinTheta}
			b.vertex(n.Mul(0.5), n)
		}
	}

	row := uint32(sectors + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			top := uint32(i)*row + uint32(j)
			bottom := top + row
			if i != 0 {
				b.tri(top, bottom, top+1)
			}
			if i != stacks-1 {
				b.tri(top+1, bottom, bottom+1)
			}
		}
	}
	return b.finish()
}

// Torus returns a torus around the Y axis. major is the ring radius, minor the tube radius.
func Torus(major, minor float32, rings, sides int) *Geometry {
	rings = max(rings, 3)
	sides = max(sides, 3)
	var b builder

	for i := 0; i <= rings; i++ {
		u := 2 * math32.Pi * float32(i) / float32(rings)
		sinU, cosU := math32.Sincos(u)
		for j := 0; j <= sides; j++ {
			v := 2 * math32.Pi * float32(j) / float32(sides)
			sinV, cosV := math32.Sincos(v)
			n := mgl32.Vec3{cosV * cosU, sinV, -cosV * sinU}
			center := mgl32.Vec3{major * cosU, 0, -major * sinU}
			b.vertex(center.Add(n.Mul(minor)), n)
		}
	}

	row := uint32(sides + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a := uint32(i)*row + uint32(j)
			c := a + row
			b.quad(a, c, c+1, a+1)
		}
	}
	return b.finish()
}
