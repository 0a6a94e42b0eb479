package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere tessellation limits.
const (
	MinSphereRings    = 4
	MaxSphereRings    = 64
	MinSphereSegments = 4
	MaxSphereSegments = 64
)

// Sphere builds a UV sphere. Rings run pole to pole, segments around the Y axis;
// both are clamped to the supported range. Texture U wraps once around, V once pole to pole.
func Sphere(center mgl32.Vec3, radius float32, rings, segments int) *Mesh {
	rings = clamp(rings, MinSphereRings, MaxSphereRings)
	segments = clamp(segments, MinSphereSegments, MaxSphereSegments)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (rings+1)*(segments+1)),
		Indices:  make([]uint32, 0, rings*segments*6),
	}

	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		sinPhi, cosPhi := math.Sincos(phi)

		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			sinTheta, cosTheta := math.Sincos(theta)

			n := mgl32.Vec3{
				float32(sinPhi * cosTheta),
				float32(cosPhi),
				float32(sinPhi * sinTheta),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: center.Add(n.Mul(radius)),
				Normal:   n,
				TexCoord: mgl32.Vec2{float32(s) / float32(segments), float32(r) / float32(rings)},
			})
		}
	}

	stride := uint32(segments + 1)
	for r := range uint32(rings) {
		for s := range uint32(segments) {
			a := r*stride + s
			b := a + stride
			m.Indices = append(m.Indices,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}

	return m
}

// Plane builds a square grid on y=0 facing +Y, size units across and split into
// segments×segments quads. The texture repeats once per quad.
func Plane(size float32, segments int) *Mesh {
	segments = max(segments, 1)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (segments+1)*(segments+1)),
		Indices:  make([]uint32, 0, segments*segments*6),
	}

	half := size / 2
	step := size / float32(segments)
	for z := 0; z <= segments; z++ {
		for x := 0; x <= segments; x++ {
			m.Vertices = append(m.Vertices, Vertex{
				Position: mgl32.Vec3{-half + step*float32(x), 0, -half + step*float32(z)},
				Normal:   mgl32.Vec3{0, 1, 0},
				TexCoord: mgl32.Vec2{float32(x), float32(z)},
			})
		}
	}

	stride := uint32(segments + 1)
	for z := range uint32(segments) {
		for x := range uint32(segments) {
			a := z*stride + x
			b := a + stride
			m.Indices = append(m.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return m
}

// cubeFaces lists each face as normal, U and V axes with U×V = normal,
// so corners emitted in U/V order wind counter-clockwise seen from outside.
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// Cube builds an origin-centred cube with flat-shaded faces (4 vertices, 2 triangles each).
func Cube(halfExtent float32) *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		base := uint32(len(m.Vertices))

		for _, c := range corners {
			offset := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(halfExtent)
			m.Vertices = append(m.Vertices, Vertex{
				Position: offset,
				Normal:   n,
				TexCoord: mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return m
}

// Arena builds count cubes evenly spaced on a circle of the given radius,
// resting on y=0, merged into a single mesh.
func Arena(count int, radius, halfExtent float32) *Mesh {
	m := &Mesh{}
	for i := range count {
		angle := 2 * math.Pi * float64(i) / float64(count)
		sin, cos := math.Sincos(angle)
		center := mgl32.Vec3{radius * float32(cos), halfExtent, radius * float32(sin)}
		box := Cube(halfExtent)
		box.Translate(center)
		m.Append(box)
	}
	return m
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
