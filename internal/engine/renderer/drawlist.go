package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TextureSlot names the scene's texture table entries, in asset order.
type TextureSlot int

const (
	TextureWater TextureSlot = iota
	TextureClouds
	TexturePentagon
	TextureTriangle
	TextureStarB
	TextureStar
	TextureCount
)

// MeshID names the static meshes built at startup.
type MeshID int

const (
	MeshPlane MeshID = iota
	MeshArena
	MeshSphere
	MeshCount
)

func (m MeshID) String() string {
	switch m {
	case MeshPlane:
		return "plane"
	case MeshArena:
		return "arena"
	case MeshSphere:
		return "sphere"
	}
	return "unknown"
}

// Scene geometry.
const (
	PlaneSize     = 20
	PlaneSegments = 16

	ArenaBoxes  = 8
	ArenaRadius = 7
	ArenaHalf   = 0.6

	SphereRadius = 1.5
)

// SphereCenter is where the sphere floats above the plane.
var SphereCenter = mgl32.Vec3{0, 2, 0}

// Sphere spin rates about X, Z and Y, in degrees per unit of scene rotation.
const (
	SpinX = 0.23
	SpinZ = 0.98
	SpinY = 1.71
)

// DrawCall is one textured mesh draw.
type DrawCall struct {
	Mesh    MeshID
	Texture TextureSlot
	Spin    bool // Rotate about SphereCenter by the scene rotation
}

// textureIndex picks the sphere texture from the first four slots.
// Nothing advances it, so the sphere stays on clouds.
const textureIndex = 0

var drawList = []DrawCall{
	{Mesh: MeshPlane, Texture: TextureWater},
	{Mesh: MeshArena, Texture: TextureStar},
	{Mesh: MeshSphere, Texture: TextureSlot((textureIndex + 1) % 4), Spin: true},
}

// DrawList returns the per-frame draws in submission order.
func DrawList() []DrawCall {
	return drawList
}

// SpinMatrix returns the sphere's model transform for a scene rotation:
// move to SphereCenter, then rotate about X, Z and Y in that order.
func SpinMatrix(rotation float32) mgl32.Mat4 {
	return mgl32.Translate3D(SphereCenter.X(), SphereCenter.Y(), SphereCenter.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotation * SpinX))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation * SpinZ))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotation * SpinY)))
}

// Frustum returns the projection bounds for a display aspect ratio.
func Frustum(aspect float32) (left, right, bottom, top, near, far float64) {
	const n, f = 1.0, 50.0
	a := float64(aspect)
	return -n * a, n * a, -n, n, n, f
}
