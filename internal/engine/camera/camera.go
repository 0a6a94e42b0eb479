// Package camera provides the demo's single orbiting camera.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera looks at the origin from a diagonal above the scene.
// Distance is a signed offset: the eye sits at (0, -Distance, -Distance),
// so the default negative distance places it above and in front of the origin.
type Camera struct {
	Distance float32 // Signed offset from origin
	Rotation float32 // Yaw about +Y (degrees)
}

// New creates a camera at the given distance with no rotation.
func New(distance float32) Camera {
	return Camera{Distance: distance}
}

// Eye returns the camera position in world space before rotation is applied.
func (c Camera) Eye() mgl32.Vec3 {
	return mgl32.Vec3{0, -c.Distance, -c.Distance}
}

// ViewMatrix returns the view transform: look at the origin, then rotate the world about Y.
func (c Camera) ViewMatrix() mgl32.Mat4 {
	view := mgl32.LookAtV(c.Eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	return view.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Rotation)))
}

// Zoom moves the camera along its view diagonal by the stick's vertical deflection.
// Nothing happens while the squared stick magnitude stays within the deadzone.
// Returns true if the distance changed.
func (c *Camera) Zoom(x, y, deadzone, speed float32) bool {
	if x*x+y*y <= deadzone {
		return false
	}
	c.Distance += y * speed
	return true
}
