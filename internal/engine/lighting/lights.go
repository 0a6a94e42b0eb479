// Package lighting holds the demo's fixed light table and its per-frame rotation.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Index names a slot in the light table. Slots map one-to-one onto GL_LIGHT0..GL_LIGHT7.
type Index int

// Four directional lights along the compass axes, then four lamps hanging over the plane.
const (
	SunEast Index = iota
	SunWest
	SunSouth
	SunNorth
	LampEast
	LampWest
	LampSouth
	LampNorth

	Count
)

// Light is a fixed light source. Position.W() is 0 for directional lights and 1 for lamps.
type Light struct {
	Position mgl32.Vec4
	Diffuse  [4]float32
}

// Table is indexed by Index.
var Table = [Count]Light{
	SunEast:   {Position: mgl32.Vec4{1, 0, 0, 0}, Diffuse: [4]float32{1, 0, 0, 1}},
	SunWest:   {Position: mgl32.Vec4{-1, 0, 0, 0}, Diffuse: [4]float32{0, 1, 0, 1}},
	SunSouth:  {Position: mgl32.Vec4{0, 0, 1, 0}, Diffuse: [4]float32{0, 0, 1, 1}},
	SunNorth:  {Position: mgl32.Vec4{0, 0, -1, 0}, Diffuse: [4]float32{1, 1, 0, 1}},
	LampEast:  {Position: mgl32.Vec4{8, 3, 0, 1}, Diffuse: [4]float32{1, 0, 1, 1}},
	LampWest:  {Position: mgl32.Vec4{-8, 3, 0, 1}, Diffuse: [4]float32{0, 1, 1, 1}},
	LampSouth: {Position: mgl32.Vec4{0, 3, 8, 1}, Diffuse: [4]float32{1, 1, 1, 1}},
	LampNorth: {Position: mgl32.Vec4{0, 3, -8, 1}, Diffuse: [4]float32{1, 1, 1, 1}},
}

// Ambient is the light model ambient color, also used as the clear color.
var Ambient = [4]float32{0.9, 0.93, 0.98, 1}

// Radius is the distance over which lamp attenuation falls off.
const Radius = 10.0

// Attenuation returns the linear and quadratic attenuation factors shared by all lights.
func Attenuation() (linear, quadratic float32) {
	return 2.0 / Radius, 1.0 / (Radius * Radius)
}

const (
	// AnimationStep converts the animation counter into the scene rotation parameter.
	AnimationStep = 0.5

	// DegreesPerStep is how far the lights turn per unit of scene rotation.
	DegreesPerStep = 5.43
)

// SceneRotation returns the rotation parameter that drives all animated objects.
func SceneRotation(animation int) float32 {
	return float32(animation) * AnimationStep
}

// Angle returns the light rotation about +Y in degrees, normalised into [0, 360).
func Angle(animation int) float32 {
	deg := math.Mod(float64(animation)*AnimationStep*DegreesPerStep, 360)
	if deg < 0 {
		deg += 360
	}
	// Values a hair below 360 round up when narrowed
	if a := float32(deg); a < 360 {
		return a
	}
	return 0
}

// Positions returns every light position rotated about +Y by angle degrees.
// Directions stay directions: the rotation has no translation, so W is preserved.
func Positions(angle float32) [Count]mgl32.Vec4 {
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(angle))

	var out [Count]mgl32.Vec4
	for i, l := range Table {
		out[i] = rot.Mul4x1(l.Position)
	}
	return out
}
