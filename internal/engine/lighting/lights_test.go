package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAngle(t *testing.T) {
	tests := []struct {
		animation int
		want      float32
	}{
		{0, 0},
		{1, 2.715},
		{2, 5.43},
		{3283, 273.345},
		{-1, 357.285},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Angle(tt.animation), 1e-3, "animation %d", tt.animation)
	}
}

func TestAngleAlwaysNormalised(t *testing.T) {
	for animation := -100000; animation <= 100000; animation += 97 {
		a := Angle(animation)
		assert.GreaterOrEqual(t, a, float32(0))
		assert.Less(t, a, float32(360))
	}
}

func TestAngleWrapsEveryFullTurn(t *testing.T) {
	for _, animation := range []int{7, 200, 3283, 65536} {
		raw := float64(animation) * AnimationStep * DegreesPerStep
		turns := int(raw / 360)
		assert.InDelta(t, raw-float64(turns)*360, Angle(animation), 1e-2)
	}
}

func TestSceneRotation(t *testing.T) {
	assert.Equal(t, float32(0), SceneRotation(0))
	assert.Equal(t, float32(0.5), SceneRotation(1))
	assert.Equal(t, float32(-1.5), SceneRotation(-3))
}

func TestAttenuation(t *testing.T) {
	linear, quadratic := Attenuation()
	assert.InDelta(t, 0.2, linear, 1e-7)
	assert.InDelta(t, 0.01, quadratic, 1e-7)
}

func TestTableKinds(t *testing.T) {
	for i := SunEast; i <= SunNorth; i++ {
		assert.Equal(t, float32(0), Table[i].Position.W(), "light %d should be directional", i)
	}
	for i := LampEast; i < Count; i++ {
		assert.Equal(t, float32(1), Table[i].Position.W(), "light %d should be positional", i)
	}
}

func TestPositionsUnrotated(t *testing.T) {
	got := Positions(0)
	for i, l := range Table {
		assert.True(t, got[i].ApproxEqualThreshold(l.Position, 1e-6), "light %d moved without rotation", i)
	}
}

func TestPositionsQuarterTurn(t *testing.T) {
	got := Positions(90)

	// Rotating +90 degrees about Y takes +X to -Z
	assert.True(t, got[SunEast].ApproxEqualThreshold(mgl32.Vec4{0, 0, -1, 0}, 1e-6), "got %v", got[SunEast])
	assert.True(t, got[LampEast].ApproxEqualThreshold(mgl32.Vec4{0, 3, -8, 1}, 1e-5), "got %v", got[LampEast])
	assert.True(t, got[LampSouth].ApproxEqualThreshold(mgl32.Vec4{8, 3, 0, 1}, 1e-5), "got %v", got[LampSouth])
}

func TestPositionsKeepHeightAndRange(t *testing.T) {
	for _, angle := range []float32{13, 97.5, 273.345} {
		got := Positions(angle)
		for i, l := range Table {
			assert.InDelta(t, l.Position.Y(), got[i].Y(), 1e-5)
			assert.InDelta(t, l.Position.Vec3().Len(), got[i].Vec3().Len(), 1e-4)
			assert.Equal(t, l.Position.W(), got[i].W())
		}
	}
}
