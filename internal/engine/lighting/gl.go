package lighting

import (
	"github.com/go-gl/gl/v3.2-compatibility/gl"
)

// Setup configures the light model and every light's static parameters.
// Lights stay disabled unless enable is set; positions are uploaded per frame by Place.
func Setup(enable bool) {
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &Ambient[0])

	linear, quadratic := Attenuation()
	for i := range Table {
		id := glLight(Index(i))
		gl.Lightfv(id, gl.DIFFUSE, &Table[i].Diffuse[0])
		gl.Lightf(id, gl.LINEAR_ATTENUATION, linear)
		gl.Lightf(id, gl.QUADRATIC_ATTENUATION, quadratic)
		if enable {
			gl.Enable(id)
		} else {
			gl.Disable(id)
		}
	}
}

// Place uploads the light positions rotated by angle degrees.
// GL transforms positions by the current model-view matrix, so call this right
// after the camera view is loaded to pin the lights to the scene.
func Place(angle float32) {
	positions := Positions(angle)
	for i := range positions {
		gl.Lightfv(glLight(Index(i)), gl.POSITION, &positions[i][0])
	}
}

func glLight(i Index) uint32 {
	return gl.LIGHT0 + uint32(i)
}
