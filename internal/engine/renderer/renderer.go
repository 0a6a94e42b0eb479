// Package renderer draws the demo scene with the fixed-function OpenGL pipeline.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/sizzleship/internal/assets"
	"github.com/Faultbox/sizzleship/internal/engine/framebuffer"
	"github.com/Faultbox/sizzleship/internal/engine/lighting"
	"github.com/Faultbox/sizzleship/internal/engine/model"
	"github.com/Faultbox/sizzleship/internal/engine/scene"
	"github.com/Faultbox/sizzleship/internal/engine/texture"
	"github.com/Faultbox/sizzleship/internal/logger"
)

// FogColor is the linear fog color.
var FogColor = [4]float32{0.8, 0.83, 0.48, 0.5}

// Fog distances along the view axis.
const (
	FogStart = 15
	FogEnd   = 55
)

var materialDiffuse = [4]float32{1, 1, 1, 1}

// Config holds renderer configuration.
type Config struct {
	Width          int
	Height         int
	Aspect         float32 // Display width over height, drives the frustum
	Buffers        int
	SphereRings    int
	SphereSegments int
	LightsEnabled  bool
	Textures       []string // Logical asset paths in TextureSlot order
}

// Renderer owns every GL resource the scene uses.
type Renderer struct {
	config   Config
	surfaces *framebuffer.Surfaces
	textures [TextureCount]*texture.Texture
	meshes   [MeshCount]*model.Buffer
	log      *zap.Logger
}

// New initialises OpenGL, loads the textures through the asset manager and builds the meshes.
// Must be called after the GL context is current.
func New(cfg Config, am *assets.Manager) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if cfg.Aspect <= 0 {
		return nil, fmt.Errorf("invalid aspect ratio %f", cfg.Aspect)
	}
	if len(cfg.Textures) != int(TextureCount) {
		return nil, fmt.Errorf("expected %d textures, got %d", TextureCount, len(cfg.Textures))
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.surfaces, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height), cfg.Buffers)
	if err != nil {
		return nil, err
	}

	if err := r.loadTextures(am); err != nil {
		r.Close()
		return nil, err
	}
	r.buildMeshes()
	r.setupState()

	return r, nil
}

func (r *Renderer) loadTextures(am *assets.Manager) error {
	for i, path := range r.config.Textures {
		data, err := am.Load(path)
		if err != nil {
			return fmt.Errorf("loading texture %s: %w", path, err)
		}
		img, err := texture.Decode(path, data)
		if err != nil {
			return fmt.Errorf("decoding texture %s: %w", path, err)
		}
		r.textures[i] = texture.Upload(img)
		r.log.Debug("texture loaded",
			zap.String("path", path),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()),
		)
	}
	return nil
}

func (r *Renderer) buildMeshes() {
	meshes := [MeshCount]*model.Mesh{
		MeshPlane:  model.Plane(PlaneSize, PlaneSegments),
		MeshArena:  model.Arena(ArenaBoxes, ArenaRadius, ArenaHalf),
		MeshSphere: model.Sphere(mgl32.Vec3{}, SphereRadius, r.config.SphereRings, r.config.SphereSegments),
	}
	for id, m := range meshes {
		r.meshes[id] = model.Upload(m)
		r.log.Debug("mesh built",
			zap.Stringer("mesh", MeshID(id)),
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("triangles", m.TriangleCount()),
		)
	}
}

// setupState applies the GL state that never changes after startup.
func (r *Renderer) setupState() {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Frustum(Frustum(r.config.Aspect))

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	lighting.Setup(r.config.LightsEnabled)
	gl.Materialfv(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE, &materialDiffuse[0])

	gl.Fogi(gl.FOG_MODE, gl.LINEAR)
	gl.Fogf(gl.FOG_START, FogStart)
	gl.Fogf(gl.FOG_END, FogEnd)
	gl.Fogfv(gl.FOG_COLOR, &FogColor[0])

	gl.ShadeModel(gl.SMOOTH)
	gl.Disable(gl.FOG)
}

// ApplyToggles pushes the shade model and fog switch into GL.
func (r *Renderer) ApplyToggles(state *scene.FrameState) {
	if state.Shading == scene.ShadingFlat {
		gl.ShadeModel(gl.FLAT)
	} else {
		gl.ShadeModel(gl.SMOOTH)
	}
	if state.Fog {
		gl.Enable(gl.FOG)
	} else {
		gl.Disable(gl.FOG)
	}
}

// Frame renders state into the next surface and presents it into a
// windowW×windowH drawable. The caller swaps buffers afterwards.
// Returns the first pending GL error, if any.
func (r *Renderer) Frame(state *scene.FrameState, windowW, windowH int32) error {
	r.surfaces.Attach()

	gl.ClearColor(lighting.Ambient[0], lighting.Ambient[1], lighting.Ambient[2], lighting.Ambient[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.MatrixMode(gl.MODELVIEW)
	view := state.Camera.ViewMatrix()
	gl.LoadMatrixf(&view[0])

	lighting.Place(state.LightAngle())

	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.NORMALIZE)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.TEXTURE_2D)

	rotation := state.Rotation()
	for _, call := range DrawList() {
		r.textures[call.Texture].Bind()
		if call.Spin {
			spin := SpinMatrix(rotation)
			gl.PushMatrix()
			gl.MultMatrixf(&spin[0])
			r.meshes[call.Mesh].Draw()
			gl.PopMatrix()
			continue
		}
		r.meshes[call.Mesh].Draw()
	}

	gl.Disable(gl.TEXTURE_2D)
	gl.Disable(gl.LIGHTING)

	r.surfaces.Present(windowW, windowH)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("GL error 0x%04x", code)
	}
	return nil
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for i, m := range r.meshes {
		if m != nil {
			m.Destroy()
			r.meshes[i] = nil
		}
	}
	for i, t := range r.textures {
		if t != nil {
			t.Destroy()
			r.textures[i] = nil
		}
	}
	if r.surfaces != nil {
		r.surfaces.Destroy()
		r.surfaces = nil
	}
}
