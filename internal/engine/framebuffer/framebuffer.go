// Package framebuffer manages the offscreen render surfaces: a ring of color
// surfaces sharing one depth surface, all at the display resolution.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"go.uber.org/multierr"
)

type colorSurface struct {
	fbo     uint32
	texture uint32
}

// Surfaces is the set of render targets the demo draws into.
type Surfaces struct {
	colors   []colorSurface
	depthRBO uint32
	width    int32
	height   int32
	ring     *Ring
	attached bool
}

// New allocates count color surfaces and one depth surface of width×height.
func New(width, height int32, count int) (*Surfaces, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	s := &Surfaces{
		width:  width,
		height: height,
		ring:   NewRing(count),
	}

	gl.GenRenderbuffers(1, &s.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, s.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	var err error
	for i := range s.ring.Len() {
		c, cerr := s.createColor()
		s.colors = append(s.colors, c)
		if cerr != nil {
			err = multierr.Append(err, fmt.Errorf("color surface %d: %w", i, cerr))
		}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating surfaces: %w", err)
	}
	return s, nil
}

func (s *Surfaces) createColor() (colorSurface, error) {
	var c colorSurface

	gl.GenTextures(1, &c.texture)
	gl.BindTexture(gl.TEXTURE_2D, c.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, s.width, s.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &c.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.texture, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, s.depthRBO)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return c, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return c, nil
}

// Attach binds the next color surface and the depth surface as the render target.
func (s *Surfaces) Attach() {
	c := s.colors[s.ring.Acquire()]
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.fbo)
	gl.Viewport(0, 0, s.width, s.height)
	s.attached = true
}

// Present copies the attached color surface into the window's back buffer,
// letterboxed into a windowW×windowH drawable, and restores the default framebuffer.
// The caller swaps the window afterwards.
func (s *Surfaces) Present(windowW, windowH int32) {
	if !s.attached {
		return
	}
	c := s.colors[s.ring.Current()]

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, c.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, windowW, windowH)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dst := Letterbox(s.width, s.height, windowW, windowH)
	gl.BlitFramebuffer(0, 0, s.width, s.height,
		dst.X, dst.Y, dst.X+dst.W, dst.Y+dst.H,
		gl.COLOR_BUFFER_BIT, gl.NEAREST)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	s.attached = false
}

// Size returns the surface dimensions.
func (s *Surfaces) Size() (width, height int32) {
	return s.width, s.height
}

// Destroy releases all OpenGL resources.
func (s *Surfaces) Destroy() {
	for i := range s.colors {
		c := &s.colors[i]
		if c.fbo != 0 {
			gl.DeleteFramebuffers(1, &c.fbo)
		}
		if c.texture != 0 {
			gl.DeleteTextures(1, &c.texture)
		}
	}
	s.colors = nil
	if s.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &s.depthRBO)
		s.depthRBO = 0
	}
}
