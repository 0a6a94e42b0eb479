package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"path"
	"strings"

	"golang.org/x/image/bmp"
)

// Decode decodes texture data, choosing the decoder from the file extension of name.
// The result is always RGBA so it can be uploaded without conversion.
func Decode(name string, data []byte) (*image.RGBA, error) {
	ext := strings.ToLower(path.Ext(name))

	var (
		img image.Image
		err error
	)
	switch ext {
	case ".tga":
		return DecodeTGA(data)
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported texture format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	return ToRGBA(img), nil
}

// ToRGBA converts any image to *image.RGBA with its origin moved to (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
