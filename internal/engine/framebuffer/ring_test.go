package framebuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingRotates(t *testing.T) {
	r := NewRing(3)
	assert.Equal(t, 3, r.Len())

	var got []int
	for range 7 {
		got = append(got, r.Acquire())
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, got)
	assert.Equal(t, 0, r.Current())
}

func TestRingSingleSlot(t *testing.T) {
	for _, n := range []int{1, 0, -4} {
		r := NewRing(n)
		assert.Equal(t, 1, r.Len())
		assert.Equal(t, 0, r.Acquire())
		assert.Equal(t, 0, r.Acquire())
	}
}

func TestLetterbox(t *testing.T) {
	tests := []struct {
		name       string
		dstW, dstH int32
		want       Rect
	}{
		{"exact multiple", 960, 720, Rect{0, 0, 960, 720}},
		{"wide window", 1280, 720, Rect{160, 0, 960, 720}},
		{"tall window", 640, 720, Rect{0, 120, 640, 480}},
		{"same size", 320, 240, Rect{0, 0, 320, 240}},
		{"minimised", 0, 0, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Letterbox(320, 240, tt.dstW, tt.dstH))
		})
	}
}
