package framebuffer

// Ring hands out color surface indices in rotation, like a display's swap chain.
type Ring struct {
	count   int
	current int
}

// NewRing creates a ring of count slots. Count is clamped to at least 1.
// The first Acquire returns slot 0.
func NewRing(count int) *Ring {
	count = max(count, 1)
	return &Ring{count: count, current: count - 1}
}

// Acquire advances to and returns the next slot.
func (r *Ring) Acquire() int {
	r.current = (r.current + 1) % r.count
	return r.current
}

// Current returns the most recently acquired slot.
func (r *Ring) Current() int {
	return r.current
}

// Len returns the number of slots.
func (r *Ring) Len() int {
	return r.count
}

// Rect is a pixel rectangle in window coordinates (origin bottom-left).
type Rect struct {
	X, Y, W, H int32
}

// Letterbox fits a srcW×srcH surface into a dstW×dstH window, preserving aspect
// ratio and centring it. Returns an empty rect when the window has no area.
func Letterbox(srcW, srcH, dstW, dstH int32) Rect {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Rect{}
	}

	// Compare dstW/dstH against srcW/srcH without floating point
	w, h := dstW, dstH
	if int64(dstW)*int64(srcH) > int64(dstH)*int64(srcW) {
		w = int32(int64(dstH) * int64(srcW) / int64(srcH))
	} else {
		h = int32(int64(dstW) * int64(srcH) / int64(srcW))
	}

	return Rect{
		X: (dstW - w) / 2,
		Y: (dstH - h) / 2,
		W: w,
		H: h,
	}
}
