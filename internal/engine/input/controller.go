package input

// Button is a bit set of controller buttons.
type Button uint16

// Controller buttons the demo reacts to.
const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonStart
	ButtonL
	ButtonR
)

// Has reports whether every button in mask is set.
func (b Button) Has(mask Button) bool {
	return b&mask == mask
}

// Sample is the raw controller state read in one poll.
type Sample struct {
	Buttons Button
	StickX  float32 // [-1, 1], +X right
	StickY  float32 // [-1, 1], +Y up
}

// Frame is one frame's view of the controller.
type Frame struct {
	Held    Button // Down during this poll
	Pressed Button // Went down since the previous poll
	StickX  float32
	StickY  float32
}

// WasPressed reports whether b transitioned into the down state this frame.
func (f Frame) WasPressed(b Button) bool {
	return f.Pressed.Has(b)
}

// IsHeld reports whether b is down this frame.
func (f Frame) IsHeld(b Button) bool {
	return f.Held.Has(b)
}

// Tracker turns successive samples into frames with edge detection.
type Tracker struct {
	previous Button
}

// Next consumes a sample and returns the frame for it.
func (t *Tracker) Next(s Sample) Frame {
	f := Frame{
		Held:    s.Buttons,
		Pressed: s.Buttons &^ t.previous,
		StickX:  s.StickX,
		StickY:  s.StickY,
	}
	t.previous = s.Buttons
	return f
}

// NormalizeAxis maps an SDL axis value onto [-1, 1].
func NormalizeAxis(v int16) float32 {
	if v < 0 {
		return float32(v) / 32768
	}
	return float32(v) / 32767
}

// clampUnit limits v to [-1, 1].
func clampUnit(v float32) float32 {
	return min(max(v, -1), 1)
}
