// Package input polls SDL2 for window events and controller state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/sizzleship/internal/logger"
)

// Event types for game use
type EventType int

const (
	EventQuit EventType = iota + 1
	EventWindowResize
)

// Event represents a processed window event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// keyboard fallback for the controller buttons
var keyButtons = map[sdl.Scancode]Button{
	sdl.SCANCODE_Z:      ButtonA,
	sdl.SCANCODE_X:      ButtonB,
	sdl.SCANCODE_RETURN: ButtonStart,
	sdl.SCANCODE_Q:      ButtonL,
	sdl.SCANCODE_E:      ButtonR,
}

var padButtons = map[sdl.GameControllerButton]Button{
	sdl.CONTROLLER_BUTTON_A:             ButtonA,
	sdl.CONTROLLER_BUTTON_B:             ButtonB,
	sdl.CONTROLLER_BUTTON_START:         ButtonStart,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  ButtonL,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: ButtonR,
}

// Input handles all input processing.
type Input struct {
	events  []Event
	pad     *sdl.GameController
	tracker Tracker
	frame   Frame
}

// New creates a new input handler and opens the first attached game controller.
func New() *Input {
	i := &Input{
		events: make([]Event, 0, 4),
	}
	for idx := 0; idx < sdl.NumJoysticks(); idx++ {
		if i.openPad(idx) {
			break
		}
	}
	if i.pad == nil {
		logger.Info("no game controller found, using keyboard")
	}
	return i
}

func (i *Input) openPad(index int) bool {
	if !sdl.IsGameController(index) {
		return false
	}
	pad := sdl.GameControllerOpen(index)
	if pad == nil || !pad.Attached() {
		return false
	}
	i.pad = pad
	logger.Info("game controller attached", zap.String("name", pad.Name()))
	return true
}

// Update polls SDL events and samples the controller once.
// Returns true if the demo should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				quit = true
			}

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				if i.pad == nil {
					i.openPad(int(e.Which))
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				if i.pad != nil && i.pad.Joystick().InstanceID() == sdl.JoystickID(e.Which) {
					logger.Info("game controller removed")
					i.pad.Close()
					i.pad = nil
				}
			}
		}
	}

	i.frame = i.tracker.Next(i.sample())
	return quit
}

// sample merges the controller and keyboard into one reading.
func (i *Input) sample() Sample {
	var s Sample

	keys := sdl.GetKeyboardState()
	for code, b := range keyButtons {
		if keys[code] != 0 {
			s.Buttons |= b
		}
	}
	if keys[sdl.SCANCODE_UP] != 0 || keys[sdl.SCANCODE_W] != 0 {
		s.StickY += 1
	}
	if keys[sdl.SCANCODE_DOWN] != 0 || keys[sdl.SCANCODE_S] != 0 {
		s.StickY -= 1
	}
	if keys[sdl.SCANCODE_RIGHT] != 0 || keys[sdl.SCANCODE_D] != 0 {
		s.StickX += 1
	}
	if keys[sdl.SCANCODE_LEFT] != 0 || keys[sdl.SCANCODE_A] != 0 {
		s.StickX -= 1
	}

	if i.pad != nil {
		for btn, b := range padButtons {
			if i.pad.Button(btn) != 0 {
				s.Buttons |= b
			}
		}
		s.StickX += NormalizeAxis(i.pad.Axis(sdl.CONTROLLER_AXIS_LEFTX))
		// SDL reports +Y as down
		s.StickY -= NormalizeAxis(i.pad.Axis(sdl.CONTROLLER_AXIS_LEFTY))
	}

	s.StickX = clampUnit(s.StickX)
	s.StickY = clampUnit(s.StickY)
	return s
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Frame returns the controller frame from the last Update.
func (i *Input) Frame() Frame {
	return i.frame
}

// Close releases the game controller.
func (i *Input) Close() {
	if i.pad != nil {
		i.pad.Close()
		i.pad = nil
	}
}
