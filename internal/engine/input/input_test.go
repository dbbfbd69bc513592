package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{}, Event{Type: EventQuit}, true},
		{"key down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_R}, true},
		{"key repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
			Event{}, false},
		{"key up", &sdl.KeyboardEvent{Type: sdl.KEYUP}, Event{}, false},
		{"drag", &sdl.MouseMotionEvent{State: sdl.ButtonLMask(), XRel: 3, YRel: -2},
			Event{Type: EventDrag, DX: 3, DY: -2}, true},
		{"hover", &sdl.MouseMotionEvent{XRel: 3}, Event{}, false},
		{"wheel", &sdl.MouseWheelEvent{Y: 1}, Event{Type: EventWheel, DY: 1}, true},
		{"flipped wheel", &sdl.MouseWheelEvent{Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			Event{Type: EventWheel, DY: -1}, true},
		{"resize", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_G})
	if !in.IsKeyPressed(sdl.SCANCODE_G) {
		t.Error("expected G pressed")
	}
	if in.IsKeyPressed(sdl.SCANCODE_R) {
		t.Error("R was not pressed")
	}
}
