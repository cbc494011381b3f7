// Package input tracks per-frame keyboard, mouse and wheel state on top of
// the window's event stream. Keys are frame-scoped (terminals do not report
// key release); mouse buttons are edge-tracked across frames from button
// mask transitions.
package input

import (
	"github.com/gdamore/tcell/v2"
)

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

type keyPress struct {
	key tcell.Key
	r   rune
	mod tcell.ModMask
}

// State accumulates input events and answers pressed/just-pressed queries.
// Feed it once per frame: state.Update(win.Events()).
type State struct {
	justPressed []keyPress
	keys        []keyPress

	mouse             tcell.ButtonMask
	justPressedMouse  tcell.ButtonMask
	justReleasedMouse tcell.ButtonMask

	scroll int
}

// Update begins a new frame and registers its events
func (s *State) Update(events []tcell.Event) {
	s.justPressed = s.justPressed[:0]
	s.keys = s.keys[:0]
	s.justPressedMouse = 0
	s.justReleasedMouse = 0
	for _, ev := range events {
		s.Register(ev)
	}
}

// Register records a single event
func (s *State) Register(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		p := keyPress{key: e.Key(), r: e.Rune(), mod: e.Modifiers()}
		if p.key != tcell.KeyRune {
			p.r = 0
		}
		s.justPressed = append(s.justPressed, p)
		s.keys = append(s.keys, p)
	case *tcell.EventMouse:
		s.registerMouse(e)
	}
}

func (s *State) registerMouse(e *tcell.EventMouse) {
	btns := e.Buttons()
	if btns&tcell.WheelDown != 0 {
		s.scroll++
	}
	if btns&tcell.WheelUp != 0 {
		s.scroll--
	}
	held := btns &^ wheelMask
	s.justPressedMouse |= held &^ s.mouse
	s.justReleasedMouse |= s.mouse &^ held
	s.mouse = held
}

// Pressed reports whether the key was seen this frame, any modifiers
func (s *State) Pressed(key tcell.Key) bool {
	for _, p := range s.keys {
		if p.key == key {
			return true
		}
	}
	return false
}

// PressedMod reports whether the key was seen this frame with exactly the
// given modifiers
func (s *State) PressedMod(key tcell.Key, mod tcell.ModMask) bool {
	for _, p := range s.keys {
		if p.key == key && p.mod == mod {
			return true
		}
	}
	return false
}

// JustPressed reports whether the key arrived this frame
func (s *State) JustPressed(key tcell.Key) bool {
	for _, p := range s.justPressed {
		if p.key == key {
			return true
		}
	}
	return false
}

// JustPressedMod is JustPressed with an exact modifier match
func (s *State) JustPressedMod(key tcell.Key, mod tcell.ModMask) bool {
	for _, p := range s.justPressed {
		if p.key == key && p.mod == mod {
			return true
		}
	}
	return false
}

// PressedRune reports whether the character was seen this frame
func (s *State) PressedRune(r rune) bool {
	for _, p := range s.keys {
		if p.key == tcell.KeyRune && p.r == r {
			return true
		}
	}
	return false
}

// PressedRuneMod is PressedRune with an exact modifier match
func (s *State) PressedRuneMod(r rune, mod tcell.ModMask) bool {
	for _, p := range s.keys {
		if p.key == tcell.KeyRune && p.r == r && p.mod == mod {
			return true
		}
	}
	return false
}

// JustPressedRune reports whether the character arrived this frame
func (s *State) JustPressedRune(r rune) bool {
	for _, p := range s.justPressed {
		if p.key == tcell.KeyRune && p.r == r {
			return true
		}
	}
	return false
}

// JustPressedRuneMod is JustPressedRune with an exact modifier match
func (s *State) JustPressedRuneMod(r rune, mod tcell.ModMask) bool {
	for _, p := range s.justPressed {
		if p.key == tcell.KeyRune && p.r == r && p.mod == mod {
			return true
		}
	}
	return false
}

// MousePressed reports whether any of the given buttons are held
func (s *State) MousePressed(b tcell.ButtonMask) bool {
	return s.mouse&b != 0
}

// MouseJustPressed reports whether any of the given buttons went down this frame
func (s *State) MouseJustPressed(b tcell.ButtonMask) bool {
	return s.justPressedMouse&b != 0
}

// MouseJustReleased reports whether any of the given buttons came up this frame
func (s *State) MouseJustReleased(b tcell.ButtonMask) bool {
	return s.justReleasedMouse&b != 0
}

// Scroll returns the wheel accumulator: down adds one, up subtracts one
func (s *State) Scroll() int {
	return s.scroll
}
