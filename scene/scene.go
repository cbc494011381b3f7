// Package scene chains full-screen application states: menus, gameplay,
// dialogs. Each scene owns the frame loop while it runs and hands off to
// the next scene when it is done.
package scene

import (
	"github.com/asciiforge/forge/window"
)

// Scene is one state of an application. Run drives the window until the
// scene decides to stop, returning the scene to switch to, or nil to end
// the program.
type Scene interface {
	Run(win *window.Window) (Scene, error)
}

// Run initializes a fullscreen window, executes scenes starting from
// first until one returns nil, then restores the terminal. Panics inside
// scenes reset the terminal before the process dies.
func Run(first Scene) error {
	defer window.HandlePanics()
	win, err := window.Init()
	if err != nil {
		return err
	}
	return RunWith(win, first)
}

// RunWith runs the scene chain on an existing window. The window is
// restored before returning, whether the chain ends, errors or panics;
// a panic is re-raised once the terminal is usable again.
func RunWith(win *window.Window, first Scene) error {
	defer func() {
		if r := recover(); r != nil {
			win.Restore()
			panic(r)
		}
	}()

	scene := first
	for scene != nil {
		next, err := scene.Run(win)
		if err != nil {
			win.Restore()
			return err
		}
		scene = next
	}
	return win.Restore()
}
