package scene

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/asciiforge/forge/window"
)

type recordScene struct {
	runs *[]string
	name string
	next Scene
	err  error
}

func (s *recordScene) Run(win *window.Window) (Scene, error) {
	*s.runs = append(*s.runs, s.name)
	return s.next, s.err
}

type panicScene struct{}

func (panicScene) Run(win *window.Window) (Scene, error) {
	panic("boom")
}

func newSimWindow(t *testing.T) *window.Window {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	return window.New(screen)
}

func TestRunWithChainsScenes(t *testing.T) {
	win := newSimWindow(t)
	var runs []string
	second := &recordScene{runs: &runs, name: "second"}
	first := &recordScene{runs: &runs, name: "first", next: second}

	if err := RunWith(win, first); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(runs) != 2 || runs[0] != "first" || runs[1] != "second" {
		t.Errorf("Expected scenes [first second], got %v", runs)
	}
	if err := win.Flush(); !errors.Is(err, window.ErrRestored) {
		t.Errorf("Expected the window restored after the chain, got %v", err)
	}
}

func TestRunWithSceneError(t *testing.T) {
	win := newSimWindow(t)
	var runs []string
	boom := errors.New("boom")
	first := &recordScene{runs: &runs, name: "first", err: boom}

	if err := RunWith(win, first); !errors.Is(err, boom) {
		t.Fatalf("Expected the scene error, got %v", err)
	}
	if err := win.Flush(); !errors.Is(err, window.ErrRestored) {
		t.Errorf("Expected the window restored on error, got %v", err)
	}
}

func TestRunWithPanicRestoresFirst(t *testing.T) {
	win := newSimWindow(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected the panic to propagate")
			}
		}()
		RunWith(win, panicScene{})
	}()

	if err := win.Flush(); !errors.Is(err, window.ErrRestored) {
		t.Errorf("Expected the window restored before re-panicking, got %v", err)
	}
}
