package window

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func collect(inputs ...string) []tcell.Event {
	var events []tcell.Event
	p := &parser{emit: func(ev tcell.Event) { events = append(events, ev) }}
	for _, in := range inputs {
		p.feed([]byte(in))
	}
	return events
}

func wantKey(t *testing.T, ev tcell.Event, key tcell.Key, r rune, mod tcell.ModMask) {
	t.Helper()
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		t.Fatalf("Expected a key event, got %T", ev)
	}
	if k.Key() != key || k.Modifiers() != mod {
		t.Errorf("Expected key %v mod %v, got %v mod %v", key, mod, k.Key(), k.Modifiers())
	}
	if key == tcell.KeyRune && k.Rune() != r {
		t.Errorf("Expected rune %q, got %q", r, k.Rune())
	}
}

func wantMouse(t *testing.T, ev tcell.Event, x, y int, btns tcell.ButtonMask, mod tcell.ModMask) {
	t.Helper()
	m, ok := ev.(*tcell.EventMouse)
	if !ok {
		t.Fatalf("Expected a mouse event, got %T", ev)
	}
	gx, gy := m.Position()
	if gx != x || gy != y {
		t.Errorf("Expected position (%d,%d), got (%d,%d)", x, y, gx, gy)
	}
	if m.Buttons() != btns {
		t.Errorf("Expected buttons %v, got %v", btns, m.Buttons())
	}
	if m.Modifiers() != mod {
		t.Errorf("Expected modifiers %v, got %v", mod, m.Modifiers())
	}
}

func TestParsePrintable(t *testing.T) {
	events := collect("ab")
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	wantKey(t, events[0], tcell.KeyRune, 'a', tcell.ModNone)
	wantKey(t, events[1], tcell.KeyRune, 'b', tcell.ModNone)
}

func TestParseUTF8(t *testing.T) {
	events := collect("é日")
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	wantKey(t, events[0], tcell.KeyRune, 'é', tcell.ModNone)
	wantKey(t, events[1], tcell.KeyRune, '日', tcell.ModNone)
}

func TestParseUTF8SplitAcrossReads(t *testing.T) {
	events := collect("\xc3", "\xa9")
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	wantKey(t, events[0], tcell.KeyRune, 'é', tcell.ModNone)
}

func TestParseControlBytes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		key   tcell.Key
		mod   tcell.ModMask
	}{
		{"ctrl-c", "\x03", tcell.KeyCtrlC, tcell.ModCtrl},
		{"enter", "\r", tcell.KeyEnter, tcell.ModNone},
		{"tab", "\t", tcell.KeyTab, tcell.ModNone},
		{"backspace", "\x7f", tcell.KeyBackspace2, tcell.ModNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events := collect(tc.input)
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(events))
			}
			wantKey(t, events[0], tc.key, 0, tc.mod)
		})
	}
}

func TestParseCSIKeys(t *testing.T) {
	cases := []struct {
		name  string
		input string
		key   tcell.Key
		mod   tcell.ModMask
	}{
		{"up", "\x1b[A", tcell.KeyUp, tcell.ModNone},
		{"down", "\x1b[B", tcell.KeyDown, tcell.ModNone},
		{"ctrl-right", "\x1b[1;5C", tcell.KeyRight, tcell.ModCtrl},
		{"shift-left", "\x1b[1;2D", tcell.KeyLeft, tcell.ModShift},
		{"home", "\x1b[H", tcell.KeyHome, tcell.ModNone},
		{"end", "\x1b[F", tcell.KeyEnd, tcell.ModNone},
		{"backtab", "\x1b[Z", tcell.KeyBacktab, tcell.ModShift},
		{"insert", "\x1b[2~", tcell.KeyInsert, tcell.ModNone},
		{"pgup", "\x1b[5~", tcell.KeyPgUp, tcell.ModNone},
		{"shift-delete", "\x1b[3;2~", tcell.KeyDelete, tcell.ModShift},
		{"f5", "\x1b[15~", tcell.KeyF5, tcell.ModNone},
		{"f12", "\x1b[24~", tcell.KeyF12, tcell.ModNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events := collect(tc.input)
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(events))
			}
			wantKey(t, events[0], tc.key, 0, tc.mod)
		})
	}
}

func TestParseSS3Keys(t *testing.T) {
	events := collect("\x1bOP\x1bOH")
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	wantKey(t, events[0], tcell.KeyF1, 0, tcell.ModNone)
	wantKey(t, events[1], tcell.KeyHome, 0, tcell.ModNone)
}

func TestParseAlt(t *testing.T) {
	events := collect("\x1bx")
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	wantKey(t, events[0], tcell.KeyRune, 'x', tcell.ModAlt)

	events = collect("\x1b\x1b")
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	wantKey(t, events[0], tcell.KeyEscape, 0, tcell.ModAlt)
}

func TestParseLoneEscapeFlushedOnIdle(t *testing.T) {
	var events []tcell.Event
	p := &parser{emit: func(ev tcell.Event) { events = append(events, ev) }}
	p.feed([]byte{0x1b})
	if len(events) != 0 {
		t.Fatalf("Expected a lone ESC to stay buffered, got %d events", len(events))
	}
	p.idle()
	if len(events) != 1 {
		t.Fatalf("Expected idle to flush the escape, got %d events", len(events))
	}
	wantKey(t, events[0], tcell.KeyEscape, 0, tcell.ModNone)
}

func TestParseSequenceSplitAcrossReads(t *testing.T) {
	events := collect("\x1b[", "B")
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	wantKey(t, events[0], tcell.KeyDown, 0, tcell.ModNone)
}

func TestParseMouse(t *testing.T) {
	var events []tcell.Event
	p := &parser{emit: func(ev tcell.Event) { events = append(events, ev) }}

	p.feed([]byte("\x1b[<0;10;5M"))
	if len(events) != 1 {
		t.Fatalf("Expected a press event, got %d", len(events))
	}
	wantMouse(t, events[0], 9, 4, tcell.Button1, tcell.ModNone)

	// Drag reports carry the held button
	p.feed([]byte("\x1b[<32;11;5M"))
	if len(events) != 2 {
		t.Fatalf("Expected a drag event, got %d events", len(events))
	}
	wantMouse(t, events[1], 10, 4, tcell.Button1, tcell.ModNone)

	p.feed([]byte("\x1b[<0;11;5m"))
	if len(events) != 3 {
		t.Fatalf("Expected a release event, got %d events", len(events))
	}
	wantMouse(t, events[2], 10, 4, tcell.ButtonNone, tcell.ModNone)
}

func TestParseMouseButtons(t *testing.T) {
	cases := []struct {
		name  string
		input string
		btns  tcell.ButtonMask
		mod   tcell.ModMask
	}{
		{"left", "\x1b[<0;1;1M", tcell.Button1, tcell.ModNone},
		{"middle", "\x1b[<1;1;1M", tcell.Button3, tcell.ModNone},
		{"right", "\x1b[<2;1;1M", tcell.Button2, tcell.ModNone},
		{"ctrl-left", "\x1b[<16;1;1M", tcell.Button1, tcell.ModCtrl},
		{"shift-left", "\x1b[<4;1;1M", tcell.Button1, tcell.ModShift},
		{"wheel up", "\x1b[<64;1;1M", tcell.WheelUp, tcell.ModNone},
		{"wheel down", "\x1b[<65;1;1M", tcell.WheelDown, tcell.ModNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events := collect(tc.input)
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(events))
			}
			wantMouse(t, events[0], 0, 0, tc.btns, tc.mod)
		})
	}
}

func TestParseWheelDoesNotLatch(t *testing.T) {
	var events []tcell.Event
	p := &parser{emit: func(ev tcell.Event) { events = append(events, ev) }}
	p.feed([]byte("\x1b[<64;2;2M"))
	p.feed([]byte("\x1b[<35;2;2M")) // bare motion, nothing held
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	wantMouse(t, events[1], 1, 1, tcell.ButtonNone, tcell.ModNone)
}

func TestParseFocus(t *testing.T) {
	events := collect("\x1b[I\x1b[O")
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	in, ok := events[0].(*tcell.EventFocus)
	if !ok || !in.Focused {
		t.Errorf("Expected focus gained, got %#v", events[0])
	}
	out, ok := events[1].(*tcell.EventFocus)
	if !ok || out.Focused {
		t.Errorf("Expected focus lost, got %#v", events[1])
	}
}

func TestParseUnknownCSISwallowed(t *testing.T) {
	events := collect("\x1b[?2004ha")
	if len(events) != 1 {
		t.Fatalf("Expected only the trailing key, got %d events", len(events))
	}
	wantKey(t, events[0], tcell.KeyRune, 'a', tcell.ModNone)
}

func TestParseMalformedCSIRecovers(t *testing.T) {
	events := collect("\x1b[\x01")
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	wantKey(t, events[0], tcell.KeyCtrlA, 0, tcell.ModCtrl)
}
