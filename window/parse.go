package window

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// parser converts raw terminal input into tcell events. Sequences split
// across reads stay buffered and resume on the next feed.
type parser struct {
	buf  []byte
	held tcell.ButtonMask
	emit func(tcell.Event)
}

func (p *parser) feed(data []byte) {
	p.buf = append(p.buf, data...)
	consumed := p.parse(p.buf)
	if consumed > 0 {
		p.buf = p.buf[:copy(p.buf, p.buf[consumed:])]
	}
}

// idle flushes a pending lone ESC: with no follow-up bytes it was a real
// escape keypress, not a sequence prefix.
func (p *parser) idle() {
	if len(p.buf) == 1 && p.buf[0] == 0x1b {
		p.emit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
		p.buf = p.buf[:0]
	}
}

// parse consumes as many complete inputs as possible and returns the
// number of bytes handled. Control bytes go through tcell's KeyRune
// constructor, which normalizes them to their named keys.
func (p *parser) parse(data []byte) int {
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			consumed, ev := p.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev != nil {
				p.emit(ev)
			}
			i += consumed
			continue
		}

		if b < utf8.RuneSelf {
			p.emit(tcell.NewEventKey(tcell.KeyRune, rune(b), tcell.ModNone))
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) {
			return i
		}
		r, size := utf8.DecodeRune(data[i:])
		p.emit(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		i += size
	}
	return i
}

func (p *parser) parseEscape(data []byte) (int, tcell.Event) {
	if len(data) < 2 {
		return 0, nil
	}

	switch {
	case data[1] == 0x1b:
		return 2, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModAlt)
	case data[1] == '[':
		return p.parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < utf8.RuneSelf:
		return 2, tcell.NewEventKey(tcell.KeyRune, rune(data[1]), tcell.ModAlt)
	default:
		if !utf8.FullRune(data[1:]) {
			return 0, nil
		}
		r, size := utf8.DecodeRune(data[1:])
		return 1 + size, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt)
	}
}

// csiLimit caps how far a sequence scan runs before it is declared garbage
const csiLimit = 32

func (p *parser) parseCSI(data []byte) (int, tcell.Event) {
	if len(data) < 3 {
		return 0, nil
	}
	if data[2] == '<' {
		return p.parseSGRMouse(data)
	}

	end := 2
	for end < len(data) && end < csiLimit {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			break
		}
		if b < 0x20 || b > 0x3f {
			return 2, nil
		}
		end++
	}
	if end >= len(data) {
		return 0, nil
	}
	if end >= csiLimit {
		return end, nil
	}

	final := data[end]
	params := data[2:end]
	consumed := end + 1

	switch final {
	case 'A':
		return consumed, tcell.NewEventKey(tcell.KeyUp, 0, csiKeyMod(params))
	case 'B':
		return consumed, tcell.NewEventKey(tcell.KeyDown, 0, csiKeyMod(params))
	case 'C':
		return consumed, tcell.NewEventKey(tcell.KeyRight, 0, csiKeyMod(params))
	case 'D':
		return consumed, tcell.NewEventKey(tcell.KeyLeft, 0, csiKeyMod(params))
	case 'H':
		return consumed, tcell.NewEventKey(tcell.KeyHome, 0, csiKeyMod(params))
	case 'F':
		return consumed, tcell.NewEventKey(tcell.KeyEnd, 0, csiKeyMod(params))
	case 'Z':
		return consumed, tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift)
	case 'I':
		return consumed, tcell.NewEventFocus(true)
	case 'O':
		return consumed, tcell.NewEventFocus(false)
	case '~':
		ints := csiInts(params)
		if len(ints) == 0 {
			return consumed, nil
		}
		key, ok := tildeKeys[ints[0]]
		if !ok {
			return consumed, nil
		}
		mod := tcell.ModNone
		if len(ints) >= 2 {
			mod = xtermMod(ints[1])
		}
		return consumed, tcell.NewEventKey(key, 0, mod)
	default:
		return consumed, nil
	}
}

var tildeKeys = map[int]tcell.Key{
	1:  tcell.KeyHome,
	2:  tcell.KeyInsert,
	3:  tcell.KeyDelete,
	4:  tcell.KeyEnd,
	5:  tcell.KeyPgUp,
	6:  tcell.KeyPgDn,
	11: tcell.KeyF1,
	12: tcell.KeyF2,
	13: tcell.KeyF3,
	14: tcell.KeyF4,
	15: tcell.KeyF5,
	17: tcell.KeyF6,
	18: tcell.KeyF7,
	19: tcell.KeyF8,
	20: tcell.KeyF9,
	21: tcell.KeyF10,
	23: tcell.KeyF11,
	24: tcell.KeyF12,
}

var ss3Keys = map[byte]tcell.Key{
	'A': tcell.KeyUp,
	'B': tcell.KeyDown,
	'C': tcell.KeyRight,
	'D': tcell.KeyLeft,
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
	'P': tcell.KeyF1,
	'Q': tcell.KeyF2,
	'R': tcell.KeyF3,
	'S': tcell.KeyF4,
}

func parseSS3(data []byte) (int, tcell.Event) {
	if len(data) < 3 {
		return 0, nil
	}
	if key, ok := ss3Keys[data[2]]; ok {
		return 3, tcell.NewEventKey(key, 0, tcell.ModNone)
	}
	return 3, nil
}

// csiInts parses semicolon-separated decimal parameters
func csiInts(params []byte) []int {
	if len(params) == 0 {
		return nil
	}
	out := []int{0}
	for _, b := range params {
		switch {
		case b >= '0' && b <= '9':
			out[len(out)-1] = out[len(out)-1]*10 + int(b-'0')
		case b == ';':
			out = append(out, 0)
		default:
			return nil
		}
	}
	return out
}

// xtermMod decodes the xterm modifier parameter: value minus one is a
// bitmask of shift, alt, ctrl and meta
func xtermMod(n int) tcell.ModMask {
	n--
	var mod tcell.ModMask
	if n&1 != 0 {
		mod |= tcell.ModShift
	}
	if n&2 != 0 {
		mod |= tcell.ModAlt
	}
	if n&4 != 0 {
		mod |= tcell.ModCtrl
	}
	if n&8 != 0 {
		mod |= tcell.ModMeta
	}
	return mod
}

func csiKeyMod(params []byte) tcell.ModMask {
	ints := csiInts(params)
	if len(ints) == 2 {
		return xtermMod(ints[1])
	}
	return tcell.ModNone
}

// parseSGRMouse handles ESC [ < btn ; x ; y M/m reports. Held buttons are
// tracked across reports so drag events carry the pressed mask the way
// tcell's own screens do.
func (p *parser) parseSGRMouse(data []byte) (int, tcell.Event) {
	end := 3
	for end < len(data) && end < csiLimit {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		return 0, nil
	}
	if end >= csiLimit {
		return end, nil
	}
	consumed := end + 1

	ints := csiInts(data[3:end])
	if len(ints) != 3 {
		return consumed, nil
	}
	btn, x, y := ints[0], ints[1]-1, ints[2]-1

	var mod tcell.ModMask
	if btn&4 != 0 {
		mod |= tcell.ModShift
	}
	if btn&8 != 0 {
		mod |= tcell.ModAlt
	}
	if btn&16 != 0 {
		mod |= tcell.ModCtrl
	}

	if btn&64 != 0 {
		var wheel tcell.ButtonMask
		switch btn & 3 {
		case 0:
			wheel = tcell.WheelUp
		case 1:
			wheel = tcell.WheelDown
		case 2:
			wheel = tcell.WheelLeft
		case 3:
			wheel = tcell.WheelRight
		}
		return consumed, tcell.NewEventMouse(x, y, p.held|wheel, mod)
	}

	button := tcell.ButtonNone
	switch btn & 3 {
	case 0:
		button = tcell.Button1
	case 1:
		button = tcell.Button3
	case 2:
		button = tcell.Button2
	}

	switch {
	case btn&32 != 0:
		// Motion report, held set unchanged
	case data[end] == 'M':
		p.held |= button
	case button == tcell.ButtonNone:
		p.held = 0
	default:
		p.held &^= button
	}

	return consumed, tcell.NewEventMouse(x, y, p.held, mod)
}
