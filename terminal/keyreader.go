package terminal

import "github.com/lixenwraith/cixl/console"

// KeyReader polls stdin (via the same Backend a Device uses) and
// translates raw Events into console.KeyEvent values.
type KeyReader struct {
	reader *inputReader
}

// NewKeyReader constructs a KeyReader sharing backend's raw-mode file
// descriptor. backend must already have Init called on it (typically the
// same Device.backend driving the render side).
func NewKeyReader(backend Backend) *KeyReader {
	r := &KeyReader{reader: newInputReader(backend)}
	r.reader.start()
	return r
}

// Close stops the underlying reader goroutine.
func (k *KeyReader) Close() {
	k.reader.stop()
}

// Poll returns the next key event if one is queued, or ok == false if none
// is available yet. It never blocks.
func (k *KeyReader) Poll() (console.KeyEvent, bool) {
	select {
	case ev := <-k.reader.events():
		return translate(ev), true
	default:
		return console.KeyEvent{}, false
	}
}

func translate(ev Event) console.KeyEvent {
	if ev.Type != EventKey {
		return console.KeyEvent{Key: console.KeyNone}
	}

	mod := translateModifier(ev.Modifiers)

	switch ev.Key {
	case KeyRune:
		return console.KeyEvent{Key: console.KeyRune, Rune: ev.Rune, Mod: mod}
	case KeyEscape:
		return console.KeyEvent{Key: console.KeyEscape, Mod: mod}
	case KeyEnter:
		return console.KeyEvent{Key: console.KeyEnter, Mod: mod}
	case KeyTab:
		return console.KeyEvent{Key: console.KeyTab, Mod: mod}
	case KeyBacktab, KeyShiftTab:
		return console.KeyEvent{Key: console.KeyBacktab, Mod: mod}
	case KeyBackspace:
		return console.KeyEvent{Key: console.KeyBackspace, Mod: mod}
	case KeyDelete:
		return console.KeyEvent{Key: console.KeyDelete, Mod: mod}
	case KeyInsert:
		return console.KeyEvent{Key: console.KeyInsert, Mod: mod}
	case KeyUp:
		return console.KeyEvent{Key: console.KeyUp, Mod: mod}
	case KeyDown:
		return console.KeyEvent{Key: console.KeyDown, Mod: mod}
	case KeyLeft:
		return console.KeyEvent{Key: console.KeyLeft, Mod: mod}
	case KeyRight:
		return console.KeyEvent{Key: console.KeyRight, Mod: mod}
	case KeyHome:
		return console.KeyEvent{Key: console.KeyHome, Mod: mod}
	case KeyEnd:
		return console.KeyEvent{Key: console.KeyEnd, Mod: mod}
	case KeyPageUp:
		return console.KeyEvent{Key: console.KeyPageUp, Mod: mod}
	case KeyPageDown:
		return console.KeyEvent{Key: console.KeyPageDown, Mod: mod}
	case KeyCtrlC:
		return console.KeyEvent{Key: console.KeyCtrlC, Mod: mod}
	case KeyCtrlQ:
		return console.KeyEvent{Key: console.KeyCtrlQ, Mod: mod}
	}
	return console.KeyEvent{Key: console.KeyNone}
}

func translateModifier(m Modifier) console.Modifier {
	var out console.Modifier
	if m&ModShift != 0 {
		out |= console.ModShift
	}
	if m&ModAlt != 0 {
		out |= console.ModAlt
	}
	if m&ModCtrl != 0 {
		out |= console.ModCtrl
	}
	return out
}
