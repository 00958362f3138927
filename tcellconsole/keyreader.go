package tcellconsole

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cixl/console"
)

// KeyReader polls a tcell.Screen's event loop in a background goroutine and
// translates *tcell.EventKey values into console.KeyEvent values, mirroring
// terminal.KeyReader's contract over the ANSI backend.
type KeyReader struct {
	screen  tcell.Screen
	eventCh chan console.KeyEvent
	stopCh  chan struct{}
}

// NewKeyReader starts polling screen's event loop. screen must already have
// Init called on it (typically the same Device.screen driving the render
// side).
func NewKeyReader(screen tcell.Screen) *KeyReader {
	k := &KeyReader{
		screen:  screen,
		eventCh: make(chan console.KeyEvent, 64),
		stopCh:  make(chan struct{}),
	}
	go k.pollLoop()
	return k
}

// Close stops the underlying poll goroutine.
func (k *KeyReader) Close() {
	close(k.stopCh)
}

// Poll returns the next key event if one is queued, or ok == false if none
// is available yet. It never blocks.
func (k *KeyReader) Poll() (console.KeyEvent, bool) {
	select {
	case ev := <-k.eventCh:
		return ev, true
	default:
		return console.KeyEvent{}, false
	}
}

func (k *KeyReader) pollLoop() {
	for {
		select {
		case <-k.stopCh:
			return
		default:
		}

		ev := k.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			select {
			case k.eventCh <- translate(e):
			case <-k.stopCh:
				return
			}
		}
	}
}

func translate(e *tcell.EventKey) console.KeyEvent {
	mod := translateModifier(e.Modifiers())

	switch e.Key() {
	case tcell.KeyRune:
		return console.KeyEvent{Key: console.KeyRune, Rune: e.Rune(), Mod: mod}
	case tcell.KeyEscape:
		return console.KeyEvent{Key: console.KeyEscape, Mod: mod}
	case tcell.KeyEnter:
		return console.KeyEvent{Key: console.KeyEnter, Mod: mod}
	case tcell.KeyTab:
		return console.KeyEvent{Key: console.KeyTab, Mod: mod}
	case tcell.KeyBacktab:
		return console.KeyEvent{Key: console.KeyBacktab, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return console.KeyEvent{Key: console.KeyBackspace, Mod: mod}
	case tcell.KeyDelete:
		return console.KeyEvent{Key: console.KeyDelete, Mod: mod}
	case tcell.KeyInsert:
		return console.KeyEvent{Key: console.KeyInsert, Mod: mod}
	case tcell.KeyUp:
		return console.KeyEvent{Key: console.KeyUp, Mod: mod}
	case tcell.KeyDown:
		return console.KeyEvent{Key: console.KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return console.KeyEvent{Key: console.KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return console.KeyEvent{Key: console.KeyRight, Mod: mod}
	case tcell.KeyHome:
		return console.KeyEvent{Key: console.KeyHome, Mod: mod}
	case tcell.KeyEnd:
		return console.KeyEvent{Key: console.KeyEnd, Mod: mod}
	case tcell.KeyPgUp:
		return console.KeyEvent{Key: console.KeyPageUp, Mod: mod}
	case tcell.KeyPgDn:
		return console.KeyEvent{Key: console.KeyPageDown, Mod: mod}
	case tcell.KeyCtrlC:
		return console.KeyEvent{Key: console.KeyCtrlC, Mod: mod}
	case tcell.KeyCtrlQ:
		return console.KeyEvent{Key: console.KeyCtrlQ, Mod: mod}
	}
	return console.KeyEvent{Key: console.KeyNone}
}

func translateModifier(m tcell.ModMask) console.Modifier {
	var out console.Modifier
	if m&tcell.ModShift != 0 {
		out |= console.ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= console.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= console.ModCtrl
	}
	return out
}
