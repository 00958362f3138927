package console

// Key names a small set of keys a host's key-input collaborator can report,
// independent of which backend (ANSI terminal, tcell) produced the event.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // printable character; see KeyEvent.Rune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
	KeyCtrlQ
)

// Modifier is a bitmask of held modifier keys accompanying a Key, reported
// by backends that can distinguish them (the ANSI terminal backend parses
// these from CSI sequences; tcell reports them natively).
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// KeyEvent is the small, backend-agnostic shape a key-input collaborator
// reports to the host: a named key, the rune when Key == KeyRune, and any
// held modifiers.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}
