package terminal

import "io"

// EmergencyReset writes a best-effort terminal reset sequence: show the
// cursor, leave the alternate screen, and reset to initial state. Used by
// the input reader's panic-recovery path so a crashed reader doesn't leave
// the user's terminal in raw/alt-screen mode.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiRIS)
}
