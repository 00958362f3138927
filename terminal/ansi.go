package terminal

import "bufio"

// Pre-allocated ANSI sequence fragments, avoiding allocations during render.
var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiHome  = []byte("\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: disables auto-wrap so the cursor sticks at the right edge
	// instead of scrolling when the renderer writes the bottom-right cell.
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Attribute sequences for console.StyleFlags bits.
	csiAttrBold            = []byte("\x1b[1m")
	csiAttrFaint            = []byte("\x1b[2m")
	csiAttrItalic           = []byte("\x1b[3m")
	csiAttrUnderline        = []byte("\x1b[4m")
	csiAttrInvert           = []byte("\x1b[7m")
	csiAttrCrossedOut       = []byte("\x1b[9m")
	csiAttrDoubleUnderline  = []byte("\x1b[21m")
	csiAttrOverlined        = []byte("\x1b[53m")
)

// fgCode/bgCode return the SGR codes for the 16-entry palette: colors
// 0-7 use the standard 30-37/40-47 range, colors 8-15 (the bright variants)
// use the 90-97/100-107 range.
func fgCode(c int) int {
	if c < 8 {
		return 30 + c
	}
	return 90 + (c - 8)
}

func bgCode(c int) int {
	if c < 8 {
		return 40 + c
	}
	return 100 + (c - 8)
}

// writeInt writes an integer without allocation. Optimized for terminal
// values (0-255 common, 0-999 typical max).
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes a cursor positioning sequence from 0-indexed (x, y).
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
