package terminal

import (
	"bufio"
	"fmt"
	"os"

	"github.com/lixenwraith/cixl/console"
	"golang.org/x/term"
)

// Device is a console.RenderDevice that writes ANSI escape sequences to a
// raw-mode terminal. DrawCell and DrawRun move the cursor and emit SGR
// codes for the 16-color palette and style bits, then write the cell
// bytes; neither flushes per call. Flush pushes the accumulated writes,
// mirroring the Draw callback contract ("typically flush the underlying
// output").
type Device struct {
	backend Backend
	out     *bufio.Writer
	width   int
	height  int

	oldTerm *term.State
}

// NewDevice constructs a Device over the current process's stdin/stdout.
func NewDevice() *Device {
	return &Device{backend: newBackend(), out: bufio.NewWriterSize(os.Stdout, 64*1024)}
}

// Init puts the terminal into raw mode, enters the alternate screen, hides
// the cursor, and disables auto-wrap.
func (d *Device) Init() error {
	if err := d.backend.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	d.width, d.height = d.backend.Size()
	d.out.Write(csiAltScreenEnter)
	d.out.Write(csiCursorHide)
	d.out.Write(csiAutoWrapOff)
	d.out.Write(csiClear)
	return d.out.Flush()
}

// Fini restores auto-wrap, shows the cursor, leaves the alternate screen,
// and restores cooked terminal mode.
func (d *Device) Fini() {
	d.out.Write(csiAutoWrapOn)
	d.out.Write(csiCursorShow)
	d.out.Write(csiAltScreenExit)
	d.out.Flush()
	d.backend.Fini()
}

// Size returns the last known terminal dimensions.
func (d *Device) Size() (int, int) {
	return d.width, d.height
}

// Backend returns the Device's raw-mode Backend, for sharing with a
// KeyReader constructed over the same terminal.
func (d *Device) Backend() Backend {
	return d.backend
}

// Flush pushes any writes accumulated since the last Flush.
func (d *Device) Flush() error {
	return d.out.Flush()
}

func (d *Device) writeStyle(fg, bg console.Color, style console.StyleFlags) {
	d.out.Write(csi)
	writeInt(d.out, fgCode(int(fg)))
	d.out.WriteByte(';')
	writeInt(d.out, bgCode(int(bg)))
	d.out.WriteByte('m')

	if style&console.StyleBold != 0 {
		d.out.Write(csiAttrBold)
	}
	if style&console.StyleFaint != 0 {
		d.out.Write(csiAttrFaint)
	}
	if style&console.StyleItalic != 0 {
		d.out.Write(csiAttrItalic)
	}
	if style&console.StyleUnderline != 0 {
		d.out.Write(csiAttrUnderline)
	}
	if style&console.StyleInvert != 0 {
		d.out.Write(csiAttrInvert)
	}
	if style&console.StyleCrossedOut != 0 {
		d.out.Write(csiAttrCrossedOut)
	}
	if style&console.StyleDoubleUnderline != 0 {
		d.out.Write(csiAttrDoubleUnderline)
	}
	if style&console.StyleOverlined != 0 {
		d.out.Write(csiAttrOverlined)
	}
}

// DrawCell implements console.RenderDevice.
func (d *Device) DrawCell(x, y int, cell console.Cell) {
	writeCursorPos(d.out, x, y)
	d.writeStyle(cell.Fg, cell.Bg, cell.Style)
	d.out.WriteByte(cell.Ch)
	d.out.Write(csiReset)
}

// DrawRun implements console.RenderDevice.
func (d *Device) DrawRun(x, y int, runes []byte, fg, bg console.Color, style console.StyleFlags) {
	writeCursorPos(d.out, x, y)
	d.writeStyle(fg, bg, style)
	d.out.Write(runes)
	d.out.Write(csiReset)
}
