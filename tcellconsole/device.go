package tcellconsole

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cixl/console"
)

// Device is a console.RenderDevice backed by a live tcell.Screen. DrawCell
// and DrawRun call Screen.SetContent directly; Flush calls Screen.Show
// once, mirroring the Draw callback contract's "typically flush the
// underlying output".
type Device struct {
	screen tcell.Screen
}

// NewDevice initializes a new tcell screen and wraps it as a Device.
func NewDevice() (*Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellconsole: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellconsole: init screen: %w", err)
	}
	screen.HideCursor()
	return &Device{screen: screen}, nil
}

// Screen returns the underlying tcell.Screen, for sharing with a KeyReader.
func (d *Device) Screen() tcell.Screen {
	return d.screen
}

// Size returns the current terminal dimensions.
func (d *Device) Size() (int, int) {
	return d.screen.Size()
}

// Fini tears down the tcell screen.
func (d *Device) Fini() {
	d.screen.Fini()
}

// Flush pushes the accumulated SetContent calls to the terminal.
func (d *Device) Flush() error {
	d.screen.Show()
	return nil
}

func style(fg, bg console.Color, s console.StyleFlags) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg))).
		Background(tcell.PaletteColor(int(bg)))

	if s&console.StyleBold != 0 {
		st = st.Bold(true)
	}
	if s&console.StyleFaint != 0 {
		st = st.Dim(true)
	}
	if s&console.StyleItalic != 0 {
		st = st.Italic(true)
	}
	if s&console.StyleUnderline != 0 || s&console.StyleDoubleUnderline != 0 {
		st = st.Underline(true)
	}
	if s&console.StyleInvert != 0 {
		st = st.Reverse(true)
	}
	if s&console.StyleCrossedOut != 0 {
		st = st.StrikeThrough(true)
	}
	// StyleFraktur and StyleOverlined have no tcell.Style equivalent; the
	// bits are preserved on the Cell value but not rendered by this device.
	return st
}

// DrawCell implements console.RenderDevice.
func (d *Device) DrawCell(x, y int, cell console.Cell) {
	d.screen.SetContent(x, y, rune(cell.Ch), nil, style(cell.Fg, cell.Bg, cell.Style))
}

// DrawRun implements console.RenderDevice.
func (d *Device) DrawRun(x, y int, runes []byte, fg, bg console.Color, flags console.StyleFlags) {
	st := style(fg, bg, flags)
	for i, b := range runes {
		d.screen.SetContent(x+i, y, rune(b), nil, st)
	}
}
