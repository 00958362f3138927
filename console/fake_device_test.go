package console

// drawCall records a single DrawCell or DrawRun invocation for assertions.
type drawCall struct {
	x, y   int
	runes  string
	fg, bg Color
	style  StyleFlags
	isRun  bool
}

// fakeDevice is a hand-rolled RenderDevice that records every call it
// receives, in the style of the teacher's MockScreen test doubles.
type fakeDevice struct {
	calls []drawCall
}

func (d *fakeDevice) DrawCell(x, y int, cell Cell) {
	d.calls = append(d.calls, drawCall{x: x, y: y, runes: string(cell.Ch), fg: cell.Fg, bg: cell.Bg, style: cell.Style})
}

func (d *fakeDevice) DrawRun(x, y int, runes []byte, fg, bg Color, style StyleFlags) {
	d.calls = append(d.calls, drawCall{x: x, y: y, runes: string(runes), fg: fg, bg: bg, style: style, isRun: true})
}
