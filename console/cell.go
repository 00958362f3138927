package console

// Cell is one styled character at one grid position: a single character
// byte, foreground and background palette indices, and a style bit set.
// Cells are pure values, freely copyable, compared by field-wise equality.
type Cell struct {
	Ch    byte
	Fg    Color
	Bg    Color
	Style StyleFlags
}

// EmptyCell is the distinguished zero value: character code 0 and all
// style/color fields zero. original_source/cxl.c's CXL_EMPTY initializes
// fg_color to 8 (bright-black), which contradicts its own header comment
// claiming an all-zero empty cell; this module follows the documented
// all-zero value, not the buggy initializer.
var EmptyCell = Cell{}

// Pack encodes a cell into its canonical 32-bit layout: character in bits
// 0-7, foreground in bits 8-11, background in bits 12-15, style in bits
// 16-23. The pack format is a fixed external contract, so style is
// truncated to its low 8 bits; the 9th style bit (StyleOverlined) is
// representable on Cell but not round-tripped through Pack/Unpack.
func (c Cell) Pack() uint32 {
	return uint32(c.Ch) |
		uint32(c.Fg&0xF)<<8 |
		uint32(c.Bg&0xF)<<12 |
		uint32(c.Style&0xFF)<<16
}

// Unpack decodes a cell from its canonical 32-bit packing. Unpack is the
// inverse of Pack for every value Pack can produce.
func Unpack(v uint32) Cell {
	return Cell{
		Ch:    byte(v & 0xFF),
		Fg:    Color((v >> 8) & 0xF),
		Bg:    Color((v >> 12) & 0xF),
		Style: StyleFlags((v >> 16) & 0xFF),
	}
}

// Equal reports whether two cells are identical field-wise.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// StyleEqual reports whether two cells share foreground, background, and
// style, regardless of character. This is the run-coalescing predicate:
// adjacent dirty cells may share one draw_run call only if StyleEqual.
func (c Cell) StyleEqual(other Cell) bool {
	return c.Fg == other.Fg && c.Bg == other.Bg && c.Style == other.Style
}
