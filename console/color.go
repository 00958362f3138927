package console

// Color is an index into the 16-entry palette: the eight standard colors
// followed by their bright variants.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGrey

	ColorBlackBright
	ColorRedBright
	ColorGreenBright
	ColorYellowBright
	ColorBlueBright
	ColorMagentaBright
	ColorCyanBright
	ColorWhiteBright
)

// StyleFlags is a bit set over the style options a cell may combine.
type StyleFlags uint16

const (
	StyleBold StyleFlags = 1 << iota
	StyleFaint
	StyleItalic
	StyleUnderline
	StyleInvert
	StyleCrossedOut
	StyleFraktur
	StyleDoubleUnderline
	// StyleOverlined occupies the 9th bit. original_source/style_opts.h
	// enumerates overlined as 255, a copy-paste bug in the C enum; the
	// correct next power-of-two slot after double_underline (128) is 256.
	StyleOverlined
)
