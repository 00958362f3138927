// Package terminal provides a raw ANSI escape-sequence console.RenderDevice
// over a terminal put in raw mode with golang.org/x/term, plus a KeyReader
// that polls stdin and translates raw bytes into console.KeyEvent values.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences for the fixed 16-color palette and style bits console.Cell
// supports. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
