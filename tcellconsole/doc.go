// Package tcellconsole implements console.RenderDevice and a key-input
// poller backed by a live tcell.Screen, proving the render device contract
// is backend-agnostic: the same console.Buffer reconciliation drives this
// device or terminal.Device unmodified.
package tcellconsole
