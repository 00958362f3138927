// Package console implements the screen buffer and renderer: a double
// buffered grid of styled characters with per-cell dirty tracking and a
// reconciliation pass that coalesces contiguous same-style dirty cells into
// minimal draw calls against a host-supplied render device.
package console
