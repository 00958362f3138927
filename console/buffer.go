package console

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/lixenwraith/cixl/status"
)

const (
	stateNextSelector byte = 1 << 0
	stateDirty        byte = 1 << 1
)

// ErrInvalidDimensions is returned by NewBuffer when either dimension is
// less than 2.
var ErrInvalidDimensions = errors.New("console: width and height must each be at least 2")

// Buffer is the double-buffered grid: for every cell position there are two
// storage slots and a state byte whose bit 0 selects which slot is "next"
// and whose bit 1 marks the cell dirty. Buffer is the explicit handle the
// design notes call for in place of the reference library's file-scope
// statics — a host may construct as many independent Buffers as it needs.
type Buffer struct {
	// ID distinguishes one Buffer handle from another; useful for logging
	// when a host runs multiple consoles.
	ID uuid.UUID

	Width, Height int

	// Logger, if non-nil, receives a line reporting a recovered Render
	// panic (the "should be unreachable" line-buffer-overrun case). A nil
	// Logger is silent; there is no package-level fallback logger.
	Logger *log.Logger

	// Metrics, if non-nil, has console.draw_calls incremented by each
	// Render call's return value. A nil Metrics is a no-op.
	Metrics *status.Registry

	slotA []Cell
	slotB []Cell
	state []byte

	dirty bool // screen-level dirty flag; gates Render to an O(1) no-op

	lineBuf []byte
}

// NewBuffer allocates a grid of the given dimensions. Both dimensions must
// be at least 2.
func NewBuffer(width, height int) (*Buffer, error) {
	if width < 2 || height < 2 {
		return nil, ErrInvalidDimensions
	}
	b := &Buffer{
		ID:      uuid.New(),
		Width:   width,
		Height:  height,
		slotA:   make([]Cell, width*height),
		slotB:   make([]Cell, width*height),
		state:   make([]byte, width*height),
		lineBuf: make([]byte, width+1),
	}
	return b, nil
}

// index returns the linear index for (x, y); callers must bounds-check
// first, index itself performs no validation.
func (b *Buffer) index(x, y int) int {
	return y*b.Width + x
}

// inBounds reports whether (x, y) lies within [0,Width)x[0,Height).
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// pickCurrent returns the cell in the slot the state byte at i identifies
// as current. Out-of-range i returns the empty cell.
func (b *Buffer) pickCurrent(i int) Cell {
	if i < 0 || i >= len(b.state) {
		return EmptyCell
	}
	if b.state[i]&stateNextSelector == 0 {
		return b.slotB[i] // bit 0 clear: A is next, B is current
	}
	return b.slotA[i] // bit 0 set: B is next, A is current
}

// pickNext returns the pending cell at i and whether it is dirty.
func (b *Buffer) pickNext(i int) (Cell, bool) {
	if i < 0 || i >= len(b.state) {
		return EmptyCell, false
	}
	dirty := b.state[i]&stateDirty != 0
	if b.state[i]&stateNextSelector == 0 {
		return b.slotA[i], dirty
	}
	return b.slotB[i], dirty
}

// putCurrent writes into the current slot at i, masking a stale comparison
// value without touching the pending slot or the dirty flag. Returns
// whether i was in range.
func (b *Buffer) putCurrent(i int, cell Cell) bool {
	if i < 0 || i >= len(b.state) {
		return false
	}
	if b.state[i]&stateNextSelector == 0 {
		b.slotB[i] = cell
	} else {
		b.slotA[i] = cell
	}
	return true
}

// putNext writes into the pending slot at i and sets both the cell's dirty
// bit and the screen-level dirty flag.
func (b *Buffer) putNext(i int, cell Cell) bool {
	if i < 0 || i >= len(b.state) {
		return false
	}
	if b.state[i]&stateNextSelector == 0 {
		b.slotA[i] = cell
	} else {
		b.slotB[i] = cell
	}
	b.state[i] |= stateDirty
	b.dirty = true
	return true
}

// getState reads the current cell, the pending cell, and the dirty flag at
// i in one call, for use by the put decision table.
func (b *Buffer) getState(i int) (current, next Cell, isDirty bool) {
	current = b.pickCurrent(i)
	next, isDirty = b.pickNext(i)
	return current, next, isDirty
}

// swapAndClearDirty flips the next-slot selector bit and clears the dirty
// bit: the former "next" becomes "current".
func (b *Buffer) swapAndClearDirty(i int) {
	b.state[i] ^= stateNextSelector
	b.state[i] &^= stateDirty
}

// clearDirty clears the dirty bit without flipping the next-slot selector.
func (b *Buffer) clearDirty(i int) {
	b.state[i] &^= stateDirty
}
