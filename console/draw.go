package console

// Put applies the put decision table at (x, y): the dirty flag at the
// resulting index is set if and only if the pending cell differs from the
// current cell, independent of how many Put calls ran between renders.
// Out-of-range positions are silently rejected and return false.
func (b *Buffer) Put(x, y int, cell Cell) bool {
	if !b.inBounds(x, y) {
		return false
	}
	i := b.index(x, y)
	current, next, isDirty := b.getState(i)

	switch {
	case cell == next:
		// Already the pending value; nothing to do.
		return false
	case isDirty && cell == current:
		// The pending change is cancelled: writing back to current clears dirty.
		b.putNext(i, cell)
		b.clearDirty(i)
		return true
	case isDirty && cell != current:
		b.putNext(i, cell)
		return true
	case !isDirty && cell == current:
		return false
	default: // !isDirty && cell != current
		b.putNext(i, cell)
		return true
	}
}

// Puti unpacks a packed 32-bit cell and calls Put.
func (b *Buffer) Puti(x, y int, packed uint32) bool {
	return b.Put(x, y, Unpack(packed))
}

// Print writes bytes starting at (x, y), one Put per byte, advancing the
// column until the row edge. Truncates at the remaining columns from the
// start column (W - x), never wrapping to the next row.
func (b *Buffer) Print(x, y int, s string, fg, bg Color, style StyleFlags) {
	if !b.inBounds(x, y) {
		return
	}
	max := b.Width - x
	if max > len(s) {
		max = len(s)
	}
	for n := 0; n < max; n++ {
		b.Put(x+n, y, Cell{Ch: s[n], Fg: fg, Bg: bg, Style: style})
	}
}

// Pick returns the "committed future state" at (x, y): the pending value
// if dirty, otherwise the current value. Out-of-range positions return the
// empty cell.
func (b *Buffer) Pick(x, y int) Cell {
	if !b.inBounds(x, y) {
		return EmptyCell
	}
	i := b.index(x, y)
	if next, dirty := b.pickNext(i); dirty {
		return next
	}
	return b.pickCurrent(i)
}

// Clear is equivalent to Put(x, y, EmptyCell).
func (b *Buffer) Clear(x, y int) bool {
	return b.Put(x, y, EmptyCell)
}

// ClearArea clears the exclusive rectangle [x, x+w) x [y, y+h), exactly w*h
// cells. The reference C library swept an inclusive (w+1)x(h+1) rectangle;
// that behavior is a bug and is not reproduced here (see DESIGN.md).
func (b *Buffer) ClearArea(x, y, w, h int) {
	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			b.Clear(tx, ty)
		}
	}
}

// Reset sets every state byte to zero and zeroes both slots of every cell.
// Used at construction and for hard resets.
func (b *Buffer) Reset() {
	for i := range b.state {
		b.state[i] = 0
		b.slotA[i] = EmptyCell
		b.slotB[i] = EmptyCell
	}
	b.dirty = false
}
