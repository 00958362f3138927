package console

import "errors"

// ErrNoDevice is returned by Render when the passed device is nil.
var ErrNoDevice = errors.New("console: no render device installed")

// ErrLineBufferOverrun is returned by Render if the line buffer's length
// were ever to exceed the grid width during a sweep. Spec.md §7 calls this
// case "should be unreachable; treat as a bug signal" — normal sweeps
// cannot reach it, so the check is an invariant assertion implemented as a
// panic recovered at the top of Render, matching the teacher's own
// panic-recovery convention for asserting an invariant without crashing
// the host process.
var ErrLineBufferOverrun = errors.New("console: line buffer overrun during render")

// Render scans the grid once, coalesces contiguous same-style dirty cells
// into runs, and emits the minimal sequence of DrawCell/DrawRun calls to
// device. It returns the number of draw calls emitted. If the screen-level
// dirty flag is clear, Render returns (0, nil) immediately without
// touching device.
func (b *Buffer) Render(device RenderDevice) (count int, err error) {
	if device == nil {
		return 0, ErrNoDevice
	}
	if !b.dirty {
		return 0, nil
	}

	defer func() {
		if r := recover(); r != nil {
			if b.Logger != nil {
				b.Logger.Printf("console: render panic recovered: %v", r)
			}
			count = 0
			err = ErrLineBufferOverrun
		}
	}()

	lineLen := 0
	drawX, drawY := 0, 0
	var lastCell Cell
	prevIndex := -2

	flush := func() {
		if lineLen == 0 {
			return
		}
		if lineLen > b.Width {
			panic(ErrLineBufferOverrun)
		}
		if lineLen == 1 {
			device.DrawCell(drawX, drawY, Cell{Ch: b.lineBuf[0], Fg: lastCell.Fg, Bg: lastCell.Bg, Style: lastCell.Style})
		} else {
			device.DrawRun(drawX, drawY, b.lineBuf[:lineLen], lastCell.Fg, lastCell.Bg, lastCell.Style)
		}
		b.lineBuf[lineLen] = 0
		lineLen = 0
		count++
	}

	total := b.Width * b.Height
	for i := 0; i < total; i++ {
		x := i % b.Width
		y := i / b.Width

		if prevIndex != i-1 || lineLen == b.Width {
			flush()
		}

		_, next, isDirty := b.getState(i)
		if !isDirty {
			continue
		}

		if lineLen > 0 && !next.StyleEqual(lastCell) {
			flush()
		}

		if lineLen == 0 {
			drawX, drawY = x, y
		}

		b.lineBuf[lineLen] = next.Ch
		lineLen++
		lastCell = next
		// Mask the stale value in the slot that becomes "next" after the
		// swap, so a clean cell's current and next slots hold equal cells.
		b.putCurrent(i, next)
		b.swapAndClearDirty(i)
		prevIndex = i
	}

	flush()

	b.dirty = false
	if b.Metrics != nil {
		b.Metrics.Ints.Get("console.draw_calls").Add(int64(count))
	}
	return count, nil
}
