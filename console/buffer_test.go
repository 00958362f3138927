package console

import "testing"

func TestNewBufferRejectsSmallDimensions(t *testing.T) {
	if _, err := NewBuffer(1, 24); err != ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := NewBuffer(80, 1); err != ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestPutIdempotent(t *testing.T) {
	b, _ := NewBuffer(10, 10)
	c := Cell{Ch: 'A'}

	if ok := b.Put(1, 1, c); !ok {
		t.Fatal("first put should report a change")
	}
	if ok := b.Put(1, 1, c); ok {
		t.Fatal("second identical put should report no change")
	}
	if got := b.Pick(1, 1); got != c {
		t.Fatalf("Pick = %+v, want %+v", got, c)
	}
}

func TestCancellingPutAfterRender(t *testing.T) {
	b, _ := NewBuffer(10, 10)
	dev := &fakeDevice{}

	c0 := Cell{Ch: 'X'}
	c1 := Cell{Ch: 'Y'}

	b.Put(2, 2, c0)
	if _, err := b.Render(dev); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	i := b.index(2, 2)
	b.Put(2, 2, c1)
	b.Put(2, 2, c0)

	if b.state[i]&stateDirty != 0 {
		t.Fatal("expected dirty flag to be clear after cancelling put")
	}
	if got := b.Pick(2, 2); got != c0 {
		t.Fatalf("Pick = %+v, want %+v", got, c0)
	}
}

func TestClearAreaIsExclusive(t *testing.T) {
	b, _ := NewBuffer(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			b.Put(x, y, Cell{Ch: 'Z'})
		}
	}
	dev := &fakeDevice{}
	b.Render(dev)

	b.ClearArea(2, 2, 3, 3) // clears [2,5) x [2,5): 9 cells

	cleared := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if b.Pick(x, y) == EmptyCell {
				cleared++
			}
		}
	}
	if cleared != 9 {
		t.Fatalf("ClearArea cleared %d cells, want 9 (exclusive bounds)", cleared)
	}
	// (5,2) and (2,5) must remain untouched.
	if b.Pick(5, 2) == EmptyCell {
		t.Fatal("ClearArea must not touch column x+w")
	}
	if b.Pick(2, 5) == EmptyCell {
		t.Fatal("ClearArea must not touch row y+h")
	}
}

func TestPrintTruncatesAtRowEdge(t *testing.T) {
	b, _ := NewBuffer(10, 5)
	b.Print(8, 1, "ABCDEF", ColorRed, ColorBlack, 0)

	if got := b.Pick(8, 1); got.Ch != 'A' {
		t.Fatalf("Pick(8,1).Ch = %q, want 'A'", got.Ch)
	}
	if got := b.Pick(9, 1); got.Ch != 'B' {
		t.Fatalf("Pick(9,1).Ch = %q, want 'B'", got.Ch)
	}
	// Only 2 columns remain (W-x = 10-8 = 2); the rest must not have been written.
	if got := b.Pick(0, 2); got != EmptyCell {
		t.Fatal("Print must not wrap into the next row")
	}
}

func TestResetZeroesEverything(t *testing.T) {
	b, _ := NewBuffer(4, 4)
	b.Put(1, 1, Cell{Ch: 'A'})
	dev := &fakeDevice{}
	b.Render(dev)
	b.Put(2, 2, Cell{Ch: 'B'})

	b.Reset()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := b.Pick(x, y); got != EmptyCell {
				t.Fatalf("Pick(%d,%d) = %+v after Reset, want EmptyCell", x, y, got)
			}
		}
	}
}

func TestOutOfAreaRejected(t *testing.T) {
	b, _ := NewBuffer(10, 10)
	if ok := b.Put(-1, 0, Cell{Ch: 'A'}); ok {
		t.Fatal("Put out of area must return false")
	}
	if ok := b.Put(10, 0, Cell{Ch: 'A'}); ok {
		t.Fatal("Put out of area must return false")
	}
	if got := b.Pick(-1, 0); got != EmptyCell {
		t.Fatal("Pick out of area must return EmptyCell")
	}
	if ok := b.Clear(100, 100); ok {
		t.Fatal("Clear out of area must return false")
	}
}
