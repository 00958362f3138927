package console

import "testing"

func TestRenderNoDeviceReturnsError(t *testing.T) {
	b, _ := NewBuffer(10, 10)
	if _, err := b.Render(nil); err != ErrNoDevice {
		t.Fatalf("Render(nil) error = %v, want ErrNoDevice", err)
	}
}

func TestRenderAfterResetIsNoOp(t *testing.T) {
	b, _ := NewBuffer(80, 25)
	b.Reset()
	dev := &fakeDevice{}

	n, err := b.Render(dev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 || len(dev.calls) != 0 {
		t.Fatalf("Render after Reset = %d calls, want 0", n)
	}
}

func TestRenderThenRenderReturnsZero(t *testing.T) {
	b, _ := NewBuffer(80, 25)
	b.Put(0, 1, Cell{Ch: 'A'})
	dev := &fakeDevice{}

	if _, err := b.Render(dev); err != nil {
		t.Fatal(err)
	}
	n, err := b.Render(dev)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("second Render returned %d, want 0", n)
	}
}

func TestRenderSingleCell(t *testing.T) {
	b, _ := NewBuffer(80, 25)
	b.Put(0, 1, Cell{Ch: 'A'})
	dev := &fakeDevice{}

	n, err := b.Render(dev)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || len(dev.calls) != 1 {
		t.Fatalf("Render = %d calls, want 1", n)
	}
	call := dev.calls[0]
	if call.isRun || call.x != 0 || call.y != 1 || call.runes != "A" {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestRenderSingleRun(t *testing.T) {
	b, _ := NewBuffer(80, 25)
	for x := 0; x < 10; x++ {
		b.Put(x, 1, Cell{Ch: 'A'})
	}
	dev := &fakeDevice{}

	n, err := b.Render(dev)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("Render = %d calls, want 1", n)
	}
	call := dev.calls[0]
	if !call.isRun || call.x != 0 || call.y != 1 || call.runes != "AAAAAAAAAA" {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestRenderStyleChangeSplitsRun(t *testing.T) {
	b, _ := NewBuffer(80, 25)
	for x := 0; x < 5; x++ {
		b.Put(x, 1, Cell{Ch: 'A', Fg: ColorBlack})
	}
	for x := 5; x < 10; x++ {
		b.Put(x, 1, Cell{Ch: 'B', Fg: ColorGreen})
	}
	dev := &fakeDevice{}

	n, err := b.Render(dev)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("Render = %d calls, want 2", n)
	}
	if dev.calls[0].runes != "AAAAA" || dev.calls[0].fg != ColorBlack || dev.calls[0].x != 0 {
		t.Fatalf("unexpected first call: %+v", dev.calls[0])
	}
	if dev.calls[1].runes != "BBBBB" || dev.calls[1].fg != ColorGreen || dev.calls[1].x != 5 {
		t.Fatalf("unexpected second call: %+v", dev.calls[1])
	}
}

func TestRenderNonContiguousCellsProduceSeparateRuns(t *testing.T) {
	b, _ := NewBuffer(80, 25)
	b.Put(1, 1, Cell{Ch: 'A'})
	dev := &fakeDevice{}
	b.Render(dev)

	b.Put(0, 1, Cell{Ch: 'A'})
	b.Put(79, 24, Cell{Ch: 'B'})
	dev2 := &fakeDevice{}

	n, err := b.Render(dev2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("Render = %d calls, want 2", n)
	}
}

func TestRenderRowBoundary(t *testing.T) {
	b, _ := NewBuffer(80, 25)
	payload := ""
	for i := 0; i < 85; i++ {
		payload += "x"
	}
	b.Print(0, 1, payload, 0, 0, 0)
	dev := &fakeDevice{}

	_, err := b.Render(dev)
	if err != nil {
		t.Fatal(err)
	}
	if len(dev.calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(dev.calls))
	}
	call := dev.calls[0]
	if call.y != 1 || len(call.runes) != 80 {
		t.Fatalf("expected exactly row 1's 80 columns, got %+v", call)
	}
}

func TestNoIntermediatePutsDoesNotDoubleDrawFinalValue(t *testing.T) {
	b, _ := NewBuffer(80, 25)
	b.Put(1, 1, Cell{Ch: 'A'})
	dev := &fakeDevice{}
	b.Render(dev)

	i := b.index(1, 1)
	b.Put(1, 1, Cell{Ch: 'A'})
	b.Put(1, 1, Cell{Ch: 'B'})
	b.Put(1, 1, Cell{Ch: 'A'})

	if b.state[i]&stateDirty != 0 {
		t.Fatal("expected dirty clear since final value equals current")
	}
	if got := b.Pick(1, 1); got.Ch != 'A' {
		t.Fatalf("Pick(1,1).Ch = %q, want 'A'", got.Ch)
	}
}

func TestDirtyFlagClearAfterRenderForAllTouched(t *testing.T) {
	b, _ := NewBuffer(20, 20)
	for i := 0; i < 50; i++ {
		x, y := i%20, (i*7)%20
		b.Put(x, y, Cell{Ch: byte('a' + i%26)})
	}
	dev := &fakeDevice{}
	if _, err := b.Render(dev); err != nil {
		t.Fatal(err)
	}
	for _, s := range b.state {
		if s&stateDirty != 0 {
			t.Fatal("found a dirty flag set after a full render pass")
		}
	}
}
