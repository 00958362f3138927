package console

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	for ch := 0; ch <= 255; ch += 17 {
		for fg := 0; fg <= 15; fg++ {
			for bg := 0; bg <= 15; bg++ {
				for style := 0; style <= 255; style += 31 {
					c := Cell{Ch: byte(ch), Fg: Color(fg), Bg: Color(bg), Style: StyleFlags(style)}
					got := Unpack(c.Pack())
					if got != c {
						t.Fatalf("round-trip mismatch: pack(%+v) -> unpack -> %+v", c, got)
					}
				}
			}
		}
	}
}

func TestPackKnownValue(t *testing.T) {
	c := Cell{Ch: 65, Fg: 3, Bg: 5, Style: 4}
	if got := c.Pack(); got != 0x45341 {
		t.Fatalf("Pack() = 0x%x, want 0x45341", got)
	}
}

func TestStyleEqual(t *testing.T) {
	a := Cell{Ch: 'A', Fg: ColorRed, Bg: ColorBlack, Style: StyleBold}
	b := Cell{Ch: 'B', Fg: ColorRed, Bg: ColorBlack, Style: StyleBold}
	c := Cell{Ch: 'A', Fg: ColorGreen, Bg: ColorBlack, Style: StyleBold}

	if !a.StyleEqual(b) {
		t.Fatal("expected StyleEqual for differing character, same style")
	}
	if a.StyleEqual(c) {
		t.Fatal("expected StyleEqual to fail when foreground differs")
	}
	if a.Equal(b) {
		t.Fatal("expected Equal to fail for differing character")
	}
}

func TestEmptyCellIsZero(t *testing.T) {
	if EmptyCell != (Cell{}) {
		t.Fatal("EmptyCell must be the zero value")
	}
}
