package loop

import (
	"testing"
	"time"
)

func TestMSToTicks(t *testing.T) {
	cases := []struct {
		ms   uint32
		cps  int64
		want int64
	}{
		{10, 1000, 10},
		{10, 1001, 10},
		{2000, 1000, 2000},
	}
	for _, c := range cases {
		if got := MSToTicks(c.ms, c.cps); int64(got) != c.want {
			t.Errorf("MSToTicks(%d, %d) = %d, want %d", c.ms, c.cps, got, c.want)
		}
	}
}

func TestTicksToMS(t *testing.T) {
	cases := []struct {
		ticks int64
		cps   int64
		want  uint32
	}{
		{16, 1000, 16},
		{16, 1001, 15},
		{500, 1001, 499},
	}
	for _, c := range cases {
		if got := TicksToMS(time.Duration(c.ticks), c.cps); got != c.want {
			t.Errorf("TicksToMS(%d, %d) = %d, want %d", c.ticks, c.cps, got, c.want)
		}
	}
}
