package input

import "testing"

func TestEdge(t *testing.T) {
	cases := []struct {
		prev, down, want bool
	}{
		{false, false, false},
		{false, true, true},
		{true, true, false},
		{true, false, false},
	}
	for _, c := range cases {
		if got := Edge(c.prev, c.down); got != c.want {
			t.Errorf("Edge(%v, %v): expected %v, got %v", c.prev, c.down, c.want, got)
		}
	}
}

func TestLatchFiresOncePerPress(t *testing.T) {
	// Three presses held for 1, 5 and 30 frames, separated by releases.
	var frames []bool
	for _, held := range []int{1, 5, 30} {
		for i := 0; i < held; i++ {
			frames = append(frames, true)
		}
		frames = append(frames, false, false)
	}

	var l Latch
	toggled := false
	fires := 0
	for _, down := range frames {
		if l.Update(down) {
			toggled = !toggled
			fires++
		}
	}
	if fires != 3 {
		t.Errorf("fires: expected 3, got %d", fires)
	}
	if !toggled {
		t.Errorf("an odd number of presses should leave the toggle on")
	}
	if l.Down() {
		t.Errorf("latch should end released")
	}
}
