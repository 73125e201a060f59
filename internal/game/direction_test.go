package game

import "testing"

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for d := DirUp; d < dirCount; d++ {
		if d.Opposite() == d {
			t.Fatalf("%s is its own opposite", d)
		}
		if d.Opposite().Opposite() != d {
			t.Fatalf("opposite of opposite of %s is %s", d, d.Opposite().Opposite())
		}
	}
}

func TestDirection_DeltaCancelsWithOpposite(t *testing.T) {
	for d := DirUp; d < dirCount; d++ {
		p := Point{3, 3}.Add(d).Add(d.Opposite())
		if p != (Point{3, 3}) {
			t.Fatalf("%s then %s ended at %v", d, d.Opposite(), p)
		}
	}
}

func TestDirection_YGrowsDown(t *testing.T) {
	if (Point{0, 0}).Add(DirDown) != (Point{0, 1}) {
		t.Fatal("down should increase Y")
	}
	if (Point{0, 0}).Add(DirUp) != (Point{0, -1}) {
		t.Fatal("up should decrease Y")
	}
}

func TestDirection_String(t *testing.T) {
	if DirLeft.String() != "left" {
		t.Fatalf("DirLeft = %q", DirLeft.String())
	}
	if Direction(7).Valid() {
		t.Fatal("direction 7 should be invalid")
	}
}

func TestPoint_In(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{39, 29}, true},
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
		{Point{40, 0}, false},
		{Point{0, 30}, false},
	}
	for _, c := range cases {
		if got := c.p.In(40, 30); got != c.want {
			t.Fatalf("%v.In(40,30) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestPoint_Pixels(t *testing.T) {
	x, y := Point{5, 5}.Pixels(20)
	if x != 100 || y != 100 {
		t.Fatalf("pixels = (%d,%d), want (100,100)", x, y)
	}
}

func TestCommand_Direction(t *testing.T) {
	if d, ok := CmdLeft.Direction(); !ok || d != DirLeft {
		t.Fatalf("CmdLeft -> %s,%v", d, ok)
	}
	for _, c := range []Command{CmdNone, CmdReset, CmdQuit} {
		if _, ok := c.Direction(); ok {
			t.Fatalf("%s should not map to a direction", c)
		}
	}
}
