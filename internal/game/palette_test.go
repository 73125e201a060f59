package game

import "testing"

func TestSegmentColor_Gradient(t *testing.T) {
	cases := []struct {
		i int
		g uint8
	}{
		{0, 255},
		{1, 250},
		{2, 245},
		{50, 5},
		{51, 255},
		{52, 250},
	}
	for _, c := range cases {
		got := SegmentColor(c.i)
		if got.G != c.g || got.R != 0 || got.B != 0 || got.A != 255 {
			t.Fatalf("SegmentColor(%d) = %v, want G=%d", c.i, got, c.g)
		}
	}
}

func TestFoodColors(t *testing.T) {
	if c := FoodColor(); c.R != 255 || c.G != 0 {
		t.Fatalf("food = %v, want red", c)
	}
	if c := FoodGlowColor(); c.R != 255 || c.G != 255 || c.B != 0 {
		t.Fatalf("glow = %v, want yellow", c)
	}
}
