package game

import "testing"

func TestBody_ResetHeadFirst(t *testing.T) {
	b := NewBody(8)
	b.Reset(Point{5, 5}, Point{4, 5}, Point{3, 5})
	if b.Len() != 3 {
		t.Fatalf("len = %d, want 3", b.Len())
	}
	if b.Head() != (Point{5, 5}) || b.Tail() != (Point{3, 5}) {
		t.Fatalf("head/tail = %v/%v, want (5,5)/(3,5)", b.Head(), b.Tail())
	}
}

func TestBody_PushPopKeepsOrderAcrossWrap(t *testing.T) {
	b := NewBody(4)
	b.Reset(Point{2, 0}, Point{1, 0}, Point{0, 0})
	// Walk right ten times; the ring wraps several times over.
	for x := 3; x < 13; x++ {
		b.PushFront(Point{x, 0})
		b.PopBack()
	}
	want := []Point{{12, 0}, {11, 0}, {10, 0}}
	if got := b.Points(); !equalPoints(got, want) {
		t.Fatalf("points = %v, want %v", got, want)
	}
	if b.Cap() != 4 {
		t.Fatalf("steady-state walk should not grow the ring, cap = %d", b.Cap())
	}
}

func TestBody_GrowsWhenFull(t *testing.T) {
	b := NewBody(2)
	b.Reset(Point{1, 0}, Point{0, 0})
	b.PushFront(Point{2, 0})
	b.PushFront(Point{3, 0})
	if b.Len() != 4 {
		t.Fatalf("len = %d, want 4", b.Len())
	}
	want := []Point{{3, 0}, {2, 0}, {1, 0}, {0, 0}}
	if got := b.Points(); !equalPoints(got, want) {
		t.Fatalf("points after grow = %v, want %v", got, want)
	}
}

func TestBody_Contains(t *testing.T) {
	b := NewBody(4)
	b.Reset(Point{1, 1}, Point{1, 2})
	if !b.Contains(Point{1, 2}) {
		t.Fatal("expected body to contain its tail")
	}
	if b.Contains(Point{2, 2}) {
		t.Fatal("did not expect (2,2) in body")
	}
	b.PopBack()
	if b.Contains(Point{1, 2}) {
		t.Fatal("popped tail must no longer be contained")
	}
}

func TestBody_AtOutOfRangePanics(t *testing.T) {
	b := NewBody(2)
	b.Reset(Point{0, 0})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for index past the tail")
		}
	}()
	b.At(1)
}

func TestBody_PointsIsACopy(t *testing.T) {
	b := NewBody(3)
	b.Reset(Point{0, 0}, Point{1, 0})
	pts := b.Points()
	pts[0] = Point{9, 9}
	if b.Head() != (Point{0, 0}) {
		t.Fatal("mutating Points() result changed the body")
	}
}
