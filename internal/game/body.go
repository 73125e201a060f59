package game

// Body is the snake as a double-ended queue of cells, head first.
// It is a ring buffer so the per-tick push-head/pop-tail never shifts cells.
type Body struct {
	cells []Point
	head  int // index of the head in cells
	n     int
}

// NewBody returns an empty body able to hold capacity cells before growing.
func NewBody(capacity int) *Body {
	if capacity < 1 {
		capacity = 1
	}
	return &Body{cells: make([]Point, capacity)}
}

// Reset replaces the contents with pts, pts[0] being the head.
func (b *Body) Reset(pts ...Point) {
	if len(pts) > len(b.cells) {
		b.cells = make([]Point, len(pts))
	}
	copy(b.cells, pts)
	b.head = 0
	b.n = len(pts)
}

// Len is the number of segments.
func (b *Body) Len() int { return b.n }

// Cap is the number of segments the ring holds before it grows.
func (b *Body) Cap() int { return len(b.cells) }

// At returns segment i counted from the head. It panics when i is out of range.
func (b *Body) At(i int) Point {
	if i < 0 || i >= b.n {
		panic("game: body index out of range")
	}
	return b.cells[(b.head+i)%len(b.cells)]
}

// Head is the first segment.
func (b *Body) Head() Point { return b.At(0) }

// Tail is the last segment.
func (b *Body) Tail() Point { return b.At(b.n - 1) }

// PushFront makes p the new head.
func (b *Body) PushFront(p Point) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.head] = p
	b.n++
}

// PopBack removes and returns the tail. It panics on an empty body.
func (b *Body) PopBack() Point {
	if b.n == 0 {
		panic("game: pop from empty body")
	}
	p := b.Tail()
	b.n--
	return p
}

// Contains reports whether any segment occupies p.
func (b *Body) Contains(p Point) bool {
	for i := 0; i < b.n; i++ {
		if b.cells[(b.head+i)%len(b.cells)] == p {
			return true
		}
	}
	return false
}

// Points copies the segments out, head first.
func (b *Body) Points() []Point {
	out := make([]Point, b.n)
	for i := range out {
		out[i] = b.cells[(b.head+i)%len(b.cells)]
	}
	return out
}

func (b *Body) grow() {
	next := make([]Point, 2*len(b.cells))
	for i := 0; i < b.n; i++ {
		next[i] = b.cells[(b.head+i)%len(b.cells)]
	}
	b.cells = next
	b.head = 0
}
