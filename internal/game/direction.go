package game

import "fmt"

// Point is a grid cell in cell units. Pixel position is X*CellSize, Y*CellSize.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the neighbouring cell one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether p lies inside [0,cols) x [0,rows).
func (p Point) In(cols, rows int) bool {
	return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
}

// Manhattan returns the grid distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Pixels returns the top-left pixel of the cell.
func (p Point) Pixels(cellSize int) (int, int) {
	return p.X * cellSize, p.Y * cellSize
}

// Direction is one of the four grid headings.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

var directionNames = [dirCount]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d < dirCount
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// Delta is the one-cell step for d. Y grows downwards.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
