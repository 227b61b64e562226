// Package grid provides integer grid coordinates and the room id allocator
// that maps them to dense identifiers.
package grid

import (
	"cmp"
	"fmt"
)

// Coord locates a single grid cell.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by dx, dy.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighboring coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Offset()
	return c.Add(dx, dy)
}

// Compare orders coordinates by X, then by Y.
func (c Coord) Compare(other Coord) int {
	if n := cmp.Compare(c.X, other.X); n != 0 {
		return n
	}
	return cmp.Compare(c.Y, other.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
