// Package probe walks a constraint set the way a layout generator would and
// records the rooms it reaches.
package probe

import "github.com/samdwyer/dungeonprobe/internal/grid"

// Room is a surveyed room and the cells it occupies.
type Room struct {
	ID    grid.RoomID
	Cells []grid.Coord
	Depth int // Steps from the nearest initial room
}

// Layout is the result of a survey. It satisfies constraints.Dungeon.
type Layout struct {
	RunID    string
	Entrance grid.RoomID
	Rooms    []Room // Discovery order
	Accepted bool

	index map[grid.RoomID]int
	cells map[grid.Coord]grid.RoomID
}

func newLayout(runID string) *Layout {
	return &Layout{
		RunID:    runID,
		Entrance: -1,
		index:    make(map[grid.RoomID]int),
		cells:    make(map[grid.Coord]grid.RoomID),
	}
}

func (l *Layout) add(room Room) {
	l.index[room.ID] = len(l.Rooms)
	l.Rooms = append(l.Rooms, room)
	for _, xy := range room.Cells {
		l.cells[xy] = room.ID
	}
}

// RoomIDs returns the ids of all surveyed rooms in discovery order.
func (l *Layout) RoomIDs() []grid.RoomID {
	ids := make([]grid.RoomID, len(l.Rooms))
	for i, r := range l.Rooms {
		ids[i] = r.ID
	}
	return ids
}

// Room returns the surveyed room with the given id.
func (l *Layout) Room(id grid.RoomID) (Room, bool) {
	i, ok := l.index[id]
	if !ok {
		return Room{}, false
	}
	return l.Rooms[i], true
}

// RoomAt returns the id of the room covering xy, if any.
func (l *Layout) RoomAt(xy grid.Coord) (grid.RoomID, bool) {
	id, ok := l.cells[xy]
	return id, ok
}

// Len returns the number of surveyed rooms.
func (l *Layout) Len() int {
	return len(l.Rooms)
}

// Bounds returns the smallest and largest X and Y over all cells.
// Both are the zero Coord for an empty layout.
func (l *Layout) Bounds() (lo, hi grid.Coord) {
	first := true
	for xy := range l.cells {
		if first {
			lo, hi = xy, xy
			first = false
			continue
		}
		lo.X = min(lo.X, xy.X)
		lo.Y = min(lo.Y, xy.Y)
		hi.X = max(hi.X, xy.X)
		hi.Y = max(hi.Y, xy.Y)
	}
	return lo, hi
}

// Size returns the width and height of the bounding box, or 0, 0 when the
// layout is empty.
func (l *Layout) Size() (width, height int) {
	if len(l.cells) == 0 {
		return 0, 0
	}
	lo, hi := l.Bounds()
	return hi.X - lo.X + 1, hi.Y - lo.Y + 1
}
