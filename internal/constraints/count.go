package constraints

import "github.com/samdwyer/dungeonprobe/internal/grid"

// Entrance is the coordinate of the only initial room.
var Entrance = grid.Coord{X: 0, Y: 0}

// Count limits the number of rooms, keys and switches a generator may place,
// and restricts rooms to single cells on the half-plane y >= 0.
//
// Limits are not validated; negative values are passed through to the
// generator unchanged.
type Count struct {
	maxSpaces   int
	maxKeys     int
	maxSwitches int

	space    *grid.Space
	entrance grid.RoomID
}

var _ Constraints = (*Count)(nil)

// NewCount creates a Count and allocates the entrance room at (0,0).
func NewCount(maxSpaces, maxKeys, maxSwitches int) *Count {
	c := &Count{
		maxSpaces:   maxSpaces,
		maxKeys:     maxKeys,
		maxSwitches: maxSwitches,
		space:       grid.NewSpace(),
	}
	c.entrance = c.space.Resolve(Entrance)
	return c
}

// MaxSpaces returns the room limit.
func (c *Count) MaxSpaces() int { return c.maxSpaces }

// SetMaxSpaces changes the room limit for subsequent queries.
func (c *Count) SetMaxSpaces(n int) { c.maxSpaces = n }

// MaxKeys returns the key limit.
func (c *Count) MaxKeys() int { return c.maxKeys }

// SetMaxKeys changes the key limit for subsequent queries.
func (c *Count) SetMaxKeys(n int) { c.maxKeys = n }

// MaxSwitches returns the switch limit.
func (c *Count) MaxSwitches() int { return c.maxSwitches }

// SetMaxSwitches changes the switch limit for subsequent queries.
func (c *Count) SetMaxSwitches(n int) { c.maxSwitches = n }

// InitialRooms always returns the entrance room alone.
func (c *Count) InitialRooms() []grid.RoomID {
	return []grid.RoomID{c.entrance}
}

// AdjacentRooms returns the neighbors of id in grid.Directions order,
// skipping any neighbor with y < 0.
func (c *Count) AdjacentRooms(id grid.RoomID) []grid.RoomID {
	xy := c.space.CoordOf(id)
	ids := make([]grid.RoomID, 0, len(grid.Directions))
	for _, d := range grid.Directions {
		neighbor := xy.Step(d)
		if validRoomCoord(neighbor) {
			ids = append(ids, c.space.Resolve(neighbor))
		}
	}
	return ids
}

// Coords returns the single cell room id occupies.
func (c *Count) Coords(id grid.RoomID) []grid.Coord {
	return []grid.Coord{c.space.CoordOf(id)}
}

// IsAcceptable keeps every layout.
func (c *Count) IsAcceptable(Dungeon) bool {
	return true
}

// Allocated returns how many room ids have been handed out so far.
func (c *Count) Allocated() int {
	return c.space.Len()
}

func validRoomCoord(xy grid.Coord) bool {
	return xy.Y >= 0
}
