// Package constraints answers the spatial questions a dungeon layout
// generator asks while it builds: how much it may place, where rooms are and
// which rooms neighbor each other, and whether a finished layout is kept.
package constraints

import "github.com/samdwyer/dungeonprobe/internal/grid"

// Dungeon is a finished layout handed back for acceptance checks.
// The generator owns it; constraints only read from it.
type Dungeon interface {
	RoomIDs() []grid.RoomID
}

// Constraints limits what a generator may place and the shape it may take.
// Alternative policies (other grid shapes, real acceptance checks) are
// separate implementations of this interface.
type Constraints interface {
	// MaxSpaces returns the most rooms a generator may place.
	MaxSpaces() int

	// MaxKeys returns the most keys a generator may place.
	MaxKeys() int

	// MaxSwitches returns the most switches a generator may place. Current
	// generators only ever place one.
	MaxSwitches() int

	// InitialRooms returns the ids the entrance may be picked from.
	InitialRooms() []grid.RoomID

	// AdjacentRooms returns the ids of rooms next to id. It may allocate ids
	// for coordinates not seen before.
	AdjacentRooms(id grid.RoomID) []grid.RoomID

	// Coords returns the cells room id occupies, ordered by grid.Coord.Compare.
	Coords(id grid.RoomID) []grid.Coord

	// IsAcceptable runs post-generation checks. False means discard the
	// layout and generate again.
	IsAcceptable(d Dungeon) bool
}
