package grid

import (
	"errors"
	"fmt"
)

// ErrUnknownRoom is the panic value (wrapped) raised when a RoomID was never
// allocated by the Space being queried.
var ErrUnknownRoom = errors.New("unknown room id")

// RoomID identifies a room. IDs are dense and assigned from 0.
type RoomID int

// Space is a lazily grown bijection between coordinates and room ids.
// Not safe for concurrent use; each generation attempt owns its own Space.
type Space struct {
	coords []Coord // indexed by RoomID
	ids    map[Coord]RoomID
}

// NewSpace creates an empty Space.
func NewSpace() *Space {
	return &Space{
		ids: make(map[Coord]RoomID),
	}
}

// Resolve returns the id for c, allocating the next id if c is new.
func (s *Space) Resolve(c Coord) RoomID {
	if id, ok := s.ids[c]; ok {
		return id
	}
	id := RoomID(len(s.coords))
	s.coords = append(s.coords, c)
	s.ids[c] = id
	return id
}

// CoordOf returns the coordinate of id. It panics with ErrUnknownRoom if id
// was not produced by this Space.
func (s *Space) CoordOf(id RoomID) Coord {
	if !s.Has(id) {
		panic(fmt.Errorf("%w: %d (allocated %d)", ErrUnknownRoom, id, len(s.coords)))
	}
	return s.coords[id]
}

// Has reports whether id was allocated by this Space.
func (s *Space) Has(id RoomID) bool {
	return id >= 0 && int(id) < len(s.coords)
}

// Len returns the number of allocated ids.
func (s *Space) Len() int {
	return len(s.coords)
}
