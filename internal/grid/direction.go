package grid

// Direction is one of the four cardinal grid directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions is the closed set of directions used for adjacency.
var Directions = [4]Direction{Up, Down, Left, Right}

var offsets = [4][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Offset returns the (dx, dy) step for the direction.
func (d Direction) Offset() (int, int) {
	o := offsets[d]
	return o[0], o[1]
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
