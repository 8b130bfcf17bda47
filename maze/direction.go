package maze

// Direction is one of four axis-aligned headings or None
type Direction uint8

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// Directions is the canonical candidate order used for steering and tie-breaks
var Directions = [4]Direction{Left, Right, Up, Down}

// Opposite returns the reverse heading, None maps to None
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return None
	}
}

// Delta returns the unit cell offset for the heading
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// Horizontal reports whether the heading moves along the x axis
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}
