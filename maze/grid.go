package maze

// Cell is a maze cell code
type Cell uint8

// Cell codes, values match the numeric layout format
const (
	Empty  Cell = 0
	Wall   Cell = 1
	Dot    Cell = 2
	Pellet Cell = 3
)

// Collectible reports whether the code is a dot or power pellet
func (c Cell) Collectible() bool {
	return c == Dot || c == Pellet
}

// Point is a grid coordinate, origin top-left
type Point struct {
	X, Y int
}

// Grid is the live maze for one session
// Layout cells are copied on construction so collecting never mutates the layout
type Grid struct {
	width, height int
	cells         [][]Cell
	initial       [][]Cell

	wrapRows map[int]struct{}
	wrapCols map[int]struct{}

	PlayerSpawn Point
	EnemySpawn  Point
}

// NewGrid validates the layout and builds a grid from it
func NewGrid(l *Layout) (*Grid, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}

	height := len(l.Cells)
	width := len(l.Cells[0])

	g := &Grid{
		width:       width,
		height:      height,
		cells:       make([][]Cell, height),
		initial:     make([][]Cell, height),
		wrapRows:    make(map[int]struct{}, len(l.WrapRows)),
		wrapCols:    make(map[int]struct{}, len(l.WrapCols)),
		PlayerSpawn: l.PlayerSpawn,
		EnemySpawn:  l.EnemySpawn,
	}
	for y := range l.Cells {
		g.cells[y] = append([]Cell(nil), l.Cells[y]...)
		g.initial[y] = append([]Cell(nil), l.Cells[y]...)
	}
	for _, r := range l.WrapRows {
		g.wrapRows[r] = struct{}{}
	}
	for _, c := range l.WrapCols {
		g.wrapCols[c] = struct{}{}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the cell lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell code, out of bounds reads as Empty
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

// WrapsRow reports whether row y allows horizontal edge crossing
func (g *Grid) WrapsRow(y int) bool {
	_, ok := g.wrapRows[y]
	return ok
}

// WrapsCol reports whether column x allows vertical edge crossing
func (g *Grid) WrapsCol(x int) bool {
	_, ok := g.wrapCols[x]
	return ok
}

// CanEnter reports whether an actor in cell (x, y) may move one cell in dir
// Leaving the grid is allowed only from a wrap row (horizontally) or a wrap column (vertically)
func (g *Grid) CanEnter(dir Direction, x, y int) bool {
	if dir == None {
		return false
	}
	// Beyond an edge only travel along the tunnel axis
	if x < 0 || x >= g.width {
		if !dir.Horizontal() || !g.WrapsRow(y) {
			return false
		}
	} else if y < 0 || y >= g.height {
		if dir.Horizontal() || !g.WrapsCol(x) {
			return false
		}
	}

	dx, dy := dir.Delta()
	nx, ny := x+dx, y+dy

	if (nx < 0 || nx >= g.width) && g.WrapsRow(y) {
		return true
	}
	if (ny < 0 || ny >= g.height) && g.WrapsCol(x) {
		return true
	}
	if !g.InBounds(nx, ny) {
		return false
	}
	return g.cells[ny][nx] != Wall
}

// Exits returns the enterable directions from (x, y) in canonical order
func (g *Grid) Exits(x, y int) []Direction {
	exits := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if g.CanEnter(d, x, y) {
			exits = append(exits, d)
		}
	}
	return exits
}

// IsIntersection reports whether more than two directions are enterable from (x, y)
func (g *Grid) IsIntersection(x, y int) bool {
	paths := 0
	for _, d := range Directions {
		if g.CanEnter(d, x, y) {
			paths++
		}
	}
	return paths > 2
}

// Collect clears a dot or pellet and returns what was there
func (g *Grid) Collect(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Empty, false
	}
	c := g.cells[y][x]
	if !c.Collectible() {
		return Empty, false
	}
	g.cells[y][x] = Empty
	return c, true
}

// Restore puts back the collectible the layout originally held at (x, y)
// Returns false if the cell never held one or is already occupied
func (g *Grid) Restore(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	orig := g.initial[y][x]
	if !orig.Collectible() || g.cells[y][x] != Empty {
		return false
	}
	g.cells[y][x] = orig
	return true
}

// Count returns the number of cells currently holding code c
func (g *Grid) Count(c Cell) int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}
