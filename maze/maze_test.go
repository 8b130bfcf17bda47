package maze

import (
	"errors"
	"strings"
	"testing"
)

func mustGrid(t *testing.T, l *Layout) *Grid {
	t.Helper()
	g, err := NewGrid(l)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestOppositeIsInvolutive(t *testing.T) {
	for _, d := range []Direction{None, Left, Right, Up, Down} {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("Opposite(Opposite(%v)) = %v", d, got)
		}
	}
	if None.Opposite() != None {
		t.Errorf("Opposite(None) = %v, want none", None.Opposite())
	}
	if Left.Opposite() != Right || Up.Opposite() != Down {
		t.Errorf("unexpected opposite mapping")
	}
}

func TestDefaultLayoutShape(t *testing.T) {
	g := mustGrid(t, DefaultLayout())

	if g.Width() != 19 || g.Height() != 21 {
		t.Fatalf("expected 19x21, got %dx%d", g.Width(), g.Height())
	}
	if g.PlayerSpawn != (Point{9, 15}) {
		t.Errorf("player spawn = %v", g.PlayerSpawn)
	}
	if g.EnemySpawn != (Point{9, 9}) {
		t.Errorf("enemy spawn = %v", g.EnemySpawn)
	}
	if g.Count(Pellet) != 4 {
		t.Errorf("expected 4 pellets, got %d", g.Count(Pellet))
	}
	if g.Count(Dot) == 0 {
		t.Error("expected dots in default layout")
	}
}

func TestCanEnter(t *testing.T) {
	g := mustGrid(t, DefaultLayout())

	tests := []struct {
		name string
		dir  Direction
		x, y int
		want bool
	}{
		{"open corridor", Right, 1, 3, true},
		{"into wall", Right, 1, 2, false},
		{"none never enters", None, 1, 3, false},
		{"left edge wrap row 7", Left, 0, 7, true},
		{"right edge wrap row 9", Right, 18, 9, true},
		{"right edge wrap row 11", Right, 18, 11, true},
		{"top edge wrap col 9", Up, 9, 0, true},
		{"bottom edge wrap col 9", Down, 9, 20, true},
		{"left edge on non-wrap row", Left, 0, 8, false},
		{"top edge on non-wrap column", Up, 8, 0, false},
		{"horizontal wrap row does not allow vertical exit", Up, 0, 7, false},
		{"inside side tunnel keeps going", Left, -1, 7, true},
		{"inside side tunnel back into maze", Right, -1, 7, true},
		{"inside side tunnel cannot turn", Up, 19, 7, false},
		{"inside top tunnel keeps going", Up, 9, -1, true},
		{"inside top tunnel cannot turn", Left, 9, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CanEnter(tt.dir, tt.x, tt.y); got != tt.want {
				t.Errorf("CanEnter(%v, %d, %d) = %v, want %v", tt.dir, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestIntersectionClassification(t *testing.T) {
	g := mustGrid(t, DefaultLayout())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == Wall {
				continue
			}
			n := len(g.Exits(x, y))
			got := g.IsIntersection(x, y)
			if n <= 2 && got {
				t.Errorf("(%d,%d) has %d exits but is classified as intersection", x, y, n)
			}
			if n >= 3 && !got {
				t.Errorf("(%d,%d) has %d exits but is not classified as intersection", x, y, n)
			}
		}
	}

	if g.IsIntersection(-1, 9) || g.IsIntersection(19, 11) {
		t.Error("tunnel cells beyond the edge must not be intersections")
	}

	// Corridor cell with exactly two exits
	if g.IsIntersection(2, 1) {
		t.Error("straight corridor reported as intersection")
	}
	// Enemy pen exit column is a 3-way junction at (9,7)
	if !g.IsIntersection(9, 7) {
		t.Error("expected (9,7) to be an intersection")
	}
}

func TestCollectAndRestore(t *testing.T) {
	g := mustGrid(t, DefaultLayout())

	dots := g.Count(Dot)
	c, ok := g.Collect(2, 1)
	if !ok || c != Dot {
		t.Fatalf("Collect(2,1) = %v, %v; want dot, true", c, ok)
	}
	if g.At(2, 1) != Empty {
		t.Errorf("cell not cleared after collect")
	}
	if g.Count(Dot) != dots-1 {
		t.Errorf("dot count = %d, want %d", g.Count(Dot), dots-1)
	}
	if _, ok := g.Collect(2, 1); ok {
		t.Error("second collect on same cell should fail")
	}

	if !g.Restore(2, 1) {
		t.Fatal("Restore(2,1) failed")
	}
	if g.At(2, 1) != Dot {
		t.Errorf("restored cell = %v, want dot", g.At(2, 1))
	}
	if g.Restore(2, 1) {
		t.Error("restore on occupied cell should fail")
	}

	c, ok = g.Collect(1, 1)
	if !ok || c != Pellet {
		t.Fatalf("Collect(1,1) = %v, %v; want pellet", c, ok)
	}
	g.Restore(1, 1)
	if g.At(1, 1) != Pellet {
		t.Errorf("pellet restored as %v", g.At(1, 1))
	}

	if g.Restore(0, 0) {
		t.Error("restore on wall cell should fail")
	}
}

func TestGridDoesNotMutateLayout(t *testing.T) {
	l := DefaultLayout()
	g := mustGrid(t, l)
	g.Collect(2, 1)
	if l.Cells[1][2] != Dot {
		t.Error("collect leaked into layout")
	}
}

func TestParseLayout(t *testing.T) {
	src := `name: tiny
wrap-rows: 1
wrap-cols: 2

#####
.P.E.
##.##
`
	l, err := ParseLayout(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	if l.Name != "tiny" {
		t.Errorf("name = %q", l.Name)
	}
	if l.PlayerSpawn != (Point{1, 1}) || l.EnemySpawn != (Point{3, 1}) {
		t.Errorf("spawns = %v %v", l.PlayerSpawn, l.EnemySpawn)
	}
	if len(l.WrapRows) != 1 || l.WrapRows[0] != 1 || len(l.WrapCols) != 1 || l.WrapCols[0] != 2 {
		t.Errorf("wraps = %v %v", l.WrapRows, l.WrapCols)
	}

	g := mustGrid(t, l)
	if !g.CanEnter(Left, 0, 1) {
		t.Error("expected wrap on row 1")
	}
	if !g.CanEnter(Down, 2, 2) {
		t.Error("expected wrap on column 2")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"ragged", "###\n#P.E#\n###", ErrRagged},
		{"no player", "#####\n#.E.#\n#####", ErrNoPlayerSpawn},
		{"no enemy", "#####\n#.P.#\n#####", ErrNoEnemySpawn},
		{"boxed spawn", "#####\n#P#E#\n#####", ErrSpawnBlocked},
		{"unreachable dot", "#######\n#P.E#.#\n#######", ErrUnreachable},
		{"wrap out of range", "wrap-rows: 9\n#####\n#P.E#\n#####", ErrWrapRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ParseLayout(strings.NewReader(tt.src))
			if err == nil {
				_, err = NewGrid(l)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseLayoutRejectsUnknownInput(t *testing.T) {
	if _, err := ParseLayout(strings.NewReader("#x#")); err == nil {
		t.Error("expected error for unknown cell rune")
	}
	if _, err := ParseLayout(strings.NewReader("speed: 3\n#P#")); err == nil {
		t.Error("expected error for unknown header key")
	}
	if _, err := ParseLayout(strings.NewReader("wrap-rows: a\n#P#")); err == nil {
		t.Error("expected error for bad wrap index")
	}
}

func TestReachableFollowsWrap(t *testing.T) {
	src := `wrap-rows: 1
#####
P#_#E
#####
`
	l, err := ParseLayout(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	g := mustGrid(t, l)
	seen := g.Reachable(g.PlayerSpawn)
	if !seen[1][4] {
		t.Error("enemy spawn should be reachable through the side wrap")
	}
	if seen[1][2] {
		t.Error("walled-in cell should be unreachable")
	}
}
