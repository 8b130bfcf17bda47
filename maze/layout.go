package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Layout is the static map definition a Grid is built from
type Layout struct {
	Name        string
	Cells       [][]Cell
	PlayerSpawn Point
	EnemySpawn  Point
	WrapRows    []int
	WrapCols    []int
}

// defaultRows is the stock 19x21 maze
// Rows 7, 9 and 11 are open at both side edges, column 9 at top and bottom
var defaultRows = []string{
	"#########.#########",
	"#o...............o#",
	"#.##.###.#.###.##.#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.###.#.###.####",
	"...................",
	"###.#.###.###.#.###",
	"........#E#........",
	"###.#.###.###.#.###",
	"...................",
	"####.#.#####.#.####",
	"#.................#",
	"#.##.###.#.###.##.#",
	"#o.#.....P.....#.o#",
	"##.#.#.#####.#.#.##",
	"#....#...#...#....#",
	"#.######.#.######.#",
	"#.................#",
	"#########.#########",
}

// DefaultLayout returns a fresh copy of the stock maze
func DefaultLayout() *Layout {
	l, err := parseRows("classic", defaultRows)
	if err != nil {
		panic(fmt.Errorf("default layout: %w", err))
	}
	l.WrapRows = []int{7, 9, 11}
	l.WrapCols = []int{9}
	return l
}

// LoadLayoutFile reads a text layout from disk
func LoadLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return ParseLayout(f)
}

// ParseLayout reads the text layout format:
//
//	name: classic
//	wrap-rows: 7, 9, 11
//	wrap-cols: 9
//	#########.#########
//	#o.......P.......o#
//
// '#' wall, '.' dot, 'o' power pellet, ' ' or '_' empty, 'P' player spawn, 'E' enemy spawn
func ParseLayout(r io.Reader) (*Layout, error) {
	var (
		name     string
		wrapRows []int
		wrapCols []int
		gridRows []string
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if key, value, ok := strings.Cut(line, ":"); ok {
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.TrimSpace(value)
			switch key {
			case "name":
				name = value
			case "wrap-rows":
				rows, err := parseIndexList(value)
				if err != nil {
					return nil, fmt.Errorf("line %d: wrap-rows: %w", lineNo, err)
				}
				wrapRows = rows
			case "wrap-cols":
				cols, err := parseIndexList(value)
				if err != nil {
					return nil, fmt.Errorf("line %d: wrap-cols: %w", lineNo, err)
				}
				wrapCols = cols
			default:
				return nil, fmt.Errorf("line %d: unknown key %q", lineNo, key)
			}
			continue
		}
		gridRows = append(gridRows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	l, err := parseRows(name, gridRows)
	if err != nil {
		return nil, err
	}
	l.WrapRows = wrapRows
	l.WrapCols = wrapCols
	return l, nil
}

func parseRows(name string, rows []string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	l := &Layout{
		Name:        name,
		Cells:       make([][]Cell, len(rows)),
		PlayerSpawn: Point{-1, -1},
		EnemySpawn:  Point{-1, -1},
	}

	for y, row := range rows {
		l.Cells[y] = make([]Cell, 0, len(row))
		for x, ch := range row {
			var c Cell
			switch ch {
			case '#':
				c = Wall
			case '.':
				c = Dot
			case 'o', 'O':
				c = Pellet
			case ' ', '_':
				c = Empty
			case 'P':
				c = Empty
				l.PlayerSpawn = Point{x, y}
			case 'E':
				c = Empty
				l.EnemySpawn = Point{x, y}
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", y, x, ch)
			}
			l.Cells[y] = append(l.Cells[y], c)
		}
	}
	return l, nil
}

func parseIndexList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid index %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

// WriteTo writes l in the text format ParseLayout reads; empty cells are written as '_'
func (l *Layout) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if l.Name != "" {
		fmt.Fprintf(&b, "name: %s\n", l.Name)
	}
	if len(l.WrapRows) > 0 {
		fmt.Fprintf(&b, "wrap-rows: %s\n", formatIndexList(l.WrapRows))
	}
	if len(l.WrapCols) > 0 {
		fmt.Fprintf(&b, "wrap-cols: %s\n", formatIndexList(l.WrapCols))
	}

	for y, row := range l.Cells {
		for x, c := range row {
			p := Point{x, y}
			switch {
			case p == l.PlayerSpawn:
				b.WriteByte('P')
			case p == l.EnemySpawn:
				b.WriteByte('E')
			case c == Wall:
				b.WriteByte('#')
			case c == Dot:
				b.WriteByte('.')
			case c == Pellet:
				b.WriteByte('o')
			default:
				b.WriteByte('_')
			}
		}
		b.WriteByte('\n')
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func formatIndexList(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
