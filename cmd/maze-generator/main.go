package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/pac-squad/maze"
)

var (
	widthFlag  = flag.Int("width", maze.GridWidthDefault, "Maze width in cells, rounded down to odd")
	heightFlag = flag.Int("height", maze.GridHeightDefault, "Maze height in cells, rounded down to odd")
	braidFlag  = flag.Float64("braid", 1.0, "Braiding factor [0.0 - 1.0], higher removes more dead ends")
	seedFlag   = flag.Int64("seed", 0, "Generator seed, 0 seeds from the clock")
	tunnelFlag = flag.Bool("tunnel", true, "Open a wrap tunnel on the middle row")
	outFlag    = flag.String("o", "", "Write the layout to this file instead of stdout")
	interFlag  = flag.Bool("i", false, "Interactive mode: prompt for parameters and preview")
)

func main() {
	flag.Parse()

	if *interFlag {
		interactive(bufio.NewReader(os.Stdin))
		return
	}

	cfg := maze.GenConfig{
		Width:      *widthFlag,
		Height:     *heightFlag,
		Braiding:   clamp01(*braidFlag),
		WrapTunnel: *tunnelFlag,
		Seed:       *seedFlag,
	}
	l, err := maze.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if _, err := l.WriteTo(w); err != nil {
		fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
		os.Exit(1)
	}
}

func interactive(reader *bufio.Reader) {
	for {
		fmt.Println("\n=== PAC-SQUAD MAZE GENERATOR ===")

		cfg := maze.GenConfig{
			Width:      getInt(reader, fmt.Sprintf("Width [Odd prefered] (default %d): ", maze.GridWidthDefault), maze.GridWidthDefault),
			Height:     getInt(reader, fmt.Sprintf("Height [Odd prefered] (default %d): ", maze.GridHeightDefault), maze.GridHeightDefault),
			Braiding:   getFloat(reader, "Braiding Factor [0.0 - 1.0] (default 1.0): ", 1.0),
			WrapTunnel: true,
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		l, err := maze.Generate(cfg)
		dur := time.Since(startT)

		if err != nil {
			fmt.Printf("Failed: %v\n", err)
		} else {
			fmt.Printf("Done in %v\n", dur)
			fmt.Printf("Grid Dimensions: %dx%d, seed name %s\n", len(l.Cells[0]), len(l.Cells), l.Name)
			draw(os.Stdout, l)

			fmt.Print("\nSave to file (empty skips): ")
			path, _ := reader.ReadString('\n')
			if path = strings.TrimSpace(path); path != "" {
				if err := save(path, l); err != nil {
					fmt.Printf("Save failed: %v\n", err)
				}
			}
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// draw prints a block preview of the layout
func draw(w io.Writer, l *maze.Layout) {
	var b strings.Builder
	for y, row := range l.Cells {
		for x, c := range row {
			p := maze.Point{X: x, Y: y}
			switch {
			case p == l.PlayerSpawn:
				b.WriteString("P")
			case p == l.EnemySpawn:
				b.WriteString("E")
			case c == maze.Wall:
				b.WriteString("█")
			case c == maze.Pellet:
				b.WriteString("●")
			case c == maze.Dot:
				b.WriteString("•")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}

func save(path string, l *maze.Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := l.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
