package maze

import (
	"bytes"
	"reflect"
	"testing"
)

func TestGenerateProducesValidLayouts(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := DefaultGenConfig()
		cfg.Seed = seed

		l, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(l.Cells) != GridHeightDefault || len(l.Cells[0]) != GridWidthDefault {
			t.Fatalf("seed %d: size %dx%d", seed, len(l.Cells[0]), len(l.Cells))
		}
		if l.PlayerSpawn == l.EnemySpawn {
			t.Errorf("seed %d: spawns coincide at %v", seed, l.PlayerSpawn)
		}

		g, err := NewGrid(l)
		if err != nil {
			t.Fatalf("seed %d: NewGrid: %v", seed, err)
		}
		if n := g.Count(Pellet); n != 4 {
			t.Errorf("seed %d: pellets = %d, want 4", seed, n)
		}
		if len(l.WrapRows) != 1 || !g.CanEnter(Left, 0, l.WrapRows[0]) {
			t.Errorf("seed %d: tunnel row not open: %v", seed, l.WrapRows)
		}
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 99

	a, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different layouts")
	}
}

func TestGenerateNoPlazas(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7

	l, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y+1 < len(l.Cells); y++ {
		for x := 0; x+1 < len(l.Cells[y]); x++ {
			if l.Cells[y][x] != Wall && l.Cells[y+1][x] != Wall && l.Cells[y][x+1] != Wall && l.Cells[y+1][x+1] != Wall {
				t.Fatalf("2x2 open block at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateRejectsTinySizes(t *testing.T) {
	if _, err := Generate(GenConfig{Width: 3, Height: 3, Seed: 1}); err == nil {
		t.Error("expected error for 3x3")
	}
}

func TestLayoutWriteToRoundTrip(t *testing.T) {
	want := DefaultLayout()

	var buf bytes.Buffer
	if _, err := want.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := ParseLayout(&buf)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestGenerateTunnelRowFullyOpen(t *testing.T) {
	for _, braid := range []float64{0, 0.5, 1} {
		for seed := int64(1); seed <= 20; seed++ {
			cfg := DefaultGenConfig()
			cfg.Seed = seed
			cfg.Braiding = braid

			l, err := Generate(cfg)
			if err != nil {
				t.Fatalf("braid %.1f seed %d: %v", braid, seed, err)
			}
			if len(l.WrapRows) != 1 {
				t.Fatalf("braid %.1f seed %d: wrap rows = %v", braid, seed, l.WrapRows)
			}
			row := l.WrapRows[0]
			for x, c := range l.Cells[row] {
				if c == Wall {
					t.Fatalf("braid %.1f seed %d: wall in tunnel row %d at x=%d", braid, seed, row, x)
				}
			}
			for y := 0; y+1 < len(l.Cells); y++ {
				for x := 0; x+1 < len(l.Cells[y]); x++ {
					if l.Cells[y][x] != Wall && l.Cells[y+1][x] != Wall && l.Cells[y][x+1] != Wall && l.Cells[y+1][x+1] != Wall {
						t.Fatalf("braid %.1f seed %d: 2x2 open block at (%d,%d)", braid, seed, x, y)
					}
				}
			}
		}
	}
}

func TestGenerateWithoutTunnel(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 3
	cfg.WrapTunnel = false

	l, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.WrapRows) != 0 {
		t.Errorf("wrap rows = %v, want none", l.WrapRows)
	}
	for y, row := range l.Cells {
		if row[0] != Wall || row[len(row)-1] != Wall {
			t.Errorf("side wall open in row %d", y)
		}
	}
}
