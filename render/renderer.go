package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pac-squad/actor"
	"github.com/lixenwraith/pac-squad/event"
	"github.com/lixenwraith/pac-squad/maze"
	"github.com/lixenwraith/pac-squad/physics"
)

// CellWidth is the number of terminal columns per maze cell
const CellWidth = 2

// View is the read-only session state the renderer draws
type View interface {
	Grid() *maze.Grid
	Geometry() physics.Geometry
	Score() int
	Status() string
	Frightened() bool
	PowerRemaining() time.Duration
	Elapsed() time.Duration
	Over() bool
	Leaderboard() []event.RankedScore
	SaveErr() error
}

// HUD carries host-side flags shown in the status line
type HUD struct {
	Paused bool
	Muted  bool
}

// Renderer draws the maze, actors and status line onto a tcell screen
type Renderer struct {
	screen  tcell.Screen
	sprites *SpriteSet
	bg      tcell.Style

	// Maze origin in terminal cells, recomputed per frame
	originX, originY int
}

func NewRenderer(screen tcell.Screen, sprites *SpriteSet) *Renderer {
	return &Renderer{
		screen:  screen,
		sprites: sprites,
		bg:      tcell.StyleDefault.Background(RgbBackground),
	}
}

// Origin returns the terminal position of maze cell (0,0) from the last Draw
func (r *Renderer) Origin() (x, y int) {
	return r.originX, r.originY
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(v View, hud HUD) {
	r.screen.Fill(' ', r.bg)

	grid := v.Grid()
	width, height := r.screen.Size()
	r.originX = max(0, (width-grid.Width()*CellWidth)/2)
	r.originY = 1

	r.drawStatus(v, hud)
	r.drawGrid(grid)
	r.drawSprites(v.Geometry(), grid)

	if v.Over() {
		r.drawGameOver(v, width, height)
	}

	r.screen.Show()
}

func (r *Renderer) drawStatus(v View, hud HUD) {
	text := r.bg.Foreground(RgbStatusText)
	x := r.originX
	x = r.drawText(x, 0, fmt.Sprintf(" SCORE %d ", v.Score()), text)

	label := " " + v.Status() + " "
	statusStyle := text.Background(RgbChasingBg)
	if v.Frightened() {
		statusStyle = text.Background(RgbScaredBg)
		label = fmt.Sprintf(" %s %.1fs ", v.Status(), v.PowerRemaining().Seconds())
	}
	x = r.drawText(x, 0, label, statusStyle) + 1

	elapsed := v.Elapsed().Truncate(time.Second)
	x = r.drawText(x, 0, fmt.Sprintf(" %02d:%02d ", int(elapsed.Minutes()), int(elapsed.Seconds())%60), text)

	if hud.Paused {
		x = r.drawText(x, 0, " PAUSED ", text.Background(RgbPausedBg).Foreground(tcell.ColorBlack)) + 1
	}
	if hud.Muted {
		r.drawText(x, 0, " muted ", r.bg.Foreground(RgbMuted))
	}
}

func (r *Renderer) drawGrid(grid *maze.Grid) {
	wall := r.bg.Background(RgbWall)
	dot := r.bg.Foreground(RgbDot)
	pellet := r.bg.Foreground(RgbPellet)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			sx, sy := r.originX+x*CellWidth, r.originY+y
			switch grid.At(x, y) {
			case maze.Wall:
				r.screen.SetContent(sx, sy, ' ', nil, wall)
				r.screen.SetContent(sx+1, sy, ' ', nil, wall)
			case maze.Dot:
				r.screen.SetContent(sx, sy, '·', nil, dot)
			case maze.Pellet:
				r.screen.SetContent(sx, sy, '●', nil, pellet)
			}
		}
	}
}

// drawSprites draws enemies first so the player stays visible on contact
func (r *Renderer) drawSprites(geo physics.Geometry, grid *maze.Grid) {
	if r.sprites == nil {
		return
	}
	for _, pass := range []actor.Kind{actor.KindEnemy, actor.KindPlayer} {
		for _, s := range r.sprites.All() {
			if s.Kind != pass {
				continue
			}
			cell := geo.CellOf(s.X, s.Y)
			// Actors in a wrap tunnel beyond the edge are not drawn
			if !grid.InBounds(cell.X, cell.Y) {
				continue
			}
			glyph, style := r.spriteLook(s)
			r.screen.SetContent(r.originX+cell.X*CellWidth, r.originY+cell.Y, glyph, nil, style)
		}
	}
}

func (r *Renderer) spriteLook(s *Sprite) (rune, tcell.Style) {
	if s.Kind == actor.KindPlayer {
		style := r.bg.Foreground(RgbPlayer).Bold(true)
		if s.Tint == actor.TintDefeated {
			return 'X', r.bg.Foreground(RgbDefeated).Bold(true)
		}
		return PlayerGlyph(s.Dir), style
	}

	switch s.Tint {
	case actor.TintFrightened:
		return 'ᗣ', r.bg.Foreground(RgbFrightened)
	default:
		return 'ᗣ', r.bg.Foreground(EnemyColor(s.ID)).Bold(true)
	}
}

// PlayerGlyph returns the player glyph with the mouth facing dir
func PlayerGlyph(dir maze.Direction) rune {
	switch dir {
	case maze.Left:
		return 'ᗤ'
	case maze.Right:
		return 'ᗧ'
	case maze.Up:
		return 'ᗢ'
	case maze.Down:
		return 'ᗜ'
	default:
		return '●'
	}
}

func (r *Renderer) drawGameOver(v View, width, height int) {
	board := v.Leaderboard()
	lines := []string{"GAME OVER", fmt.Sprintf("score %d", v.Score()), ""}
	for i, e := range board {
		mark := "  "
		if e.Current {
			mark = " *"
		}
		lines = append(lines, fmt.Sprintf("%d. %6d  %s%s", i+1, e.Score, e.Date.Format("2006-01-02 15:04"), mark))
	}
	if v.SaveErr() != nil {
		lines = append(lines, "", "leaderboard not saved")
	}
	lines = append(lines, "", "r restart  q quit")

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	top := max(0, (height-len(lines))/2)
	left := max(0, (width-boxW)/2)

	panel := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(RgbStatusText)
	for i, l := range lines {
		row := top + i
		for x := 0; x < boxW; x++ {
			r.screen.SetContent(left+x, row, ' ', nil, panel)
		}
		style := panel
		if i >= 3 && i-3 < len(board) && board[i-3].Current {
			style = panel.Foreground(RgbHighlight).Bold(true)
		}
		r.drawText(left+2, row, l, style)
	}
}

// drawText writes s at (x, y) and returns the column after it
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
