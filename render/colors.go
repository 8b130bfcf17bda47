package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the maze view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbDot        = tcell.NewRGBColor(220, 220, 220) // Off white
	RgbPellet     = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbPlayer     = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbDefeated   = tcell.NewRGBColor(180, 50, 50)   // Dark Red
	RgbFrightened = tcell.NewRGBColor(100, 150, 255) // Normal Blue

	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbChasingBg  = tcell.NewRGBColor(200, 50, 50)   // Red for chase status
	RgbScaredBg   = tcell.NewRGBColor(100, 150, 255) // Blue for scared status
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHighlight  = tcell.NewRGBColor(255, 255, 0)   // Current leaderboard row
	RgbMuted      = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// enemyColors cycle by enemy id
var enemyColors = []tcell.Color{
	tcell.NewRGBColor(255, 80, 80),   // Red
	tcell.NewRGBColor(255, 120, 200), // Pink
	tcell.NewRGBColor(0, 200, 200),   // Cyan
	tcell.NewRGBColor(255, 165, 0),   // Orange
	tcell.NewRGBColor(50, 255, 50),   // Green
	tcell.NewRGBColor(170, 90, 255),  // Purple
}

// EnemyColor returns the chase-mode color for an enemy id
func EnemyColor(id int) tcell.Color {
	if id < 0 {
		id = -id
	}
	return enemyColors[id%len(enemyColors)]
}
