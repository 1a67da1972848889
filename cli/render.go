package cli

import (
	"strings"

	"github.com/nmorin/dungeoncore/engine/grid"
	"github.com/nmorin/dungeoncore/types"
)

// Map window dimensions, in tiles. Odd so the player sits centered.
const (
	mapViewWidth  = 21
	mapViewHeight = 11
)

// headingGlyphs marks the player's facing on the map (N, E, S, W).
var headingGlyphs = []byte{'^', '>', 'v', '<'}

// printMap renders the ASCII window around the player.
func (c *CLI) printMap() {
	for _, row := range RenderMap(c.Engine.CurrentLevel(), c.Engine.State) {
		c.printLine(row)
	}
}

// RenderMap draws a tile window centered on the player: walls '#',
// floor '.', staircases '>' and '<', the player as a facing arrow.
func RenderMap(l *types.Level, s *types.GameState) []string {
	rows := make([]string, 0, mapViewHeight)
	for dy := -mapViewHeight / 2; dy <= mapViewHeight/2; dy++ {
		var b strings.Builder
		for dx := -mapViewWidth / 2; dx <= mapViewWidth/2; dx++ {
			x, y := s.TileX+dx, s.TileY+dy
			if dx == 0 && dy == 0 {
				b.WriteByte(headingGlyphs[s.Heading])
				continue
			}
			switch grid.TileAt(l, x, y) {
			case types.TileWall:
				b.WriteByte('#')
			case types.TileStairsDown:
				b.WriteByte('>')
			case types.TileStairsUp:
				b.WriteByte('<')
			default:
				b.WriteByte('.')
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}
