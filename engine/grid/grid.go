// Package grid holds the passive Level/Tile helpers shared by the
// generator, movement, and combat: tile lookups, walkability queries, and
// the tile↔world coordinate mapping. No behavior beyond lookups lives here
// so every component reads the same source of truth for what is walkable.
package grid

import (
	"math"

	"github.com/nmorin/dungeoncore/types"
)

// TileSize is the world-unit edge length of one grid tile.
const TileSize = 4.0

// TileAt returns the tile code at (x, y), or Wall outside the grid bounds.
func TileAt(l *types.Level, x, y int) types.TileKind {
	if l == nil || x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return types.TileWall
	}
	return l.Tiles[y][x]
}

// IsWalkable reports whether (x, y) can be stood on: floor or stairs.
func IsWalkable(l *types.Level, x, y int) bool {
	switch TileAt(l, x, y) {
	case types.TileFloor, types.TileStairsDown, types.TileStairsUp:
		return true
	}
	return false
}

// WorldToTile maps world-space (x, z) to tile coordinates. The grid is
// centered on the world origin.
func WorldToTile(wx, wz float64, width, height int) (int, int) {
	tx := int(math.Floor(wx/TileSize + float64(width)/2))
	ty := int(math.Floor(wz/TileSize + float64(height)/2))
	return tx, ty
}

// TileToWorld maps tile coordinates to the world-space center of that tile.
// It is the inverse of WorldToTile up to the tile's extent.
func TileToWorld(tx, ty, width, height int) (float64, float64) {
	wx := (float64(tx) - float64(width)/2 + 0.5) * TileSize
	wz := (float64(ty) - float64(height)/2 + 0.5) * TileSize
	return wx, wz
}
