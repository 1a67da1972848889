// Package dungeon generates multi-level dungeons: randomly placed rooms
// joined by random-walk corridors, with paired staircases between floors.
// Generation is deterministic for a given RNG seed.
package dungeon

import (
	"fmt"

	"github.com/nmorin/dungeoncore/engine/rng"
	"github.com/nmorin/dungeoncore/types"
)

// Config holds the generation parameters. Zero fields fall back to the
// defaults of the classic 65×65, 4-floor dungeon.
type Config struct {
	Width       int
	Height      int
	Levels      int
	StartX      int
	StartY      int
	MinRooms    int
	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int
}

// DefaultConfig is the standard dungeon layout.
func DefaultConfig() Config {
	return Config{
		Width:       65,
		Height:      65,
		Levels:      4,
		StartX:      32,
		StartY:      32,
		MinRooms:    8,
		MaxRooms:    12,
		MinRoomSize: 4,
		MaxRoomSize: 10,
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.Levels <= 0 {
		c.Levels = d.Levels
	}
	if c.StartX <= 0 {
		c.StartX = c.Width / 2
	}
	if c.StartY <= 0 {
		c.StartY = c.Height / 2
	}
	if c.MinRooms <= 0 {
		c.MinRooms = d.MinRooms
	}
	if c.MaxRooms < c.MinRooms {
		c.MaxRooms = c.MinRooms
	}
	if c.MinRoomSize <= 1 {
		c.MinRoomSize = d.MinRoomSize
	}
	if c.MaxRoomSize < c.MinRoomSize {
		c.MaxRoomSize = c.MinRoomSize
	}
}

// room is an accepted rectangle with its precomputed center.
type room struct {
	x, y, w, h int
	cx, cy     int
}

// stair placement bounds.
const (
	stairsPerLevel   = 2
	stairExclusion   = 8  // min Chebyshev-ish spread between stairs
	stairRetryBudget = 20 // bounded retries before accepting a reused room
	roomRetryFactor  = 4  // placement attempts per requested room
)

// Generate builds a dungeon from the config. Room placement may come up
// short of the target count (overlap rejection); that is recoverable and
// the corridor pass still connects whatever rooms exist. The connectivity
// post-condition is verified before returning.
func Generate(cfg Config, r *rng.RNG) (*types.Dungeon, error) {
	cfg.applyDefaults()

	d := &types.Dungeon{
		Width:  cfg.Width,
		Height: cfg.Height,
		StartX: cfg.StartX,
		StartY: cfg.StartY,
	}

	allRooms := make([][]room, cfg.Levels)
	for lvl := 0; lvl < cfg.Levels; lvl++ {
		level := newLevel(cfg.Width, cfg.Height)
		allRooms[lvl] = generateLevel(level, cfg, lvl == 0, r)
		d.Levels = append(d.Levels, level)
	}

	placeStairs(d, allRooms, r)

	if err := Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

func newLevel(w, h int) *types.Level {
	l := &types.Level{Width: w, Height: h}
	l.Tiles = make([][]types.TileKind, h)
	for y := range l.Tiles {
		l.Tiles[y] = make([]types.TileKind, w)
		for x := range l.Tiles[y] {
			l.Tiles[y][x] = types.TileWall
		}
	}
	return l
}

// generateLevel carves rooms and corridors into a fresh all-wall level.
// On the first level it also opens the player-start neighborhood and
// connects it to the nearest room.
func generateLevel(l *types.Level, cfg Config, first bool, r *rng.RNG) []room {
	target := r.Range(cfg.MinRooms, cfg.MaxRooms)
	var rooms []room

	for attempt := 0; attempt < target*roomRetryFactor && len(rooms) < target; attempt++ {
		w := r.Range(cfg.MinRoomSize, cfg.MaxRoomSize)
		h := r.Range(cfg.MinRoomSize, cfg.MaxRoomSize)
		x := 1 + r.Intn(cfg.Width-w-2)
		y := 1 + r.Intn(cfg.Height-h-2)

		cand := room{x: x, y: y, w: w, h: h, cx: x + w/2, cy: y + h/2}
		if overlapsAny(cand, rooms) {
			continue
		}
		carveRoom(l, cand)
		rooms = append(rooms, cand)
	}

	// Chain the rooms, then close the loop for redundancy.
	for i := 1; i < len(rooms); i++ {
		carveCorridor(l, rooms[i-1].cx, rooms[i-1].cy, rooms[i].cx, rooms[i].cy, r)
	}
	if len(rooms) > 2 {
		last := rooms[len(rooms)-1]
		carveCorridor(l, last.cx, last.cy, rooms[0].cx, rooms[0].cy, r)
	}

	if first {
		clearArea(l, cfg.StartX, cfg.StartY, 2)
		if n, ok := nearestRoom(rooms, cfg.StartX, cfg.StartY); ok {
			carveCorridor(l, cfg.StartX, cfg.StartY, n.cx, n.cy, r)
		}
	}

	return rooms
}

// overlapsAny checks the candidate against accepted rooms with a
// 1-tile buffer.
func overlapsAny(c room, rooms []room) bool {
	for _, o := range rooms {
		if c.x < o.x+o.w+1 && c.x+c.w+1 > o.x &&
			c.y < o.y+o.h+1 && c.y+c.h+1 > o.y {
			return true
		}
	}
	return false
}

func carveRoom(l *types.Level, rm room) {
	for y := rm.y; y < rm.y+rm.h && y < l.Height-1; y++ {
		for x := rm.x; x < rm.x+rm.w && x < l.Width-1; x++ {
			if x > 0 && y > 0 {
				l.Tiles[y][x] = types.TileFloor
			}
		}
	}
}

// carveCorridor walks from (x1,y1) to (x2,y2), carving floor as it goes.
// Each step moves monotonically toward the target on a randomly chosen
// axis, so the walk always terminates.
func carveCorridor(l *types.Level, x1, y1, x2, y2 int, r *rng.RNG) {
	x, y := x1, y1
	for x != x2 || y != y2 {
		carveFloor(l, x, y)
		if r.Chance(0.5) {
			if x != x2 {
				x += sign(x2 - x)
			} else if y != y2 {
				y += sign(y2 - y)
			}
		} else {
			if y != y2 {
				y += sign(y2 - y)
			} else if x != x2 {
				x += sign(x2 - x)
			}
		}
	}
	carveFloor(l, x, y)
}

func carveFloor(l *types.Level, x, y int) {
	if x >= 0 && x < l.Width && y >= 0 && y < l.Height {
		if l.Tiles[y][x] == types.TileWall {
			l.Tiles[y][x] = types.TileFloor
		}
	}
}

// clearArea opens a (2r+1)² neighborhood, leaving the outer border intact.
func clearArea(l *types.Level, cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if x > 0 && x < l.Width-1 && y > 0 && y < l.Height-1 {
				if l.Tiles[y][x] == types.TileWall {
					l.Tiles[y][x] = types.TileFloor
				}
			}
		}
	}
}

func nearestRoom(rooms []room, x, y int) (room, bool) {
	if len(rooms) == 0 {
		return room{}, false
	}
	best := rooms[0]
	bestDist := abs(best.cx-x) + abs(best.cy-y)
	for _, rm := range rooms[1:] {
		d := abs(rm.cx-x) + abs(rm.cy-y)
		if d < bestDist {
			best, bestDist = rm, d
		}
	}
	return best, true
}

// placeStairs puts two down-staircases on every level but the last, with a
// matching up-staircase at the identical coordinate one floor below. The
// stair neighborhood is cleared on both floors, and the landing below is
// corridored to its nearest room so the pocket can never be stranded.
func placeStairs(d *types.Dungeon, allRooms [][]room, r *rng.RNG) {
	for lvl := 0; lvl < len(d.Levels)-1; lvl++ {
		rooms := allRooms[lvl]
		if len(rooms) == 0 {
			continue
		}
		upper, lower := d.Levels[lvl], d.Levels[lvl+1]

		var used [][2]int
		for n := 0; n < stairsPerLevel; n++ {
			pick := rooms[r.Intn(len(rooms))]
			for attempt := 0; tooClose(pick, used) && attempt < stairRetryBudget; attempt++ {
				pick = rooms[r.Intn(len(rooms))]
			}

			sx, sy := pick.cx, pick.cy
			if upper.Tiles[sy][sx] != types.TileFloor {
				continue
			}
			upper.Tiles[sy][sx] = types.TileStairsDown
			lower.Tiles[sy][sx] = types.TileStairsUp
			used = append(used, [2]int{sx, sy})

			clearArea(upper, sx, sy, 1)
			clearArea(lower, sx, sy, 1)

			if n2, ok := nearestRoom(allRooms[lvl+1], sx, sy); ok {
				carveCorridor(lower, sx, sy, n2.cx, n2.cy, r)
			}
		}
	}
}

func tooClose(rm room, used [][2]int) bool {
	for _, p := range used {
		if abs(p[0]-rm.cx) < stairExclusion && abs(p[1]-rm.cy) < stairExclusion {
			return true
		}
	}
	return false
}

// Validate checks the generation post-conditions: the start tile is floor
// and every non-wall tile on every level is reachable. Levels above the
// first flood from any stair landing (their entry points).
func Validate(d *types.Dungeon) error {
	if len(d.Levels) == 0 {
		return fmt.Errorf("dungeon has no levels")
	}
	if grid := d.Levels[0]; grid.Tiles[d.StartY][d.StartX] != types.TileFloor {
		return fmt.Errorf("player start (%d,%d) is not floor", d.StartX, d.StartY)
	}
	for i, l := range d.Levels {
		sx, sy := d.StartX, d.StartY
		if i > 0 {
			var ok bool
			sx, sy, ok = findTile(l, types.TileStairsUp)
			if !ok {
				// A level without an up-stair is unreachable by design
				// only when it is the first; otherwise generation failed.
				return fmt.Errorf("level %d has no up staircase", i)
			}
		}
		reached := FloodFill(l, sx, sy)
		total := countWalkable(l)
		if reached != total {
			return fmt.Errorf("level %d connectivity: reached %d of %d walkable tiles", i, reached, total)
		}
	}
	return nil
}

// FloodFill returns the number of walkable tiles reachable from (sx, sy)
// via 4-directional floor/stair moves.
func FloodFill(l *types.Level, sx, sy int) int {
	if !walkable(l, sx, sy) {
		return 0
	}
	seen := make([]bool, l.Width*l.Height)
	stack := [][2]int{{sx, sy}}
	seen[sy*l.Width+sx] = true
	count := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := p[0]+d[0], p[1]+d[1]
			if walkable(l, nx, ny) && !seen[ny*l.Width+nx] {
				seen[ny*l.Width+nx] = true
				stack = append(stack, [2]int{nx, ny})
			}
		}
	}
	return count
}

func countWalkable(l *types.Level) int {
	n := 0
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if walkable(l, x, y) {
				n++
			}
		}
	}
	return n
}

func walkable(l *types.Level, x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	return l.Tiles[y][x] != types.TileWall
}

func findTile(l *types.Level, kind types.TileKind) (int, int, bool) {
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.Tiles[y][x] == kind {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
