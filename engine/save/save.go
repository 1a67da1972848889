// Package save implements the versioned JSON save format and the numbered
// slot store. Loads tolerate missing and corrupt slot files, reporting
// them as "no save present" rather than failing.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nmorin/dungeoncore/engine/character"
	"github.com/nmorin/dungeoncore/types"
)

// CurrentVersion is the schema version written by this build. Version 1
// saves load through migration.
const CurrentVersion = 2

// SlotCount is the number of save slots, numbered 1..SlotCount.
const SlotCount = 10

// MapData is the wire form of a generated dungeon. The field casing is
// part of the interchange format shared with the map editor.
type MapData struct {
	Id           string    `json:"Id,omitempty"`
	Name         string    `json:"Name,omitempty"`
	CreatedAt    time.Time `json:"CreatedAt,omitzero"`
	Width        int       `json:"Width"`
	Height       int       `json:"Height"`
	NumLevels    int       `json:"NumLevels"`
	PlayerStartX int       `json:"PlayerStartX"`
	PlayerStartY int       `json:"PlayerStartY"`
	Levels       [][][]int `json:"Levels"`
}

// FromDungeon captures a dungeon into its wire form.
func FromDungeon(d *types.Dungeon) MapData {
	md := MapData{
		Width:        d.Width,
		Height:       d.Height,
		NumLevels:    len(d.Levels),
		PlayerStartX: d.StartX,
		PlayerStartY: d.StartY,
	}
	for _, l := range d.Levels {
		rows := make([][]int, l.Height)
		for y := 0; y < l.Height; y++ {
			row := make([]int, l.Width)
			for x := 0; x < l.Width; x++ {
				row[x] = int(l.Tiles[y][x])
			}
			rows[y] = row
		}
		md.Levels = append(md.Levels, rows)
	}
	return md
}

// ToDungeon rebuilds a dungeon from its wire form.
func (md MapData) ToDungeon() (*types.Dungeon, error) {
	if md.Width <= 0 || md.Height <= 0 || len(md.Levels) == 0 {
		return nil, fmt.Errorf("map data is empty")
	}
	d := &types.Dungeon{
		Width:  md.Width,
		Height: md.Height,
		StartX: md.PlayerStartX,
		StartY: md.PlayerStartY,
	}
	for i, rows := range md.Levels {
		if len(rows) != md.Height {
			return nil, fmt.Errorf("level %d has %d rows, want %d", i, len(rows), md.Height)
		}
		l := &types.Level{Width: md.Width, Height: md.Height}
		l.Tiles = make([][]types.TileKind, md.Height)
		for y, row := range rows {
			if len(row) != md.Width {
				return nil, fmt.Errorf("level %d row %d has %d columns, want %d", i, y, len(row), md.Width)
			}
			l.Tiles[y] = make([]types.TileKind, md.Width)
			for x, v := range row {
				l.Tiles[y][x] = types.TileKind(v)
			}
		}
		d.Levels = append(d.Levels, l)
	}
	return d, nil
}

// SaveData is one serialized session: the character, the dungeon it plays
// in, and the view pose.
type SaveData struct {
	Version int              `json:"version"`
	SavedAt time.Time        `json:"savedAt"`
	Player  *types.GameState `json:"player"`
	Map     MapData          `json:"map"`
	Camera  types.CameraPose `json:"camera"`
}

// Capture builds the save payload for a running session.
func Capture(s *types.GameState, d *types.Dungeon, camera types.CameraPose) *SaveData {
	return &SaveData{
		Version: CurrentVersion,
		SavedAt: time.Now().UTC(),
		Player:  s,
		Map:     FromDungeon(d),
		Camera:  camera,
	}
}

// Apply validates and restores a save payload: the dungeon is rebuilt,
// schema migrations run, transient flags reset, and derived stats
// recomputed. The returned state is ready to resume.
func Apply(sd *SaveData) (*types.Dungeon, *types.GameState, error) {
	if sd.Version < 1 || sd.Version > CurrentVersion {
		return nil, nil, fmt.Errorf("unsupported save version %d", sd.Version)
	}
	if sd.Player == nil {
		return nil, nil, fmt.Errorf("save has no player state")
	}
	d, err := sd.Map.ToDungeon()
	if err != nil {
		return nil, nil, fmt.Errorf("restore map: %w", err)
	}

	s := sd.Player
	if s.GroundItems == nil {
		s.GroundItems = map[string][]string{}
	}
	if s.Clothing == nil {
		s.Clothing = map[string]string{}
	}
	if s.Effects == nil {
		s.Effects = map[string]types.TemporaryEffect{}
	}
	if sd.Version == 1 {
		migrateGroundKeys(s)
	}

	// Transient interaction state is never trusted from disk.
	s.Battle.WaitingTurn = false
	s.Battle.Log = nil
	s.UI.WeaponEquipMode = false
	s.UI.WeaponToEquip = ""
	s.UI.ClothingEquip = false
	s.UI.ClothingToEquip = ""
	s.Paused = s.Battle.InBattle

	character.RecalcDerived(s)
	return d, s, nil
}

// migrateGroundKeys rewrites version-1 ground keys ("x,y") into the
// floor-qualified form ("floor:x,y") using the floor the save recorded.
func migrateGroundKeys(s *types.GameState) {
	migrated := make(map[string][]string, len(s.GroundItems))
	for key, pile := range s.GroundItems {
		if !strings.Contains(key, ":") {
			key = fmt.Sprintf("%d:%s", s.DungeonFloor, key)
		}
		migrated[key] = append(migrated[key], pile...)
	}
	s.GroundItems = migrated
}

// SlotInfo describes one save slot for the slot picker.
type SlotInfo struct {
	Slot    int
	HasSave bool
	SavedAt time.Time
}

// SlotStore reads and writes numbered slot files under one directory.
type SlotStore struct {
	dir string
}

// NewSlotStore opens a slot store rooted at dir, creating it if needed.
func NewSlotStore(dir string) (*SlotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}
	return &SlotStore{dir: dir}, nil
}

func (st *SlotStore) slotPath(slot int) string {
	return filepath.Join(st.dir, fmt.Sprintf("slot%d.json", slot))
}

func validateSlot(slot int) error {
	if slot < 1 || slot > SlotCount {
		return fmt.Errorf("slot %d out of range 1..%d", slot, SlotCount)
	}
	return nil
}

// Save writes the payload into a slot.
func (st *SlotStore) Save(slot int, sd *SaveData) error {
	if err := validateSlot(slot); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sd, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := os.WriteFile(st.slotPath(slot), data, 0o644); err != nil {
		return fmt.Errorf("write slot %d: %w", slot, err)
	}
	return nil
}

// Load reads a slot. A missing, empty, or unreadable slot returns
// (nil, nil): no save present.
func (st *SlotStore) Load(slot int) (*SaveData, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(st.slotPath(slot))
	if err != nil || len(data) == 0 {
		return nil, nil
	}
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, nil
	}
	return &sd, nil
}

// SlotInfos lists every slot in order with its on-disk status.
func (st *SlotStore) SlotInfos() []SlotInfo {
	infos := make([]SlotInfo, 0, SlotCount)
	for slot := 1; slot <= SlotCount; slot++ {
		info := SlotInfo{Slot: slot}
		if fi, err := os.Stat(st.slotPath(slot)); err == nil {
			info.HasSave = true
			info.SavedAt = fi.ModTime().UTC()
		}
		infos = append(infos, info)
	}
	return infos
}
