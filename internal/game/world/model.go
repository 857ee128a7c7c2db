// Package world provides the tile map model: positions, directions, terrain
// kinds, walls and the floors of a dungeon.
package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned when a position lies outside the map.
var ErrOutOfBounds = errors.New("position out of bounds")

// Pos is a tile coordinate. X grows east, Y grows south.
type Pos struct {
	X int
	Y int
}

// Add returns p translated by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

// Step returns the position one tile away from p in direction dir.
func (p Pos) Step(dir Direction) Pos {
	return p.Add(dir.Delta())
}

// Distance returns the Chebyshev distance between p and q.
func (p Pos) Distance(q Pos) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Direction represents one of the eight compass directions, or none.
type Direction string

// Compass directions.
const (
	None      Direction = ""
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
)

// StandardDirections contains all eight compass directions.
var StandardDirections = []Direction{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
}

var directionAliases = map[string]Direction{
	"n": North, "s": South, "e": East, "w": West,
	"ne": Northeast, "nw": Northwest, "se": Southeast, "sw": Southwest,
}

// ParseDirection resolves a full direction name or its abbreviation.
//
// Postcondition: Returns (dir, true) for a compass direction, or (None, false) otherwise.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := directionAliases[s]; ok {
		return d, true
	}
	d := Direction(s)
	if d.IsStandard() {
		return d, true
	}
	return None, false
}

// IsStandard reports whether d is one of the eight compass directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Delta returns the unit offset of d. None yields the zero offset.
func (d Direction) Delta() Pos {
	switch d {
	case North:
		return Pos{0, -1}
	case South:
		return Pos{0, 1}
	case East:
		return Pos{1, 0}
	case West:
		return Pos{-1, 0}
	case Northeast:
		return Pos{1, -1}
	case Northwest:
		return Pos{-1, -1}
	case Southeast:
		return Pos{1, 1}
	case Southwest:
		return Pos{-1, 1}
	default:
		return Pos{}
	}
}

// Toward returns the compass direction of one step from from toward to, or
// None when they coincide.
func Toward(from, to Pos) Direction {
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
	for _, d := range StandardDirections {
		if d.Delta() == (Pos{dx, dy}) {
			return d
		}
	}
	return None
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

// Opposite returns the opposite compass direction, or None for None.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Northwest:
		return Southeast
	case Southeast:
		return Northwest
	default:
		return None
	}
}

// TileKind classifies the terrain underneath a cell.
type TileKind string

// Terrain kinds. Only ground may carry a built wall.
const (
	Ground TileKind = "ground"
	Water  TileKind = "water"
)

// ParseTileKind validates a terrain kind name.
func ParseTileKind(s string) (TileKind, error) {
	switch k := TileKind(strings.ToLower(s)); k {
	case Ground, Water:
		return k, nil
	default:
		return "", fmt.Errorf("unknown tile kind %q", s)
	}
}

// Cell is the content of a single map position.
type Cell struct {
	// Tile is the terrain template id.
	Tile string
	// Wall is the wall template id, empty when the cell is open.
	Wall string
	// Entrance marks the stairway leading to the next floor.
	Entrance bool
}

// Map is a rectangular floor of cells.
type Map struct {
	ID     string
	Name   string
	Width  int
	Height int
	cells  []Cell
}

// NewMap creates a width×height map with every cell set to the given tile.
//
// Precondition: width > 0 and height > 0.
func NewMap(id string, width, height int, tile string) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: NewMap called with non-positive size %dx%d", width, height))
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i].Tile = tile
	}
	return &Map{ID: id, Width: width, Height: height, cells: cells}
}

// IsInside reports whether p lies within the map bounds.
func (m *Map) IsInside(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width && p.Y < m.Height
}

// Cell returns the cell at p.
//
// Postcondition: Returns ErrOutOfBounds when p is outside the map.
func (m *Map) Cell(p Pos) (Cell, error) {
	if !m.IsInside(p) {
		return Cell{}, fmt.Errorf("cell %s: %w", p, ErrOutOfBounds)
	}
	return m.cells[p.Y*m.Width+p.X], nil
}

// Tile returns the terrain id at p, or "" when p is outside the map.
func (m *Map) Tile(p Pos) string {
	c, err := m.Cell(p)
	if err != nil {
		return ""
	}
	return c.Tile
}

// Wall returns the wall id at p, or "" when p is open or outside the map.
func (m *Map) Wall(p Pos) string {
	c, err := m.Cell(p)
	if err != nil {
		return ""
	}
	return c.Wall
}

// HasWall reports whether a wall stands at p. Positions outside the map count as walled.
func (m *Map) HasWall(p Pos) bool {
	if !m.IsInside(p) {
		return true
	}
	return m.cells[p.Y*m.Width+p.X].Wall != ""
}

// SetWall places wall id at p. An empty id removes the wall.
func (m *Map) SetWall(p Pos, id string) error {
	if !m.IsInside(p) {
		return fmt.Errorf("setting wall %q at %s: %w", id, p, ErrOutOfBounds)
	}
	m.cells[p.Y*m.Width+p.X].Wall = id
	return nil
}

// SetTile replaces the terrain at p.
func (m *Map) SetTile(p Pos, id string) error {
	if !m.IsInside(p) {
		return fmt.Errorf("setting tile %q at %s: %w", id, p, ErrOutOfBounds)
	}
	m.cells[p.Y*m.Width+p.X].Tile = id
	return nil
}

// SetEntrance marks or clears the floor entrance at p.
func (m *Map) SetEntrance(p Pos, on bool) error {
	if !m.IsInside(p) {
		return fmt.Errorf("setting entrance at %s: %w", p, ErrOutOfBounds)
	}
	m.cells[p.Y*m.Width+p.X].Entrance = on
	return nil
}

// IsEntrance reports whether p holds the entrance to the next floor.
func (m *Map) IsEntrance(p Pos) bool {
	c, err := m.Cell(p)
	return err == nil && c.Entrance
}

// TileLookup resolves the terrain kind of a tile template id.
type TileLookup interface {
	TileKind(id string) (TileKind, bool)
}

// IsPassable reports whether a character may stand on p: inside the map,
// no wall, and terrain of the ground kind.
func (m *Map) IsPassable(tiles TileLookup, p Pos) bool {
	return Buildable(m, tiles, p)
}

// Buildable reports whether a wall may be built at p.
//
// Postcondition: true iff p is inside the map, carries no wall, and its
// terrain resolves to Ground. Unknown terrain ids are never buildable.
func Buildable(m *Map, tiles TileLookup, p Pos) bool {
	c, err := m.Cell(p)
	if err != nil {
		return false
	}
	if c.Wall != "" {
		return false
	}
	kind, ok := tiles.TileKind(c.Tile)
	if !ok {
		return false
	}
	switch kind {
	case Ground:
		return true
	case Water:
		return false
	default:
		return false
	}
}
