package world

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlFloorFile is the top-level YAML structure for floor files.
type yamlFloorFile struct {
	Floor yamlFloor `yaml:"floor"`
}

// yamlFloor is the YAML representation of a floor. Rows are read top to
// bottom; every rune is resolved through the legend.
type yamlFloor struct {
	ID     string                `yaml:"id"`
	Name   string                `yaml:"name"`
	Depth  int                   `yaml:"depth"`
	Start  [2]int                `yaml:"start"`
	Legend map[string]yamlSymbol `yaml:"legend"`
	Rows   []string              `yaml:"rows"`
	Spawns []yamlSpawn           `yaml:"spawns"`
}

type yamlSpawn struct {
	Template string `yaml:"template"`
	At       [2]int `yaml:"at"`
}

// yamlSymbol maps one legend rune to cell content.
type yamlSymbol struct {
	Tile     string `yaml:"tile"`
	Wall     string `yaml:"wall"`
	Entrance bool   `yaml:"entrance"`
}

// Spawn places a character built from Template when the floor is entered.
type Spawn struct {
	Template string
	Pos      Pos
}

// Floor is a loaded map together with its dungeon depth, player start and
// NPC spawn points.
type Floor struct {
	Map    *Map
	Depth  int
	Start  Pos
	Spawns []Spawn
}

// LoadFloorFromFile reads and validates a single floor YAML file.
//
// Precondition: path must point to a valid YAML floor file.
// Postcondition: Returns a validated Floor or a non-nil error.
func LoadFloorFromFile(path string) (*Floor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading floor file %s: %w", path, err)
	}
	return LoadFloorFromBytes(data)
}

// LoadFloorFromBytes parses and validates a floor from YAML bytes.
//
// Postcondition: Returns a validated Floor or a non-nil error.
func LoadFloorFromBytes(data []byte) (*Floor, error) {
	var file yamlFloorFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing floor YAML: %w", err)
	}
	floor, err := convertYAMLFloor(file.Floor)
	if err != nil {
		return nil, fmt.Errorf("validating floor %q: %w", file.Floor.ID, err)
	}
	return floor, nil
}

// LoadFloorsFromDir loads all YAML files in a directory, ordered by depth.
//
// Postcondition: Returns all validated floors or the first error encountered.
func LoadFloorsFromDir(dir string) ([]*Floor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading floor directory %s: %w", dir, err)
	}

	var floors []*Floor
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		floor, err := LoadFloorFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading floor from %s: %w", name, err)
		}
		floors = append(floors, floor)
	}

	if len(floors) == 0 {
		return nil, fmt.Errorf("no floor files found in %s", dir)
	}
	sort.SliceStable(floors, func(i, j int) bool { return floors[i].Depth < floors[j].Depth })
	return floors, nil
}

func convertYAMLFloor(yf yamlFloor) (*Floor, error) {
	if yf.ID == "" {
		return nil, fmt.Errorf("floor id must not be empty")
	}
	if len(yf.Rows) == 0 {
		return nil, fmt.Errorf("floor must have at least one row")
	}
	width := len([]rune(yf.Rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("floor rows must not be empty")
	}

	m := NewMap(yf.ID, width, len(yf.Rows), "")
	m.Name = yf.Name
	for y, row := range yf.Rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			sym, ok := yf.Legend[string(r)]
			if !ok {
				return nil, fmt.Errorf("row %d column %d: symbol %q missing from legend", y, x, r)
			}
			if sym.Tile == "" {
				return nil, fmt.Errorf("legend symbol %q has no tile", r)
			}
			m.cells[y*width+x] = Cell{Tile: sym.Tile, Wall: sym.Wall, Entrance: sym.Entrance}
		}
	}

	start := Pos{X: yf.Start[0], Y: yf.Start[1]}
	if !m.IsInside(start) {
		return nil, fmt.Errorf("start %s: %w", start, ErrOutOfBounds)
	}
	if m.HasWall(start) {
		return nil, fmt.Errorf("start %s is walled", start)
	}
	floor := &Floor{Map: m, Depth: yf.Depth, Start: start}
	taken := map[Pos]bool{start: true}
	for i, ys := range yf.Spawns {
		p := Pos{X: ys.At[0], Y: ys.At[1]}
		if ys.Template == "" {
			return nil, fmt.Errorf("spawn %d has no template", i)
		}
		if !m.IsInside(p) || m.HasWall(p) {
			return nil, fmt.Errorf("spawn %d at %s is not open floor", i, p)
		}
		if taken[p] {
			return nil, fmt.Errorf("spawn %d at %s overlaps another character", i, p)
		}
		taken[p] = true
		floor.Spawns = append(floor.Spawns, Spawn{Template: ys.Template, Pos: p})
	}
	return floor, nil
}
