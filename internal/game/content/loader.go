package content

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/ruins/internal/game/inventory"
	"github.com/cory-johannsen/ruins/internal/game/status"
)

// LoadDirectory populates a Repository from dir. Each of the optional
// subdirectories skills/, walls/, tiles/, items/ and statuses/ holds *.yaml
// files; skill, wall and tile files may carry several documents separated by ---.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a fully validated Repository, or the first error encountered.
func LoadDirectory(dir string) (*Repository, error) {
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("reading content dir %q: %w", dir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("content path %q is not a directory", dir)
	}

	repo := NewRepository()

	if err := loadDocs(filepath.Join(dir, "skills"), func(s *ActiveSkill) error { return repo.AddSkill(s) }); err != nil {
		return nil, err
	}
	if err := loadDocs(filepath.Join(dir, "walls"), func(w *Wall) error { return repo.AddWall(w) }); err != nil {
		return nil, err
	}
	if err := loadDocs(filepath.Join(dir, "tiles"), func(t *Tile) error { return repo.AddTile(t) }); err != nil {
		return nil, err
	}

	itemDir := filepath.Join(dir, "items")
	if exists(itemDir) {
		items, err := inventory.LoadItems(itemDir)
		if err != nil {
			return nil, err
		}
		for _, d := range items {
			if err := repo.AddItem(d); err != nil {
				return nil, fmt.Errorf("registering item: %w", err)
			}
		}
	}

	statusDir := filepath.Join(dir, "statuses")
	if exists(statusDir) {
		reg, err := status.LoadDirectory(statusDir)
		if err != nil {
			return nil, err
		}
		repo.statuses = reg
	}

	if err := repo.checkReferences(); err != nil {
		return nil, err
	}
	return repo, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// loadDocs decodes every document of every *.yaml file in dir into a fresh T
// and hands it to add. A missing dir is not an error.
func loadDocs[T any](dir string, add func(*T) error) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %q: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		for {
			v := new(T)
			err := dec.Decode(v)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				f.Close()
				return fmt.Errorf("parsing %q: %w", path, err)
			}
			if err := add(v); err != nil {
				f.Close()
				return fmt.Errorf("loading %q: %w", path, err)
			}
		}
		f.Close()
	}
	return nil
}

// checkReferences verifies that materials and status effects name known definitions.
func (r *Repository) checkReferences() error {
	check := func(owner string, ms []Ingredient) error {
		for _, m := range ms {
			if _, ok := r.items.Item(m.Item); !ok {
				return fmt.Errorf("%s: material %q: %w", owner, m.Item, ErrUnknownID)
			}
		}
		return nil
	}
	for id, w := range r.walls {
		if err := check("wall "+id, w.Materials); err != nil {
			return err
		}
	}
	for id, t := range r.tiles {
		if err := check("tile "+id, t.Materials); err != nil {
			return err
		}
	}
	for id, s := range r.skills {
		if s.Effect.Kind != Status {
			continue
		}
		if _, ok := r.statuses.Get(s.Effect.Status); !ok {
			return fmt.Errorf("skill %s: status %q: %w", id, s.Effect.Status, ErrUnknownID)
		}
	}
	return nil
}
