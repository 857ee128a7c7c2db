package status_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/ruins/internal/game/status"
)

func TestDefaultRegistry(t *testing.T) {
	reg := status.DefaultRegistry()
	assert.True(t, reg.Incapacitating(status.Asleep))
	assert.False(t, reg.Incapacitating(status.Poisoned))
	assert.False(t, reg.Incapacitating("unknown"))
	d, ok := reg.Get(status.Poisoned)
	require.True(t, ok)
	assert.Equal(t, 20, d.DamageDivisor)
	assert.Len(t, reg.All(), 4)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paralyzed.yaml"), []byte(`
id: paralyzed
name: Paralyzed
incapacitating: true
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "poisoned.yaml"), []byte(`
id: poisoned
name: Badly Poisoned
damage_divisor: 10
`), 0644))

	reg, err := status.LoadDirectory(dir)
	require.NoError(t, err)
	assert.True(t, reg.Incapacitating("paralyzed"))
	d, _ := reg.Get(status.Poisoned)
	assert.Equal(t, 10, d.DamageDivisor)
	assert.True(t, reg.Incapacitating(status.Asleep), "built-ins survive")
}

func TestLoadDirectory_RejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.yaml"), []byte("id: x\nstacks: 3\n"), 0644))
	_, err := status.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_RejectsNegativeDivisor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.yaml"), []byte("id: x\ndamage_divisor: -1\n"), 0644))
	_, err := status.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_MissingDir(t *testing.T) {
	_, err := status.LoadDirectory("/nonexistent/statuses")
	assert.Error(t, err)
}
