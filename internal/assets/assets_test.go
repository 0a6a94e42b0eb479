package assets

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	name, err := Resolve("rom:/water.tga")
	require.NoError(t, err)
	assert.Equal(t, "water.tga", name)

	name, err = Resolve("rom:/sub/dir/star.tga")
	require.NoError(t, err)
	assert.Equal(t, "sub/dir/star.tga", name)

	for _, bad := range []string{"water.tga", "/water.tga", "rom:/", "rom:/../etc/passwd", "rom://abs"} {
		_, err := Resolve(bad)
		assert.Error(t, err, bad)
	}
}

func TestROMHoldsDefaultTextures(t *testing.T) {
	m, err := NewDefaultManager("")
	require.NoError(t, err)
	defer m.Close()

	for _, p := range []string{
		"rom:/water.tga",
		"rom:/clouds.tga",
		"rom:/pentagon0.tga",
		"rom:/triangle0.tga",
		"rom:/starb.tga",
		"rom:/star.tga",
	} {
		data, err := m.Load(p)
		require.NoError(t, err, p)
		assert.NotEmpty(t, data, p)
	}
}

func TestLayerPriority(t *testing.T) {
	m := NewManager()
	m.AddLayer("base", fstest.MapFS{
		"a.tga": {Data: []byte("base-a")},
		"b.tga": {Data: []byte("base-b")},
	})
	m.AddLayer("mod", fstest.MapFS{
		"a.tga": {Data: []byte("mod-a")},
	})

	data, err := m.Load("rom:/a.tga")
	require.NoError(t, err)
	assert.Equal(t, "mod-a", string(data))

	data, err = m.Load("rom:/b.tga")
	require.NoError(t, err)
	assert.Equal(t, "base-b", string(data))
}

func TestLoadMissing(t *testing.T) {
	m := NewManager()
	m.AddLayer("empty", fstest.MapFS{})

	_, err := m.Load("rom:/nowhere.tga")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCaches(t *testing.T) {
	fsys := fstest.MapFS{"x.tga": {Data: []byte("first")}}
	m := NewManager()
	m.AddLayer("mem", fsys)

	_, err := m.Load("rom:/x.tga")
	require.NoError(t, err)

	// A change underneath is not observed once cached
	fsys["x.tga"] = &fstest.MapFile{Data: []byte("second")}
	data, err := m.Load("rom:/x.tga")
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	hits, misses := m.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "water.tga"), []byte("custom"), 0644))

	m, err := NewDefaultManager(dir)
	require.NoError(t, err)

	data, err := m.Load("rom:/water.tga")
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))

	// Files absent from the override fall through to the ROM
	data, err = m.Load("rom:/star.tga")
	require.NoError(t, err)
	assert.NotEqual(t, "custom", string(data))
}

func TestOverrideDirMissing(t *testing.T) {
	_, err := NewDefaultManager(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestOverrideDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := NewDefaultManager(file)
	assert.Error(t, err)
}

func TestCloseClearsCache(t *testing.T) {
	m := NewManager()
	m.AddLayer("mem", fstest.MapFS{"x.tga": {Data: []byte("x")}})
	_, err := m.Load("rom:/x.tga")
	require.NoError(t, err)

	m.Close()

	_, err = m.Load("rom:/x.tga")
	assert.ErrorIs(t, err, ErrNotFound)
}
