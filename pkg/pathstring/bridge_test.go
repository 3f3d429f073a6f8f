package pathstring_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathstring/pkg/pathstring"
)

func TestToFile(t *testing.T) {
	t.Parallel()

	name, ok := pathstring.New("a/b").ToFile()
	require.True(t, ok)
	assert.Equal(t, filepath.Join("a", "b"), name)

	_, ok = pathstring.NewWithScheme("mem:///", "a/b").ToFile()
	assert.False(t, ok)
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	name := filepath.Join("dir", "file.txt")
	p := pathstring.FromFile(name)

	assert.Equal(t, "dir/file.txt", p.PortablePath())

	back, ok := p.ToFile()
	require.True(t, ok)
	assert.Equal(t, name, back)
}

func TestToPathLocal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := pathstring.FromFile(dir).Resolve(pathstring.New("out.txt"))

	host, ok, err := p.ToPath()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, afero.WriteFile(host.Fs, host.Name, []byte("ok"), 0o600))

	data, err := afero.ReadFile(afero.NewOsFs(), filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestToPathRegistered(t *testing.T) {
	t.Parallel()

	scheme := pathstring.Scheme("memtest:///")
	fs := afero.NewMemMapFs()

	pathstring.RegisterFileSystem(scheme, func(pathstring.Scheme) (afero.Fs, error) {
		return fs, nil
	})
	t.Cleanup(func() { pathstring.UnregisterFileSystem(scheme) })

	host, ok, err := pathstring.NewWithScheme(scheme, "/data/a.txt").ToPath()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/data/a.txt", host.Name)

	require.NoError(t, afero.WriteFile(host.Fs, host.Name, []byte("x"), 0o600))

	exists, err := afero.Exists(fs, "/data/a.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestToPathUnregistered(t *testing.T) {
	t.Parallel()

	_, ok, err := pathstring.NewWithScheme("nothere:///", "/a").ToPath()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestToPathProviderError(t *testing.T) {
	t.Parallel()

	scheme := pathstring.Scheme("failtest:///")
	want := errors.New("unavailable")

	pathstring.RegisterFileSystem(scheme, func(pathstring.Scheme) (afero.Fs, error) {
		return nil, want
	})
	t.Cleanup(func() { pathstring.UnregisterFileSystem(scheme) })

	_, ok, err := pathstring.NewWithScheme(scheme, "/a").ToPath()
	assert.False(t, ok)
	assert.Equal(t, want, err)
}
