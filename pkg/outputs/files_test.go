package outputs_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathstring/pkg/outputs"
	"github.com/macropower/pathstring/pkg/pathstring"
	"github.com/macropower/pathstring/pkg/pserrors"
)

func memScheme(t *testing.T, name string) (pathstring.Scheme, afero.Fs) {
	t.Helper()

	scheme := pathstring.Scheme(name + ":///")
	fs := afero.NewMemMapFs()

	pathstring.RegisterFileSystem(scheme, func(pathstring.Scheme) (afero.Fs, error) {
		return fs, nil
	})
	t.Cleanup(func() { pathstring.UnregisterFileSystem(scheme) })

	return scheme, fs
}

func TestSaveLoadFrom(t *testing.T) {
	t.Parallel()

	scheme, fs := memScheme(t, "outputs-save")
	dir := pathstring.NewWithScheme(scheme, "/build/out")

	e := outputs.New(outputs.Output{Type: "apk", Path: dir.Resolve(pathstring.New("app.apk"))})
	require.NoError(t, outputs.Save(dir, e))

	exists, err := afero.Exists(fs, "/build/out/output.json")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := outputs.LoadFrom(dir)
	require.NoError(t, err)
	require.Len(t, got.Outputs, 1)
	assert.True(t, e.Outputs[0].Path.Equal(got.Outputs[0].Path))
}

func TestSaveFileCompressedYAML(t *testing.T) {
	t.Parallel()

	scheme, _ := memScheme(t, "outputs-yaml")
	file := pathstring.NewWithScheme(scheme, "/build/manifest.yaml.gz")

	e := outputs.New(outputs.Output{Type: "bundle", Path: pathstring.NewWithScheme(scheme, "/build/app.aab")})
	require.NoError(t, outputs.SaveFile(file, e))

	got, err := outputs.LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "/build/app.aab", got.Outputs[0].Path.RawPath())
	assert.Equal(t, "BUNDLE", got.Outputs[0].Type)
}

func TestLoadFromMissing(t *testing.T) {
	t.Parallel()

	scheme, _ := memScheme(t, "outputs-missing")

	_, err := outputs.LoadFrom(pathstring.NewWithScheme(scheme, "/nowhere"))
	require.ErrorIs(t, err, pserrors.ErrFileNotFound)
}

func TestLoadFromUnsupportedScheme(t *testing.T) {
	t.Parallel()

	_, err := outputs.LoadFrom(pathstring.NewWithScheme("unregistered:///", "/out"))
	require.ErrorIs(t, err, pserrors.ErrUnsupportedScheme)
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	scheme, _ := memScheme(t, "outputs-all")

	var dirs []pathstring.Path

	for _, name := range []string{"/a", "/b", "/c", "/d"} {
		dir := pathstring.NewWithScheme(scheme, name)
		e := outputs.New(outputs.Output{Type: "apk", Path: dir.Resolve(pathstring.New("x.apk"))})
		require.NoError(t, outputs.Save(dir, e))

		dirs = append(dirs, dir)
	}

	got, err := outputs.LoadAll(context.Background(), dirs, 2)
	require.NoError(t, err)
	require.Len(t, got, len(dirs))

	for i, e := range got {
		want := dirs[i].Resolve(pathstring.New("x.apk"))
		assert.True(t, want.Equal(e.Outputs[0].Path), "got %s, want %s", e.Outputs[0].Path, want)
	}

	dirs = append(dirs, pathstring.NewWithScheme(scheme, "/missing"))

	_, err = outputs.LoadAll(context.Background(), dirs, 2)
	require.ErrorIs(t, err, pserrors.ErrFileNotFound)
}

func TestSaveLoadConcurrent(t *testing.T) {
	t.Parallel()

	scheme, _ := memScheme(t, "outputs-concurrent")
	dir := pathstring.NewWithScheme(scheme, "/shared")

	require.NoError(t, outputs.Save(dir, outputs.New()))

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			e := outputs.New(outputs.Output{
				Type: "apk",
				Path: dir.Resolve(pathstring.New(fmt.Sprintf("app-%d.apk", i))),
			})
			assert.NoError(t, outputs.Save(dir, e))
		}()

		go func() {
			defer wg.Done()

			_, err := outputs.LoadFrom(dir)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
}
