package outputs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/macropower/pathstring/pkg/pathstring"
	"github.com/macropower/pathstring/pkg/pserrors"
	"github.com/macropower/pathstring/pkg/syncs"
)

// Per-manifest locks held for the duration of a save or load.
var manifestLocks syncs.KeyLock[pathstring.Key]

// ManifestPath returns the path of the manifest inside dir.
func ManifestPath(dir pathstring.Path) pathstring.Path {
	return dir.Resolve(pathstring.New(MetadataFileName))
}

// Save writes e to the manifest inside dir.
func Save(dir pathstring.Path, e *Elements) error {
	return SaveFile(ManifestPath(dir), e)
}

// SaveFile writes e to file, relative to the directory that contains file.
// The encoding is chosen with [OptionsFor]. The filesystem is the one
// registered for the scheme of file.
func SaveFile(file pathstring.Path, e *Elements) error {
	return manifestLocks.Do(file.Key(), func() error {
		return saveFile(file, e)
	})
}

func saveFile(file pathstring.Path, e *Elements) error {
	base, hasDir := file.Parent()

	host, err := hostPath(file)
	if err != nil {
		return err
	}

	if hasDir {
		dir, err := hostPath(base)
		if err != nil {
			return err
		}

		if err := dir.Fs.MkdirAll(dir.Name, 0o755); err != nil {
			return fmt.Errorf("%w: %w", pserrors.ErrWriteFile, err)
		}
	}

	f, err := host.Fs.Create(host.Name)
	if err != nil {
		return fmt.Errorf("%w: %w", pserrors.ErrWriteFile, err)
	}

	if err := Persist(f, e, base, OptionsFor(file)); err != nil {
		_ = f.Close()

		return fmt.Errorf("persist %s: %w", file, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", pserrors.ErrWriteFile, err)
	}

	return nil
}

// LoadFrom reads the manifest inside dir.
func LoadFrom(dir pathstring.Path) (*Elements, error) {
	return LoadFile(ManifestPath(dir))
}

// LoadFile reads the manifest at file, resolving output paths against the
// directory that contains it.
func LoadFile(file pathstring.Path) (*Elements, error) {
	manifestLocks.RLock(file.Key())
	defer manifestLocks.RUnlock(file.Key())

	base, _ := file.Parent()

	host, err := hostPath(file)
	if err != nil {
		return nil, err
	}

	f, err := host.Fs.Open(host.Name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", pserrors.ErrFileNotFound, err)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %w", pserrors.ErrReadFile, err)
	}
	defer func() { _ = f.Close() }()

	e, err := Load(f, base, OptionsFor(file))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", file, err)
	}

	return e, nil
}

// LoadAll reads the manifests inside each of dirs, with at most workers
// loads in flight. Results are in the order of dirs. Every failed load is
// reported.
func LoadAll(ctx context.Context, dirs []pathstring.Path, workers int64) ([]*Elements, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]*Elements, len(dirs))
	errs := make([]error, len(dirs))
	sem := semaphore.NewWeighted(workers)

	g, gCtx := errgroup.WithContext(ctx)

	for i, dir := range dirs {
		if err := sem.Acquire(gCtx, 1); err != nil {
			errs[i] = fmt.Errorf("load %s: %w", dir, err)

			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			logger := slog.With(slog.String("dir", dir.String()))
			logger.Debug("loading manifest")

			e, err := LoadFrom(dir)
			if err != nil {
				errs[i] = err

				return nil
			}

			results[i] = e

			logger.Debug("loaded manifest", slog.Int("outputs", len(e.Outputs)))

			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // Errors are collected per directory.

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return results, nil
}

func hostPath(p pathstring.Path) (pathstring.HostPath, error) {
	host, ok, err := p.ToPath()
	if err != nil {
		return pathstring.HostPath{}, fmt.Errorf("open filesystem for %s: %w", p, err)
	}

	if !ok {
		return pathstring.HostPath{}, fmt.Errorf("%w: %s", pserrors.ErrUnsupportedScheme, p.Scheme())
	}

	return host, nil
}
