package pathstring

import (
	"sync"

	"github.com/spf13/afero"
)

// FileSystemProvider returns the filesystem for a scheme. Errors it returns
// are passed to callers of [Path.ToPath] unchanged.
type FileSystemProvider func(scheme Scheme) (afero.Fs, error)

// HostPath is a [Path] mapped onto a real filesystem.
type HostPath struct {
	Fs   afero.Fs
	Name string
}

var (
	providersMu sync.RWMutex
	providers   = map[Scheme]FileSystemProvider{
		LocalScheme: func(Scheme) (afero.Fs, error) { return afero.NewOsFs(), nil },
	}
)

// RegisterFileSystem makes the filesystem returned by provider available to
// [Path.ToPath] for paths with the given scheme. A later registration for the
// same scheme replaces the earlier one.
func RegisterFileSystem(scheme Scheme, provider FileSystemProvider) {
	providersMu.Lock()
	defer providersMu.Unlock()

	providers[scheme.orDefault()] = provider
}

// UnregisterFileSystem removes the provider for scheme.
func UnregisterFileSystem(scheme Scheme) {
	providersMu.Lock()
	defer providersMu.Unlock()

	delete(providers, scheme.orDefault())
}

func lookupProvider(scheme Scheme) (FileSystemProvider, bool) {
	providersMu.RLock()
	defer providersMu.RUnlock()

	provider, ok := providers[scheme.orDefault()]

	return provider, ok
}

// ToFile returns the host file name for p when it uses a file:// scheme, and
// false for any other scheme.
func (p Path) ToFile() (string, bool) {
	if !p.Scheme().IsLocal() {
		return "", false
	}

	return p.NativePath(), true
}

// ToPath maps p onto the filesystem registered for its scheme. It returns
// false with a nil error when no filesystem is registered. When the provider
// fails, its error is returned as-is.
func (p Path) ToPath() (HostPath, bool, error) {
	provider, ok := lookupProvider(p.Scheme())
	if !ok {
		return HostPath{}, false, nil
	}

	fsys, err := provider(p.Scheme())
	if err != nil {
		return HostPath{}, false, err //nolint:wrapcheck // Host failures are surfaced untranslated.
	}

	name := p.RawPath()
	if p.Scheme().IsLocal() {
		name = p.NativePath()
	}

	return HostPath{Fs: fsys, Name: name}, true, nil
}
