package pathstring

import (
	"path/filepath"
	"strings"
)

// Scheme identifies the filesystem a [Path] is meaningful in. It is the URI of
// the filesystem root, such as "file:///" for the local filesystem.
type Scheme string

// LocalScheme is the scheme of the local filesystem.
const LocalScheme Scheme = "file:///"

// Name returns the URI scheme name, e.g. "file" for [LocalScheme].
func (s Scheme) Name() string {
	name, _, ok := strings.Cut(string(s), ":")
	if !ok {
		return ""
	}

	return name
}

// IsLocal reports whether s refers to the local filesystem.
func (s Scheme) IsLocal() bool {
	return s == "" || strings.EqualFold(s.Name(), "file")
}

func (s Scheme) orDefault() Scheme {
	if s == "" {
		return LocalScheme
	}

	return s
}

// Flavor describes the separator convention of a [Path].
type Flavor int

const (
	// Posix paths use '/' separators.
	Posix Flavor = iota
	// Windows paths use '\' separators and may carry a drive specifier.
	Windows
)

func (f Flavor) String() string {
	if f == Windows {
		return "windows"
	}

	return "posix"
}

// Path is a lexical path. The zero value is the empty path on the local
// filesystem.
//
// The used portion of the backing string is path[:prefixEnd] followed by
// path[start:end]. Derived paths keep the backing string and move the window
// instead of copying.
type Path struct {
	scheme    Scheme
	path      string
	start     int
	end       int
	prefixEnd int
	sep       byte
}

// New parses s as a path on the local filesystem.
func New(s string) Path {
	return NewWithScheme(LocalScheme, s)
}

// NewWithScheme parses s as a path on the filesystem identified by scheme.
// Parsing never fails: any string is a valid relative or absolute path.
func NewWithScheme(scheme Scheme, s string) Path {
	return newRooted(scheme, s, prefixLength(s))
}

// FromFile returns the [Path] for a host file name, as produced by the
// path/filepath package.
func FromFile(name string) Path {
	return New(name)
}

func newRooted(scheme Scheme, s string, rootLength int) Path {
	return Path{
		scheme:    scheme.orDefault(),
		path:      s,
		start:     rootLength,
		end:       len(s),
		prefixEnd: rootLength,
		sep:       detectSeparator(s),
	}
}

// Scheme returns the scheme of the filesystem p belongs to.
func (p Path) Scheme() Scheme {
	return p.scheme.orDefault()
}

// Separator returns the separator detected when p was parsed.
func (p Path) Separator() byte {
	if p.sep == 0 {
		return '/'
	}

	return p.sep
}

// Flavor returns [Windows] for paths that use '\' separators, and [Posix]
// otherwise.
func (p Path) Flavor() Flavor {
	if p.Separator() == '\\' {
		return Windows
	}

	return Posix
}

func (p Path) prefix() string { return p.path[:p.prefixEnd] }

func (p Path) suffix() string { return p.path[p.start:p.end] }

// RawPath returns the path text exactly as written, with its own separators.
func (p Path) RawPath() string {
	switch {
	case p.prefixEnd == 0:
		return p.suffix()
	case p.start == p.prefixEnd:
		return p.path[:p.end]
	}

	return p.prefix() + p.suffix()
}

// PortablePath returns the path string using '/' separators.
func (p Path) PortablePath() string {
	return strings.ReplaceAll(p.RawPath(), `\`, "/")
}

// NativePath returns the path string using the separator of the host
// operating system.
func (p Path) NativePath() string {
	return withSeparator(p.RawPath(), filepath.Separator)
}

// String describes both the filesystem and the path, e.g. "file:///a/b".
func (p Path) String() string {
	s := string(p.Scheme())
	if strings.HasSuffix(s, "///") {
		s = s[:len(s)-1]
	}

	return s + p.RawPath()
}

// IsAbsolute reports whether p has a root that ends in a separator. A bare
// drive specifier such as "C:" is not absolute.
func (p Path) IsAbsolute() bool {
	return p.prefixEnd != 0 && isSeparator(p.path[p.prefixEnd-1])
}

// IsEmpty reports whether p is the empty path, which has neither a root nor
// any names. Resolving any path against the empty path returns it unchanged.
func (p Path) IsEmpty() bool {
	return p.prefixEnd == 0 && p.start == p.end
}

// HasTrailingSeparator reports whether the names of p end in a separator.
func (p Path) HasTrailingSeparator() bool {
	return p.end > p.start && isSeparator(p.path[p.end-1])
}
