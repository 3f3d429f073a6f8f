package pathstring

import (
	"cmp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Key is a comparable form of a [Path], suitable for use as a map key. Two
// paths have equal keys exactly when they are [Path.Equal].
type Key struct {
	Scheme Scheme
	Prefix string
	Suffix string
}

// Key returns the comparable form of p. It shares the backing string of p.
func (p Path) Key() Key {
	return Key{Scheme: p.Scheme(), Prefix: p.prefix(), Suffix: p.suffix()}
}

// Equal reports whether p and other have the same scheme, root and names. The
// backing strings and separators are not compared.
func (p Path) Equal(other Path) bool {
	return p.Scheme() == other.Scheme() &&
		p.prefix() == other.prefix() &&
		p.suffix() == other.suffix()
}

// Compare orders paths by scheme, then root, then names, each compared
// lexicographically with shorter strings first on a common prefix. It returns
// 0 exactly when [Path.Equal] is true.
func (p Path) Compare(other Path) int {
	return cmp.Or(
		strings.Compare(string(p.Scheme()), string(other.Scheme())),
		strings.Compare(p.prefix(), other.prefix()),
		strings.Compare(p.suffix(), other.suffix()),
	)
}

// Hash returns a hash of the content of p, consistent with [Path.Equal].
func (p Path) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(string(p.Scheme()))
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(p.prefix())
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(p.suffix())

	return d.Sum64()
}
