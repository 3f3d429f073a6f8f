package pathstring

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether the portable form of p matches the glob pattern. The
// pattern uses '/' separators and supports "**" for any number of names.
func (p Path) Match(pattern string) (bool, error) {
	ok, err := doublestar.Match(pattern, p.PortablePath())
	if err != nil {
		return false, fmt.Errorf("match %q: %w", pattern, err)
	}

	return ok, nil
}
