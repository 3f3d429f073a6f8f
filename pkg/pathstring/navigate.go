package pathstring

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is returned when a name index or range falls outside the
// names of a path.
var ErrOutOfRange = errors.New("index out of range")

// endIndex is the end of the names of p, excluding one trailing separator.
func (p Path) endIndex() int {
	if p.HasTrailingSeparator() {
		return p.end - 1
	}

	return p.end
}

// nameStart returns the start of the name that ends at end.
func (p Path) nameStart(end int) int {
	for i := end - 1; i >= p.start; i-- {
		if isSeparator(p.path[i]) {
			return i + 1
		}
	}

	return p.start
}

// window returns a path sharing the backing string of p, with no root.
func (p Path) window(start, end int) Path {
	return Path{
		scheme:    p.scheme,
		path:      p.path,
		start:     start,
		end:       end,
		prefixEnd: 0,
		sep:       p.sep,
	}
}

// Root returns the root component of p, such as "/" or "C:\", and false if p
// has no root.
func (p Path) Root() (Path, bool) {
	if p.prefixEnd == 0 {
		return Path{}, false
	}

	return Path{
		scheme:    p.scheme,
		path:      p.path,
		start:     p.prefixEnd,
		end:       p.prefixEnd,
		prefixEnd: p.prefixEnd,
		sep:       p.sep,
	}, true
}

// FileName returns the name farthest from the root, ignoring one trailing
// separator. It returns the empty path when p has no names.
func (p Path) FileName() Path {
	end := p.endIndex()

	return p.window(p.nameStart(end), end)
}

// Parent returns p without its last name. When only the root would remain,
// Parent returns the root. It returns false for root-only and empty paths, and
// for single-name relative paths.
func (p Path) Parent() (Path, bool) {
	end := p.endIndex()
	if end <= p.start {
		return Path{}, false
	}

	newEnd := p.nameStart(end) - 1
	if newEnd <= p.start {
		return p.Root()
	}

	parent := p
	parent.end = newEnd

	return parent, true
}

// NameCount returns the number of names in p, not counting the root.
func (p Path) NameCount() int {
	end := p.endIndex()
	if end <= p.start {
		return 0
	}

	n := 0
	last := p.start

	for i := p.start; i < end; i++ {
		if isSeparator(p.path[i]) {
			n++
			last = i + 1
		}
	}

	if last < end {
		n++
	}

	return n
}

// nameBounds returns the [start, end) index pairs of each name of p.
func (p Path) nameBounds() [][2]int {
	end := p.endIndex()
	if end <= p.start {
		return nil
	}

	bounds := make([][2]int, 0, 8)
	last := p.start

	for i := p.start; i < end; i++ {
		if isSeparator(p.path[i]) {
			bounds = append(bounds, [2]int{last, i})
			last = i + 1
		}
	}

	if last < end {
		bounds = append(bounds, [2]int{last, end})
	}

	return bounds
}

// Segments returns the names of p as strings.
func (p Path) Segments() []string {
	bounds := p.nameBounds()
	segments := make([]string, len(bounds))

	for i, b := range bounds {
		segments[i] = p.path[b[0]:b[1]]
	}

	return segments
}

// Names returns an iterator over the names of p as relative paths.
func (p Path) Names() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for _, b := range p.nameBounds() {
			if !yield(p.window(b[0], b[1])) {
				return
			}
		}
	}
}

// Get returns the name at index as a relative path. index must be in
// [0, NameCount()).
func (p Path) Get(index int) (Path, error) {
	return p.Subpath(index, index+1)
}

// Subpath returns the names in [begin, end) as a relative path. It requires
// 0 <= begin <= end <= NameCount(); an empty range yields the empty path.
func (p Path) Subpath(begin, end int) (Path, error) {
	bounds := p.nameBounds()
	if begin < 0 || end > len(bounds) || begin > end {
		return Path{}, fmt.Errorf("%w: [%d, %d) for %d names in %s",
			ErrOutOfRange, begin, end, len(bounds), p)
	}

	if begin == end {
		return NewWithScheme(p.scheme, ""), nil
	}

	return p.window(bounds[begin][0], bounds[end-1][1]), nil
}
