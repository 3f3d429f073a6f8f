package pathstring

import "strings"

// Normalize returns a path equivalent to p without redundant "." and ".."
// names. On a relative path, a ".." that cannot be resolved is kept; on an
// absolute path, a ".." above the root is dropped. A trailing separator is
// preserved, and empty names at the end collapse into it. The root is kept
// with its separators converted to the separator of p. A leading "." name is
// kept where the names alone would read as a root.
func (p Path) Normalize() Path {
	absolute := p.IsAbsolute()
	segments := p.Segments()
	names := make([]string, 0, len(segments)+1)

	for _, name := range segments {
		switch name {
		case Self:
		case Parent:
			if n := len(names); n > 0 && names[n-1] != Parent {
				names = names[:n-1]
			} else if !absolute {
				names = append(names, name)
			}
		default:
			names = append(names, name)
		}
	}

	// Empty names left at the end collapse into one trailing separator.
	trailing := p.HasTrailingSeparator()
	for n := len(names); n > 0 && names[n-1] == ""; n = len(names) {
		names = names[:n-1]
		trailing = true
	}

	if trailing {
		names = append(names, "")
	}

	sep := p.Separator()
	root := withSeparator(p.prefix(), sep)
	s := root + strings.Join(names, string(sep))

	// A leading empty name, or a colon in the first name, would otherwise
	// parse as part of the root.
	if prefixLength(s) != len(root) {
		s = root + strings.Join(append([]string{Self}, names...), string(sep))
	}

	normalized := newRooted(p.scheme, s, len(root))
	normalized.sep = sep

	return normalized
}

// Resolve resolves other against p. For relative paths this is concatenation;
// an absolute other is returned as-is. Think of p as the current directory and
// of Resolve as running "cd other".
//
// Two Windows rules apply. If other is rooted by a single separator and p has
// a drive specifier, the result is other on the drive of p. If other carries a
// drive specifier that differs from the drive of p, other is returned.
func (p Path) Resolve(other Path) Path {
	if p.IsEmpty() {
		return other
	}

	if other.IsAbsolute() {
		if other.prefixEnd == 1 {
			if drive := driveEnd(p.prefix()); drive > 0 {
				s := p.path[:drive] + withSeparator(other.RawPath(), p.Separator())

				return newRooted(p.scheme, s, drive+1)
			}
		}

		return other
	}

	if other.prefixEnd > 0 && !compatibleRoots(p, other) {
		return other
	}

	if other.start == other.end {
		return p
	}

	var b strings.Builder

	rel := withSeparator(other.suffix(), p.Separator())
	b.Grow(p.prefixEnd + (p.end - p.start) + 1 + len(rel))
	b.WriteString(p.prefix())
	b.WriteString(p.suffix())

	if p.start < p.end && !p.HasTrailingSeparator() {
		b.WriteByte(p.Separator())
	}

	b.WriteString(rel)
	s := b.String()

	return Path{
		scheme:    p.scheme,
		path:      s,
		start:     p.prefixEnd,
		end:       len(s),
		prefixEnd: p.prefixEnd,
		sep:       p.sep,
	}
}

// compatibleRoots reports whether the roots of a and b name the same drive.
// Paths without a root are only compatible with each other.
func compatibleRoots(a, b Path) bool {
	ra, aok := a.Root()
	rb, bok := b.Root()

	if aok != bok {
		return false
	}

	if !aok || ra.Equal(rb) {
		return true
	}

	return driveName(ra.prefix()) == driveName(rb.prefix())
}

// Relativize returns a path that points at other when resolved against p. It
// returns other itself when there is no simpler way to express it, for
// example when the two paths have different roots.
func (p Path) Relativize(other Path) Path {
	if p.IsEmpty() {
		return other
	}

	if p.IsAbsolute() && other.IsEmpty() {
		return other
	}

	if !sameRoot(p, other) {
		otherRoot := other.prefix()
		if otherRoot != withSeparator(p.prefix(), other.Separator()) {
			// A root that only differs after the drive specifier, such as
			// "C:" and "C:\", keeps the part of the other root past the drive.
			rootString := otherRoot
			if drive := driveEnd(p.prefix()); drive > 0 {
				n := min(drive, other.prefixEnd)
				same := 0

				for same < n && p.path[same] == other.path[same] {
					same++
				}

				if same >= drive {
					rootString = other.path[drive:other.prefixEnd]
				}
			}

			return newRooted(p.scheme, rootString+other.suffix(), len(rootString))
		}
	}

	segments := p.Segments()
	otherSegments := other.Segments()

	common := 0
	for common < len(segments) && common < len(otherSegments) && segments[common] == otherSegments[common] {
		common++
	}

	names := make([]string, 0, len(segments)-common+len(otherSegments)-common)
	for range len(segments) - common {
		names = append(names, Parent)
	}

	names = append(names, otherSegments[common:]...)

	sep := string(other.Separator())
	s := strings.Join(names, sep)

	if other.HasTrailingSeparator() && len(names) > 0 {
		s += sep
	}

	return Path{
		scheme: p.scheme,
		path:   s,
		end:    len(s),
		sep:    p.sep,
	}
}

// sameRoot reports whether a and b have equal roots, or both have none.
func sameRoot(a, b Path) bool {
	ra, aok := a.Root()
	rb, bok := b.Root()

	return aok == bok && (!aok || ra.Equal(rb))
}
