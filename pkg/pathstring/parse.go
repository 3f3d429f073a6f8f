package pathstring

import "strings"

const (
	// Parent is the name of the parent directory segment.
	Parent = ".."
	// Self is the name of the current directory segment.
	Self = "."
)

func isSeparator(c byte) bool { return c == '/' || c == '\\' }

// prefixLength returns the length of the root portion of s. A colon that
// appears before the first separator is a drive specifier, and the root runs
// through it and any separators directly after it. Otherwise only a single
// leading separator counts as a root.
func prefixLength(s string) int {
	firstSep := strings.IndexAny(s, `/\`)
	if firstSep < 0 {
		firstSep = len(s)
	}

	firstColon := strings.IndexByte(s, ':')
	if firstColon < 0 {
		firstColon = len(s)
	}

	if firstColon >= firstSep {
		if firstSep == 0 && len(s) > 0 {
			return 1
		}

		return 0
	}

	end := firstColon + 1
	for end < len(s) && isSeparator(s[end]) {
		end++
	}

	return end
}

// detectSeparator returns the separator implied by the first separator-like
// character in s. A colon implies a Windows drive specifier.
func detectSeparator(s string) byte {
	i := strings.IndexAny(s, `/\:`)
	if i < 0 {
		return '/'
	}

	if s[i] == '/' {
		return '/'
	}

	return '\\'
}

// withSeparator replaces every separator in s with sep.
func withSeparator(s string, sep byte) string {
	switch sep {
	case '/':
		return strings.ReplaceAll(s, `\`, "/")
	case '\\':
		return strings.ReplaceAll(s, "/", `\`)
	}

	return s
}

// driveEnd returns the index just past the last colon in s, or 0 when s has
// no colon.
func driveEnd(s string) int {
	return strings.LastIndexByte(s, ':') + 1
}

// driveName returns the upper-cased text before the first colon in root, or
// the whole upper-cased root when it has no colon.
func driveName(root string) string {
	if i := strings.IndexByte(root, ':'); i >= 0 {
		root = root[:i]
	}

	return strings.ToUpper(root)
}
