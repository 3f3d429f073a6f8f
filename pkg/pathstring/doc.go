// Package pathstring provides a lexical path value that can represent unix or
// Windows-style path names without touching any filesystem.
//
// A [Path] remembers its scheme and the exact string used to construct it, so
// conversions from a string to a [Path] and back are lossless, even when the
// string mixes separators. Derived paths (parents, file names, sub-ranges)
// share the backing string of the path they came from; new text is only built
// when an operation has to synthesize it, such as [Path.Normalize].
//
// Paths are immutable values and are safe for concurrent use.
package pathstring
