// Package version reports the version of the pathstring binary.
//
// [Version] and [Revision] are filled from the module build information when
// it is available, and can be overridden at link time with -ldflags -X.
package version
