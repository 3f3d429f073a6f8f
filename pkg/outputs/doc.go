// Package outputs reads and writes build-output manifests.
//
// A manifest lists the artifacts a build produced, each with a type, a path,
// and free-form properties. Paths are stored relative to the directory that
// holds the manifest, so a build directory can be moved or copied to another
// machine (or another operating system) and loaded again from its new
// location.
//
// Manifests are JSON by default. YAML and compressed variants are selected
// from the manifest file name; see [OptionsFor].
package outputs
