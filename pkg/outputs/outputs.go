package outputs

import (
	"cmp"
	"slices"

	"github.com/iancoleman/strcase"

	"github.com/macropower/pathstring/pkg/pathstring"
)

const (
	// MetadataFileName is the name of the manifest inside a build directory.
	MetadataFileName = "output.json"

	// CurrentVersion is the manifest version written by [Persist].
	CurrentVersion = 3
)

// Output is a single build artifact.
type Output struct {
	Properties map[string]string `json:"properties,omitempty" jsonschema:"description=Free-form artifact attributes."`
	Type       string            `json:"type"                 jsonschema:"minLength=1,description=Artifact type in SCREAMING_SNAKE case."`
	Path       pathstring.Path   `json:"path"                 jsonschema:"description=Artifact location relative to the manifest directory."`
}

// Elements is the content of a manifest.
type Elements struct {
	Outputs []Output `json:"outputs"`
	Version int      `json:"version" jsonschema:"minimum=1"`
}

// New returns an empty manifest at [CurrentVersion].
func New(outputs ...Output) *Elements {
	e := &Elements{Version: CurrentVersion}
	for _, o := range outputs {
		e.Add(o)
	}

	return e
}

// Add appends an output, canonicalising its type.
func (e *Elements) Add(o Output) {
	o.Type = CanonicalType(o.Type)
	e.Outputs = append(e.Outputs, o)
}

// CanonicalType converts an artifact type name to SCREAMING_SNAKE case, so
// that "bundleApk", "bundle-apk" and "BUNDLE_APK" are the same type.
func CanonicalType(t string) string {
	return strcase.ToScreamingSnake(t)
}

// ByType returns the outputs of the given type, in manifest order.
func (e *Elements) ByType(t string) []Output {
	t = CanonicalType(t)

	var outs []Output

	for _, o := range e.Outputs {
		if o.Type == t {
			outs = append(outs, o)
		}
	}

	return outs
}

type outputKey struct {
	Type string
	Path pathstring.Key
}

// Dedupe removes outputs with the same type and an equal path, keeping the
// first occurrence. Paths are compared with [pathstring.Path.Equal], so two
// spellings that only differ in their backing strings collapse.
func (e *Elements) Dedupe() {
	seen := make(map[outputKey]struct{}, len(e.Outputs))
	outs := e.Outputs[:0]

	for _, o := range e.Outputs {
		k := outputKey{Type: o.Type, Path: o.Path.Key()}
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		outs = append(outs, o)
	}

	clear(e.Outputs[len(outs):])
	e.Outputs = outs
}

// Sort orders outputs by type, then by path.
func (e *Elements) Sort() {
	slices.SortStableFunc(e.Outputs, func(a, b Output) int {
		return cmp.Or(
			cmp.Compare(a.Type, b.Type),
			a.Path.Compare(b.Path),
		)
	})
}
