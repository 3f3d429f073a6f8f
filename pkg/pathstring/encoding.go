package pathstring

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidEncoding is returned when a persisted path cannot be decoded.
var ErrInvalidEncoding = errors.New("invalid path encoding")

// record is the persisted form of a path on a non-default scheme. Paths on the
// local filesystem persist as a bare portable string.
type record struct {
	Path   string `json:"path"             yaml:"path"`
	Scheme Scheme `json:"scheme,omitempty" yaml:"scheme,omitempty"`
}

func (p Path) record() record {
	r := record{Path: p.PortablePath()}
	if p.Scheme() != LocalScheme {
		r.Scheme = p.Scheme()
	}

	return r
}

func (r record) path() Path {
	return NewWithScheme(r.Scheme, r.Path)
}

// MarshalText encodes the portable form of p. The scheme is not included.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.PortablePath()), nil
}

// UnmarshalText parses text as a path on the local filesystem.
func (p *Path) UnmarshalText(text []byte) error {
	*p = New(string(text))

	return nil
}

// MarshalJSON encodes p as its portable string, or as an object carrying the
// scheme when p is not on the local filesystem.
func (p Path) MarshalJSON() ([]byte, error) {
	r := p.record()
	if r.Scheme == "" {
		return json.Marshal(r.Path) //nolint:wrapcheck // Marshaling a string cannot fail.
	}

	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal path %s: %w", p, err)
	}

	return data, nil
}

// UnmarshalJSON decodes either form written by [Path.MarshalJSON].
func (p *Path) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = New(s)

		return nil
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	*p = r.path()

	return nil
}

// MarshalYAML encodes p like [Path.MarshalJSON].
func (p Path) MarshalYAML() (any, error) {
	r := p.record()
	if r.Scheme == "" {
		return r.Path, nil
	}

	return r, nil
}

// UnmarshalYAML decodes either a scalar path or a path/scheme mapping.
func (p *Path) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}

		*p = New(s)

	case yaml.MappingNode:
		var r record
		if err := value.Decode(&r); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}

		*p = r.path()

	default:
		return fmt.Errorf("%w: unexpected YAML node at line %d", ErrInvalidEncoding, value.Line)
	}

	return nil
}

// JSONSchema describes the persisted form of a path.
func (Path) JSONSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("path", &jsonschema.Schema{
		Type:        "string",
		Description: "Portable path string, using '/' separators.",
	})
	props.Set("scheme", &jsonschema.Schema{
		Type:        "string",
		Description: "URI of the filesystem root the path belongs to.",
	})

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{
				Type:        "string",
				Description: "Portable path string on the local filesystem.",
			},
			{
				Type:                 "object",
				Properties:           props,
				Required:             []string{"path"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
		},
	}
}
