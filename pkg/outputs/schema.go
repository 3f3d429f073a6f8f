package outputs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	invopopjsonschema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/macropower/pathstring/pkg/pserrors"
)

const schemaURL = "output.schema.json"

// Schema returns the JSON Schema of an encoded manifest.
func Schema() *invopopjsonschema.Schema {
	r := &invopopjsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Anonymous:      true,
	}

	return r.Reflect(&Elements{})
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	data, err := json.Marshal(Schema())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pserrors.ErrJSONMarshal, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return sch, nil
})

// Validate checks a JSON-encoded manifest against [Schema].
func Validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", pserrors.ErrInvalidFormat, err)
	}

	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", pserrors.ErrValidation, err)
	}

	return nil
}
