package render

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/santhosh-tekuri/jsonschema"

	"github.com/NielsdaWheelz/maketree/internal/errors"
)

// TreeSchema is the JSON Schema every rendered document satisfies for the
// default options: labels match ^[a-z]{5,10}$ and no node has more than five
// children.
//
//go:embed tree.schema.json
var TreeSchema []byte

const schemaURL = "tree.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func treeSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(TreeSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// CheckDocument validates a rendered document against TreeSchema.
// Returns E_OUTPUT_INVALID on a mismatch and E_INTERNAL if the schema itself
// cannot be compiled.
func CheckDocument(doc []byte) error {
	s, err := treeSchema()
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to compile tree schema", err)
	}
	if err := s.Validate(bytes.NewReader(doc)); err != nil {
		return errors.Wrap(errors.EOutputInvalid, "document does not match tree schema", err)
	}
	return nil
}
