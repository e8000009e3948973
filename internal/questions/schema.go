package questions

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

// bankSchema describes the on-disk bank: an array of question objects.
// Option text and correct flag may be omitted; they default to "" and false.
// Explanation may hold any value; non-strings are dropped when decoding.
const bankSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "question", "options"],
    "properties": {
      "id": {"type": ["string", "number"]},
      "question": {"type": "string"},
      "options": {
        "type": "array",
        "items": {
          "type": "object",
          "properties": {
            "text": {"type": ["string", "null"]},
            "correct": {"type": ["boolean", "null"]}
          }
        }
      },
      "explanation": {},
      "quiz": {"type": ["string", "null"]}
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// bankValidator returns the compiled bank schema.
func bankValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(bankSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Validate checks raw against the bank schema without decoding it into
// Question values.
func Validate(raw []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &SchemaError{Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	sch, err := bankValidator()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}
