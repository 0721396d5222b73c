package engine

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateOutput checks a capability output against the step's declared
// output schema (draft 2020-12 subset).
func ValidateOutput(schema json.RawMessage, output map[string]any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schema)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	// round-trip so numeric types match what json decoding produces
	raw, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal output: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("output does not match schema: %w", err)
	}
	return nil
}
