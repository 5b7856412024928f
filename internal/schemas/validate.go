// Package schemas provides JSON Schema validation for upstream payloads.
// The place-summary endpoint is undocumented, so responses are checked
// against a schema before any field is trusted.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed place_summary.schema.json
var placeSummarySchema []byte

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidatePlaceSummary validates a raw place-summary response body against
// the embedded schema. A nil return means the payload is well-formed (it may
// still describe a missing place; that is the caller's concern).
func ValidatePlaceSummary(body []byte) error {
	return validateBytes(placeSummarySchema, body)
}

func validateBytes(schema, document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, resultErr := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   resultErr.Field(),
				Message: resultErr.Description(),
			})
		}
		return ve
	}

	return nil
}
