// Package schemas provides JSON Schema validation for structured job-posting markup.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed job_posting.schema.json
var jobPostingSchema string

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateJobPostingMarkup checks a JSON-LD document against the
// schema.org/JobPosting shape we rely on for extraction. The schema is
// deliberately lenient: it rejects blocks that could not possibly be a
// job posting without demanding optional fields.
func ValidateJobPostingMarkup(jsonDoc string) error {
	schemaLoader := gojsonschema.NewStringLoader(jobPostingSchema)
	docLoader := gojsonschema.NewStringLoader(jsonDoc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate against schema: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			errs = append(errs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &ValidationError{Errors: errs}
	}

	return nil
}
