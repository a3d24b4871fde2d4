// Package schemas provides JSON Schema validation for records fetched from
// the key-value store. Those records are written by other subsystems as
// schemaless JSON, so fetched documents are type-checked before decoding:
// a job record whose requirements field is a string instead of an array is
// reported as an invalid record, not silently mis-scored.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// jobPostingSchema type-checks the requirement-bearing fields of a job
// position record. Every field is optional; only types are enforced.
const jobPostingSchema = `{
	"type": "object",
	"properties": {
		"assessmentConfiguration": {
			"type": "object",
			"properties": {
				"selectedTechnicalSubSkills": {"type": "array", "items": {"type": "string"}},
				"selectedSoftSkillsSubAreas": {"type": "array", "items": {"type": "string"}},
				"customTechnicalSkills": {"type": "string"},
				"customSoftSkills": {"type": "string"}
			}
		},
		"requiredSkills": {
			"type": "object",
			"properties": {
				"technical": {"type": "array", "items": {"type": "string"}},
				"softSkills": {"type": "array", "items": {"type": "string"}},
				"software": {"type": "array", "items": {"type": "string"}}
			}
		},
		"requirements": {"type": "array", "items": {"type": "string"}}
	}
}`

// candidateProfileSchema type-checks the fields of a profile record the
// scorer consumes. Presence of resume_text is enforced by the pipeline, not
// here, so that a missing resume is reported as its own failure kind.
const candidateProfileSchema = `{
	"type": "object",
	"properties": {
		"resume_text": {"type": "string"},
		"resumeUrl": {"type": "string"}
	}
}`

// RecordInvalidError reports a stored record that does not match the
// expected shape, with the offending field paths.
type RecordInvalidError struct {
	Kind   string // record kind, e.g. "job-position"
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *RecordInvalidError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("invalid %s record:\n", e.Kind))
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateJobPosting validates a raw job position record.
func ValidateJobPosting(doc []byte) error {
	return validate("job-position", jobPostingSchema, doc)
}

// ValidateCandidateProfile validates a raw candidate profile record.
func ValidateCandidateProfile(doc []byte) error {
	return validate("profile", candidateProfileSchema, doc)
}

func validate(kind, schema string, doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// Covers unparseable documents as well as schema load problems.
		return fmt.Errorf("failed to validate %s record: %w", kind, err)
	}

	if result.Valid() {
		return nil
	}

	invalid := &RecordInvalidError{
		Kind:   kind,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		invalid.Errors = append(invalid.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return invalid
}
