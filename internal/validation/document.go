// Package validation checks the structural shape of incoming content
// documents before they replace the stored tree. The document is schema-less
// at the field level; what is enforced is the page > section > field nesting,
// so a malformed bulk payload cannot wedge the editor or the public site.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/alphire-robotics/team-cms/internal/document"
)

var ErrDocumentValidation = errors.New("validation: document shape invalid")

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with location context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrDocumentValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// documentSchema pins the nesting contract: pages are objects, sections are
// objects, fields are unconstrained.
var documentSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"additionalProperties": map[string]any{
		"type": "object",
		"additionalProperties": map[string]any{
			"type": "object",
		},
	},
}

// DocumentValidator validates content documents against the nesting schema.
type DocumentValidator struct {
	schema *jsonschema.Schema
}

// NewDocumentValidator compiles the document schema.
func NewDocumentValidator() (*DocumentValidator, error) {
	compiled, err := compileSchema(documentSchema)
	if err != nil {
		return nil, err
	}
	return &DocumentValidator{schema: compiled}, nil
}

// MustNewDocumentValidator compiles the document schema or panics. The schema
// is a fixed literal, so a compile failure is a programming error.
func MustNewDocumentValidator() *DocumentValidator {
	validator, err := NewDocumentValidator()
	if err != nil {
		panic(err)
	}
	return validator
}

// ValidateDocument checks one document tree. The tree is round-tripped
// through JSON so the validator sees plain decoded values regardless of
// whether the caller built it from typed maps or an HTTP payload.
func (v *DocumentValidator) ValidateDocument(doc document.Document) error {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentValidation, err)
	}
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentValidation, err)
	}

	if err := v.schema.Validate(payload); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
