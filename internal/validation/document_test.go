package validation_test

import (
	"errors"
	"testing"

	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/internal/validation"
)

func TestValidateDocumentAcceptsDefaultTree(t *testing.T) {
	validator := validation.MustNewDocumentValidator()

	if err := validator.ValidateDocument(document.Default()); err != nil {
		t.Fatalf("default document rejected: %v", err)
	}
}

func TestValidateDocumentAcceptsArbitraryFieldValues(t *testing.T) {
	validator := validation.MustNewDocumentValidator()

	doc := document.Document{
		"projects": document.Page{
			"arc": document.Section{
				"gallery": []any{"a.jpg", "b.jpg"},
				"details": document.BilingualList([]string{"x"}, []string{"y"}),
				"status":  document.Bilingual("Active", "Ativo"),
				"count":   3,
			},
		},
	}
	if err := validator.ValidateDocument(doc); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
}

func TestValidateDocumentRejectsNullSection(t *testing.T) {
	validator := validation.MustNewDocumentValidator()

	// A null section encodes to JSON null, which breaks the
	// page > section > field nesting contract.
	doc := document.Document{
		"home": document.Page{"hero": nil},
	}

	err := validator.ValidateDocument(doc)
	if !errors.Is(err, validation.ErrDocumentValidation) {
		t.Fatalf("null section error = %v", err)
	}

	var payloadErr *validation.PayloadValidationError
	if !errors.As(err, &payloadErr) || len(payloadErr.Issues) == 0 {
		t.Fatalf("expected located issues, got %v", err)
	}
}

func TestIssuesFallsBackToPlainError(t *testing.T) {
	issues := validation.Issues(errors.New("boom"))
	if len(issues) != 1 || issues[0].Message != "boom" {
		t.Fatalf("issues = %v", issues)
	}
	if validation.Issues(nil) != nil {
		t.Fatal("nil error should yield no issues")
	}
}
