package content

import (
	"errors"
	"fmt"
)

var (
	ErrPageRequired     = errors.New("content: page is required")
	ErrSectionRequired  = errors.New("content: section is required")
	ErrFieldRequired    = errors.New("content: field is required")
	ErrUnknownLanguage  = errors.New("content: unknown language")
	ErrDocumentRequired = errors.New("content: document is required")
	ErrDocumentInvalid  = errors.New("content: document failed validation")
	ErrRevisionConflict = errors.New("content: revision conflict, reload before saving")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err is a repository NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
