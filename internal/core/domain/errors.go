package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown output format or setting value.
	ErrUnsupportedType = errors.New("unsupported type")

	// Load Errors.

	// ErrUnsafeDocument indicates the input declares a DOCTYPE.
	// Inline document type declarations are refused outright.
	ErrUnsafeDocument = errors.New("unsafe document: DOCTYPE declarations are not allowed")

	// ErrMalformedDocument indicates the input is not well-formed XML.
	ErrMalformedDocument = errors.New("malformed document")

	// Format Errors.

	// ErrMissingVersion indicates the channel has no wp:wxr_version node.
	ErrMissingVersion = errors.New("missing WXR version")

	// ErrInvalidVersion indicates wp:wxr_version is not <digits>.<digits>.
	ErrInvalidVersion = errors.New("invalid WXR version")

	// ErrCorruptFieldDefinition indicates an acf-field settings blob could not be decoded.
	// It never aborts a parse: the definition is dropped and reported as a diagnostic.
	ErrCorruptFieldDefinition = errors.New("corrupt field definition")
)

// FieldDefinitionError describes a custom field definition that was dropped
// from the registry.
type FieldDefinitionError struct {
	// PostID is the acf-field post carrying the definition.
	PostID int

	// FieldID is the field key (the post's name).
	FieldID string

	// Err is the decoding failure.
	Err error
}

func (e *FieldDefinitionError) Error() string {
	return fmt.Sprintf("%s %q (post %d): %v", ErrCorruptFieldDefinition, e.FieldID, e.PostID, e.Err)
}

// Is enables errors.Is matching against ErrCorruptFieldDefinition.
func (e *FieldDefinitionError) Is(target error) bool {
	return target == ErrCorruptFieldDefinition
}

// Unwrap returns the underlying decoding failure.
func (e *FieldDefinitionError) Unwrap() error {
	return e.Err
}
