// internal/services/errors.go
package services

import "fmt"

// RelatedObjectError is the persistence-stage rejection of a reference that
// does not resolve to an existing row. Brand identifiers that survive
// normalization unchanged end up here, not in the normalization step.
type RelatedObjectError struct {
	Field string
}

func (e *RelatedObjectError) Error() string {
	return fmt.Sprintf("%s: related object does not exist", e.Field)
}
