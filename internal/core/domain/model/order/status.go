package order

import (
	"fmt"

	"laborders/internal/pkg/errs"
)

// Status is the soft-delete flag of an order. It is orthogonal to State:
// an order keeps its lifecycle stage when it is soft-deleted.
type Status string

const (
	// StatusActive marks a live order. This is the default at creation.
	StatusActive Status = "ACTIVE"

	// StatusDeleted marks a soft-deleted order. Soft-deleted orders remain
	// in the store until they are purged.
	StatusDeleted Status = "DELETED"
)

// StatusFromString parses a status from its string representation.
// Returns an error if the string is not a valid status name.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status is either ACTIVE or DELETED.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusDeleted {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
