package core

import "fmt"

// NotFoundError reports that a template or timesheet id did not resolve.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// DuplicateError reports a uniqueness conflict on create. ExistingID and
// ExistingName identify the record that already holds the constrained value.
type DuplicateError struct {
	Resource     string
	ExistingID   string
	ExistingName string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists", e.Resource)
}

// ForbiddenError reports that the caller is neither the owner nor the
// approver/reviewer of the timesheet they tried to access.
type ForbiddenError struct {
	Resource string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("access to %s forbidden", e.Resource)
}
