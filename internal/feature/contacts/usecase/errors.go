// Package usecase implements the business logic for the contacts feature.
package usecase

import "errors"

// ErrContactNotFound is returned when a contact does not exist or is
// not owned by the requesting user. Absence is a normal outcome of a
// lookup, distinct from a storage failure.
var ErrContactNotFound = errors.New("contact not found")
