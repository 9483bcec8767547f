package entity

import (
	"errors"

	domainurl "github.com/bnema/workbench/internal/domain/url"
)

// ErrInvalidLocation is returned when a location is blank after normalization.
var ErrInvalidLocation = errors.New("invalid location")

// Location is a resource locator (URI) for a file, folder or workspace file.
type Location string

// Normalize returns the canonical form used for equality comparisons.
// See url.Canonical for the exact rules; comparison is case-sensitive.
func (l Location) Normalize() Location {
	return Location(domainurl.Canonical(string(l)))
}

// Equal reports whether two locations share the same normalized form.
func (l Location) Equal(other Location) bool {
	return l.Normalize() == other.Normalize()
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return string(l)
}

// Validate checks that the location is not blank.
func (l Location) Validate() error {
	if l.Normalize() == "" {
		return ErrInvalidLocation
	}
	return nil
}

// Label returns a short human readable name (the last path segment).
func (l Location) Label() string {
	return domainurl.Basename(string(l.Normalize()))
}
