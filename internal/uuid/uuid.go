// Package uuid wraps github.com/google/uuid for URI binding and derived identifiers.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// namespace for identifiers derived from other identifiers, e.g. virtual income instances.
var namespace = google_uuid.MustParse("8d1c0b7e-5a43-4f5e-9e0c-3c1f6d9a2b71")

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// Derive returns a deterministic UUID for the combination of a source ID and a name.
//
// The same inputs always produce the same UUID.
func Derive(source google_uuid.UUID, name string) google_uuid.UUID {
	return google_uuid.NewSHA1(namespace, append(source[:], []byte(name)...))
}

// UnmarshalParam implements the uuid.Parse method
// from https://pkg.go.dev/github.com/google/uuid#Parse
// for UUID
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
