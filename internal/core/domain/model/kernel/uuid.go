package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one of the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies menu items and orders. It wraps github.com/google/uuid so the
// domain never sees the nil identifier: the zero value fails Validate.
//
// Example:
//
//	id := kernel.NewUUID()
//
//	id, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    // reject the request
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical, braced, urn and hyphen-less forms.
// Parse failures come back as a ValueIsInvalidError.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("invalid UUID format", fmt.Errorf("%q: %w", s, err))
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores a UUID from its 16 byte form, the way the postgres
// driver hands `uuid` columns back when scanned into raw bytes.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("invalid UUID format", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// MustUUIDFromUUID wraps an already parsed google/uuid value. Used by persistence
// adapters, which store uuid.UUID columns directly.
func MustUUIDFromUUID(id uuid.UUID) UUID {
	return UUID{id: id}
}

// String returns the "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value, not a byte slice.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
