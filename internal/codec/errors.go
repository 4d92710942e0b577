package codec

import "errors"

var (
	// ErrCorruptContainer is returned by [Decode] when the decrypted text is
	// not a well-formed credential list. Records are never silently dropped.
	ErrCorruptContainer = errors.New("corrupt credential container")

	// ErrDuplicateIdentifier is returned when two credentials share an ID.
	ErrDuplicateIdentifier = errors.New("duplicate credential identifier")

	// ErrInvalidTimestamps is returned when a credential has
	// updatedAt < createdAt.
	ErrInvalidTimestamps = errors.New("credential updated before it was created")
)
