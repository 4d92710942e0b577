package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLabel        = errors.New("label is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrFieldTooLong      = errors.New("field is too long")
	ErrInvalidID         = errors.New("invalid credential id")
	ErrInvalidTimestamps = errors.New("invalid credential timestamps")
)
