package sol

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrBufferUnderrun       = errors.New("sol: unexpected end of buffer")
	ErrBadTypeMarker        = errors.New("sol: unexpected AMF3 type marker")
	ErrUnsupportedReference = errors.New("sol: AMF3 reference values are not supported")
	ErrValueOutOfRange      = errors.New("sol: value out of range")

	ErrMissingField       = errors.New("sol: container is missing a required member")
	ErrMalformedPayload   = errors.New("sol: malformed data payload")
	ErrInvalidProfileJSON = errors.New("sol: inner profile is not valid JSON")

	ErrSerialization = errors.New("sol: profile is not serializable")

	ErrMissingRawBytes = errors.New("sol: entry is missing raw_sol.value_b64")
	ErrInputFormat     = errors.New("sol: unrecognized input document shape")
)

// UnappliedEditError reports a decoded entry whose profile or outer fields
// no longer match what its raw bytes decode to. Reusing the raw bytes
// would silently discard the edit, so the caller must opt into a rebuild.
type UnappliedEditError struct {
	Key   string
	Field string
}

func (e *UnappliedEditError) Error() string {
	return fmt.Sprintf("sol: entry %q: %s differs from its raw SOL payload; pass --apply-edits to rebuild from the edited values", e.Key, e.Field)
}
