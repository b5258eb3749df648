package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when required local input is missing or malformed
// (credentials, locality inputs for resolution, parcel ids for printing).
var ErrInvalid = errors.New("invalid input")

// UpstreamError reports a carrier response that cannot be treated as
// success: a non-success status, or an unexpected content-type. The carrier
// body is kept verbatim so callers can inspect carrier-specific codes.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("carrier responded %d: %s", e.Status, e.Body)
}

// ResolutionError reports an exhausted site search: every attempt in the
// ladder was issued and none produced a usable site id.
type ResolutionError struct {
	Attempts     []map[string]any
	LastResponse string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("site resolution failed after %d attempts", len(e.Attempts))
}
