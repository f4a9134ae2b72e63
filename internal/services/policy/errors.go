package policy

import "errors"

// ErrConfigFetch is returned when any of the policy documents could not be
// retrieved or decoded.
var ErrConfigFetch = errors.New("fee configuration fetch failed")
