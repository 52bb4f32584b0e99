package collection

import "errors"

// Sentinel errors returned by collection operations. Callers match with
// errors.Is; messages are wrapped with the offending name or path.
var (
	// ErrExists is returned by Create when the target directory already exists.
	ErrExists = errors.New("already exists")

	// ErrNotTracked is returned by Remove for names absent from the contents list.
	ErrNotTracked = errors.New("not tracked")

	// ErrInvalidSidecar is returned by Load when the sidecar file exists but
	// cannot be trusted: malformed JSON, schema violation, or an unsupported
	// format version.
	ErrInvalidSidecar = errors.New("invalid sidecar")
)
