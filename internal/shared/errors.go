package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Resolution errors
	ErrArtistNotFound   = fmt.Errorf("artist not found")
	ErrCacheMiss        = fmt.Errorf("cache miss")
	ErrCacheWrite       = fmt.Errorf("cache write failed")
	ErrStoreUnavailable = fmt.Errorf("authoritative store unavailable")

	// Update errors
	ErrEmptyPatch = fmt.Errorf("no updatable fields in patch")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
