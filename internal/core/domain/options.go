package domain

// CacheOptions tunes how a cache treats its inputs.
type CacheOptions struct {
	// StrictNames makes a minified path that does not follow the naming
	// convention fail the load instead of being skipped.
	StrictNames bool
}
