package domain

// LoadStats summarizes a completed cache load.
type LoadStats struct {
	// Groups is the number of groups read from the model.
	Groups int
	// Attached is the number of minified bundles assigned to a group.
	Attached int
	// Unmatched is the number of minified bundles whose derived group does not exist.
	// They are dropped.
	Unmatched int
	// Malformed is the number of paths that do not follow the naming convention.
	Malformed int
	// Digest identifies the loaded contents, see GroupSet.Digest.
	Digest string
}
