package domain

import "go.trai.ch/zerr"

var (
	// ErrNotConstructed is returned when the cache is requested before a configuration source was supplied.
	ErrNotConstructed = zerr.New("cache instance was not created")

	// ErrNotInitialized is returned when a group is queried before the cache finished loading.
	ErrNotInitialized = zerr.New("cache was not correctly initialized")

	// ErrNilSource is returned when a cache is created without a configuration source.
	ErrNilSource = zerr.New("configuration source is nil")

	// ErrNilModel is returned when the configuration source yields no resource model.
	ErrNilModel = zerr.New("resource model is nil")

	// ErrEmptyGroupName is returned when a group in the resource model has no name.
	ErrEmptyGroupName = zerr.New("group name is empty")

	// ErrDuplicateGroup is returned when two groups in the resource model share a name.
	ErrDuplicateGroup = zerr.New("duplicate group")

	// ErrUnknownResourceType is returned when a file extension is neither js nor css.
	ErrUnknownResourceType = zerr.New("unknown resource type")

	// ErrMalformedMinifiedName is returned when a minified file name does not follow
	// the "<group>-<suffix>.<ext>" convention.
	ErrMalformedMinifiedName = zerr.New("malformed minified file name")

	// ErrUnsupportedModelFormat is returned when a model file has an extension no provider understands.
	ErrUnsupportedModelFormat = zerr.New("unsupported model format")

	// ErrUnsupportedElement is returned when a model file uses a construct this module does not resolve.
	ErrUnsupportedElement = zerr.New("unsupported model element")
)

// ErrGroupNotFound is returned by commands that require the named group to exist.
var ErrGroupNotFound = zerr.New("group not found")
