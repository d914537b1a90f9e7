package assets

import "errors"

// Sentinel errors for preset loading.
var (
	// ErrStyleNotFound indicates the requested preset does not exist.
	ErrStyleNotFound = errors.New("style preset not found")

	// ErrInvalidAssetName indicates the preset name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid preset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading a preset file.
	ErrAssetRead = errors.New("failed to read preset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
