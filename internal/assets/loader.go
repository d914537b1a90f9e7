package assets

import "github.com/kabishou11/DocForge/internal/style"

// StyleLoader defines the contract for loading style presets.
// Implementations may load from embedded assets, the filesystem, or both.
type StyleLoader interface {
	// LoadStyle loads a style preset by name (without the .yaml extension).
	// Returns ErrStyleNotFound if the preset doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (*style.Overrides, error)
}
