package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/kabishou11/DocForge/internal/style"
)

//go:embed styles/*
var styles embed.FS

// EmbeddedLoader loads style presets from the embedded filesystem.
// Implements StyleLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a built-in style preset by name.
// The name should not include the .yaml extension.
func (e *EmbeddedLoader) LoadStyle(name string) (*style.Overrides, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := styles.ReadFile("styles/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	o, err := style.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return o, nil
}

// BuiltinNames returns the names of all embedded presets, sorted.
func BuiltinNames() []string {
	entries, err := styles.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ StyleLoader = (*EmbeddedLoader)(nil)
