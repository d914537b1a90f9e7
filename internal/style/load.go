package style

import (
	"errors"
	"fmt"
	"os"

	"github.com/kabishou11/DocForge/internal/yamlutil"
)

// Sentinel errors for style file loading.
var (
	ErrStyleFileNotFound = errors.New("style file not found")
	ErrStyleParse        = errors.New("failed to parse style file")
)

// Parse decodes a style override document. Both YAML and JSON inputs
// are accepted. Unknown top-level keys are ignored so newer style files
// keep working with older binaries.
func Parse(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yamlutil.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleParse, err)
	}
	return &o, nil
}

// Load reads and decodes a style override file.
func Load(path string) (*Overrides, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- style path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStyleFileNotFound, path)
		}
		return nil, fmt.Errorf("reading style file: %w", err)
	}
	return Parse(data)
}
