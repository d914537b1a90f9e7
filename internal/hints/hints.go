// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/docforge/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/docforge) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/docforge") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForStyleNotFound returns hints for style preset not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForIncompleteStyle returns hints for incomplete style sheet errors.
// A resolved sheet can only be incomplete when callers bypass resolution,
// so point them at the override path.
func ForIncompleteStyle() string {
	return format("pass a partial style file to --style; missing fields fall back to defaults")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForExtractTemplate returns hints for unreadable DOCX templates.
func ForExtractTemplate() string {
	return format("the template must be a .docx package with word/styles.xml")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
