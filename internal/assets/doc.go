// Package assets provides built-in style presets for document generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in presets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── StyleResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in presets (default, compact, manuscript)
// embedded at compile time.
//
// FilesystemLoader allows users to provide custom presets from a directory,
// with path traversal protection and symlink resolution.
//
// StyleResolver is the loader used by the CLI. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the preset is
// not found. This enables overriding individual presets while keeping the
// built-in ones available.
//
// # Directory Structure
//
// Custom preset directories hold one YAML override file per preset:
//
//	{basePath}/
//	├── default.yaml
//	└── {name}.yaml
//
// # Security
//
// Preset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
