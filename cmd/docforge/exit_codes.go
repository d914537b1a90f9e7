package main

import (
	"errors"
	"os"

	docforge "github.com/kabishou11/DocForge"
	"github.com/kabishou11/DocForge/internal/assets"
	"github.com/kabishou11/DocForge/internal/config"
	"github.com/kabishou11/DocForge/internal/dateutil"
	"github.com/kabishou11/DocForge/internal/docx"
	"github.com/kabishou11/DocForge/internal/style"
)

// Exit codes for the docforge CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or style
	ExitIO      = 3 // File not found, permission denied
	ExitEncode  = 4 // Document serialization errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Serialization errors (exit 4)
	if errors.Is(err, docforge.ErrSerialization) {
		return ExitEncode
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteDocument) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, docx.ErrNotDocx) ||
		errors.Is(err, docx.ErrMissingPart) {
		return ExitIO
	}

	// Usage/config/style errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, style.ErrIncomplete) ||
		errors.Is(err, style.ErrStyleFileNotFound) ||
		errors.Is(err, style.ErrStyleParse) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, docforge.ErrEmptyMarkdown) {
		return ExitUsage
	}

	return ExitGeneral
}
