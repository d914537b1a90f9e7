package main

import (
	"errors"

	"github.com/kabishou11/DocForge/internal/assets"
	"github.com/kabishou11/DocForge/internal/config"
	"github.com/kabishou11/DocForge/internal/docx"
	"github.com/kabishou11/DocForge/internal/hints"
	"github.com/kabishou11/DocForge/internal/style"
)

// hintFor returns an actionable hint for an error, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.BuiltinNames())
	case errors.Is(err, style.ErrIncomplete):
		return hints.ForIncompleteStyle()
	case errors.Is(err, docx.ErrNotDocx), errors.Is(err, docx.ErrMissingPart):
		return hints.ForExtractTemplate()
	case errors.Is(err, ErrWriteDocument):
		return hints.ForOutputDirectory()
	}
	return ""
}
