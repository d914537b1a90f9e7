package main

import (
	"fmt"

	"github.com/kabishou11/DocForge/internal/docx"
	"github.com/kabishou11/DocForge/internal/fileutil"
	"github.com/kabishou11/DocForge/internal/yamlutil"
)

// runExtract reads a DOCX template and writes a style override file.
func runExtract(positionalArgs []string, flags *extractFlags, env *Environment) error {
	if len(positionalArgs) == 0 {
		printExtractUsage(env.Stderr)
		return fmt.Errorf("%w: template file required", ErrUsage)
	}

	overrides, err := docx.ExtractOverrides(positionalArgs[0])
	if err != nil {
		return fmt.Errorf("extracting styles: %w", err)
	}

	data, err := yamlutil.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("encoding style file: %w", err)
	}

	if flags.output == "" {
		_, err := env.Stdout.Write(data)
		return err
	}

	if err := fileutil.WriteFile(flags.output, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}
