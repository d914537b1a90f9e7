package main

import (
	"context"
	"fmt"
	"time"

	docforge "github.com/kabishou11/DocForge"
	"github.com/kabishou11/DocForge/internal/assets"
	"github.com/kabishou11/DocForge/internal/config"
	"github.com/kabishou11/DocForge/internal/dateutil"
	"github.com/kabishou11/DocForge/internal/fileutil"
	"github.com/kabishou11/DocForge/internal/style"
)

// runGenerate orchestrates the generate command.
func runGenerate(ctx context.Context, positionalArgs []string, flags *generateFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve "auto" date once for the entire batch
	if cfg.Document.Date != "" {
		cfg.Document.Date, err = dateutil.ResolveDate(cfg.Document.Date, time.Now())
		if err != nil {
			return fmt.Errorf("invalid date format: %w", err)
		}
	}

	// Resolve style overrides
	overrides, err := resolveStyleOverrides(cfg.Style, flags.assetPath)
	if err != nil {
		return err
	}

	// Resolve input path
	inputPath, explicitOutput := resolveInput(positionalArgs, flags, cfg)
	if inputPath == "" {
		return ErrNoInput
	}

	// Discover files to convert
	files, err := discoverFiles(inputPath, resolveOutputDir(explicitOutput, flags, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	// Build generator options once for the whole batch
	opts := []docforge.Option{docforge.WithOverrides(overrides)}
	if cfg.Strict {
		opts = append(opts, docforge.WithStrictInline())
	}

	pool := docforge.NewGeneratorPool(docforge.ResolvePoolSize(cfg.Workers), opts...)

	results := generateBatch(ctx, pool, files, cfg)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d generation(s) failed", failedCount)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.date != "" {
		cfg.Document.Date = flags.date
	}
	if flags.description != "" {
		cfg.Document.Description = flags.description
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.strict {
		cfg.Strict = true
	}
	if flags.inputDir != "" {
		cfg.Input.DefaultDir = flags.inputDir
	}
}

// resolveStyleOverrides loads style overrides from a file path or preset name.
// An empty nameOrPath yields nil overrides, which resolve to the defaults.
func resolveStyleOverrides(nameOrPath, assetPath string) (*style.Overrides, error) {
	if nameOrPath == "" {
		return nil, nil
	}

	if fileutil.IsFilePath(nameOrPath) {
		return style.Load(nameOrPath)
	}

	resolver, err := assets.NewStyleResolver(assetPath)
	if err != nil {
		return nil, err
	}
	return resolver.LoadStyle(nameOrPath)
}

// resolveInput determines the input path and any explicit output path from
// positional args, flags, and config. Batch mode (--input-dir) ignores the
// positional output.
func resolveInput(args []string, flags *generateFlags, cfg *config.Config) (inputPath, explicitOutput string) {
	if flags.inputDir != "" {
		return flags.inputDir, ""
	}
	if len(args) > 0 {
		inputPath = args[0]
		if len(args) > 1 {
			explicitOutput = args[1]
		}
		return inputPath, explicitOutput
	}
	return cfg.Input.DefaultDir, ""
}

// resolveOutputDir determines the output destination from positional arg,
// flag, or config, in that order.
func resolveOutputDir(explicitOutput string, flags *generateFlags, cfg *config.Config) string {
	if explicitOutput != "" {
		return explicitOutput
	}
	if flags.output != "" {
		return flags.output
	}
	return cfg.Output.DefaultDir
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
