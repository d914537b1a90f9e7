package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	docforge "github.com/kabishou11/DocForge"
	"github.com/kabishou11/DocForge/internal/config"
	"github.com/kabishou11/DocForge/internal/fileutil"
)

// GenerationResult holds the outcome of a single generation.
type GenerationResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// Pool abstracts generator pool operations for testability.
type Pool interface {
	Acquire() *docforge.Generator
	Release(*docforge.Generator)
	Size() int
}

// generateBatch processes files concurrently using the generator pool.
// Results keep the discovery order regardless of completion order.
func generateBatch(ctx context.Context, pool Pool, files []FileToConvert, cfg *config.Config) []GenerationResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]GenerationResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			gen := pool.Acquire()
			defer pool.Release(gen)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = GenerationResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = generateFile(ctx, gen, files[idx], cfg)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generateFile processes a single file and returns the result.
func generateFile(ctx context.Context, gen *docforge.Generator, f FileToConvert, cfg *config.Config) GenerationResult {
	start := time.Now()
	result := GenerationResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	docBytes, err := gen.Generate(ctx, docforge.Input{
		Markdown:    string(content),
		Title:       cfg.Document.Title,
		Date:        cfg.Document.Date,
		Description: cfg.Document.Description,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFile(f.OutputPath, docBytes); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteDocument, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// printResults outputs generation results and returns the failure count.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
