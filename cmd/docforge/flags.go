package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common      commonFlags
	output      string
	inputDir    string
	workers     int
	style       string
	assetPath   string
	title       string
	date        string
	description string
	strict      bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, errW io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.inputDir, "input-dir", "", "directory of markdown files to convert")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.style, "style", "s", "", "style preset name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom preset directory")
	fs.StringVarP(&f.title, "title", "t", "", "document title rendered before the body")
	fs.StringVar(&f.date, "date", "", "date line under the title (\"auto\" = today)")
	fs.StringVar(&f.description, "description", "", "document description (core properties)")
	fs.BoolVar(&f.strict, "strict-inline", false, "CommonMark-style inline parsing")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printGenerateUsage(errW) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// extractFlags holds flags for the extract command.
type extractFlags struct {
	common commonFlags
	output string
}

// parseExtractFlags parses extract command flags and returns positional args.
func parseExtractFlags(args []string, errW io.Writer) (*extractFlags, []string, error) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	f := &extractFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output style file (default: stdout)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printExtractUsage(errW) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
