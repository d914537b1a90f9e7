// Package docforge turns LLM-authored Markdown drafts into formatted
// Word documents, driven by a declarative style sheet.
//
// # Quick Start
//
// Create a generator, generate, and write the bytes wherever you want:
//
//	gen := docforge.NewGenerator()
//
//	result, err := gen.Generate(ctx, docforge.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result, 0644)
//
// # Styling
//
// Formatting is controlled by a style sheet: page geometry, font
// families and sizes, paragraph spacing, and generated heading, list,
// and code styles. A partial override (typically loaded from a YAML or
// JSON file) is resolved onto complete defaults, so every field is
// always defined:
//
//	overrides, err := style.Load("corporate.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gen := docforge.NewGenerator(docforge.WithOverrides(overrides))
//
// # Concurrency
//
// Generators hold no mutable state: one instance may serve any number
// of concurrent Generate calls. GeneratorPool bounds concurrency for
// batch workloads.
package docforge
