package docforge

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/kabishou11/DocForge/internal/document"
	"github.com/kabishou11/DocForge/internal/docx"
	"github.com/kabishou11/DocForge/internal/markdown"
	"github.com/kabishou11/DocForge/internal/style"
)

// Generator runs the markdown-to-docx synthesis pipeline: structural
// parsing, style resolution, assembly, and serialization. A Generator
// holds no mutable state across calls, so one instance may serve any
// number of concurrent generations.
type Generator struct {
	sheet    style.StyleSheet
	tokenize document.Tokenizer
}

// NewGenerator creates a Generator with the default style sheet.
// Use options to customize behavior (e.g., WithOverrides,
// WithStrictInline).
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sheet: style.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate runs the full pipeline and returns the document as bytes.
// The context is checked between stages; the stages themselves perform
// no I/O and never block.
func (g *Generator) Generate(ctx context.Context, input Input) ([]byte, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	blocks := markdown.Parse(input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err := document.Assemble(blocks, g.sheet, document.Options{
		Title:       input.Title,
		Date:        input.Date,
		Description: input.Description,
		Tokenize:    g.tokenize,
	})
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var buf bytes.Buffer
	if err := docx.Write(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	return buf.Bytes(), nil
}
