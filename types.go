package docforge

import (
	"github.com/kabishou11/DocForge/internal/markdown"
	"github.com/kabishou11/DocForge/internal/style"
)

// Input contains generation parameters for one document.
type Input struct {
	Markdown    string // Markdown content (required)
	Title       string // Optional title page heading, prepended before the parsed content
	Date        string // Optional date line rendered under the title
	Description string // Optional document metadata description
}

// Option configures a Generator.
type Option func(*Generator)

// WithOverrides applies a partial style override on top of the default
// style sheet. A nil override leaves the defaults untouched.
func WithOverrides(o *style.Overrides) Option {
	return func(g *Generator) {
		g.sheet = style.Resolve(o)
	}
}

// WithStyleSheet installs an already resolved style sheet. The sheet
// must be complete; Generate fails otherwise.
func WithStyleSheet(s style.StyleSheet) Option {
	return func(g *Generator) {
		g.sheet = s
	}
}

// WithStrictInline switches inline emphasis handling from the default
// toggle semantics to CommonMark's nested grammar. Output differs only
// on unbalanced or interleaved markers.
func WithStrictInline() Option {
	return func(g *Generator) {
		g.tokenize = markdown.TokenizeStrict
	}
}
