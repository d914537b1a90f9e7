// Package document assembles parsed blocks and a resolved style sheet
// into the hierarchical model handed to the serialization backend.
package document

import (
	"github.com/kabishou11/DocForge/internal/markdown"
	"github.com/kabishou11/DocForge/internal/style"
)

// Unit kinds.
const (
	KindTitle     = "title"
	KindHeading   = "heading"
	KindParagraph = "paragraph"
	KindListItem  = "listItem"
	KindCode      = "code"
	KindQuote     = "quote"
	KindRule      = "rule"
	KindTable     = "table"
)

// Unit is one per-block render unit: a resolved style id, converted
// native-unit spacing and indents, and either formatted runs or raw
// table rows. All lengths are in twips; Line is in 240ths of a line;
// FirstLineChars is in hundredths of a character.
type Unit struct {
	Kind    string
	StyleID string
	Runs    []markdown.Run

	SpaceBefore    int
	SpaceAfter     int
	Line           int
	FirstLine      int
	FirstLineChars int
	LeftIndent     int
	Hanging        int

	Alignment string
	Shading   string

	// Table payload; nil for every other kind. The first row is the
	// header when HeaderRow is set.
	Rows      [][]string
	HeaderRow bool
}

// Document is the assembled model: the resolved sheet (the serializer
// generates the stylesheet and page geometry from it) plus the ordered
// render units. Immutable after assembly.
type Document struct {
	Title       string
	Description string
	Sheet       style.StyleSheet
	Units       []Unit
}
