package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kabishou11/DocForge/internal/markdown"
	"github.com/kabishou11/DocForge/internal/style"
	"github.com/kabishou11/DocForge/internal/units"
)

// Fixed layout constants, independent of the sheet's generic paragraph
// spacing.
const (
	headingSpaceBeforeMm = 12
	headingSpaceAfterMm  = 6
	listLeftIndentMm     = 10
	listHangingMm        = 5
	ruleGlyph            = "─"
	ruleWidth            = 30
)

// Tokenizer converts one block's raw text into formatted runs.
type Tokenizer func(string) []markdown.Run

// Options configures assembly.
type Options struct {
	Title       string
	Date        string
	Description string

	// Tokenize overrides the inline tokenizer. Nil means the default
	// toggle-semantics tokenizer.
	Tokenize Tokenizer
}

// Assemble walks the block sequence and the resolved style sheet to
// build the document model. It is the only stage that can fail: an
// incomplete sheet means a caller bypassed resolution, and that is
// reported instead of silently defaulting.
func Assemble(blocks []markdown.Block, sheet style.StyleSheet, opts Options) (*Document, error) {
	if err := sheet.Complete(); err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	tokenize := opts.Tokenize
	if tokenize == nil {
		tokenize = markdown.Tokenize
	}

	a := assembler{sheet: &sheet, tokenize: tokenize}

	if opts.Title != "" {
		a.emit(Unit{
			Kind:      KindTitle,
			StyleID:   style.StyleIDTitle,
			Runs:      []markdown.Run{{Text: opts.Title, Bold: true}},
			Alignment: style.AlignCenter,
		})
	}
	if opts.Date != "" {
		a.emit(Unit{
			Kind:      KindParagraph,
			StyleID:   style.StyleIDCaption,
			Runs:      []markdown.Run{{Text: opts.Date}},
			Alignment: style.AlignCenter,
		})
	}

	for _, b := range blocks {
		switch block := b.(type) {
		case markdown.Heading:
			a.heading(block)
		case markdown.Paragraph:
			a.paragraph(block)
		case markdown.List:
			a.list(block)
		case markdown.CodeBlock:
			a.code(block)
		case markdown.Quote:
			a.quoteBlock(block)
		case markdown.Rule:
			a.rule()
		case markdown.Table:
			a.table(block)
		}
	}

	return &Document{
		Title:       opts.Title,
		Description: opts.Description,
		Sheet:       sheet,
		Units:       a.units,
	}, nil
}

type assembler struct {
	sheet    *style.StyleSheet
	tokenize Tokenizer
	units    []Unit
}

func (a *assembler) emit(u Unit) {
	a.units = append(a.units, u)
}

func (a *assembler) heading(h markdown.Heading) {
	level := clipLevel(h.Level)

	hs, ok := a.sheet.HeadingFor(level)
	if !ok {
		// The sheet declares no style for this level; synthesize one.
		hs = style.HeadingStyle{
			Level:   level,
			StyleID: fmt.Sprintf("Heading%d", level),
		}
	}

	a.emit(Unit{
		Kind:        KindHeading,
		StyleID:     hs.StyleID,
		Runs:        a.tokenize(h.Text),
		SpaceBefore: units.MmToTwips(headingSpaceBeforeMm),
		SpaceAfter:  units.MmToTwips(headingSpaceAfterMm),
	})
}

func (a *assembler) paragraph(p markdown.Paragraph) {
	para := a.sheet.Paragraph

	u := Unit{
		Kind:        KindParagraph,
		StyleID:     style.StyleIDNormal,
		Runs:        a.tokenize(p.Text),
		SpaceBefore: units.PtToTwips(para.SpaceBeforePt),
		SpaceAfter:  units.PtToTwips(para.SpaceAfterPt),
		Line:        units.MultipleToLine(para.LineSpacing),
	}

	switch para.FirstLineIndent.Unit {
	case style.IndentUnitChar:
		u.FirstLineChars = units.CharsToFirstLineChars(para.FirstLineIndent.Value)
	default:
		u.FirstLine = units.MmToTwips(para.FirstLineIndent.Value)
	}

	a.emit(u)
}

func (a *assembler) list(l markdown.List) {
	marker := a.marker(l.Kind)

	// Numbering is 1-based per list instance, not document-wide.
	for i, item := range l.Items {
		prefix := marker + " "
		if l.Kind == markdown.ListNumber {
			prefix = numberedPrefix(marker, i+1) + " "
		}

		runs := append([]markdown.Run{{Text: prefix}}, a.tokenize(item)...)
		a.emit(Unit{
			Kind:       KindListItem,
			StyleID:    style.StyleIDList,
			Runs:       runs,
			LeftIndent: units.MmToTwips(listLeftIndentMm),
			Hanging:    units.MmToTwips(listHangingMm),
		})
	}
}

// marker returns the marker text for a list kind: the bullet glyph
// itself, or the ordinal marker for numbered lists. A numbered marker
// may carry a %d placeholder for the item number.
func (a *assembler) marker(kind string) string {
	if ls, ok := a.sheet.ListFor(kind); ok && ls.Marker != "" {
		return ls.Marker
	}
	if kind == markdown.ListNumber {
		return "%d."
	}
	return "•"
}

// numberedPrefix substitutes the 1-based ordinal into the marker. A
// marker without a %d placeholder is literal marker text appended to
// the ordinal, so a sheet declaring "." renders "1." and never leaks
// fmt noise into the document.
func numberedPrefix(marker string, n int) string {
	ordinal := strconv.Itoa(n)
	if strings.Contains(marker, "%d") {
		return strings.ReplaceAll(marker, "%d", ordinal)
	}
	return ordinal + marker
}

func (a *assembler) code(c markdown.CodeBlock) {
	ext := a.sheet.Styles[style.StyleIDCode]

	u := Unit{
		Kind:    KindCode,
		StyleID: style.StyleIDCode,
		// Raw text verbatim, no inline tokenization.
		Runs:    []markdown.Run{{Text: c.Text, Code: true}},
		Shading: ext.Shading,
	}
	if ext.Indent != nil {
		u.LeftIndent = units.MmToTwips(ext.Indent.LeftMm)
	}

	a.emit(u)
}

func (a *assembler) quoteBlock(q markdown.Quote) {
	ext := a.sheet.Styles[style.StyleIDQuote]

	u := Unit{
		Kind:    KindQuote,
		StyleID: style.StyleIDQuote,
		Runs:    a.tokenize(q.Text),
	}
	if ext.Indent != nil {
		u.LeftIndent = units.MmToTwips(ext.Indent.LeftMm)
	}

	a.emit(u)
}

func (a *assembler) rule() {
	a.emit(Unit{
		Kind:      KindRule,
		StyleID:   style.StyleIDNormal,
		Runs:      []markdown.Run{{Text: strings.Repeat(ruleGlyph, ruleWidth)}},
		Alignment: style.AlignCenter,
	})
}

func (a *assembler) table(tbl markdown.Table) {
	a.emit(Unit{
		Kind:      KindTable,
		StyleID:   style.StyleIDNormal,
		Rows:      tbl.Rows,
		HeaderRow: len(tbl.Rows) > 1,
	})
}

// clipLevel clips a heading level into [1, 6].
func clipLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
