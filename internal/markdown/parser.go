package markdown

import (
	"regexp"
	"strings"
)

// Precompiled line classification patterns.
var (
	crlfOrCR    = regexp.MustCompile(`\r\n?`)
	headingLine = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletLine  = regexp.MustCompile(`^[-*]\s+(.*)$`)
	numberLine  = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	ruleLine    = regexp.MustCompile(`^[-*]{3,}$`)
	tableSepRow = regexp.MustCompile(`^:?-+:?$`)
)

// normalizeLineEndings converts CRLF and CR to LF.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// Parse converts a Markdown document into an ordered block sequence.
// It is a line-oriented single pass and never fails: every input,
// however malformed, produces a best-effort result. Every non-blank
// input line is accounted for by exactly one block.
func Parse(markdown string) []Block {
	p := parser{}
	lines := strings.Split(normalizeLineEndings(markdown), "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if line == "" {
			p.flushAll()
			continue
		}

		if m := headingLine.FindStringSubmatch(line); m != nil {
			p.flushAll()
			p.emit(Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])})
			continue
		}

		if strings.HasPrefix(line, "```") {
			p.flushAll()
			var code []string
			for i++; i < len(lines); i++ {
				if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
					break
				}
				code = append(code, lines[i])
			}
			p.emit(CodeBlock{Text: strings.Trim(strings.Join(code, "\n"), "\n")})
			continue
		}

		if ruleLine.MatchString(line) {
			p.flushAll()
			p.emit(Rule{})
			continue
		}

		if m := bulletLine.FindStringSubmatch(line); m != nil {
			p.item(ListBullet, m[1])
			continue
		}

		if m := numberLine.FindStringSubmatch(line); m != nil {
			p.item(ListNumber, m[1])
			continue
		}

		if strings.HasPrefix(line, ">") {
			p.flushParagraph()
			p.flushList()
			p.flushTable()
			p.quote = append(p.quote, strings.TrimSpace(strings.TrimPrefix(line, ">")))
			continue
		}

		if strings.HasPrefix(line, "|") {
			p.flushParagraph()
			p.flushList()
			p.flushQuote()
			if cells := splitTableRow(line); cells != nil {
				p.table = append(p.table, cells)
			}
			continue
		}

		// Plain content line: joins the pending paragraph.
		p.flushList()
		p.flushQuote()
		p.flushTable()
		p.paragraph = append(p.paragraph, line)
	}

	p.flushAll()
	return p.blocks
}

// parser accumulates pending block state during the line scan.
type parser struct {
	blocks    []Block
	paragraph []string
	listKind  string
	listItems []string
	quote     []string
	table     [][]string
}

func (p *parser) emit(b Block) {
	p.blocks = append(p.blocks, b)
}

// item appends to the open list of the same kind, or terminates the
// current list and opens a new one on a kind change.
func (p *parser) item(kind, text string) {
	p.flushParagraph()
	p.flushQuote()
	p.flushTable()
	if p.listKind != "" && p.listKind != kind {
		p.flushList()
	}
	p.listKind = kind
	p.listItems = append(p.listItems, text)
}

func (p *parser) flushParagraph() {
	if len(p.paragraph) > 0 {
		p.emit(Paragraph{Text: strings.Join(p.paragraph, "\n")})
		p.paragraph = nil
	}
}

func (p *parser) flushList() {
	if len(p.listItems) > 0 {
		p.emit(List{Kind: p.listKind, Items: p.listItems})
	}
	p.listKind = ""
	p.listItems = nil
}

func (p *parser) flushQuote() {
	if len(p.quote) > 0 {
		p.emit(Quote{Text: strings.Join(p.quote, "\n")})
		p.quote = nil
	}
}

func (p *parser) flushTable() {
	if len(p.table) > 0 {
		p.emit(Table{Rows: p.table})
		p.table = nil
	}
}

func (p *parser) flushAll() {
	p.flushParagraph()
	p.flushList()
	p.flushQuote()
	p.flushTable()
}

// splitTableRow splits a pipe row into trimmed cells, dropping the
// empty edge cells produced by leading and trailing pipes. Separator
// rows ("---", ":--:") return nil.
func splitTableRow(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	separator := true
	for _, part := range parts {
		cell := strings.TrimSpace(part)
		if !tableSepRow.MatchString(cell) {
			separator = false
		}
		cells = append(cells, cell)
	}
	if separator {
		return nil
	}
	return cells
}
