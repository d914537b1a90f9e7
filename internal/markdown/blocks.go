// Package markdown parses loosely structured Markdown text, as typically
// produced by a language model, into typed structural blocks and
// formatted inline runs. Parsing is best-effort: malformed input
// degrades to plain paragraphs instead of failing.
package markdown

// List kinds.
const (
	ListBullet = "bullet"
	ListNumber = "number"
)

// Block is one structural unit of a parsed document. Implementations
// form a closed set; the assembler switches over them exhaustively.
type Block interface {
	block()
}

// Heading is an ATX heading with 1 to 6 leading '#' characters.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a span of contiguous plain lines, newline-joined. The
// text is not yet tokenized into runs; that happens at assembly time.
type Paragraph struct {
	Text string
}

// List is a run of adjacent same-kind list items. A change of kind, a
// blank line, or any other block terminates the list.
type List struct {
	Kind  string // ListBullet or ListNumber
	Items []string
}

// CodeBlock is the content between two triple-backtick fences, fence
// lines excluded. An unterminated fence consumes to end of input.
type CodeBlock struct {
	Text string
}

// Quote is a run of contiguous '>' lines, prefix stripped and
// newline-joined.
type Quote struct {
	Text string
}

// Rule is a horizontal rule (three or more '-' or '*' on a line).
type Rule struct{}

// Table is a run of contiguous pipe-delimited rows. Separator rows are
// dropped; the first remaining row is the header.
type Table struct {
	Rows [][]string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (List) block()      {}
func (CodeBlock) block() {}
func (Quote) block()     {}
func (Rule) block()      {}
func (Table) block()     {}

// Run is a maximal span of text sharing one formatting attribute set.
// Concatenating the Text of all runs in order reproduces the source
// text with the emphasis and code delimiters removed.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
}
