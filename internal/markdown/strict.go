package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// strictMD parses inline content with CommonMark's nested emphasis
// grammar. Shared and safe for concurrent use: goldmark parsers are
// stateless across Parse calls.
var strictMD = goldmark.New()

// TokenizeStrict converts one paragraph of text into formatted runs
// using proper nested emphasis semantics instead of the default toggle
// scan. Delimiters that CommonMark leaves unmatched stay in the text,
// so the output can differ from Tokenize on unbalanced input.
func TokenizeStrict(text string) []Run {
	source := []byte(text)
	root := strictMD.Parser().Parse(gmtext.NewReader(source))

	var runs []Run
	var boldDepth, italicDepth int

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Emphasis:
			delta := 1
			if !entering {
				delta = -1
			}
			if node.Level >= 2 {
				boldDepth += delta
			} else {
				italicDepth += delta
			}
		case *ast.CodeSpan:
			if entering {
				runs = append(runs, Run{Text: string(nodeText(node, source)), Code: true})
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			if entering {
				runs = append(runs, Run{
					Text:   string(node.Segment.Value(source)),
					Bold:   boldDepth > 0,
					Italic: italicDepth > 0,
				})
				if node.SoftLineBreak() || node.HardLineBreak() {
					runs = append(runs, Run{Text: "\n", Bold: boldDepth > 0, Italic: italicDepth > 0})
				}
			}
		case *ast.String:
			if entering {
				runs = append(runs, Run{
					Text:   string(node.Value),
					Bold:   boldDepth > 0,
					Italic: italicDepth > 0,
				})
			}
		}
		return ast.WalkContinue, nil
	})

	runs = mergeAdjacent(runs)
	if len(runs) == 0 {
		return []Run{{}}
	}
	return runs
}

// nodeText concatenates the text segments under a node.
func nodeText(n ast.Node, source []byte) []byte {
	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			out = append(out, t.Segment.Value(source)...)
		}
	}
	return out
}

// mergeAdjacent joins consecutive runs with identical attributes, and
// drops empty ones. goldmark splits text at every delimiter candidate,
// which would otherwise leak into the run sequence.
func mergeAdjacent(runs []Run) []Run {
	out := runs[:0]
	for _, r := range runs {
		if r.Text == "" && !r.Code {
			continue
		}
		if n := len(out); n > 0 &&
			out[n-1].Bold == r.Bold &&
			out[n-1].Italic == r.Italic &&
			out[n-1].Code == r.Code && !r.Code {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}
