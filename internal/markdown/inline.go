package markdown

import "strings"

// Tokenize converts one paragraph of text into an ordered sequence of
// formatted runs. Bold and italic are independent toggles flipped by
// "**" and "*": unbalanced or interleaved markers reflect the literal
// toggle sequence rather than a nested grammar. This matches how the
// tool has always rendered LLM output; TokenizeStrict offers nested
// semantics for callers that want them.
//
// Backtick spans become code runs unaffected by (and not affecting)
// the emphasis toggles. A span opened by "```" or "`" that never
// closes consumes the rest of the input.
func Tokenize(text string) []Run {
	var runs []Run
	var buf strings.Builder
	bold, italic := false, false

	// flush emits the pending buffer with the pre-flip toggle state.
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		runs = append(runs, Run{Text: buf.String(), Bold: bold, Italic: italic})
		buf.Reset()
	}

	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], "```"):
			flush()
			rest := text[i+3:]
			end := strings.Index(rest, "```")
			if end < 0 {
				runs = append(runs, Run{Text: rest, Code: true})
				i = len(text)
				continue
			}
			runs = append(runs, Run{Text: rest[:end], Code: true})
			i += 3 + end + 3
		case text[i] == '`':
			flush()
			rest := text[i+1:]
			end := strings.IndexByte(rest, '`')
			if end < 0 {
				runs = append(runs, Run{Text: rest, Code: true})
				i = len(text)
				continue
			}
			runs = append(runs, Run{Text: rest[:end], Code: true})
			i += 1 + end + 1
		case strings.HasPrefix(text[i:], "**"):
			flush()
			bold = !bold
			i += 2
		case text[i] == '*':
			flush()
			italic = !italic
			i++
		default:
			buf.WriteByte(text[i])
			i++
		}
	}

	flush()
	if len(runs) == 0 {
		return []Run{{}}
	}
	return runs
}
