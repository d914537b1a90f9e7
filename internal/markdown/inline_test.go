package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Run
	}{
		{
			name:     "plain text",
			input:    "hello world",
			expected: []Run{{Text: "hello world"}},
		},
		{
			name:  "bold span",
			input: "Some **bold** text.",
			expected: []Run{
				{Text: "Some "},
				{Text: "bold", Bold: true},
				{Text: " text."},
			},
		},
		{
			name:  "italic span",
			input: "an *italic* word",
			expected: []Run{
				{Text: "an "},
				{Text: "italic", Italic: true},
				{Text: " word"},
			},
		},
		{
			name:  "bold and italic overlap",
			input: "**a*b**c*",
			expected: []Run{
				{Text: "a", Bold: true},
				{Text: "b", Bold: true, Italic: true},
				{Text: "c", Italic: true},
			},
		},
		{
			name:  "unbalanced bold runs to end",
			input: "trailing **bold",
			expected: []Run{
				{Text: "trailing "},
				{Text: "bold", Bold: true},
			},
		},
		{
			name:  "toggle sequence is literal not nested",
			input: "*a**b*c**",
			expected: []Run{
				{Text: "a", Italic: true},
				{Text: "b", Bold: true, Italic: true},
				{Text: "c", Bold: true},
			},
		},
		{
			name:  "inline code",
			input: "run `go build` now",
			expected: []Run{
				{Text: "run "},
				{Text: "go build", Code: true},
				{Text: " now"},
			},
		},
		{
			name:  "code ignores emphasis markers",
			input: "`a*b**c`",
			expected: []Run{
				{Text: "a*b**c", Code: true},
			},
		},
		{
			name:  "code does not affect toggles",
			input: "**x`y`z**",
			expected: []Run{
				{Text: "x", Bold: true},
				{Text: "y", Code: true},
				{Text: "z", Bold: true},
			},
		},
		{
			name:  "fenced span",
			input: "see ```f(x)``` here",
			expected: []Run{
				{Text: "see "},
				{Text: "f(x)", Code: true},
				{Text: " here"},
			},
		},
		{
			name:  "unterminated fence consumes rest",
			input: "start ```code to end",
			expected: []Run{
				{Text: "start "},
				{Text: "code to end", Code: true},
			},
		},
		{
			name:  "unterminated inline code consumes rest",
			input: "a `rest",
			expected: []Run{
				{Text: "a "},
				{Text: "rest", Code: true},
			},
		},
		{
			name:     "empty input yields one empty run",
			input:    "",
			expected: []Run{{}},
		},
		{
			name:     "only markers yields one empty run",
			input:    "****",
			expected: []Run{{}},
		},
		{
			name:  "multibyte text",
			input: "中文**加粗**结尾",
			expected: []Run{
				{Text: "中文"},
				{Text: "加粗", Bold: true},
				{Text: "结尾"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

// Concatenating run texts must reproduce the input with only the
// delimiter characters removed.
func TestTokenizeConcatenation(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"plain",
		"Some **bold** text.",
		"*a**b*c**",
		"mixed `code` and *emphasis*",
		"```fence``` tail",
		"unterminated `code",
		"**",
		"中文 *斜体* 文本",
	}

	strip := strings.NewReplacer("*", "", "`", "")
	for _, input := range inputs {
		var concat strings.Builder
		for _, r := range Tokenize(input) {
			concat.WriteString(r.Text)
		}
		if got, want := concat.String(), strip.Replace(input); got != want {
			t.Errorf("Tokenize(%q) concatenates to %q, want %q", input, got, want)
		}
	}
}

// An even number of ** markers must leave the bold toggle where it
// started; an odd number must leave it flipped. The toggle state after
// the scan is observed by appending a plain probe character.
func TestTokenizeBoldToggleParity(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "**a**", "**a** b **c**", "**a", "on **off", "a **b** c **d**"}

	for _, input := range inputs {
		runs := Tokenize(input + "z")
		finalBold := runs[len(runs)-1].Bold
		even := strings.Count(input, "**")%2 == 0
		if even == finalBold {
			t.Errorf("Tokenize(%q): %d bold markers but final toggle state %v",
				input, strings.Count(input, "**"), finalBold)
		}
	}
}
