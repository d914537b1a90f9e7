// Package dateutil resolves the "auto" date syntax used for document
// date lines. User-friendly tokens (YYYY, MMMM, DD) translate to Go
// time layouts so config files never contain the reference date.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a date format that cannot be resolved.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength caps format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat applies when "auto" carries no explicit format.
const DefaultDateFormat = "YYYY-MM-DD"

// DatePresets names common formats usable as "auto:<preset>".
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

type token struct {
	text   string
	layout string
}

// dateTokens in greedy match order: longer tokens first, so MMMM wins
// over MM and YYYY over YY.
var dateTokens = []token{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// ParseDateFormat translates a token format string into a Go time
// layout. Bracketed text is literal, so "[Date] DD" keeps the word
// "Date"; other non-token characters pass through as-is. Empty,
// over-long, and unclosed-bracket formats are rejected.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format))

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			layout.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}
		if t, ok := matchToken(format[i:]); ok {
			layout.WriteString(t.layout)
			i += len(t.text)
			continue
		}
		layout.WriteByte(format[i])
		i++
	}

	return layout.String(), nil
}

func matchToken(s string) (token, bool) {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.text) {
			return t, true
		}
	}
	return token{}, false
}

// ResolveDate expands "auto" date values against the supplied time:
//
//	"auto"        today in DefaultDateFormat
//	"auto:iso"    today in a named preset (see DatePresets)
//	"auto:DD/MM"  today in an explicit token format
//
// Any value not starting with "auto" passes through unchanged. The
// time is a parameter so callers can pin it in tests.
func ResolveDate(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	switch {
	case lower == "auto":
		return formatTime(now, DefaultDateFormat)
	case strings.HasPrefix(lower, "auto:"):
		spec := value[len("auto:"):]
		if spec == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(spec)]; ok {
			spec = preset
		}
		return formatTime(now, spec)
	case strings.HasPrefix(lower, "auto"):
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	default:
		return value, nil
	}
}

func formatTime(t time.Time, tokens string) (string, error) {
	layout, err := ParseDateFormat(tokens)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
