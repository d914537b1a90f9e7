// Package style defines the document style sheet, its defaults, and the
// resolver that merges partial user overrides onto those defaults.
//
// A StyleSheet is fully specified: every consumer downstream of Resolve
// can rely on every field being populated. Partial input only exists in
// the Overrides form, which is what style files on disk deserialize into.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete indicates a StyleSheet with a missing field reached a
// consumer. This is a programming error: resolution must happen first.
var ErrIncomplete = errors.New("incomplete style sheet")

// Page orientation values.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// List format values.
const (
	ListFormatBullet = "bullet"
	ListFormatNumber = "number"
)

// Alignment values for style extensions.
const (
	AlignLeft       = "left"
	AlignCenter     = "center"
	AlignRight      = "right"
	AlignJustify    = "justify"
	AlignDistribute = "distribute"
)

// Page describes the page geometry in millimeters.
type Page struct {
	WidthMm     float64
	HeightMm    float64
	Margins     Margins
	Orientation string
}

// Margins holds the four page margins in millimeters.
type Margins struct {
	TopMm    float64
	RightMm  float64
	BottomMm float64
	LeftMm   float64
}

// Font describes the document font families and the size triple.
type Font struct {
	EastAsia string
	ASCII    string
	Sizes    FontSizes
}

// FontSizes holds the three semantic font sizes in points.
type FontSizes struct {
	HeadingPt float64
	BodyPt    float64
	CaptionPt float64
}

// Indent units for first-line indents.
const (
	IndentUnitMm   = "mm"
	IndentUnitChar = "char"
)

// Indent is a length in either millimeters or character widths.
type Indent struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// Paragraph describes body paragraph formatting.
type Paragraph struct {
	LineSpacing     float64 // multiple of a single line
	SpaceBeforePt   float64
	SpaceAfterPt    float64
	FirstLineIndent Indent
}

// HeadingStyle declares one generated heading stylesheet entry.
type HeadingStyle struct {
	Level       int    `yaml:"level"`
	StyleID     string `yaml:"styleId"`
	Name        string `yaml:"name"`
	BasedOn     string `yaml:"basedOn"`
	Next        string `yaml:"next"`
	QuickFormat bool   `yaml:"quickFormat"`
}

// ListStyle declares the marker used for one list format.
type ListStyle struct {
	Level  int    `yaml:"level"`
	Format string `yaml:"format"` // ListFormatBullet or ListFormatNumber
	Marker string `yaml:"marker"`
}

// FontSpec is a font override inside a style extension. Zero-valued
// fields inherit from the document font.
type FontSpec struct {
	EastAsia string  `yaml:"eastAsia"`
	ASCII    string  `yaml:"ascii"`
	SizePt   float64 `yaml:"size"`
	Bold     bool    `yaml:"bold"`
	Italic   bool    `yaml:"italic"`
}

// Spacing is a before/after spacing override in points.
type Spacing struct {
	BeforePt float64 `yaml:"before"`
	AfterPt  float64 `yaml:"after"`
}

// IndentSpec is an indent override for a style extension.
type IndentSpec struct {
	LeftMm    float64 `yaml:"left"`
	FirstLine Indent  `yaml:"firstLine"`
}

// Extension is one entry in the open styles map: a capability set where
// each field is independently optional. There is no inheritance between
// extensions; absent fields fall back to the document-level settings.
type Extension struct {
	Font      *FontSpec   `yaml:"font"`
	Spacing   *Spacing    `yaml:"spacing"`
	Indent    *IndentSpec `yaml:"indent"`
	Alignment string      `yaml:"alignment"`
	Shading   string      `yaml:"shading"` // RRGGBB fill, no leading '#'
}

// StyleSheet is the fully resolved set of formatting rules applied
// during assembly. Construct one with Resolve or Default; never build
// one by hand unless every field is populated.
type StyleSheet struct {
	Page          Page
	Font          Font
	Paragraph     Paragraph
	HeadingStyles []HeadingStyle
	ListStyles    []ListStyle
	Styles        map[string]Extension
}

// HeadingFor returns the heading style declared for level, or false if
// the sheet declares none for it.
func (s *StyleSheet) HeadingFor(level int) (HeadingStyle, bool) {
	for _, h := range s.HeadingStyles {
		if h.Level == level {
			return h, true
		}
	}
	return HeadingStyle{}, false
}

// ListFor returns the list style declared for format, or false.
func (s *StyleSheet) ListFor(format string) (ListStyle, bool) {
	for _, l := range s.ListStyles {
		if l.Format == format {
			return l, true
		}
	}
	return ListStyle{}, false
}

// Complete reports whether every field a consumer may rely on is
// populated. The returned error names the first missing field.
func (s *StyleSheet) Complete() error {
	switch {
	case s.Page.WidthMm <= 0:
		return missing("page.width")
	case s.Page.HeightMm <= 0:
		return missing("page.height")
	case s.Page.Orientation == "":
		return missing("page.orientation")
	case s.Font.EastAsia == "":
		return missing("font.eastAsia")
	case s.Font.ASCII == "":
		return missing("font.ascii")
	case s.Font.Sizes.HeadingPt <= 0:
		return missing("font.sizes.heading")
	case s.Font.Sizes.BodyPt <= 0:
		return missing("font.sizes.body")
	case s.Font.Sizes.CaptionPt <= 0:
		return missing("font.sizes.caption")
	case s.Paragraph.LineSpacing <= 0:
		return missing("paragraph.lineSpacing")
	case s.Paragraph.FirstLineIndent.Unit == "":
		return missing("paragraph.firstLineIndent.unit")
	case len(s.HeadingStyles) == 0:
		return missing("headingStyles")
	case len(s.ListStyles) == 0:
		return missing("listStyles")
	case s.Styles == nil:
		return missing("styles")
	}
	for i, h := range s.HeadingStyles {
		if h.StyleID == "" {
			return missing(fmt.Sprintf("headingStyles[%d].styleId", i))
		}
	}
	for i, l := range s.ListStyles {
		if l.Format != ListFormatBullet && l.Format != ListFormatNumber {
			return missing(fmt.Sprintf("listStyles[%d].format", i))
		}
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrIncomplete, field)
}

// NormalizeOrientation maps arbitrary-case orientation strings onto the
// two canonical values, defaulting to portrait.
func NormalizeOrientation(s string) string {
	if strings.EqualFold(s, OrientationLandscape) {
		return OrientationLandscape
	}
	return OrientationPortrait
}
