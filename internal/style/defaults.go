package style

// Built-in style ids generated into every document.
const (
	StyleIDNormal  = "Normal"
	StyleIDTitle   = "Title"
	StyleIDQuote   = "Quote"
	StyleIDCode    = "Code"
	StyleIDCaption = "Caption"
	StyleIDList    = "ListParagraph"
)

// defaultSheet is the process-wide default style sheet. It is never
// handed out directly: Default returns a deep copy so callers cannot
// mutate it in place. Values follow the conventions of Chinese office
// documents (imitation Song body, boldface headings, 1.5 line spacing,
// two-character first-line indent) on an A4 page.
var defaultSheet = StyleSheet{
	Page: Page{
		WidthMm:  210,
		HeightMm: 297,
		Margins: Margins{
			TopMm:    25.4,
			RightMm:  25.4,
			BottomMm: 25.4,
			LeftMm:   25.4,
		},
		Orientation: OrientationPortrait,
	},
	Font: Font{
		EastAsia: "宋体",
		ASCII:    "Times New Roman",
		Sizes: FontSizes{
			HeadingPt: 16,
			BodyPt:    12,
			CaptionPt: 10.5,
		},
	},
	Paragraph: Paragraph{
		LineSpacing:   1.5,
		SpaceBeforePt: 0,
		SpaceAfterPt:  4,
		FirstLineIndent: Indent{
			Value: 2,
			Unit:  IndentUnitChar,
		},
	},
	HeadingStyles: []HeadingStyle{
		{Level: 1, StyleID: "Heading1", Name: "heading 1", BasedOn: StyleIDNormal, Next: StyleIDNormal, QuickFormat: true},
		{Level: 2, StyleID: "Heading2", Name: "heading 2", BasedOn: StyleIDNormal, Next: StyleIDNormal, QuickFormat: true},
		{Level: 3, StyleID: "Heading3", Name: "heading 3", BasedOn: StyleIDNormal, Next: StyleIDNormal, QuickFormat: true},
		{Level: 4, StyleID: "Heading4", Name: "heading 4", BasedOn: StyleIDNormal, Next: StyleIDNormal, QuickFormat: false},
		{Level: 5, StyleID: "Heading5", Name: "heading 5", BasedOn: StyleIDNormal, Next: StyleIDNormal, QuickFormat: false},
		{Level: 6, StyleID: "Heading6", Name: "heading 6", BasedOn: StyleIDNormal, Next: StyleIDNormal, QuickFormat: false},
	},
	ListStyles: []ListStyle{
		{Level: 1, Format: ListFormatBullet, Marker: "•"},
		{Level: 1, Format: ListFormatNumber, Marker: "%d."},
	},
	Styles: map[string]Extension{
		StyleIDTitle: {
			Font:      &FontSpec{EastAsia: "黑体", SizePt: 22, Bold: true},
			Spacing:   &Spacing{BeforePt: 20, AfterPt: 15},
			Alignment: AlignCenter,
		},
		"Heading1": {
			Font:    &FontSpec{EastAsia: "黑体", SizePt: 16, Bold: true},
			Spacing: &Spacing{BeforePt: 15, AfterPt: 7.5},
		},
		"Heading2": {
			Font:    &FontSpec{EastAsia: "楷体", SizePt: 14, Bold: true},
			Spacing: &Spacing{BeforePt: 12.5, AfterPt: 5},
		},
		"Heading3": {
			Font:    &FontSpec{EastAsia: "宋体", SizePt: 12, Bold: true},
			Spacing: &Spacing{BeforePt: 10, AfterPt: 4},
		},
		StyleIDQuote: {
			Font:    &FontSpec{EastAsia: "楷体", Italic: true},
			Indent:  &IndentSpec{LeftMm: 12.7},
			Spacing: &Spacing{BeforePt: 5, AfterPt: 5},
		},
		StyleIDCode: {
			Font:    &FontSpec{ASCII: "Consolas", EastAsia: "宋体", SizePt: 11},
			Indent:  &IndentSpec{LeftMm: 12.7},
			Spacing: &Spacing{BeforePt: 7.5, AfterPt: 7.5},
			Shading: "F2F2F2",
		},
		StyleIDCaption: {
			Font:      &FontSpec{SizePt: 10.5},
			Alignment: AlignCenter,
		},
		StyleIDList: {
			Spacing: &Spacing{BeforePt: 3, AfterPt: 3},
			Indent:  &IndentSpec{LeftMm: 10},
		},
	},
}

// Default returns a deep copy of the default style sheet, so mutating
// the result never reaches the package-level constant.
func Default() StyleSheet {
	s := defaultSheet
	s.HeadingStyles = append([]HeadingStyle(nil), defaultSheet.HeadingStyles...)
	s.ListStyles = append([]ListStyle(nil), defaultSheet.ListStyles...)
	s.Styles = make(map[string]Extension, len(defaultSheet.Styles))
	for id, ext := range defaultSheet.Styles {
		s.Styles[id] = cloneExtension(ext)
	}
	return s
}

// cloneExtension copies an extension including its pointer groups.
func cloneExtension(ext Extension) Extension {
	if ext.Font != nil {
		f := *ext.Font
		ext.Font = &f
	}
	if ext.Spacing != nil {
		sp := *ext.Spacing
		ext.Spacing = &sp
	}
	if ext.Indent != nil {
		in := *ext.Indent
		ext.Indent = &in
	}
	return ext
}
