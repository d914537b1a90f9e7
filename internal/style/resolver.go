package style

// Overrides is a partial style sheet as found in a style file. Every
// field is optional; absent fields fall back to the defaults during
// resolution. Field names match the on-disk representation.
type Overrides struct {
	Version       string               `yaml:"version"`
	Page          *PageOverride        `yaml:"page"`
	Font          *FontOverride        `yaml:"font"`
	Paragraph     *ParagraphOverride   `yaml:"paragraph"`
	HeadingStyles []HeadingStyle       `yaml:"headingStyles"`
	ListStyles    []ListStyle          `yaml:"listStyles"`
	Styles        map[string]Extension `yaml:"styles"`
}

// PageOverride is a partial page geometry.
type PageOverride struct {
	WidthMm     *float64         `yaml:"width"`
	HeightMm    *float64         `yaml:"height"`
	Margins     *MarginsOverride `yaml:"margins"`
	Orientation *string          `yaml:"orientation"`
}

// MarginsOverride is a partial set of page margins in millimeters.
type MarginsOverride struct {
	TopMm    *float64 `yaml:"top"`
	RightMm  *float64 `yaml:"right"`
	BottomMm *float64 `yaml:"bottom"`
	LeftMm   *float64 `yaml:"left"`
}

// FontOverride is a partial font group. Each scalar is overridden
// independently of its siblings.
type FontOverride struct {
	EastAsia *string            `yaml:"eastAsia"`
	ASCII    *string            `yaml:"ascii"`
	Sizes    *FontSizesOverride `yaml:"sizes"`
}

// FontSizesOverride is a partial size triple in points.
type FontSizesOverride struct {
	HeadingPt *float64 `yaml:"heading"`
	BodyPt    *float64 `yaml:"body"`
	CaptionPt *float64 `yaml:"caption"`
}

// ParagraphOverride is a partial body paragraph group.
type ParagraphOverride struct {
	LineSpacing     *float64 `yaml:"lineSpacing"`
	SpaceBeforePt   *float64 `yaml:"spaceBefore"`
	SpaceAfterPt    *float64 `yaml:"spaceAfter"`
	FirstLineIndent *Indent  `yaml:"firstLineIndent"`
}

// Resolve merges overrides onto the default style sheet and returns a
// fully populated sheet. Scalar groups merge field-by-field, the
// headingStyles and listStyles lists are replaced wholesale when
// present, and the open styles map merges by key with override entries
// winning. Resolve never fails: absent fields always fall back to the
// defaults, and a nil override yields the defaults unchanged.
func Resolve(o *Overrides) StyleSheet {
	s := Default()
	if o == nil {
		return s
	}

	mergePage(&s.Page, o.Page)
	mergeFont(&s.Font, o.Font)
	mergeParagraph(&s.Paragraph, o.Paragraph)

	if o.HeadingStyles != nil {
		s.HeadingStyles = append([]HeadingStyle(nil), o.HeadingStyles...)
	}
	if o.ListStyles != nil {
		s.ListStyles = append([]ListStyle(nil), o.ListStyles...)
	}
	for id, ext := range o.Styles {
		s.Styles[id] = cloneExtension(ext)
	}

	return s
}

func mergePage(dst *Page, o *PageOverride) {
	if o == nil {
		return
	}
	if o.WidthMm != nil {
		dst.WidthMm = *o.WidthMm
	}
	if o.HeightMm != nil {
		dst.HeightMm = *o.HeightMm
	}
	if o.Orientation != nil {
		dst.Orientation = NormalizeOrientation(*o.Orientation)
	}
	if m := o.Margins; m != nil {
		if m.TopMm != nil {
			dst.Margins.TopMm = *m.TopMm
		}
		if m.RightMm != nil {
			dst.Margins.RightMm = *m.RightMm
		}
		if m.BottomMm != nil {
			dst.Margins.BottomMm = *m.BottomMm
		}
		if m.LeftMm != nil {
			dst.Margins.LeftMm = *m.LeftMm
		}
	}
}

func mergeFont(dst *Font, o *FontOverride) {
	if o == nil {
		return
	}
	if o.EastAsia != nil {
		dst.EastAsia = *o.EastAsia
	}
	if o.ASCII != nil {
		dst.ASCII = *o.ASCII
	}
	if sz := o.Sizes; sz != nil {
		if sz.HeadingPt != nil {
			dst.Sizes.HeadingPt = *sz.HeadingPt
		}
		if sz.BodyPt != nil {
			dst.Sizes.BodyPt = *sz.BodyPt
		}
		if sz.CaptionPt != nil {
			dst.Sizes.CaptionPt = *sz.CaptionPt
		}
	}
}

func mergeParagraph(dst *Paragraph, o *ParagraphOverride) {
	if o == nil {
		return
	}
	if o.LineSpacing != nil {
		dst.LineSpacing = *o.LineSpacing
	}
	if o.SpaceBeforePt != nil {
		dst.SpaceBeforePt = *o.SpaceBeforePt
	}
	if o.SpaceAfterPt != nil {
		dst.SpaceAfterPt = *o.SpaceAfterPt
	}
	if o.FirstLineIndent != nil {
		dst.FirstLineIndent = *o.FirstLineIndent
		if dst.FirstLineIndent.Unit == "" {
			dst.FirstLineIndent.Unit = IndentUnitChar
		}
	}
}
