package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/kabishou11/DocForge/internal/style"
	"github.com/kabishou11/DocForge/internal/units"
)

// Sentinel errors for template extraction.
var (
	ErrNotDocx     = errors.New("not a docx container")
	ErrMissingPart = errors.New("docx part missing")
)

// ExtractOverrides reads an existing .docx template and pulls its page
// margins, default fonts, and heading fonts into a partial style
// override. Fields the template does not specify stay absent, so
// resolving the result keeps the built-in defaults for them.
func ExtractOverrides(path string) (*style.Overrides, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotDocx, path)
	}
	defer func() { _ = zr.Close() }()

	o := &style.Overrides{Version: "1", Styles: map[string]style.Extension{}}

	stylesDoc, err := readPart(&zr.Reader, "word/styles.xml")
	if err != nil {
		return nil, err
	}
	extractFonts(stylesDoc, o)

	docDoc, err := readPart(&zr.Reader, "word/document.xml")
	if err == nil {
		extractPage(docDoc, o)
	} else if !errors.Is(err, ErrMissingPart) {
		return nil, err
	}

	if len(o.Styles) == 0 {
		o.Styles = nil
	}
	return o, nil
}

// readPart parses one XML part out of the container.
func readPart(zr *zip.Reader, name string) (*etree.Document, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer func() { _ = rc.Close() }()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
}

// extractFonts pulls document default fonts and per-heading fonts from
// styles.xml.
func extractFonts(doc *etree.Document, o *style.Overrides) {
	if fonts := doc.FindElement("//w:docDefaults/w:rPrDefault/w:rPr/w:rFonts"); fonts != nil {
		f := &style.FontOverride{}
		if v := fonts.SelectAttrValue("w:eastAsia", ""); v != "" {
			f.EastAsia = &v
		}
		if v := fonts.SelectAttrValue("w:ascii", ""); v != "" {
			f.ASCII = &v
		}
		if sz := doc.FindElement("//w:docDefaults/w:rPrDefault/w:rPr/w:sz"); sz != nil {
			if pt, ok := halfPointAttr(sz); ok {
				f.Sizes = &style.FontSizesOverride{BodyPt: &pt}
			}
		}
		if f.EastAsia != nil || f.ASCII != nil || f.Sizes != nil {
			o.Font = f
		}
	}

	for _, st := range doc.FindElements("//w:style") {
		id := st.SelectAttrValue("w:styleId", "")
		if !isHeadingID(id) {
			continue
		}

		spec := style.FontSpec{Bold: st.FindElement("w:rPr/w:b") != nil}
		changed := spec.Bold
		if fonts := st.FindElement("w:rPr/w:rFonts"); fonts != nil {
			spec.EastAsia = fonts.SelectAttrValue("w:eastAsia", "")
			spec.ASCII = fonts.SelectAttrValue("w:ascii", "")
			changed = changed || spec.EastAsia != "" || spec.ASCII != ""
		}
		if sz := st.FindElement("w:rPr/w:sz"); sz != nil {
			if pt, ok := halfPointAttr(sz); ok {
				spec.SizePt = pt
				changed = true
			}
		}
		if changed {
			o.Styles[id] = style.Extension{Font: &spec}
		}
	}
}

// extractPage pulls the section geometry from document.xml.
func extractPage(doc *etree.Document, o *style.Overrides) {
	pgMar := doc.FindElement("//w:sectPr/w:pgMar")
	pgSz := doc.FindElement("//w:sectPr/w:pgSz")
	if pgMar == nil && pgSz == nil {
		return
	}

	page := &style.PageOverride{}

	if pgSz != nil {
		if mm, ok := twipsAttrMm(pgSz, "w:w"); ok {
			page.WidthMm = &mm
		}
		if mm, ok := twipsAttrMm(pgSz, "w:h"); ok {
			page.HeightMm = &mm
		}
		if v := pgSz.SelectAttrValue("w:orient", ""); v != "" {
			orient := style.NormalizeOrientation(v)
			page.Orientation = &orient
		}
	}

	if pgMar != nil {
		m := &style.MarginsOverride{}
		if mm, ok := twipsAttrMm(pgMar, "w:top"); ok {
			m.TopMm = &mm
		}
		if mm, ok := twipsAttrMm(pgMar, "w:right"); ok {
			m.RightMm = &mm
		}
		if mm, ok := twipsAttrMm(pgMar, "w:bottom"); ok {
			m.BottomMm = &mm
		}
		if mm, ok := twipsAttrMm(pgMar, "w:left"); ok {
			m.LeftMm = &mm
		}
		page.Margins = m
	}

	o.Page = page
}

func isHeadingID(id string) bool {
	if len(id) != len("HeadingN") || id[:len("Heading")] != "Heading" {
		return false
	}
	return id[len("Heading")] >= '1' && id[len("Heading")] <= '6'
}

func halfPointAttr(sz *etree.Element) (float64, bool) {
	hp, err := strconv.Atoi(sz.SelectAttrValue("w:val", ""))
	if err != nil || hp <= 0 {
		return 0, false
	}
	return units.HalfPointsToPt(hp), true
}

func twipsAttrMm(el *etree.Element, attr string) (float64, bool) {
	tw, err := strconv.Atoi(el.SelectAttrValue(attr, ""))
	if err != nil {
		return 0, false
	}
	return units.TwipsToMm(tw), true
}
