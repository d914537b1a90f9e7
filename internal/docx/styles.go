package docx

import (
	"archive/zip"
	"sort"
	"strconv"

	"github.com/beevik/etree"

	"github.com/kabishou11/DocForge/internal/document"
	"github.com/kabishou11/DocForge/internal/style"
	"github.com/kabishou11/DocForge/internal/units"
)

// writeStylesXML generates word/styles.xml from the resolved sheet:
// document defaults, the Normal style, one style per declared heading
// level, and one style per entry of the open extension map.
func writeStylesXML(zw *zip.Writer, doc *document.Document) error {
	sheet := &doc.Sheet

	xmlDoc := newXMLDocument()
	root := xmlDoc.CreateElement("w:styles")
	root.CreateAttr("xmlns:w", nsW)

	appendDocDefaults(root, sheet)
	appendNormalStyle(root)

	emitted := map[string]bool{style.StyleIDNormal: true}

	for _, hs := range sheet.HeadingStyles {
		appendHeadingStyle(root, hs, sheet)
		emitted[hs.StyleID] = true
	}

	// A heading level the sheet does not declare still references a
	// synthesized HeadingN id from document.xml. Emit an entry for it
	// so Word does not silently fall back to Normal.
	for _, u := range doc.Units {
		if u.Kind != document.KindHeading || emitted[u.StyleID] {
			continue
		}
		appendHeadingStyle(root, style.HeadingStyle{
			StyleID: u.StyleID,
			Name:    u.StyleID,
			BasedOn: style.StyleIDNormal,
			Next:    style.StyleIDNormal,
		}, sheet)
		emitted[u.StyleID] = true
	}

	// Deterministic output order for the open map.
	ids := make([]string, 0, len(sheet.Styles))
	for id := range sheet.Styles {
		if !emitted[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		appendExtensionStyle(root, id, sheet.Styles[id], sheet)
	}

	return writeXMLToZip(zw, "word/styles.xml", xmlDoc)
}

func appendDocDefaults(root *etree.Element, sheet *style.StyleSheet) {
	defaults := root.CreateElement("w:docDefaults")
	rPr := defaults.CreateElement("w:rPrDefault").CreateElement("w:rPr")

	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", sheet.Font.ASCII)
	fonts.CreateAttr("w:hAnsi", sheet.Font.ASCII)
	fonts.CreateAttr("w:eastAsia", sheet.Font.EastAsia)

	sz := strconv.Itoa(units.PtToHalfPoints(sheet.Font.Sizes.BodyPt))
	rPr.CreateElement("w:sz").CreateAttr("w:val", sz)
	rPr.CreateElement("w:szCs").CreateAttr("w:val", sz)

	defaults.CreateElement("w:pPrDefault").CreateElement("w:pPr")
}

// appendNormalStyle emits the bare default style. Body formatting
// travels on the render units, not on Normal.
func appendNormalStyle(root *etree.Element) {
	st := newStyle(root, style.StyleIDNormal, "Normal")
	st.CreateAttr("w:default", "1")
	st.CreateElement("w:qFormat")
}

func appendHeadingStyle(root *etree.Element, hs style.HeadingStyle, sheet *style.StyleSheet) {
	name := hs.Name
	if name == "" {
		name = hs.StyleID
	}

	st := newStyle(root, hs.StyleID, name)
	if hs.BasedOn != "" {
		st.CreateElement("w:basedOn").CreateAttr("w:val", hs.BasedOn)
	}
	if hs.Next != "" {
		st.CreateElement("w:next").CreateAttr("w:val", hs.Next)
	}
	if hs.QuickFormat {
		st.CreateElement("w:qFormat")
	}

	if ext, ok := sheet.Styles[hs.StyleID]; ok {
		appendExtensionProps(st, ext, sheet)
		return
	}

	// No extension declared for this level: bold at the sheet's
	// heading size.
	rPr := st.CreateElement("w:rPr")
	appendRunFont(rPr, style.FontSpec{Bold: true, SizePt: sheet.Font.Sizes.HeadingPt}, sheet)
}

func appendExtensionStyle(root *etree.Element, id string, ext style.Extension, sheet *style.StyleSheet) {
	st := newStyle(root, id, id)
	st.CreateElement("w:basedOn").CreateAttr("w:val", style.StyleIDNormal)
	appendExtensionProps(st, ext, sheet)
}

// appendExtensionProps translates one extension capability set into
// pPr/rPr children of a style element.
func appendExtensionProps(st *etree.Element, ext style.Extension, sheet *style.StyleSheet) {
	pPr := etree.NewElement("w:pPr")

	if ext.Spacing != nil {
		spacing := pPr.CreateElement("w:spacing")
		spacing.CreateAttr("w:before", strconv.Itoa(units.PtToTwips(ext.Spacing.BeforePt)))
		spacing.CreateAttr("w:after", strconv.Itoa(units.PtToTwips(ext.Spacing.AfterPt)))
	}
	if ext.Indent != nil {
		ind := pPr.CreateElement("w:ind")
		if ext.Indent.LeftMm != 0 {
			ind.CreateAttr("w:left", strconv.Itoa(units.MmToTwips(ext.Indent.LeftMm)))
		}
		switch ext.Indent.FirstLine.Unit {
		case style.IndentUnitChar:
			if ext.Indent.FirstLine.Value != 0 {
				ind.CreateAttr("w:firstLineChars", strconv.Itoa(units.CharsToFirstLineChars(ext.Indent.FirstLine.Value)))
			}
		case style.IndentUnitMm:
			ind.CreateAttr("w:firstLine", strconv.Itoa(units.MmToTwips(ext.Indent.FirstLine.Value)))
		}
	}
	if ext.Alignment != "" {
		pPr.CreateElement("w:jc").CreateAttr("w:val", jcValue(ext.Alignment))
	}
	if ext.Shading != "" {
		appendShading(pPr, ext.Shading)
	}

	if len(pPr.ChildElements()) > 0 {
		st.AddChild(pPr)
	}

	if ext.Font != nil {
		rPr := st.CreateElement("w:rPr")
		appendRunFont(rPr, *ext.Font, sheet)
	}
}

func newStyle(root *etree.Element, id, name string) *etree.Element {
	st := root.CreateElement("w:style")
	st.CreateAttr("w:type", "paragraph")
	st.CreateAttr("w:styleId", id)
	st.CreateElement("w:name").CreateAttr("w:val", name)
	return st
}
