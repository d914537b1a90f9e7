// Package docx packages an assembled document model into a
// WordprocessingML (.docx) container: a zip archive of XML parts.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/kabishou11/DocForge/internal/document"
	"github.com/kabishou11/DocForge/internal/markdown"
	"github.com/kabishou11/DocForge/internal/style"
	"github.com/kabishou11/DocForge/internal/units"
)

// XML namespaces used by the generated parts.
const (
	nsW            = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationship = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps    = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC           = "http://purl.org/dc/elements/1.1/"
	nsDCTerms      = "http://purl.org/dc/terms/"
	nsXSI          = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeStyles   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeCore     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
)

// now returns the document creation timestamp; overridable in tests.
var now = time.Now

// Write serializes the document model into a .docx container. The
// caller owns the destination writer; Write performs no filesystem
// access of its own.
func Write(w io.Writer, doc *document.Document) error {
	if err := doc.Sheet.Complete(); err != nil {
		return fmt.Errorf("writing docx: %w", err)
	}

	zw := zip.NewWriter(w)

	steps := []struct {
		name  string
		write func(*zip.Writer, *document.Document) error
	}{
		{"[Content_Types].xml", writeContentTypes},
		{"_rels/.rels", writePackageRels},
		{"docProps/core.xml", writeCoreProps},
		{"word/_rels/document.xml.rels", writeDocumentRels},
		{"word/document.xml", writeDocumentXML},
		{"word/styles.xml", writeStylesXML},
	}
	for _, step := range steps {
		if err := step.write(zw, doc); err != nil {
			return fmt.Errorf("writing %s: %w", step.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing docx container: %w", err)
	}
	return nil
}

// writeXMLToZip serializes an XML part into the archive.
func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func writeContentTypes(zw *zip.Writer, _ *document.Document) error {
	doc := newXMLDocument()

	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	for _, d := range [][2]string{
		{"rels", "application/vnd.openxmlformats-package.relationships+xml"},
		{"xml", "application/xml"},
	} {
		def := types.CreateElement("Default")
		def.CreateAttr("Extension", d[0])
		def.CreateAttr("ContentType", d[1])
	}

	for _, o := range [][2]string{
		{"/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
		{"/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		{"/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml"},
	} {
		ov := types.CreateElement("Override")
		ov.CreateAttr("PartName", o[0])
		ov.CreateAttr("ContentType", o[1])
	}

	return writeXMLToZip(zw, "[Content_Types].xml", doc)
}

func writeRelationships(zw *zip.Writer, name string, rels [][3]string) error {
	doc := newXMLDocument()

	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsRelationship)

	for _, r := range rels {
		rel := root.CreateElement("Relationship")
		rel.CreateAttr("Id", r[0])
		rel.CreateAttr("Type", r[1])
		rel.CreateAttr("Target", r[2])
	}

	return writeXMLToZip(zw, name, doc)
}

func writePackageRels(zw *zip.Writer, _ *document.Document) error {
	return writeRelationships(zw, "_rels/.rels", [][3]string{
		{"rId1", relTypeDocument, "word/document.xml"},
		{"rId2", relTypeCore, "docProps/core.xml"},
	})
}

func writeDocumentRels(zw *zip.Writer, _ *document.Document) error {
	return writeRelationships(zw, "word/_rels/document.xml.rels", [][3]string{
		{"rId1", relTypeStyles, "styles.xml"},
	})
}

func writeCoreProps(zw *zip.Writer, doc *document.Document) error {
	xmlDoc := newXMLDocument()

	props := xmlDoc.CreateElement("cp:coreProperties")
	props.CreateAttr("xmlns:cp", nsCoreProps)
	props.CreateAttr("xmlns:dc", nsDC)
	props.CreateAttr("xmlns:dcterms", nsDCTerms)
	props.CreateAttr("xmlns:xsi", nsXSI)

	props.CreateElement("dc:title").SetText(doc.Title)
	props.CreateElement("dc:description").SetText(doc.Description)
	props.CreateElement("dc:creator").SetText("DocForge")

	stamp := now().UTC().Format(time.RFC3339)
	for _, tag := range []string{"dcterms:created", "dcterms:modified"} {
		el := props.CreateElement(tag)
		el.CreateAttr("xsi:type", "dcterms:W3CDTF")
		el.SetText(stamp)
	}

	return writeXMLToZip(zw, "docProps/core.xml", xmlDoc)
}

func writeDocumentXML(zw *zip.Writer, doc *document.Document) error {
	xmlDoc := newXMLDocument()

	root := xmlDoc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	body := root.CreateElement("w:body")

	for _, u := range doc.Units {
		if u.Kind == document.KindTable {
			appendTable(body, u, &doc.Sheet)
			continue
		}
		appendParagraph(body, u, &doc.Sheet)
	}

	appendSectPr(body, doc.Sheet.Page)

	return writeXMLToZip(zw, "word/document.xml", xmlDoc)
}

// appendParagraph renders one non-table unit as a w:p element.
func appendParagraph(body *etree.Element, u document.Unit, sheet *style.StyleSheet) {
	p := body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")

	if u.StyleID != "" && u.StyleID != style.StyleIDNormal {
		pPr.CreateElement("w:pStyle").CreateAttr("w:val", u.StyleID)
	}

	if u.SpaceBefore != 0 || u.SpaceAfter != 0 || u.Line != 0 {
		spacing := pPr.CreateElement("w:spacing")
		if u.SpaceBefore != 0 {
			spacing.CreateAttr("w:before", strconv.Itoa(u.SpaceBefore))
		}
		if u.SpaceAfter != 0 {
			spacing.CreateAttr("w:after", strconv.Itoa(u.SpaceAfter))
		}
		if u.Line != 0 {
			spacing.CreateAttr("w:line", strconv.Itoa(u.Line))
			spacing.CreateAttr("w:lineRule", "auto")
		}
	}

	if u.LeftIndent != 0 || u.FirstLine != 0 || u.FirstLineChars != 0 || u.Hanging != 0 {
		ind := pPr.CreateElement("w:ind")
		if u.LeftIndent != 0 {
			ind.CreateAttr("w:left", strconv.Itoa(u.LeftIndent))
		}
		if u.Hanging != 0 {
			ind.CreateAttr("w:hanging", strconv.Itoa(u.Hanging))
		}
		if u.FirstLine != 0 {
			ind.CreateAttr("w:firstLine", strconv.Itoa(u.FirstLine))
		}
		if u.FirstLineChars != 0 {
			ind.CreateAttr("w:firstLineChars", strconv.Itoa(u.FirstLineChars))
		}
	}

	if u.Alignment != "" {
		pPr.CreateElement("w:jc").CreateAttr("w:val", jcValue(u.Alignment))
	}

	if u.Shading != "" {
		appendShading(pPr, u.Shading)
	}

	for _, r := range u.Runs {
		appendRun(p, r, sheet)
	}
}

// appendRun renders one formatted run, splitting embedded newlines
// into w:br elements.
func appendRun(p *etree.Element, run markdown.Run, sheet *style.StyleSheet) {
	r := p.CreateElement("w:r")

	if rPr := runProperties(run, sheet); rPr != nil {
		r.AddChild(rPr)
	}

	for i, line := range strings.Split(run.Text, "\n") {
		if i > 0 {
			r.CreateElement("w:br")
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(line)
	}
}

// runProperties builds the w:rPr element for a run, or nil when the
// run carries no direct formatting.
func runProperties(run markdown.Run, sheet *style.StyleSheet) *etree.Element {
	if !run.Bold && !run.Italic && !run.Code {
		return nil
	}

	rPr := etree.NewElement("w:rPr")

	if run.Code {
		// Inline code renders at the code style's fixed monospace
		// font and size, independent of the emphasis toggles.
		ext := sheet.Styles[style.StyleIDCode]
		font := style.FontSpec{ASCII: "Consolas", SizePt: sheet.Font.Sizes.CaptionPt}
		if ext.Font != nil {
			font = *ext.Font
		}
		appendRunFont(rPr, font, sheet)
		return rPr
	}

	if run.Bold {
		rPr.CreateElement("w:b")
	}
	if run.Italic {
		rPr.CreateElement("w:i")
	}
	return rPr
}

// appendRunFont writes rFonts/sz/b/i for a font spec, filling unset
// families from the document font.
func appendRunFont(rPr *etree.Element, font style.FontSpec, sheet *style.StyleSheet) {
	ascii := font.ASCII
	if ascii == "" {
		ascii = sheet.Font.ASCII
	}
	eastAsia := font.EastAsia
	if eastAsia == "" {
		eastAsia = sheet.Font.EastAsia
	}

	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", ascii)
	fonts.CreateAttr("w:hAnsi", ascii)
	fonts.CreateAttr("w:eastAsia", eastAsia)

	if font.Bold {
		rPr.CreateElement("w:b")
	}
	if font.Italic {
		rPr.CreateElement("w:i")
	}
	if font.SizePt > 0 {
		sz := strconv.Itoa(units.PtToHalfPoints(font.SizePt))
		rPr.CreateElement("w:sz").CreateAttr("w:val", sz)
		rPr.CreateElement("w:szCs").CreateAttr("w:val", sz)
	}
}

// appendTable renders a table unit as a w:tbl with full grid borders.
func appendTable(body *etree.Element, u document.Unit, sheet *style.StyleSheet) {
	tbl := body.CreateElement("w:tbl")

	tblPr := tbl.CreateElement("w:tblPr")
	width := tblPr.CreateElement("w:tblW")
	width.CreateAttr("w:w", "0")
	width.CreateAttr("w:type", "auto")
	borders := tblPr.CreateElement("w:tblBorders")
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b := borders.CreateElement("w:" + side)
		b.CreateAttr("w:val", "single")
		b.CreateAttr("w:sz", "4")
		b.CreateAttr("w:color", "auto")
	}

	for i, row := range u.Rows {
		tr := tbl.CreateElement("w:tr")
		for _, cell := range row {
			tc := tr.CreateElement("w:tc")
			tcPr := tc.CreateElement("w:tcPr")
			if i == 0 && u.HeaderRow {
				shd := tcPr.CreateElement("w:shd")
				shd.CreateAttr("w:val", "clear")
				shd.CreateAttr("w:fill", "E6E6E6")
			}

			p := tc.CreateElement("w:p")
			pPr := p.CreateElement("w:pPr")
			pPr.CreateElement("w:jc").CreateAttr("w:val", "center")

			run := markdown.Run{Text: cell, Bold: i == 0 && u.HeaderRow}
			appendRun(p, run, sheet)
		}
	}
}

// appendSectPr writes the page geometry section properties.
func appendSectPr(body *etree.Element, page style.Page) {
	widthMm, heightMm := page.WidthMm, page.HeightMm
	if page.Orientation == style.OrientationLandscape {
		widthMm, heightMm = heightMm, widthMm
	}

	sectPr := body.CreateElement("w:sectPr")

	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", strconv.Itoa(units.MmToTwips(widthMm)))
	pgSz.CreateAttr("w:h", strconv.Itoa(units.MmToTwips(heightMm)))
	if page.Orientation == style.OrientationLandscape {
		pgSz.CreateAttr("w:orient", "landscape")
	}

	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", strconv.Itoa(units.MmToTwips(page.Margins.TopMm)))
	pgMar.CreateAttr("w:right", strconv.Itoa(units.MmToTwips(page.Margins.RightMm)))
	pgMar.CreateAttr("w:bottom", strconv.Itoa(units.MmToTwips(page.Margins.BottomMm)))
	pgMar.CreateAttr("w:left", strconv.Itoa(units.MmToTwips(page.Margins.LeftMm)))
	pgMar.CreateAttr("w:header", "851")
	pgMar.CreateAttr("w:footer", "992")
	pgMar.CreateAttr("w:gutter", "0")
}

// appendShading writes a clear-pattern background fill.
func appendShading(parent *etree.Element, fill string) {
	shd := parent.CreateElement("w:shd")
	shd.CreateAttr("w:val", "clear")
	shd.CreateAttr("w:color", "auto")
	shd.CreateAttr("w:fill", fill)
}

// jcValue maps a style alignment onto the w:jc value vocabulary.
func jcValue(alignment string) string {
	switch alignment {
	case style.AlignCenter:
		return "center"
	case style.AlignRight:
		return "right"
	case style.AlignJustify:
		return "both"
	case style.AlignDistribute:
		return "distribute"
	default:
		return "left"
	}
}
