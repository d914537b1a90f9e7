package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/kabishou11/DocForge/internal/document"
	"github.com/kabishou11/DocForge/internal/markdown"
	"github.com/kabishou11/DocForge/internal/style"
)

// buildDocument assembles a small document covering all unit kinds.
func buildDocument(t *testing.T) *document.Document {
	t.Helper()

	blocks := markdown.Parse("# Intro\n\nSome **bold** and `code` text.\n\n- one\n- two\n\n> aside\n\n```\nraw()\n```\n\n| h1 | h2 |\n| a | b |\n")
	doc, err := document.Assemble(blocks, style.Default(), document.Options{
		Title:       "Report",
		Description: "generated in tests",
	})
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	return doc
}

// readZipPart returns the named part's bytes from a docx archive.
func readZipPart(t *testing.T, data []byte, name string) []byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("opening container: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer func() { _ = rc.Close() }()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return content
	}
	t.Fatalf("part %s not found", name)
	return nil
}

func parsePart(t *testing.T, data []byte, name string) *etree.Document {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(readZipPart(t, data, name)); err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
	return doc
}

func TestWriteContainerParts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, buildDocument(t)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	parts := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
	}
	for _, name := range parts {
		parsePart(t, buf.Bytes(), name) // fails the test if absent or malformed
	}
}

func TestWriteDocumentXML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, buildDocument(t)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	doc := parsePart(t, buf.Bytes(), "word/document.xml")

	pgSz := doc.FindElement("//w:sectPr/w:pgSz")
	if pgSz == nil {
		t.Fatal("missing w:pgSz")
	}
	if got := pgSz.SelectAttrValue("w:w", ""); got != "11907" {
		t.Errorf("page width = %s twips, want 11907 (A4)", got)
	}
	if got := pgSz.SelectAttrValue("w:h", ""); got != "16840" {
		t.Errorf("page height = %s twips, want 16840 (A4)", got)
	}

	var bold *etree.Element
	for _, b := range doc.FindElements("//w:r/w:rPr/w:b") {
		bold = b
		break
	}
	if bold == nil {
		t.Error("no bold run rendered")
	}

	if tbl := doc.FindElement("//w:tbl"); tbl == nil {
		t.Error("no table rendered")
	} else if rows := tbl.FindElements("w:tr"); len(rows) != 2 {
		t.Errorf("table rows = %d, want 2", len(rows))
	}

	var joined strings.Builder
	for _, el := range doc.FindElements("//w:p/w:r/w:t") {
		joined.WriteString(el.Text())
	}
	for _, want := range []string{"Report", "Intro", "Some bold and code text.", "raw()", "aside", "• one", "• two"} {
		if !strings.Contains(joined.String(), want) {
			t.Errorf("document text missing %q", want)
		}
	}
}

func TestWriteStylesXML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, buildDocument(t)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	doc := parsePart(t, buf.Bytes(), "word/styles.xml")

	ids := map[string]bool{}
	for _, st := range doc.FindElements("//w:style") {
		ids[st.SelectAttrValue("w:styleId", "")] = true
	}

	for _, want := range []string{"Normal", "Heading1", "Heading6", "Title", "Quote", "Code", "ListParagraph"} {
		if !ids[want] {
			t.Errorf("styles.xml missing style %q", want)
		}
	}

	fonts := doc.FindElement("//w:docDefaults/w:rPrDefault/w:rPr/w:rFonts")
	if fonts == nil {
		t.Fatal("missing document default fonts")
	}
	if got := fonts.SelectAttrValue("w:eastAsia", ""); got != "宋体" {
		t.Errorf("default eastAsia font = %q", got)
	}
}

func TestWriteSynthesizedHeadingStyle(t *testing.T) {
	t.Parallel()

	// A sheet declaring only level 1 still renders deeper headings
	// under synthesized HeadingN ids; styles.xml must declare them.
	sheet := style.Default()
	sheet.HeadingStyles = sheet.HeadingStyles[:1]

	blocks := markdown.Parse("# top\n\n##### deep\n")
	doc, err := document.Assemble(blocks, sheet, document.Options{})
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	styles := parsePart(t, buf.Bytes(), "word/styles.xml")
	st := styles.FindElement("//w:style[@w:styleId='Heading5']")
	if st == nil {
		t.Fatal("styles.xml missing synthesized Heading5 style")
	}
	if based := st.FindElement("w:basedOn"); based == nil || based.SelectAttrValue("w:val", "") != "Normal" {
		t.Error("synthesized style not based on Normal")
	}

	body := parsePart(t, buf.Bytes(), "word/document.xml")
	if body.FindElement("//w:pStyle[@w:val='Heading5']") == nil {
		t.Error("document.xml does not reference Heading5")
	}
}

func TestWriteRejectsIncompleteSheet(t *testing.T) {
	t.Parallel()

	doc := buildDocument(t)
	doc.Sheet.Font.EastAsia = ""

	if err := Write(io.Discard, doc); err == nil {
		t.Fatal("expected error for incomplete sheet")
	}
}

func TestExtractRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, buildDocument(t)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "template.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := ExtractOverrides(path)
	if err != nil {
		t.Fatalf("ExtractOverrides() error: %v", err)
	}

	if o.Font == nil || o.Font.EastAsia == nil || *o.Font.EastAsia != "宋体" {
		t.Errorf("extracted font = %+v", o.Font)
	}
	if o.Page == nil || o.Page.Margins == nil || o.Page.Margins.TopMm == nil {
		t.Fatalf("extracted page = %+v", o.Page)
	}
	// 25.4mm default margin survives the mm -> twips -> mm round trip
	// to within one twip.
	if got := *o.Page.Margins.TopMm; got < 25.3 || got > 25.5 {
		t.Errorf("extracted top margin = %v mm", got)
	}

	// A resolved sheet built from the extraction must be complete.
	sheet := style.Resolve(o)
	if err := sheet.Complete(); err != nil {
		t.Errorf("resolved extraction incomplete: %v", err)
	}
}

func TestExtractRejectsNonDocx(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractOverrides(path); err == nil {
		t.Fatal("expected error for non-docx input")
	}
}
