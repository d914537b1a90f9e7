package style

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseYAMLOverrides(t *testing.T) {
	t.Parallel()

	data := []byte(`
version: "1"
font:
  eastAsia: 楷体
paragraph:
  lineSpacing: 2
  firstLineIndent:
    value: 10
    unit: mm
unknownTopLevelKey: ignored
`)

	o, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if o.Font == nil || o.Font.EastAsia == nil || *o.Font.EastAsia != "楷体" {
		t.Errorf("font.eastAsia not parsed: %+v", o.Font)
	}
	if o.Font.ASCII != nil {
		t.Error("absent font.ascii parsed as present")
	}
	if o.Paragraph == nil || o.Paragraph.LineSpacing == nil || *o.Paragraph.LineSpacing != 2 {
		t.Errorf("paragraph.lineSpacing not parsed: %+v", o.Paragraph)
	}
	if o.Paragraph.FirstLineIndent == nil || o.Paragraph.FirstLineIndent.Unit != IndentUnitMm {
		t.Errorf("firstLineIndent not parsed: %+v", o.Paragraph.FirstLineIndent)
	}

	s := Resolve(o)
	if s.Font.EastAsia != "楷体" || s.Font.ASCII != Default().Font.ASCII {
		t.Error("parsed overrides resolved incorrectly")
	}
}

func TestParseJSONOverrides(t *testing.T) {
	t.Parallel()

	data := []byte(`{"version":"1","page":{"margins":{"top":30}},"styles":{"Code":{"shading":"DDDDDD"}}}`)

	o, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	s := Resolve(o)
	if s.Page.Margins.TopMm != 30 {
		t.Errorf("top margin = %v, want 30", s.Page.Margins.TopMm)
	}
	if s.Styles[StyleIDCode].Shading != "DDDDDD" {
		t.Errorf("code shading = %q", s.Styles[StyleIDCode].Shading)
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("font: [not: a: mapping")); !errors.Is(err, ErrStyleParse) {
		t.Errorf("expected ErrStyleParse, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrStyleFileNotFound) {
		t.Errorf("expected ErrStyleFileNotFound, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("font:\n  ascii: Georgia\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if o.Font == nil || o.Font.ASCII == nil || *o.Font.ASCII != "Georgia" {
		t.Errorf("loaded overrides = %+v", o.Font)
	}
}
