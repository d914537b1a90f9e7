package docforge

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kabishou11/DocForge/internal/style"
)

func TestGenerateEmptyMarkdown(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()

	for _, md := range []string{"", "   \n\t\n"} {
		_, err := gen.Generate(context.Background(), Input{Markdown: md})
		if !errors.Is(err, ErrEmptyMarkdown) {
			t.Errorf("Generate(%q) error = %v, want ErrEmptyMarkdown", md, err)
		}
	}
}

func TestGenerateProducesDocx(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()

	result, err := gen.Generate(context.Background(), Input{
		Markdown: "# Title\n\nSome **bold** text.\n",
		Title:    "Cover",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(result), int64(len(result)))
	if err != nil {
		t.Fatalf("output is not a zip container: %v", err)
	}

	found := map[string]bool{}
	for _, f := range zr.File {
		found[f.Name] = true
	}
	for _, want := range []string{"word/document.xml", "word/styles.xml", "[Content_Types].xml"} {
		if !found[want] {
			t.Errorf("output missing part %q", want)
		}
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Generate(ctx, Input{Markdown: "# x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGenerateWithOverrides(t *testing.T) {
	t.Parallel()

	eastAsia := "楷体"
	gen := NewGenerator(WithOverrides(&style.Overrides{
		Font: &style.FontOverride{EastAsia: &eastAsia},
	}))

	result, err := gen.Generate(context.Background(), Input{Markdown: "body text"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !zipContains(t, result, "word/styles.xml", "楷体") {
		t.Error("override font missing from generated styles")
	}
}

func TestGenerateWithIncompleteSheet(t *testing.T) {
	t.Parallel()

	sheet := style.Default()
	sheet.ListStyles = nil

	_, err := NewGenerator(WithStyleSheet(sheet)).Generate(context.Background(), Input{Markdown: "x"})
	if !errors.Is(err, style.ErrIncomplete) {
		t.Errorf("error = %v, want ErrIncomplete", err)
	}
}

func TestGenerateStrictInline(t *testing.T) {
	t.Parallel()

	// The literal '*' survives only under strict tokenization.
	input := Input{Markdown: "2 * 3 = 6"}

	strict, err := NewGenerator(WithStrictInline()).Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !zipContains(t, strict, "word/document.xml", "2 * 3 = 6") {
		t.Error("strict tokenizer dropped the literal asterisk")
	}

	toggle, err := NewGenerator().Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if zipContains(t, toggle, "word/document.xml", "2 * 3 = 6") {
		t.Error("toggle tokenizer kept the delimiter characters")
	}
}

func TestGenerateConcurrent(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gen.Generate(context.Background(), Input{
				Markdown: "# Shared generator\n\n- a\n- b\n",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent Generate() error: %v", err)
		}
	}
}

// zipContains reports whether the named part of a zip archive contains
// the given substring.
func zipContains(t *testing.T, data []byte, name, substr string) bool {
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

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return bytes.Contains(buf.Bytes(), []byte(substr))
	}
	return false
}
