package docx

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docfill/pkg/testsupport"
)

func TestOpenBytesRejectsNonZip(t *testing.T) {
	if _, err := OpenBytes([]byte("not a docx")); err == nil {
		t.Fatal("expected error for non-zip payload")
	}
}

func TestOpenBytesRequiresDocumentPart(t *testing.T) {
	payload := testsupport.BuildDocxParts(map[string]string{
		"word/other.xml": "<x/>",
	})
	// Drop the document part by building a package without it.
	_, err := OpenBytes(payload)
	if err == nil || !strings.Contains(err.Error(), "word/document.xml") {
		t.Fatalf("expected missing document.xml error, got: %v", err)
	}
}

func TestPartAndTextParts(t *testing.T) {
	payload := testsupport.BuildDocxParts(map[string]string{
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>body</w:t></w:r></w:p></w:body></w:document>`,
		"word/header1.xml":  `<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:p><w:r><w:t>header</w:t></w:r></w:p></w:hdr>`,
		"word/footer1.xml":  `<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:p><w:r><w:t>footer</w:t></w:r></w:p></w:ftr>`,
		"word/styles.xml":   "<w:styles xmlns:w=\"http://schemas.openxmlformats.org/wordprocessingml/2006/main\"/>",
	})

	r, err := OpenBytes(payload)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	want := []string{"word/document.xml", "word/footer1.xml", "word/header1.xml"}
	if diff := cmp.Diff(want, r.TextParts()); diff != "" {
		t.Fatalf("text parts mismatch (-want +got):\n%s", diff)
	}

	part, err := r.Part("word/header1.xml")
	if err != nil {
		t.Fatalf("part: %v", err)
	}
	if !strings.Contains(string(part), "header") {
		t.Fatalf("unexpected part content: %s", part)
	}

	if _, err := r.Part("word/absent.xml"); err == nil {
		t.Fatal("expected error for unknown part")
	}
}

func TestTextJoinsParagraphsAcrossParts(t *testing.T) {
	payload := testsupport.BuildDocxParts(map[string]string{
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>first</w:t></w:r></w:p><w:p><w:r><w:t>sec</w:t></w:r><w:r><w:t>ond</w:t></w:r></w:p></w:body></w:document>`,
		"word/footer1.xml":  `<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:p><w:r><w:t>page footer</w:t></w:r></w:p></w:ftr>`,
	})

	r, err := OpenBytes(payload)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	text, err := r.Text()
	if err != nil {
		t.Fatalf("text: %v", err)
	}

	want := "first\nsecond\npage footer"
	if text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}
