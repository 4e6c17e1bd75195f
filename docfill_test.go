package docfill

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-docfill/internal/docx"
	"github.com/goliatone/go-docfill/pkg/data"
	"github.com/goliatone/go-docfill/pkg/render"
	"github.com/goliatone/go-docfill/pkg/testsupport"
)

func TestFillFile(t *testing.T) {
	dir := t.TempDir()

	dataPath := filepath.Join(dir, "example.yml")
	if err := os.WriteFile(dataPath, []byte("name: Alice\ndate: \"2024-01-01\"\n"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	templatePath := filepath.Join(dir, "template.docx")
	template := testsupport.BuildDocx("{{name}}, effective {{date}}")
	if err := os.WriteFile(templatePath, template, 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	outputPath := filepath.Join(dir, "filled.docx")
	if err := FillFile(context.Background(), dataPath, templatePath, outputPath); err != nil {
		t.Fatalf("fill: %v", err)
	}

	payload, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	reader, err := docx.OpenBytes(payload)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	text, err := reader.Text()
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}

	if !strings.Contains(text, "Alice") || !strings.Contains(text, "2024-01-01") {
		t.Fatalf("output text missing substitutions: %q", text)
	}
}

func TestFillInMemory(t *testing.T) {
	dataSource := data.SourceFromReader("inline", strings.NewReader("name: Bob\n"))
	templateSource := data.SourceFromReader("template", strings.NewReader(string(testsupport.BuildDocx("Hi {{name}}"))))

	out, err := Fill(context.Background(), dataSource, templateSource)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected rendered bytes")
	}
}

func TestFillFileStrictOption(t *testing.T) {
	dir := t.TempDir()

	dataPath := filepath.Join(dir, "example.yml")
	if err := os.WriteFile(dataPath, []byte("name: Alice\n"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	templatePath := filepath.Join(dir, "template.docx")
	if err := os.WriteFile(templatePath, testsupport.BuildDocx("{{name}} {{missing}}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	outputPath := filepath.Join(dir, "filled.docx")
	err := FillFile(context.Background(), dataPath, templatePath, outputPath, WithMissingKeyPolicy(render.MissingKeyError))
	if err == nil {
		t.Fatal("expected strict fill to fail on a missing key")
	}
	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Fatal("no output should be written on failure")
	}
}

func TestParseContext(t *testing.T) {
	doc := data.MustNewDocument(data.SourceFromFile("inline.yml"), []byte("title: Example\n"))
	values, err := ParseContext(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if values["title"] != "Example" {
		t.Fatalf("title = %v", values["title"])
	}
}
