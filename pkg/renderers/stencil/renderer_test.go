package stencil

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-docfill/internal/docx"
	"github.com/goliatone/go-docfill/pkg/data"
	"github.com/goliatone/go-docfill/pkg/render"
	"github.com/goliatone/go-docfill/pkg/testsupport"
)

func templateDoc(t *testing.T, payload []byte) data.Document {
	t.Helper()
	return data.MustNewDocument(data.SourceFromFile("template.docx"), payload)
}

func renderedText(t *testing.T, payload []byte) string {
	t.Helper()
	reader, err := docx.OpenBytes(payload)
	if err != nil {
		t.Fatalf("open rendered output: %v", err)
	}
	text, err := reader.Text()
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	return text
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	template := templateDoc(t, testsupport.BuildDocx(
		"Name: {{name}}",
		"Date: {{date}}",
	))
	values := data.Context{"name": "Alice", "date": "2024-01-01"}

	out, err := New().Render(context.Background(), template, values, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := renderedText(t, out)
	if !strings.Contains(text, "Alice") || !strings.Contains(text, "2024-01-01") {
		t.Fatalf("substituted values missing from output text: %q", text)
	}
	if strings.Contains(text, "{{") {
		t.Fatalf("literal placeholder markers remain: %q", text)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	template := templateDoc(t, testsupport.BuildDocx("Hello {{name}}"))
	values := data.Context{"name": "Alice"}

	first, err := New().Render(context.Background(), template, values, render.Options{})
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := New().Render(context.Background(), template, values, render.Options{})
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("identical inputs produced different output bytes")
	}
}

func TestRenderMissingKeyDefaultsToEmpty(t *testing.T) {
	template := templateDoc(t, testsupport.BuildDocx("Reviewer: {{reviewer}}."))

	out, err := New().Render(context.Background(), template, data.Context{}, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := renderedText(t, out)
	if !strings.Contains(text, "Reviewer: .") {
		t.Fatalf("expected blank substitution, got %q", text)
	}
}

func TestRenderMissingKeyStrictFails(t *testing.T) {
	template := templateDoc(t, testsupport.BuildDocx("{{name}} {{reviewer}}"))
	values := data.Context{"name": "Alice"}

	_, err := New().Render(context.Background(), template, values, render.Options{MissingKeys: render.MissingKeyError})
	if err == nil {
		t.Fatal("expected strict render to fail")
	}

	var missing *render.MissingKeysError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingKeysError, got %T: %v", err, err)
	}
	if len(missing.Keys) != 1 || missing.Keys[0] != "reviewer" {
		t.Fatalf("missing keys = %v, want [reviewer]", missing.Keys)
	}
}

func TestRenderStrictPassesWhenAllKeysPresent(t *testing.T) {
	template := templateDoc(t, testsupport.BuildDocx("{{name}}"))
	values := data.Context{"name": "Alice"}

	out, err := New().Render(context.Background(), template, values, render.Options{MissingKeys: render.MissingKeyError})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(renderedText(t, out), "Alice") {
		t.Fatal("expected substituted output")
	}
}

func TestRenderInvalidTemplate(t *testing.T) {
	template := templateDoc(t, []byte("not a docx package"))

	_, err := New().Render(context.Background(), template, data.Context{}, render.Options{})
	if err == nil {
		t.Fatal("expected error for invalid template payload")
	}
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	template := templateDoc(t, testsupport.BuildDocx("{{name}}"))
	if _, err := New().Render(ctx, template, data.Context{"name": "x"}, render.Options{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestRendererMetadata(t *testing.T) {
	r := New()
	if r.Name() != "docx" {
		t.Fatalf("name = %q", r.Name())
	}
	if !strings.Contains(r.ContentType(), "wordprocessingml") {
		t.Fatalf("content type = %q", r.ContentType())
	}
}
