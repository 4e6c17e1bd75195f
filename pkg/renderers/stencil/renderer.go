// Package stencil binds the go-stencil DOCX template engine to the render
// contract. The engine owns the placeholder syntax ({{name}}, loops,
// conditionals); this package only feeds it the template payload and context.
package stencil

import (
	"bytes"
	"context"
	"fmt"
	"io"

	engine "github.com/benjaminschreck/go-stencil/pkg/stencil"

	"github.com/goliatone/go-docfill/internal/docx"
	"github.com/goliatone/go-docfill/pkg/data"
	"github.com/goliatone/go-docfill/pkg/render"
)

// RendererName is the registry key for the DOCX renderer.
const RendererName = "docx"

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Renderer renders DOCX templates through go-stencil.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the DOCX renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return RendererName
}

// ContentType reports the MIME type of rendered output.
func (r *Renderer) ContentType() string {
	return docxContentType
}

// Render substitutes values into the template and returns the rendered DOCX
// bytes. Under MissingKeyError the template's variables are scanned up front
// and the render fails before producing output when any are absent; the
// default policy leaves missing keys to the engine, which substitutes empty
// strings.
func (r *Renderer) Render(ctx context.Context, template data.Document, values data.Context, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if options.MissingKeys == render.MissingKeyError {
		if err := checkMissingKeys(template, values); err != nil {
			return nil, err
		}
	}

	tmpl, err := engine.Prepare(bytes.NewReader(template.Raw()))
	if err != nil {
		return nil, fmt.Errorf("stencil: prepare %s: %w", describe(template), err)
	}
	defer tmpl.Close()

	out, err := tmpl.Render(engine.TemplateData(values))
	if err != nil {
		return nil, fmt.Errorf("stencil: render %s: %w", describe(template), err)
	}

	rendered, err := io.ReadAll(out)
	if err != nil {
		return nil, fmt.Errorf("stencil: read rendered output: %w", err)
	}
	return rendered, nil
}

func checkMissingKeys(template data.Document, values data.Context) error {
	reader, err := docx.OpenBytes(template.Raw())
	if err != nil {
		return fmt.Errorf("stencil: inspect %s: %w", describe(template), err)
	}

	variables, err := reader.Variables()
	if err != nil {
		return fmt.Errorf("stencil: scan %s: %w", describe(template), err)
	}

	var missing []string
	for _, name := range variables {
		if !values.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &render.MissingKeysError{Template: describe(template), Keys: missing}
	}
	return nil
}

func describe(template data.Document) string {
	if loc := template.Location(); loc != "" {
		return loc
	}
	return "template"
}
