// Package filler coordinates the full pipeline from a YAML data source and a
// DOCX template source to a rendered document: load data → parse → load
// template → render → write.
package filler

import (
	"context"
	"errors"
	"fmt"
	"os"

	internalloader "github.com/goliatone/go-docfill/internal/data/loader"
	internalparser "github.com/goliatone/go-docfill/internal/data/parser"
	"github.com/goliatone/go-docfill/pkg/data"
	"github.com/goliatone/go-docfill/pkg/render"
	stencilrenderer "github.com/goliatone/go-docfill/pkg/renderers/stencil"
)

const defaultRendererName = stencilrenderer.RendererName

// Option customises the filler configuration.
type Option func(*Filler)

// WithLoader injects a custom document loader used for both the data file and
// the template.
func WithLoader(loader data.Loader) Option {
	return func(f *Filler) {
		f.loader = loader
	}
}

// WithLoaderOptions configures the built-in loader. Ignored when WithLoader
// supplies a custom implementation.
func WithLoaderOptions(options ...data.LoaderOption) Option {
	return func(f *Filler) {
		f.loaderOptions = append(f.loaderOptions, options...)
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(f *Filler) {
		f.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(f *Filler) {
		f.defaultRenderer = name
	}
}

// WithMissingKeyPolicy sets the default policy for template variables absent
// from the data. Requests can still override it per call.
func WithMissingKeyPolicy(policy render.MissingKeyPolicy) Option {
	return func(f *Filler) {
		f.renderOptions.MissingKeys = policy
	}
}

// Filler coordinates loading, parsing, and rendering. It applies sensible
// defaults (file loader, DOCX renderer) while remaining open to dependency
// injection for advanced callers.
type Filler struct {
	loader          data.Loader
	loaderOptions   []data.LoaderOption
	registry        *render.Registry
	defaultRenderer string
	renderOptions   render.Options
	defaultsApplied bool
}

// New constructs a Filler applying any provided options. Missing dependencies
// are initialised with the built-in implementations so callers can start with
// a single constructor call.
func New(options ...Option) *Filler {
	f := &Filler{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.applyDefaults()
	return f
}

func (f *Filler) applyDefaults() {
	if f.loader == nil {
		f.loader = internalloader.New(data.NewLoaderOptions(f.loaderOptions...))
	}
	if f.registry == nil {
		registry := render.NewRegistry()
		registry.MustRegister(stencilrenderer.New())
		f.registry = registry
	}
	if f.defaultRenderer == "" {
		f.defaultRenderer = defaultRendererName
	}
	f.defaultsApplied = true
}

// Loader returns the document loader in use, for callers that need documents
// outside a fill run, such as template inspection.
func (f *Filler) Loader() data.Loader {
	if !f.defaultsApplied {
		f.applyDefaults()
	}
	return f.loader
}

// Request describes the inputs required to fill a template.
type Request struct {
	// DataSource identifies where the YAML data lives. Optional when Data is
	// supplied directly.
	DataSource data.Source

	// Data bypasses loading and parsing when the caller already holds a
	// context, e.g. one assembled programmatically.
	Data data.Context

	// TemplateSource identifies where the template document lives.
	TemplateSource data.Source

	// Renderer names the renderer to use. If empty, the filler falls back to
	// the configured default renderer.
	Renderer string

	// Options overrides the filler-level render options for this request.
	Options *render.Options
}

// Fill executes the loader → parser → renderer sequence and returns the
// rendered document bytes. Nothing is written to disk; any failure aborts the
// run with no side effects.
func (f *Filler) Fill(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("filler: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !f.defaultsApplied {
		f.applyDefaults()
	}

	if req.TemplateSource == nil {
		return nil, errors.New("filler: template source is required")
	}

	values, err := f.resolveData(ctx, req)
	if err != nil {
		return nil, err
	}

	template, err := f.loader.Load(ctx, req.TemplateSource)
	if err != nil {
		return nil, fmt.Errorf("filler: load template: %w", err)
	}

	rendererName := req.Renderer
	if rendererName == "" {
		rendererName = f.defaultRenderer
	}
	renderer, err := f.registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("filler: %w", err)
	}

	options := f.renderOptions
	if req.Options != nil {
		options = *req.Options
	}

	rendered, err := renderer.Render(ctx, template, values, options)
	if err != nil {
		return nil, fmt.Errorf("filler: render: %w", err)
	}
	return rendered, nil
}

// FillToFile renders the request and writes the result to outputPath in a
// single write. A pre-existing file is overwritten; when rendering fails no
// file is touched, and a missing parent directory surfaces as the write
// error.
func (f *Filler) FillToFile(ctx context.Context, req Request, outputPath string) error {
	if outputPath == "" {
		return errors.New("filler: output path is required")
	}

	rendered, err := f.Fill(ctx, req)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, rendered, 0o644); err != nil {
		return fmt.Errorf("filler: write output: %w", err)
	}
	return nil
}

func (f *Filler) resolveData(ctx context.Context, req Request) (data.Context, error) {
	if req.Data != nil {
		return req.Data, nil
	}
	if req.DataSource == nil {
		return nil, errors.New("filler: data source is required")
	}

	doc, err := f.loader.Load(ctx, req.DataSource)
	if err != nil {
		return nil, fmt.Errorf("filler: load data: %w", err)
	}

	values, err := internalparser.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("filler: %w", err)
	}
	return values, nil
}
