// Package docfill fills DOCX templates with values read from YAML documents.
// The root package re-exports the pipeline's entry points; the heavy lifting
// lives in pkg/filler, pkg/data, and pkg/render.
package docfill

import (
	"context"

	internalloader "github.com/goliatone/go-docfill/internal/data/loader"
	internalparser "github.com/goliatone/go-docfill/internal/data/parser"
	"github.com/goliatone/go-docfill/pkg/data"
	"github.com/goliatone/go-docfill/pkg/filler"
	"github.com/goliatone/go-docfill/pkg/render"
)

// Context is the mapping of substitution values supplied to a renderer.
type Context = data.Context

// Request describes the inputs for one fill run.
type Request = filler.Request

// Option configures a Filler; aliased here for convenience.
type Option = filler.Option

// NewFiller exposes the pipeline constructor from the top-level module.
func NewFiller(options ...filler.Option) *filler.Filler {
	return filler.New(options...)
}

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...data.LoaderOption) data.Loader {
	return internalloader.New(data.NewLoaderOptions(options...))
}

// ParseContext decodes a YAML document into a Context using the built-in
// parser.
func ParseContext(doc data.Document) (data.Context, error) {
	return internalparser.Parse(doc)
}

// Fill loads the data and template sources, renders, and returns the document
// bytes. It is the simplest in-memory entry point.
func Fill(ctx context.Context, dataSource, templateSource data.Source, options ...filler.Option) ([]byte, error) {
	f := filler.New(options...)
	return f.Fill(ctx, filler.Request{
		DataSource:     dataSource,
		TemplateSource: templateSource,
	})
}

// FillFile reads a YAML file and a DOCX template from disk and writes the
// rendered document to outputPath, overwriting any existing file. It mirrors
// the one-call shape of the original tool: data in, template in, document out.
func FillFile(ctx context.Context, dataPath, templatePath, outputPath string, options ...filler.Option) error {
	f := filler.New(options...)
	return f.FillToFile(ctx, filler.Request{
		DataSource:     data.SourceFromFile(dataPath),
		TemplateSource: data.SourceFromFile(templatePath),
	}, outputPath)
}

// WithMissingKeyPolicy re-exports the strictness knob so callers of FillFile
// can pin the missing-key behaviour without importing pkg/filler.
func WithMissingKeyPolicy(policy render.MissingKeyPolicy) filler.Option {
	return filler.WithMissingKeyPolicy(policy)
}
