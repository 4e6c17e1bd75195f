package render

import (
	"context"

	"github.com/goliatone/go-docfill/pkg/data"
)

// Renderer substitutes a Context into a loaded template document and returns
// the rendered bytes. Implementations own the placeholder syntax; the
// pipeline treats templates as opaque payloads.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, template data.Document, values data.Context, options Options) ([]byte, error)
}
