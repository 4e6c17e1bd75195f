// Package parser decodes YAML data documents into render contexts.
package parser

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	pkgdata "github.com/goliatone/go-docfill/pkg/data"
)

// Parse decodes a YAML document into a Context. The top level must be a
// mapping; scalars and sequences are rejected because template expressions
// address values by key. String values are normalized so block scalars do not
// leak trailing newlines into the rendered document.
func Parse(doc pkgdata.Document) (pkgdata.Context, error) {
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("data parser: document is empty")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("data parser: parse %s: %w", describe(doc), err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("data parser: %s contains no document", describe(doc))
		}
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("data parser: %s: top level must be a mapping, got %s", describe(doc), kindName(node.Kind))
	}

	out := make(map[string]any)
	if err := node.Decode(&out); err != nil {
		return nil, fmt.Errorf("data parser: decode %s: %w", describe(doc), err)
	}

	return pkgdata.Context(out).Normalize(), nil
}

func describe(doc pkgdata.Document) string {
	if loc := doc.Location(); loc != "" {
		return loc
	}
	return "document"
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
