// Package docx provides read-only access to the XML parts of a DOCX package
// for text extraction and placeholder discovery. It never mutates a document;
// rendering is the template engine's job.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
)

// textPartPattern matches the package parts that can carry visible text.
var textPartPattern = regexp.MustCompile(`^word/(document|header\d*|footer\d*|footnotes|endnotes)\.xml$`)

// Reader exposes the parts of a DOCX (zip) package.
type Reader struct {
	parts map[string]*zip.File
}

// OpenBytes parses a DOCX package held in memory.
func OpenBytes(payload []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return nil, fmt.Errorf("docx: open package: %w", err)
	}

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}
	if _, ok := parts["word/document.xml"]; !ok {
		return nil, fmt.Errorf("docx: package has no word/document.xml")
	}

	return &Reader{parts: parts}, nil
}

// Part returns the raw bytes of a named package part.
func (r *Reader) Part(name string) ([]byte, error) {
	f, ok := r.parts[name]
	if !ok {
		return nil, fmt.Errorf("docx: part %s not found", name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("docx: open part %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("docx: read part %s: %w", name, err)
	}
	return data, nil
}

// TextParts returns the sorted names of parts that can carry document text:
// the body, headers, footers, and foot/endnotes.
func (r *Reader) TextParts() []string {
	names := make([]string, 0, len(r.parts))
	for name := range r.parts {
		if textPartPattern.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
