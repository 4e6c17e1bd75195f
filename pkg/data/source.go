package data

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
)

// Source identifies where a payload originated so loaders can operate on
// files, fs.FS entries, URLs, or readers without leaking implementation
// details. Both the YAML data file and the DOCX template are addressed
// through Sources.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindURL    SourceKind = "url"
	SourceKindReader SourceKind = "reader"
)

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("data: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("data: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// readerSource wraps an io.Reader so stdin and in-memory payloads can flow
// through the same loading path as files.
type readerSource struct {
	name   string
	reader io.Reader
}

func (s readerSource) Location() string {
	return s.name
}

func (s readerSource) Kind() SourceKind {
	return SourceKindReader
}

// Reader exposes the wrapped reader. Loaders consume it exactly once.
func (s readerSource) Reader() io.Reader {
	return s.reader
}

// ReaderSource is implemented by sources that carry their own payload stream.
type ReaderSource interface {
	Source
	Reader() io.Reader
}

// SourceFromReader returns a Source backed by r. The name is used only for
// diagnostics.
func SourceFromReader(name string, r io.Reader) Source {
	return readerSource{name: name, reader: r}
}
