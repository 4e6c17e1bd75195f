// Package testsupport builds minimal in-memory DOCX fixtures for tests. The
// packages produced are just valid enough for the template engine and the
// inspection code; they are not meant to open cleanly in Word.
package testsupport

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`

	contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
)

// BuildDocx returns a minimal DOCX package whose body holds one paragraph per
// argument. Paragraph text may contain template expressions.
func BuildDocx(paragraphs ...string) []byte {
	runs := make([][]string, len(paragraphs))
	for i, p := range paragraphs {
		runs[i] = []string{p}
	}
	return BuildDocxRuns(runs...)
}

// BuildDocxRuns builds a package where each paragraph is split into the given
// runs. Useful for reproducing the run fragmentation Word applies to typed
// placeholders.
func BuildDocxRuns(paragraphs ...[]string) []byte {
	var body strings.Builder
	for _, runs := range paragraphs {
		body.WriteString("    <w:p>\n")
		for _, run := range runs {
			fmt.Fprintf(&body, "      <w:r><w:t>%s</w:t></w:r>\n", run)
		}
		body.WriteString("    </w:p>\n")
	}

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
` + body.String() + `  </w:body>
</w:document>`

	return BuildDocxParts(map[string]string{"word/document.xml": documentXML})
}

// BuildDocxParts assembles a package from named XML parts, supplying the
// packaging boilerplate (.rels, content types) unless overridden. Callers use
// it to add headers, footers, or malformed parts.
func BuildDocxParts(parts map[string]string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	write := func(name, content string) {
		f, err := w.Create(name)
		if err != nil {
			panic(err)
		}
		if _, err := io.WriteString(f, content); err != nil {
			panic(err)
		}
	}

	if _, ok := parts["_rels/.rels"]; !ok {
		write("_rels/.rels", packageRels)
	}
	if _, ok := parts["word/_rels/document.xml.rels"]; !ok {
		write("word/_rels/document.xml.rels", documentRels)
	}
	if _, ok := parts["[Content_Types].xml"]; !ok {
		write("[Content_Types].xml", contentTypes)
	}
	for name, content := range parts {
		write(name, content)
	}

	if err := w.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
