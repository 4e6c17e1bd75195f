package docx

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// partParagraphs parses one XML part and returns the concatenated run text of
// each paragraph in document order. WordprocessingML splits a paragraph's text
// across w:r/w:t runs at arbitrary points, so placeholder scanning must work
// on whole paragraphs, never on individual runs.
func partParagraphs(part []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(part); err != nil {
		return nil, fmt.Errorf("docx: parse xml: %w", err)
	}

	var paragraphs []string
	for _, p := range doc.FindElements("//w:p") {
		var sb strings.Builder
		for _, node := range p.FindElements(".//w:t") {
			sb.WriteString(node.Text())
		}
		paragraphs = append(paragraphs, sb.String())
	}

	// Text nodes outside any paragraph (tables put theirs inside w:p, but be
	// permissive about hand-built fixtures).
	if len(paragraphs) == 0 {
		var sb strings.Builder
		for _, node := range doc.FindElements("//w:t") {
			sb.WriteString(node.Text())
		}
		if sb.Len() > 0 {
			paragraphs = append(paragraphs, sb.String())
		}
	}

	return paragraphs, nil
}

// Text extracts the visible text of every text-bearing part, one line per
// paragraph.
func (r *Reader) Text() (string, error) {
	var lines []string
	for _, name := range r.TextParts() {
		part, err := r.Part(name)
		if err != nil {
			return "", err
		}
		paragraphs, err := partParagraphs(part)
		if err != nil {
			return "", fmt.Errorf("docx: part %s: %w", name, err)
		}
		lines = append(lines, paragraphs...)
	}
	return strings.Join(lines, "\n"), nil
}
