package docx

import (
	"regexp"
	"sort"
	"strings"
)

var (
	exprPattern       = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
	identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
)

// keywords the template engine reserves inside expressions.
var exprKeywords = map[string]struct{}{
	"if": {}, "elsif": {}, "elseif": {}, "else": {}, "unless": {},
	"end": {}, "for": {}, "in": {}, "include": {},
	"true": {}, "false": {}, "nil": {}, "and": {}, "or": {}, "not": {},
}

// Variables scans every text-bearing part for {{…}} expressions and returns
// the sorted set of top-level context keys the template references. Loop
// variables introduced by {{for x in xs}} are tracked and excluded for the
// extent of their block, function calls and dotted sub-paths are reduced to
// the root identifier, and string literals are ignored.
//
// This is a best-effort scan used for strict-mode validation and inspection;
// the engine remains the authority on expression semantics.
func (r *Reader) Variables() ([]string, error) {
	seen := make(map[string]struct{})

	for _, name := range r.TextParts() {
		part, err := r.Part(name)
		if err != nil {
			return nil, err
		}
		paragraphs, err := partParagraphs(part)
		if err != nil {
			return nil, err
		}

		// Loop bindings scope across paragraphs within a part.
		var bindings []map[string]struct{}
		for _, paragraph := range paragraphs {
			for _, match := range exprPattern.FindAllStringSubmatch(paragraph, -1) {
				scanExpression(strings.TrimSpace(match[1]), &bindings, seen)
			}
		}
	}

	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars, nil
}

func scanExpression(expr string, bindings *[]map[string]struct{}, seen map[string]struct{}) {
	if expr == "" {
		return
	}

	fields := strings.Fields(expr)
	head := fields[0]

	switch head {
	case "end":
		if n := len(*bindings); n > 0 {
			*bindings = (*bindings)[:n-1]
		}
		return
	case "else":
		return
	case "include":
		// {{include "fragment"}} names a fragment, not a context key.
		return
	case "for":
		scanForExpression(expr, bindings, seen)
		return
	case "if", "elsif", "elseif", "unless":
		collectIdentifiers(strings.TrimPrefix(expr, head), *bindings, seen)
		// Conditionals do not bind variables but do open a block for end.
		if head != "elsif" && head != "elseif" {
			*bindings = append(*bindings, nil)
		}
		return
	default:
		collectIdentifiers(expr, *bindings, seen)
	}
}

// scanForExpression handles {{for x in xs}} and {{for i, x in xs}}: the loop
// variables become bound for the block, the range expression is scanned.
func scanForExpression(expr string, bindings *[]map[string]struct{}, seen map[string]struct{}) {
	body := strings.TrimSpace(strings.TrimPrefix(expr, "for"))
	parts := strings.SplitN(body, " in ", 2)

	bound := make(map[string]struct{})
	if len(parts) == 2 {
		for _, name := range strings.Split(parts[0], ",") {
			if id := strings.TrimSpace(name); identifierPattern.MatchString(id) {
				bound[id] = struct{}{}
			}
		}
		collectIdentifiers(parts[1], *bindings, seen)
	}
	*bindings = append(*bindings, bound)
}

func collectIdentifiers(expr string, bindings []map[string]struct{}, seen map[string]struct{}) {
	expr = stripStringLiterals(expr)

	for _, loc := range identifierPattern.FindAllStringIndex(expr, -1) {
		id := expr[loc[0]:loc[1]]

		if _, reserved := exprKeywords[id]; reserved {
			continue
		}
		if isBound(id, bindings) {
			continue
		}
		// Skip dotted sub-paths: only the root of a.b.c is a context key.
		if loc[0] > 0 && expr[loc[0]-1] == '.' {
			continue
		}
		// Skip function calls: name( is a helper, not data.
		if rest := strings.TrimLeft(expr[loc[1]:], " "); strings.HasPrefix(rest, "(") {
			continue
		}

		seen[id] = struct{}{}
	}
}

func isBound(id string, bindings []map[string]struct{}) bool {
	for _, scope := range bindings {
		if _, ok := scope[id]; ok {
			return true
		}
	}
	return false
}

func stripStringLiterals(expr string) string {
	var sb strings.Builder
	inString := false
	var quote byte
	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		switch {
		case inString && ch == quote:
			inString = false
		case inString:
			// drop
		case ch == '"' || ch == '\'':
			inString = true
			quote = ch
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
