package render

import (
	"fmt"
	"strings"
)

// MissingKeysError reports template variables absent from the context when
// rendering under MissingKeyError. Keys are sorted and deduplicated by the
// renderer that constructs the error.
type MissingKeysError struct {
	Template string
	Keys     []string
}

func (e *MissingKeysError) Error() string {
	where := e.Template
	if where == "" {
		where = "template"
	}
	return fmt.Sprintf("render: %s references missing keys: %s", where, strings.Join(e.Keys, ", "))
}
