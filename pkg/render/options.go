package render

// MissingKeyPolicy selects what happens when the template references a key
// the context does not provide.
type MissingKeyPolicy int

const (
	// MissingKeyEmpty substitutes an empty string for absent keys. This is
	// the engine's native behaviour and the default.
	MissingKeyEmpty MissingKeyPolicy = iota

	// MissingKeyError fails the render before any output is produced,
	// reporting every absent top-level key.
	MissingKeyError
)

func (p MissingKeyPolicy) String() string {
	switch p {
	case MissingKeyEmpty:
		return "empty"
	case MissingKeyError:
		return "error"
	default:
		return "unknown"
	}
}

// Options carries per-render instructions. The zero value is valid and means
// blank substitution for missing keys.
type Options struct {
	MissingKeys MissingKeyPolicy
}
