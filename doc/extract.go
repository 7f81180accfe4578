package doc

import (
	"io"
	"strings"
)

// Extract loads the crate documentation from r and returns it as Markdown,
// lines joined by "\n" with no trailing newline. A source without doc
// comments yields the empty string.
func Extract(r io.Reader, opts ...Option) (string, error) {
	block, err := Load(r)
	if err != nil {
		return "", err
	}

	lines := NewTransformer(opts...).Transform(block.Normalize())

	return strings.Join(lines, "\n"), nil
}
