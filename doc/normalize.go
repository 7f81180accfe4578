package doc

import (
	"strings"
	"unicode"
)

// StripPrefix removes the three-character comment marker from line, plus one
// space directly after it. A line with nothing but whitespace left becomes
// the empty string. Other trailing content is kept as-is.
//
// line must still carry its marker.
func StripPrefix(line string) string {
	if len(line) <= len(LineMarker) {
		return ""
	}

	rest := strings.TrimPrefix(line[len(LineMarker):], " ")
	if strings.TrimSpace(rest) == "" {
		return ""
	}

	return rest
}

// Normalize returns the block's lines with comment markers removed.
//
// Line-style lines go through [StripPrefix]. For block style, the opener line
// is kept only if text follows the marker, and all lines lose trailing
// whitespace.
func (b *Block) Normalize() []string {
	if b.Empty() {
		return nil
	}

	out := make([]string, 0, len(b.Lines))

	switch b.Style {
	case StyleLine:
		for _, line := range b.Lines {
			out = append(out, StripPrefix(line))
		}

	case StyleBlock:
		if first := trimRight(StripPrefix(b.Lines[0])); first != "" {
			out = append(out, first)
		}

		for _, line := range b.Lines[1:] {
			out = append(out, trimRight(line))
		}

	case StyleNone:
	}

	return out
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
