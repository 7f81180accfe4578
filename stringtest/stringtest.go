// Package stringtest builds multi-line strings for test fixtures.
package stringtest

import (
	"strings"
)

// Input dedents a raw string literal so fixtures can be indented with the
// surrounding test code.
//
// One leading and one trailing newline are dropped, the indentation common to
// all non-blank lines is removed, and whitespace-only lines become empty.
//
// Example:
//
//	src := stringtest.Input(`
//		//! Crate docs.
//		fn main() {}
//	`) // -> "//! Crate docs.\nfn main() {}"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}

		lines[i] = line[max(indent, 0):]
	}

	return strings.Join(lines, "\n")
}

// Lines dedents s like [Input] and splits the result into lines.
// An empty result yields an empty, non-nil slice.
func Lines(s string) []string {
	s = Input(s)
	if s == "" {
		return []string{}
	}

	return strings.Split(s, "\n")
}

// JoinLF joins lines with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"# my_crate",
//		"",
//		"License: MIT",
//	) // -> "# my_crate\n\nLicense: MIT"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins lines with CRLF line endings, for sources written on
// Windows.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}
