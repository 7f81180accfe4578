package doc_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/readme/doc"
	"go.jacobcolvin.com/readme/stringtest"
)

var update = flag.Bool("update", false, "update golden files")

// assertGolden compares got against testdata/<name>.md.
// When -update is set, it writes the golden file instead.
func assertGolden(t *testing.T, name, got string) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".md")

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got+"\n"), 0o644))

		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

	assert.Equal(t, string(want), got+"\n")
}

func TestExtractGolden(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"line_style", "block_style", "no_docs"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := os.Open(filepath.Join("testdata", name+".rs"))
			require.NoError(t, err)

			t.Cleanup(func() {
				require.NoError(t, f.Close())
			})

			got, err := doc.Extract(f, doc.WithIndentHeadings(true))
			require.NoError(t, err)

			assertGolden(t, name, got)
		})
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	want := stringtest.JoinLF(
		"first line",
		"",
		"```rust",
		`let rust_code = "safe";`,
		"```",
		"",
		"```C",
		"int i = 0; // no rust code",
		"```",
	)

	tcs := map[string]struct {
		input  string
		want   string
		indent bool
	}{
		"line style": {
			input: stringtest.Input(`
				//! first line
				//!
				//! ` + "```" + `
				//! let rust_code = "safe";
				//! ` + "```" + `
				//!
				//! ` + "```" + `C
				//! int i = 0; // no rust code
				//! ` + "```" + `
				use std::any::Any;
				fn main() {}
			`),
			want: want,
		},
		"block style": {
			input: stringtest.Input(`
				/*!
				first line

				` + "```" + `
				let rust_code = "safe";
				` + "```" + `

				` + "```" + `C
				int i = 0; // no rust code
				` + "```" + `
				*/
				use std::any::Any;
				fn main() {}
			`),
			want: want,
		},
		"line style stops before block comment code": {
			input: "//! singleline\n\n/*\nnot docs\n*/",
			want:  "singleline",
		},
		"block style ignores later line comments": {
			input: "/*!\nmultiline\n*/\n//! singleline",
			want:  "multiline",
		},
		"nested block comments": {
			input: stringtest.Input(`
				/*!
				level 0
				/*
				level 1
				*/
				level 0
				*/
				fn main() {}
			`),
			want: stringtest.JoinLF("level 0", "/*", "level 1", "*/", "level 0"),
		},
		"headings indented": {
			input:  "//! # Examples\n//!\n//! Text.",
			want:   "## Examples\n\nText.",
			indent: true,
		},
		"headings kept": {
			input: "//! # Examples",
			want:  "# Examples",
		},
		"no docs": {
			input: "fn main() {}\n",
			want:  "",
		},
		"only a bare marker": {
			input: "/*!*/",
			want:  "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := doc.Extract(strings.NewReader(tc.input), doc.WithIndentHeadings(tc.indent))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractMixedStyles(t *testing.T) {
	t.Parallel()

	_, err := doc.Extract(strings.NewReader("//! line\n/*! block */\n"))
	require.ErrorIs(t, err, doc.ErrMixedCommentStyle)
}
