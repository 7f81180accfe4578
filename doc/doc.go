// Package doc extracts crate-level documentation from Rust source files and
// rewrites it as plain Markdown.
//
// Extraction runs in three steps, each usable on its own:
//
//  1. [Load] scans a source for the inner doc comment that documents the
//     crate. Two mutually exclusive styles are recognized: a run of `//!`
//     line comments, or a single `/*! ... */` block comment. The result is a
//     [Block] holding the raw, still-prefixed lines.
//
//  2. [Block.Normalize] removes the comment markers.
//
//  3. A [Transformer] rewrites the Markdown: rustdoc code fences (```,
//     ```no_run, ```ignore, ```should_panic and their `rust,` forms) become
//     ```rust, ```text becomes a bare fence, lines hidden from rendered
//     examples (`# ` inside a Rust fence) are dropped, and headings outside
//     fences can be pushed one level deeper so the crate name can take the
//     top level.
//
// [Extract] runs all three:
//
//	f, err := os.Open("src/lib.rs")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	text, err := doc.Extract(f, doc.WithIndentHeadings(true))
//
// Reading is incremental: [Load] stops consuming the source as soon as the
// doc comment ends.
package doc
