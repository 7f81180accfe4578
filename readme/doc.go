// Package readme generates a README from the crate-level doc comments of a
// Cargo project.
//
// A [Generator] finds the project root and its Cargo.toml, picks the source
// file to read (src/lib.rs, src/main.rs, or a target from the manifest),
// extracts its inner doc comments with [doc.Extract], and renders the result.
//
// # Rendering
//
// Without a template, [RenderDefault] prepends the badges and a "# name"
// title and appends a "License: ..." line.
//
// With a template (README.tpl at the project root by default), [RenderTemplate]
// substitutes these tokens:
//
//	{{readme}}   the extracted docs (required)
//	{{crate}}    the crate name
//	{{version}}  the crate version
//	{{badges}}   badges from the [badges] table, one per line
//	{{license}}  the crate license
//
// Using a token whose value has been disabled, such as {{crate}} together
// with WithTitle(false), is an error.
//
// # Usage
//
//	gen := readme.NewGenerator(readme.WithProjectRoot("path/to/crate"))
//
//	res, err := gen.Generate()
//	if err != nil {
//		return err
//	}
//
//	fmt.Print(res.Text)
package readme
