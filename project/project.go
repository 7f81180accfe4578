// Package project resolves the paths cargo-readme works with: the Cargo
// project root, the source file whose doc comments become the README, and
// the template used to render it.
//
// Relative input, output and template paths are relative to the project
// root, not to the working directory.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.jacobcolvin.com/readme/manifest"
)

// DefaultTemplate is the template used when none is given and one exists at
// the project root.
const DefaultTemplate = "README.tpl"

// Default entrypoints, tried in order before the manifest targets.
var defaultEntrypoints = []string{
	filepath.Join("src", "lib.rs"),
	filepath.Join("src", "main.rs"),
}

// Sentinel errors returned by path resolution.
var (
	ErrNotProject       = errors.New("does not look like a Rust/Cargo project")
	ErrNoEntrypoint     = errors.New("no entrypoint found")
	ErrMultipleBinaries = errors.New("multiple binaries found, choose one")
	ErrTemplateNotFound = errors.New("template not found")
)

// Root returns the project root. An empty given path means the working
// directory; a relative one is joined onto it. The root must contain a
// Cargo.toml.
func Root(given string) (string, error) {
	root := given
	if !filepath.IsAbs(root) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}

		root = filepath.Join(wd, given)
	}

	if !isFile(filepath.Join(root, manifest.FileName)) {
		return "", fmt.Errorf("%q %w", root, ErrNotProject)
	}

	return root, nil
}

// Resolve joins a relative path onto the project root.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(root, path)
}

// Entrypoint finds the source file to read doc comments from. It tries
// src/lib.rs, src/main.rs, the [lib] path, and finally the only [[bin]]
// target that is documented.
func Entrypoint(root string, m *manifest.Manifest) (string, error) {
	for _, p := range defaultEntrypoints {
		path := filepath.Join(root, p)
		if isFile(path) {
			return path, nil
		}
	}

	if m == nil {
		return "", ErrNoEntrypoint
	}

	if m.Lib != nil && m.Lib.Doc && m.Lib.Path != "" {
		return Resolve(root, m.Lib.Path), nil
	}

	var bins []string

	for _, bin := range m.Bins {
		if !bin.Doc {
			continue
		}

		bins = append(bins, binPath(bin))
	}

	switch len(bins) {
	case 0:
		return "", ErrNoEntrypoint
	case 1:
		return Resolve(root, bins[0]), nil
	}

	return "", fmt.Errorf("%w: [%s]", ErrMultipleBinaries, strings.Join(bins, ", "))
}

// Template finds the template to render with. A given template must exist.
// Without one, [DefaultTemplate] is used when it exists at the root; ok is
// false when there is no template to use.
func Template(root, given string) (string, bool, error) {
	if given != "" {
		path := Resolve(root, given)
		if !isFile(path) {
			return "", false, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}

		return path, true, nil
	}

	path := filepath.Join(root, DefaultTemplate)
	if !isFile(path) {
		return "", false, nil
	}

	return path, true, nil
}

// binPath falls back to Cargo's src/bin/<name>.rs layout.
func binPath(bin manifest.Target) string {
	if bin.Path != "" {
		return bin.Path
	}

	return filepath.Join("src", "bin", bin.Name+".rs")
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
