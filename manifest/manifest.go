// Package manifest reads the crate metadata that cargo-readme needs from
// Cargo.toml: the crate name, version and license, the library and binary
// targets used to find the documented source file, and the [badges] table.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the name of the Cargo manifest at a project root.
const FileName = "Cargo.toml"

// Sentinel errors returned when loading a manifest.
var (
	ErrReadManifest    = errors.New("read manifest")
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Manifest is the read-only crate metadata consumed by the renderer.
// Empty strings mean the value is not set.
type Manifest struct {
	Lib     *Target  `yaml:"lib,omitempty"`
	Name    string   `yaml:"name"`
	Version string   `yaml:"version,omitempty"`
	License string   `yaml:"license,omitempty"`
	Bins    []Target `yaml:"bins,omitempty"`
	// Badges holds rendered Markdown badges in display order.
	Badges []string `yaml:"badges,omitempty"`
}

// Target is a [lib] or [[bin]] section.
type Target struct {
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path,omitempty"`
	// Doc is false when the target opts out of documentation.
	Doc bool `yaml:"doc"`
}

type cargoToml struct {
	Lib     *cargoTarget              `toml:"lib"`
	Badges  map[string]map[string]any `toml:"badges"`
	Package cargoPackage              `toml:"package"`
	Bin     []cargoTarget             `toml:"bin"`
}

// Version and license are untyped because a workspace member may inherit
// them with a table such as `version.workspace = true`.
type cargoPackage struct {
	Version any    `toml:"version"`
	License any    `toml:"license"`
	Name    string `toml:"name"`
}

type cargoTarget struct {
	Doc  *bool  `toml:"doc"`
	Name string `toml:"name"`
	Path string `toml:"path"`
}

func (t cargoTarget) target() Target {
	return Target{
		Name: t.Name,
		Path: t.Path,
		Doc:  t.Doc == nil || *t.Doc,
	}
}

// Load reads the Cargo.toml in the root directory.
func Load(root string) (*Manifest, error) {
	path := filepath.Join(root, FileName)

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the project root.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadManifest, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Parse decodes the contents of a Cargo.toml.
func Parse(data []byte) (*Manifest, error) {
	var raw cargoToml

	err := toml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	if raw.Package.Name == "" {
		return nil, fmt.Errorf("%w: missing package name", ErrInvalidManifest)
	}

	m := &Manifest{
		Name:    raw.Package.Name,
		Version: stringValue(raw.Package.Version),
		License: stringValue(raw.Package.License),
		Badges:  RenderBadges(raw.Badges),
	}

	if raw.Lib != nil {
		lib := raw.Lib.target()
		m.Lib = &lib
	}

	for _, bin := range raw.Bin {
		m.Bins = append(m.Bins, bin.target())
	}

	return m, nil
}

func stringValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}

	return s
}
