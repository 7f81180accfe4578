package readme

import (
	"errors"
	"fmt"
	"strings"

	"go.jacobcolvin.com/readme/manifest"
)

// Template tokens.
const (
	TokenReadme  = "{{readme}}"
	TokenCrate   = "{{crate}}"
	TokenBadges  = "{{badges}}"
	TokenLicense = "{{license}}"
	TokenVersion = "{{version}}"
)

// Sentinel errors returned when rendering a template.
var (
	ErrMissingReadme = errors.New("missing `{{readme}}` in template")
	ErrTokenDisabled = errors.New("was found in template but is disabled")
	ErrTokenMissing  = errors.New("was found in template but has no value")
)

// RenderOptions selects the metadata rendered around the extracted docs.
type RenderOptions struct {
	Title   bool
	Badges  bool
	License bool
}

// DefaultRenderOptions renders everything.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Title: true, Badges: true, License: true}
}

// RenderTemplate substitutes the tokens in tpl. Trailing newlines of tpl are
// dropped. {{readme}} is required and replaced last, so the extracted docs
// are never scanned for tokens.
func RenderTemplate(tpl, body string, m *manifest.Manifest, opts RenderOptions) (string, error) {
	if m == nil {
		m = &manifest.Manifest{}
	}

	tpl = strings.TrimRight(tpl, "\n")

	if !strings.Contains(tpl, TokenReadme) {
		return "", ErrMissingReadme
	}

	subs := []struct {
		token   string
		value   string
		enabled bool
		present bool
	}{
		{TokenCrate, m.Name, opts.Title, m.Name != ""},
		{TokenBadges, strings.Join(m.Badges, "\n"), opts.Badges, true},
		{TokenLicense, m.License, opts.License, m.License != ""},
		{TokenVersion, m.Version, true, m.Version != ""},
	}

	for _, sub := range subs {
		if !strings.Contains(tpl, sub.token) {
			continue
		}

		if !sub.enabled {
			return "", fmt.Errorf("`%s` %w", sub.token, ErrTokenDisabled)
		}

		if !sub.present {
			return "", fmt.Errorf("`%s` %w", sub.token, ErrTokenMissing)
		}

		tpl = strings.ReplaceAll(tpl, sub.token, sub.value)
	}

	return strings.ReplaceAll(tpl, TokenReadme, body), nil
}

// RenderDefault renders without a template: badges, then a "# name" title,
// then the docs, then "License: ..." when the license is known. Parts are
// separated by a blank line, and a blank body drops the separator.
func RenderDefault(body string, m *manifest.Manifest, opts RenderOptions) string {
	if m == nil {
		return body
	}

	if opts.Badges && len(m.Badges) > 0 {
		body = strings.Join(m.Badges, "\n") + "\n\n" + body
	}

	if opts.Title && m.Name != "" {
		body = join("# "+m.Name, body)
	}

	if opts.License && m.License != "" {
		body = join(body, "License: "+m.License)
	}

	return body
}

func join(a, b string) string {
	switch {
	case strings.TrimSpace(a) == "":
		return b
	case strings.TrimSpace(b) == "":
		return a
	}

	return a + "\n\n" + b
}
