package doc

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultLanguage is the fence tag given to rustdoc code blocks.
const DefaultLanguage = "rust"

const fence = "```"

var (
	textFence  = regexp.MustCompile("^```text$")
	otherFence = regexp.MustCompile("^```\\w[\\w,+]*$")
)

// Section tracks where a [Transformer] is relative to code fences.
type Section int

// Sections.
const (
	// SectionNormal is Markdown outside any code fence.
	SectionNormal Section = iota
	// SectionFencedPrimary is inside a fence of the documented language,
	// where hidden lines are dropped.
	SectionFencedPrimary
	// SectionFencedOther is inside any other fence; lines pass through.
	SectionFencedOther
)

// String returns the section name.
func (s Section) String() string {
	switch s {
	case SectionNormal:
		return "normal"
	case SectionFencedPrimary:
		return "fenced-primary"
	case SectionFencedOther:
		return "fenced-other"
	}

	return fmt.Sprintf("Section(%d)", int(s))
}

// Transformer rewrites normalized doc lines into Markdown.
//
// It keeps fence state between calls to [Transformer.Line], so a single
// Transformer must see the lines of one document in order. Create instances
// with [NewTransformer].
type Transformer struct {
	primary        *regexp.Regexp
	language       string
	section        Section
	indentHeadings bool
}

// Option configures a [Transformer].
type Option func(*Transformer)

// WithIndentHeadings pushes every Markdown heading outside code fences one
// level deeper.
func WithIndentHeadings(indent bool) Option {
	return func(t *Transformer) {
		t.indentHeadings = indent
	}
}

// WithLanguage sets the fence tag of the documented language.
// The default is [DefaultLanguage]; an empty string keeps it.
func WithLanguage(lang string) Option {
	return func(t *Transformer) {
		if lang != "" {
			t.language = lang
		}
	}
}

// NewTransformer creates a [Transformer] with the given options.
func NewTransformer(opts ...Option) *Transformer {
	t := &Transformer{language: DefaultLanguage}

	for _, opt := range opts {
		opt(t)
	}

	lang := regexp.QuoteMeta(t.language)
	t.primary = regexp.MustCompile(
		"^```(" + lang + "|((" + lang + ",)?(no_run|ignore|should_panic)))?$",
	)

	return t
}

// Section returns the current fence state.
func (t *Transformer) Section() Section {
	return t.section
}

// Reset returns the Transformer to [SectionNormal].
func (t *Transformer) Reset() {
	t.section = SectionNormal
}

// Line rewrites a single line. It returns false when the line is hidden and
// must be left out of the output.
func (t *Transformer) Line(line string) (string, bool) {
	if t.section == SectionFencedPrimary && strings.HasPrefix(line, "# ") {
		return "", false
	}

	switch t.section {
	case SectionNormal:
		switch {
		case t.indentHeadings && strings.HasPrefix(line, "#"):
			return "#" + line, true

		case t.primary.MatchString(line):
			t.section = SectionFencedPrimary

			return fence + t.language, true

		case textFence.MatchString(line):
			t.section = SectionFencedOther

			return fence, true

		case otherFence.MatchString(line):
			t.section = SectionFencedOther
		}

	case SectionFencedPrimary, SectionFencedOther:
		if line == fence {
			t.section = SectionNormal
		}
	}

	return line, true
}

// Transform rewrites lines from a fresh [SectionNormal] state. An unclosed
// fence at the end is left open.
func (t *Transformer) Transform(lines []string) []string {
	t.Reset()

	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if rewritten, ok := t.Line(line); ok {
			out = append(out, rewritten)
		}
	}

	return out
}
