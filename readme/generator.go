package readme

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.jacobcolvin.com/readme/doc"
	"go.jacobcolvin.com/readme/manifest"
	"go.jacobcolvin.com/readme/project"
)

// Sentinel errors naming the stage of [Generator.Generate] that failed.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrProject       = errors.New("project")
	ErrLoad          = errors.New("load docs")
	ErrTemplate      = errors.New("template")
	ErrWriteOutput   = errors.New("write output")
)

// Result is a rendered README along with the paths used to build it.
type Result struct {
	Manifest *manifest.Manifest
	// Root is the absolute project root.
	Root string
	// Source is the file the doc comments were read from.
	Source string
	// Template is empty when no template was used.
	Template string
	Text     string
}

// Generator renders a README from a Cargo project.
type Generator struct {
	logger         *slog.Logger
	root           string
	input          string
	template       string
	opts           RenderOptions
	noTemplate     bool
	indentHeadings bool
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options. By default it
// uses the working directory as the project root, renders title, badges and
// license, and indents headings.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:         slog.Default(),
		opts:           DefaultRenderOptions(),
		indentHeadings: true,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithProjectRoot sets the project root. Relative paths are relative to the
// working directory.
func WithProjectRoot(root string) Option {
	return func(g *Generator) {
		g.root = root
	}
}

// WithInput sets the source file to read, relative to the project root.
func WithInput(input string) Option {
	return func(g *Generator) {
		g.input = input
	}
}

// WithTemplate sets the template file, relative to the project root.
func WithTemplate(template string) Option {
	return func(g *Generator) {
		g.template = template
	}
}

// WithNoTemplate disables templates, including the default README.tpl.
func WithNoTemplate(noTemplate bool) Option {
	return func(g *Generator) {
		g.noTemplate = noTemplate
	}
}

// WithTitle toggles the crate name title.
func WithTitle(title bool) Option {
	return func(g *Generator) {
		g.opts.Title = title
	}
}

// WithBadges toggles the badges from Cargo.toml.
func WithBadges(badges bool) Option {
	return func(g *Generator) {
		g.opts.Badges = badges
	}
}

// WithLicense toggles the license line.
func WithLicense(license bool) Option {
	return func(g *Generator) {
		g.opts.License = license
	}
}

// WithIndentHeadings toggles adding a level to every heading in the docs.
func WithIndentHeadings(indent bool) Option {
	return func(g *Generator) {
		g.indentHeadings = indent
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generate resolves the project, extracts the docs from its entrypoint and
// renders them.
func (g *Generator) Generate() (*Result, error) {
	if g.noTemplate && g.template != "" {
		return nil, fmt.Errorf("%w: a template cannot be set when templates are disabled", ErrInvalidOption)
	}

	root, err := project.Root(g.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProject, err)
	}

	g.logger.Debug("found project", slog.String("root", root))

	m, err := manifest.Load(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProject, err)
	}

	g.logger.Debug("loaded manifest",
		slog.String("name", m.Name),
		slog.String("version", m.Version),
		slog.Int("badges", len(m.Badges)),
	)

	source, err := g.source(root, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProject, err)
	}

	body, err := g.extract(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, source, err)
	}

	res := &Result{
		Manifest: m,
		Root:     root,
		Source:   source,
	}

	if !g.noTemplate {
		path, ok, tplErr := project.Template(root, g.template)
		if tplErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrTemplate, tplErr)
		}

		if ok {
			res.Template = path
		}
	}

	res.Text, err = g.render(body, m, res.Template)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}

	return res, nil
}

func (g *Generator) source(root string, m *manifest.Manifest) (string, error) {
	if g.input != "" {
		return project.Resolve(root, g.input), nil
	}

	return project.Entrypoint(root, m)
}

func (g *Generator) extract(source string) (string, error) {
	g.logger.Debug("reading docs", slog.String("source", source))

	f, err := os.Open(source) //nolint:gosec // Source is chosen by the user.
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // Read-only.

	return doc.Extract(f, doc.WithIndentHeadings(g.indentHeadings))
}

func (g *Generator) render(body string, m *manifest.Manifest, template string) (string, error) {
	if template == "" {
		g.logger.Debug("rendering without template")

		return RenderDefault(body, m, g.opts), nil
	}

	g.logger.Debug("rendering template", slog.String("template", template))

	tpl, err := os.ReadFile(template) //nolint:gosec // Template is chosen by the user.
	if err != nil {
		return "", err
	}

	return RenderTemplate(string(tpl), body, m, g.opts)
}

// Write writes text to w. Files get a trailing newline; other writers get
// the text as is.
func Write(w io.Writer, text string, file bool) error {
	if file {
		text += "\n"
	}

	_, err := io.WriteString(w, text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
