package readme

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for README generation, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	ProjectRoot      string
	Input            string
	Output           string
	Template         string
	NoTemplate       string
	NoTitle          string
	NoBadges         string
	NoLicense        string
	NoIndentHeadings string
}

// Config holds CLI flag values for README generation.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewGenerator] to create a [Generator].
type Config struct {
	Flags            Flags
	ProjectRoot      string
	Input            string
	Output           string
	Template         string
	NoTemplate       bool
	NoTitle          bool
	NoBadges         bool
	NoLicense        bool
	NoIndentHeadings bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		ProjectRoot:      "project-root",
		Input:            "input",
		Output:           "output",
		Template:         "template",
		NoTemplate:       "no-template",
		NoTitle:          "no-title",
		NoBadges:         "no-badges",
		NoLicense:        "no-license",
		NoIndentHeadings: "no-indent-headings",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds README generation flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.ProjectRoot, c.Flags.ProjectRoot, "r", "",
		"directory containing Cargo.toml (default: the current directory)")
	flags.StringVarP(&c.Input, c.Flags.Input, "i", "",
		"file to read doc comments from (default: src/lib.rs, src/main.rs, or a Cargo.toml target)")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "",
		"file to write to (default: stdout)")
	flags.StringVarP(&c.Template, c.Flags.Template, "t", "",
		"template file (default: README.tpl, if it exists)")
	flags.BoolVar(&c.NoTemplate, c.Flags.NoTemplate, false,
		"ignore the default template")
	flags.BoolVar(&c.NoTitle, c.Flags.NoTitle, false,
		"do not prepend the crate name as a title")
	flags.BoolVar(&c.NoBadges, c.Flags.NoBadges, false,
		"do not prepend badges from Cargo.toml")
	flags.BoolVar(&c.NoLicense, c.Flags.NoLicense, false,
		"do not append the license from Cargo.toml")
	flags.BoolVar(&c.NoIndentHeadings, c.Flags.NoIndentHeadings, false,
		"do not add an extra level to headings")
}

// RegisterCompletions registers shell completions for README generation
// flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.ProjectRoot,
		cobra.FixedCompletions(nil, cobra.ShellCompDirectiveFilterDirs))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.ProjectRoot, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Input,
		cobra.FixedCompletions([]string{"rs"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Input, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Template,
		cobra.FixedCompletions([]string{"tpl"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Template, err)
	}

	return nil
}

// Validate reports conflicting flag values.
func (c *Config) Validate() error {
	if c.NoTemplate && c.Template != "" {
		return fmt.Errorf("%w: --%s cannot be used with --%s",
			ErrInvalidOption, c.Flags.Template, c.Flags.NoTemplate)
	}

	return nil
}

// NewGenerator creates a [Generator] using this [Config].
func (c *Config) NewGenerator(logger *slog.Logger) (*Generator, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithProjectRoot(c.ProjectRoot),
		WithInput(c.Input),
		WithTemplate(c.Template),
		WithNoTemplate(c.NoTemplate),
		WithTitle(!c.NoTitle),
		WithBadges(!c.NoBadges),
		WithLicense(!c.NoLicense),
		WithIndentHeadings(!c.NoIndentHeadings),
	}

	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}

	return NewGenerator(opts...), nil
}
