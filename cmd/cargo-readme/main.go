// Command cargo-readme generates a README.md from the crate-level doc
// comments of a Rust project.
//
// It is usually run as a cargo subcommand:
//
//	cargo readme > README.md
//	cargo readme --no-title --template docs/README.tpl -o README.md
//
// See the readme package for the template tokens.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
	"golang.org/x/term"

	"go.jacobcolvin.com/readme/log"
	"go.jacobcolvin.com/readme/manifest"
	"go.jacobcolvin.com/readme/project"
	"go.jacobcolvin.com/readme/readme"
	"go.jacobcolvin.com/readme/version"
)

// subcommandName is passed as the first argument when run as `cargo readme`.
const subcommandName = "readme"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd()))) //nolint:gosec // Fd fits in an int.
	cmd.SetArgs(stripSubcommand(os.Args[1:]))

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// stripSubcommand drops the leading "readme" argument cargo passes to
// external subcommands.
func stripSubcommand(args []string) []string {
	if len(args) > 0 && args[0] == subcommandName {
		return args[1:]
	}

	return args
}

type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *readme.Config
	logCfg *log.Config
	logger *slog.Logger
	// tty adds a trailing newline for display in a terminal.
	tty bool
}

func newRootCmd(stdout, stderr io.Writer, tty bool) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    readme.NewConfig(),
		logCfg: log.NewConfig(),
		tty:    tty,
	}

	cmd := &cobra.Command{
		Use:   "cargo-readme [flags]",
		Short: "Generate README.md content from doc comments",
		Long: strings.TrimSpace(`
cargo-readme reads the crate-level doc comments (//! or /*! */) of a Rust
project and renders them as a README. Code fences are normalized for
GitHub-style Markdown, hidden example lines are removed, and headings are
indented one level below the crate title.

Input, output and template paths are relative to the project root.`),
		Args:              cobra.NoArgs,
		Version:           version.String(),
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setupLogging()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.run()
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	a.cfg.RegisterFlags(cmd.Flags())
	a.logCfg.RegisterFlags(cmd.PersistentFlags())

	err := a.cfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(stderr, "register completions: %v\n", err)
	}

	err = a.logCfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(stderr, "register completions: %v\n", err)
	}

	cmd.AddCommand(a.newManifestCmd(), newDocsCmd(cmd))

	return cmd
}

func (a *app) setupLogging() error {
	logger, err := a.logCfg.NewLogger(a.stderr)
	if err != nil {
		return err
	}

	a.logger = logger
	slog.SetDefault(logger)

	return nil
}

func (a *app) run() error {
	gen, err := a.cfg.NewGenerator(a.logger)
	if err != nil {
		return err
	}

	res, err := gen.Generate()
	if err != nil {
		return err
	}

	if a.cfg.Output == "" {
		text := res.Text
		if a.tty {
			text += "\n"
		}

		return readme.Write(a.stdout, text, false)
	}

	path := project.Resolve(res.Root, a.cfg.Output)

	err = writeFile(path, res.Text)
	if err != nil {
		return err
	}

	a.logger.Info("wrote readme", slog.String("path", path))

	return nil
}

func writeFile(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // Output is chosen by the user.
	if err != nil {
		return fmt.Errorf("%w: %w", readme.ErrWriteOutput, err)
	}

	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", readme.ErrWriteOutput, closeErr))
		}
	}()

	return readme.Write(f, text, true)
}

func (a *app) newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the crate metadata used for rendering",
		Long: strings.TrimSpace(`
Print the name, version, license, targets and rendered badges read from
Cargo.toml, as YAML.`),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.printManifest()
		},
	}

	cmd.Flags().StringVarP(&a.cfg.ProjectRoot, a.cfg.Flags.ProjectRoot, "r", "",
		"directory containing Cargo.toml (default: the current directory)")

	return cmd
}

func (a *app) printManifest() error {
	root, err := project.Root(a.cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("%w: %w", readme.ErrProject, err)
	}

	m, err := manifest.Load(root)
	if err != nil {
		return fmt.Errorf("%w: %w", readme.ErrProject, err)
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: %w", readme.ErrWriteOutput, err)
	}

	_, err = a.stdout.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", readme.ErrWriteOutput, err)
	}

	return nil
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "gen-docs <directory>",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command, suitable for publishing CLI docs.

Example:

  cargo-readme gen-docs ./docs/cli`),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			err := os.MkdirAll(args[0], 0o755)
			if err != nil {
				return fmt.Errorf("%w: %w", readme.ErrWriteOutput, err)
			}

			return cobradoc.GenMarkdownTree(root, args[0])
		},
	}
}
