package readme_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/readme/readme"
	"go.jacobcolvin.com/readme/stringtest"
)

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := readme.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	err := flags.Parse([]string{
		"--project-root", "crate",
		"-i", "src/other.rs",
		"-o", "README.md",
		"-t", "alt.tpl",
		"--no-title",
		"--no-badges",
		"--no-license",
		"--no-indent-headings",
	})
	require.NoError(t, err)

	assert.Equal(t, "crate", cfg.ProjectRoot)
	assert.Equal(t, "src/other.rs", cfg.Input)
	assert.Equal(t, "README.md", cfg.Output)
	assert.Equal(t, "alt.tpl", cfg.Template)
	assert.False(t, cfg.NoTemplate)
	assert.True(t, cfg.NoTitle)
	assert.True(t, cfg.NoBadges)
	assert.True(t, cfg.NoLicense)
	assert.True(t, cfg.NoIndentHeadings)
}

func TestConfigCustomFlagNames(t *testing.T) {
	t.Parallel()

	cfg := readme.NewConfig()
	cfg.Flags.ProjectRoot = "manifest-dir"

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--manifest-dir", "crate"}))
	assert.Equal(t, "crate", cfg.ProjectRoot)
	assert.Nil(t, flags.Lookup("project-root"))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := readme.NewConfig()
	cfg.Template = "alt.tpl"
	cfg.NoTemplate = true

	err := cfg.Validate()
	require.ErrorIs(t, err, readme.ErrInvalidOption)
	assert.EqualError(t, err, "invalid option: --template cannot be used with --no-template")

	_, err = cfg.NewGenerator(discard)
	require.ErrorIs(t, err, readme.ErrInvalidOption)
}

func TestConfigNewGenerator(t *testing.T) {
	t.Parallel()

	cfg := readme.NewConfig()
	cfg.ProjectRoot = "testdata/default"
	cfg.NoBadges = true
	cfg.NoIndentHeadings = true

	gen, err := cfg.NewGenerator(discard)
	require.NoError(t, err)

	res, err := gen.Generate()
	require.NoError(t, err)

	want := stringtest.JoinLF(
		"# default",
		"",
		"Crate docs.",
		"",
		"# Examples",
		"",
		"```rust",
		"let x = default::visible();",
		"```",
		"",
		"License: MIT",
	)
	assert.Equal(t, want, res.Text)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := readme.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	fn, ok := cmd.GetFlagCompletionFunc(cfg.Flags.Template)
	require.True(t, ok)

	exts, directive := fn(cmd, nil, "")
	assert.Equal(t, []string{"tpl"}, exts)
	assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)
}
