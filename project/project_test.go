package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/readme/manifest"
	"go.jacobcolvin.com/readme/project"
)

// writeFiles creates each file (relative to dir) with the given content.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()

	t.Run("absolute", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"Cargo.toml": "[package]\nname = \"a\"\n"})

		got, err := project.Root(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("relative to the working directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"Cargo.toml": "[package]\nname = \"a\"\n"})

		wd, err := os.Getwd()
		require.NoError(t, err)

		rel, err := filepath.Rel(wd, dir)
		require.NoError(t, err)

		got, err := project.Root(rel)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("missing Cargo.toml", func(t *testing.T) {
		t.Parallel()

		_, err := project.Root(t.TempDir())
		require.ErrorIs(t, err, project.ErrNotProject)
	})

	t.Run("Cargo.toml is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "Cargo.toml"), 0o755))

		_, err := project.Root(dir)
		require.ErrorIs(t, err, project.ErrNotProject)
	})
}

func TestEntrypoint(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		files    map[string]string
		manifest *manifest.Manifest
		want     string
		err      error
		errText  string
	}{
		"lib.rs first": {
			files: map[string]string{"src/lib.rs": "", "src/main.rs": ""},
			want:  "src/lib.rs",
		},
		"main.rs": {
			files: map[string]string{"src/main.rs": ""},
			want:  "src/main.rs",
		},
		"cargo lib": {
			manifest: &manifest.Manifest{Lib: &manifest.Target{Path: "src/my_lib.rs", Doc: true}},
			want:     "src/my_lib.rs",
		},
		"cargo lib without docs is skipped": {
			manifest: &manifest.Manifest{
				Lib:  &manifest.Target{Path: "src/my_lib.rs", Doc: false},
				Bins: []manifest.Target{{Name: "tool", Path: "src/tool.rs", Doc: true}},
			},
			want: "src/tool.rs",
		},
		"single cargo bin": {
			manifest: &manifest.Manifest{
				Bins: []manifest.Target{
					{Name: "tool", Path: "src/tool.rs", Doc: true},
					{Name: "hidden", Path: "src/hidden.rs", Doc: false},
				},
			},
			want: "src/tool.rs",
		},
		"cargo bin default path": {
			manifest: &manifest.Manifest{Bins: []manifest.Target{{Name: "tool", Doc: true}}},
			want:     "src/bin/tool.rs",
		},
		"multiple cargo bins": {
			manifest: &manifest.Manifest{
				Bins: []manifest.Target{
					{Name: "entry1", Path: "src/entry1.rs", Doc: true},
					{Name: "entry2", Path: "src/entry2.rs", Doc: true},
				},
			},
			err:     project.ErrMultipleBinaries,
			errText: "multiple binaries found, choose one: [src/entry1.rs, src/entry2.rs]",
		},
		"nothing found": {
			manifest: &manifest.Manifest{Name: "empty"},
			err:      project.ErrNoEntrypoint,
			errText:  "no entrypoint found",
		},
		"nil manifest": {
			err: project.ErrNoEntrypoint,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFiles(t, dir, tc.files)

			got, err := project.Entrypoint(dir, tc.manifest)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				if tc.errText != "" {
					assert.EqualError(t, err, tc.errText)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, filepath.FromSlash(tc.want)), got)
		})
	}
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	t.Run("default template", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{project.DefaultTemplate: "{{readme}}"})

		got, ok, err := project.Template(dir, "")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(dir, project.DefaultTemplate), got)
	})

	t.Run("no default template", func(t *testing.T) {
		t.Parallel()

		got, ok, err := project.Template(t.TempDir(), "")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("given template relative to root", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			project.DefaultTemplate: "{{readme}}",
			"docs/alt.tpl":          "{{readme}}",
		})

		got, ok, err := project.Template(dir, "docs/alt.tpl")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "docs", "alt.tpl"), got)
	})

	t.Run("given template missing", func(t *testing.T) {
		t.Parallel()

		_, _, err := project.Template(t.TempDir(), "missing.tpl")
		require.ErrorIs(t, err, project.ErrTemplateNotFound)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	root := filepath.Join(string(filepath.Separator), "project")
	abs := filepath.Join(string(filepath.Separator), "elsewhere", "README.md")

	assert.Equal(t, filepath.Join(root, "README.md"), project.Resolve(root, "README.md"))
	assert.Equal(t, abs, project.Resolve(root, abs))
}
