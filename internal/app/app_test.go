package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labgen/internal/structure"
)

func testOptions(base string) Options {
	return Options{
		BasePath: base,
		DirPerm:  0o755,
		FilePerm: 0o644,
		Log:      slog.New(slog.DiscardHandler),
	}
}

func TestRunBuildsDefaultStructure(t *testing.T) {
	base := filepath.Join(t.TempDir(), "proj")

	require.NoError(t, Run(testOptions(base)))

	require.DirExists(t, filepath.Join(base, "data", "papers"))
	require.DirExists(t, filepath.Join(base, "data", "knowledge_base"))
	require.FileExists(t, filepath.Join(base, "src", "main.py"))
	require.FileExists(t, filepath.Join(base, "src", "agents", "constants.py"))
	require.FileExists(t, filepath.Join(base, "Dockerfile"))

	// Файлы с начальным содержимым.
	cfg, err := os.ReadFile(filepath.Join(base, "configs", "config.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg)

	// Обычные файлы — пустые.
	info, err := os.Stat(filepath.Join(base, "src", "main.py"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestRunTwiceChangesNothing(t *testing.T) {
	base := filepath.Join(t.TempDir(), "proj")
	o := testOptions(base)

	require.NoError(t, Run(o))

	readme := filepath.Join(base, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# мой проект"), 0o644))

	require.NoError(t, Run(o))

	got, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, "# мой проект", string(got))
}

func TestRunAcceptsInjectedEntries(t *testing.T) {
	base := filepath.Join(t.TempDir(), "proj")
	o := testOptions(base)
	entries, err := structure.Parse([]string{"docs/", "docs/index.md"})
	require.NoError(t, err)
	o.Entries = entries

	require.NoError(t, Run(o))

	require.DirExists(t, filepath.Join(base, "docs"))
	require.FileExists(t, filepath.Join(base, "docs", "index.md"))
	assert.NoFileExists(t, filepath.Join(base, "README.md"),
		"встроенная структура не должна применяться при заданных записях")
}

func TestRunFailsWhenBaseIsFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(base, nil, 0o644))

	err := Run(testOptions(base))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "не каталог")
}

func TestRunFailsWhenBaseNotCreatable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root игнорирует права доступа")
	}

	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	err := Run(testOptions(filepath.Join(parent, "proj")))
	require.Error(t, err)

	// До записей дело дойти не должно.
	assert.NoDirExists(t, filepath.Join(parent, "proj"))
}

func TestRunDryRunCreatesNothing(t *testing.T) {
	base := filepath.Join(t.TempDir(), "proj")
	o := testOptions(base)
	o.DryRun = true

	require.NoError(t, Run(o))
	assert.NoDirExists(t, base)
}
