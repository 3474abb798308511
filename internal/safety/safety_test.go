package safety

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRel(t *testing.T) {
	good := []string{"a", "a/b", "a/b/c.txt", ".gitignore", "src/__init__.py"}
	for _, s := range good {
		assert.NoError(t, ValidateRel(s), "путь %q должен приниматься", s)
	}

	bad := []string{"", "/", "/abs", "..", "../x", "a/..", "a//b", ".", "./x", `a\b`}
	for _, s := range bad {
		assert.Error(t, ValidateRel(s), "путь %q должен отвергаться", s)
	}
}

func TestJoinStaysInsideBase(t *testing.T) {
	base := t.TempDir()

	p, err := Join(base, "a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "a", "b", "c.txt"), p)
}

func TestJoinNeverEscapesBase(t *testing.T) {
	base := t.TempDir()

	// ValidateRel такое отвергает, но Join обязан держать оборону сам.
	p, err := Join(base, "../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, filepath.Clean(base)+string(filepath.Separator)),
		"результат %q вышел за пределы %q", p, base)
}
