package grammar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntree/patmatch/token"
)

func TestSymbolResolution(t *testing.T) {
	g := New("toy", "expr", "term", "funcdef")

	exprID, ok := g.Symbol("expr")
	require.True(t, ok)
	termID, ok := g.Symbol("term")
	require.True(t, ok)
	assert.NotEqual(t, exprID, termID)

	// IDs never collide with token kinds
	assert.GreaterOrEqual(t, int(exprID), 256)

	name, ok := g.SymbolName(exprID)
	require.True(t, ok)
	assert.Equal(t, "expr", name)

	_, ok = g.Symbol("frobnicate")
	assert.False(t, ok)
}

func TestOpKind(t *testing.T) {
	g := New("toy")

	kind, ok := g.OpKind("+")
	require.True(t, ok)
	assert.Equal(t, token.Plus, kind)

	_, ok = g.OpKind("@")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy.yaml")
	content := `
name: toy
symbols:
  - expr
  - funcdef
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toy", g.Name())

	_, ok := g.Symbol("funcdef")
	assert.True(t, ok)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("no name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "anon.yaml")
		require.NoError(t, os.WriteFile(path, []byte("symbols: [a]"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
