package patmatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
rules:
  - name: def-with-name
    pattern: "funcdef<'def' name=NAME any*>"
  - name: no-finally
    pattern: "'try' !'finally'"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "def-with-name", rules[0].Name)

	c := New(toy)
	for _, rule := range rules {
		_, err := c.Compile(rule.Pattern)
		assert.NoError(t, err, "rule %s", rule.Name)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules: {"), 0o644))
		_, err := LoadRules(path)
		assert.Error(t, err)
	})
}
