package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntree/patmatch/token"
)

// A greedy-looking wildcard must give nodes back so the rest of the
// sequence can match.
func TestSequenceBacktracking(t *testing.T) {
	expr := sym(t, "expr")
	node := NewBranch(expr,
		NewLeaf(token.Name, "a"),
		NewLeaf(token.Name, "b"),
		NewLeaf(token.Number, "1"),
	)

	anyRun := NewWildcardPattern(nil, 0, Unbounded)
	anyRun.SetName("prefix")
	host := NewNodePattern(expr, []Pattern{anyRun, NewLeafPattern(token.Number, "")})

	caps := Captures{}
	require.True(t, host.Match(node, caps))
	assert.Len(t, caps["prefix"], 2)
}

func TestAlternativeBranchCaptures(t *testing.T) {
	expr := sym(t, "expr")

	number := NewLeafPattern(token.Number, "")
	number.SetName("n")
	name := NewLeafPattern(token.Name, "")
	name.SetName("id")
	choice := NewWildcardPattern([][]Pattern{{number}, {name}}, 1, 1)
	host := NewNodePattern(expr, []Pattern{choice})

	caps := Captures{}
	require.True(t, host.Match(NewBranch(expr, NewLeaf(token.Name, "x")), caps))
	assert.Contains(t, caps, "id")
	assert.NotContains(t, caps, "n")
}

func TestNestedWildcardCaptureWins(t *testing.T) {
	expr := sym(t, "expr")
	node := NewBranch(expr,
		NewLeaf(token.Name, "a"),
		NewLeaf(token.Name, "b"),
	)

	each := NewLeafPattern(token.Name, "")
	each.SetName("last")
	run := NewWildcardPattern([][]Pattern{{each}}, 0, Unbounded)
	host := NewNodePattern(expr, []Pattern{run})

	// later repetitions overwrite earlier bindings of the same name
	caps := Captures{}
	require.True(t, host.Match(node, caps))
	require.Len(t, caps["last"], 1)
	assert.Equal(t, "b", caps["last"][0].String())
}
