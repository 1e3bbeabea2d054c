package workload

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	script := `
# warm up
insert 5
INSERT 1   # trailing comment
peek
remove

delete 5
contains -2
clear
`
	ops, err := Parse(strings.NewReader(script))
	require.NoError(t, err)
	require.Equal(t, []Op{
		{Kind: Insert, Priority: 5},
		{Kind: Insert, Priority: 1},
		{Kind: Peek},
		{Kind: Remove},
		{Kind: Delete, Priority: 5},
		{Kind: Contains, Priority: -2},
		{Kind: Clear},
	}, ops)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		line   int
		reason string
	}{
		{name: "unknown op", script: "insert 1\npush 2", line: 2, reason: "unknown operation"},
		{name: "missing priority", script: "delete", line: 1, reason: "expected one priority argument"},
		{name: "extra argument", script: "insert 1\n\nremove 3", line: 3, reason: "unexpected argument"},
		{name: "not a number", script: "contains high", line: 1, reason: "priority is not an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.script))
			var scriptErr *ScriptError
			require.True(t, errors.As(err, &scriptErr))
			require.Equal(t, tt.line, scriptErr.Line)
			require.Equal(t, tt.reason, scriptErr.Reason)
		})
	}
}

func TestOpString(t *testing.T) {
	require.Equal(t, "insert 4", Op{Kind: Insert, Priority: 4}.String())
	require.Equal(t, "remove", Op{Kind: Remove, Priority: 4}.String())
	require.Equal(t, "OpKind(42)", OpKind(42).String())

	for _, k := range []OpKind{Insert, Remove, Peek, Delete, Contains, Clear} {
		got, ok := ParseOpKind(k.String())
		require.True(t, ok)
		require.Equal(t, k, got)
	}
}

func TestGenerate(t *testing.T) {
	a := Generate(7, 1000, 3)
	require.Len(t, a, 1000)
	require.Equal(t, a, Generate(7, 1000, 3))
	require.NotEqual(t, a, Generate(8, 1000, 3))

	kinds := make(map[OpKind]int)
	for _, op := range a {
		kinds[op.Kind]++
		require.GreaterOrEqual(t, op.Priority, 0)
		require.LessOrEqual(t, op.Priority, 3)
		if !op.Kind.takesPriority() {
			require.Zero(t, op.Priority)
		}
	}
	require.Len(t, kinds, 6)
	require.Greater(t, kinds[Insert], kinds[Remove])

	require.Empty(t, Generate(1, 0, 3))
}
