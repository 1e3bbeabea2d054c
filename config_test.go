package arraypq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeConfig(t *testing.T) {
	tests := []struct {
		name string
		in   *Config
		want Config
	}{
		{name: "nil", in: nil, want: Config{Capacity: DefaultCapacity, Strategy: OrderedArray}},
		{name: "zero capacity", in: &Config{Strategy: UnorderedArray}, want: Config{Capacity: DefaultCapacity, Strategy: UnorderedArray}},
		{name: "negative capacity", in: &Config{Capacity: -1}, want: Config{Capacity: DefaultCapacity, Strategy: OrderedArray}},
		{name: "unknown strategy", in: &Config{Capacity: 7, Strategy: Strategy(9)}, want: Config{Capacity: 7, Strategy: OrderedArray}},
		{name: "set", in: &Config{Capacity: 12, Strategy: UnorderedArray}, want: Config{Capacity: 12, Strategy: UnorderedArray}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, *mergeConfig(tt.in))
		})
	}
}

func TestMergeConfigDoesNotModifyInput(t *testing.T) {
	in := &Config{Capacity: -3}
	mergeConfig(in)
	require.Equal(t, -3, in.Capacity)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{OrderedArray, UnorderedArray} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	got, err := ParseStrategy(" Unordered ")
	require.NoError(t, err)
	require.Equal(t, UnorderedArray, got)

	_, err = ParseStrategy("heap")
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "Strategy", cfgErr.Field)
	require.Equal(t, "heap", cfgErr.Value)
	require.Equal(t, "unknown", Strategy(9).String())
}
