package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	testCases := []struct {
		input    string
		expected SortKey
		ok       bool
	}{
		{"", SortByRecency, true},
		{"pushed_at", SortByRecency, true},
		{"stargazers_count", SortByPopularity, true},
		{"name", SortByName, true},
		{"size", "", false},
		{"NAME", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			key, ok := ParseSortKey(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestDefaultFilterState(t *testing.T) {
	assert.Equal(t, FilterState{Sort: SortByRecency}, DefaultFilterState())
}

func TestSortKeyLabels(t *testing.T) {
	for _, key := range SortKeys {
		assert.NotEqual(t, string(key), key.Label())
	}
	assert.Equal(t, "size", SortKey("size").Label())
}
