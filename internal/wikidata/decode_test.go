package wikidata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entityCell(id string) Cell {
	return Cell{Type: "uri", Value: EntityPrefix + id}
}

func TestDecodeBindings(t *testing.T) {
	tests := []struct {
		name     string
		rows     []map[string]Cell
		expected []map[string]string
	}{
		{
			name: "entity rows are denamespaced",
			rows: []map[string]Cell{
				{"e1": entityCell("Q76")},
				{"e1": entityCell("Q155"), "r0d": entityCell("P35v")},
			},
			expected: []map[string]string{
				{"e1": "Q76"},
				{"e1": "Q155", "r0d": "P35v"},
			},
		},
		{
			name: "literal-only row is dropped",
			rows: []map[string]Cell{
				{"e1": {Type: "literal", Value: "Barack Obama"}},
			},
			expected: []map[string]string{},
		},
		{
			name: "mixed row is dropped entirely",
			rows: []map[string]Cell{
				{"e1": entityCell("Q76"), "n0": {Type: "literal", Value: "2009-01-20"}},
				{"e1": entityCell("Q9682")},
			},
			expected: []map[string]string{
				{"e1": "Q9682"},
			},
		},
		{
			name:     "no rows",
			rows:     nil,
			expected: []map[string]string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, DecodeBindings(test.rows))
		})
	}
}
