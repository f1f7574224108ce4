package extractor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Entry:
// - Kinds render by name in JSON and decode back from that name
// - Unknown kind names are rejected

func TestEntryKind_JSONNames(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Kind: TypeEntry, Name: "Order", Line: 3},
		{Kind: FieldEntry, Name: "Id", Type: "int", Line: 5},
		{Kind: PropertyEntry, Name: "Total", Type: "decimal", Line: 6},
		{Kind: MethodEntry, Name: "IsPaid", Type: "bool", Line: 13},
		{Kind: StructEntry, Name: "Line", Line: 8},
	}

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.Contains(t, string(data), `{"kind":"class","name":"Order","line":3}`)
	assert.Contains(t, string(data), `"kind":"property"`)

	var decoded []Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entries, decoded)
}

func TestEntryKind_UnmarshalUnknown(t *testing.T) {
	t.Parallel()

	var k EntryKind
	assert.Error(t, k.UnmarshalText([]byte("event")))
}
