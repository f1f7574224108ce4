package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for argument binding:
// - Native arrays bind directly
// - JSON-encoded string arrays are decoded
// - Comma separated strings are split
// - Missing arguments leave zero values

type staticArgs map[string]any

func (a staticArgs) GetArguments() map[string]any { return a }

func TestBindArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args staticArgs
		want extractArgs
	}{
		{
			name: "native array",
			args: staticArgs{"path": "src", "categories": []any{"fields", "methods"}},
			want: extractArgs{Path: "src", Categories: []string{"fields", "methods"}},
		},
		{
			name: "json string array",
			args: staticArgs{"categories": `["structs", "properties"]`, "scope": "direct"},
			want: extractArgs{Categories: []string{"structs", "properties"}, Scope: "direct"},
		},
		{
			name: "comma separated",
			args: staticArgs{"categories": "fields,methods", "format": "json"},
			want: extractArgs{Categories: []string{"fields", "methods"}, Format: "json"},
		},
		{
			name: "empty",
			args: nil,
			want: extractArgs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got extractArgs
			require.NoError(t, bindArguments(tt.args, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
