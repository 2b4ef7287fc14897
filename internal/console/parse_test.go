package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("Valid input", func(t *testing.T) {
		tests := []struct {
			input string
			row   int
			col   int
		}{
			{input: "(1, 2)", row: 1, col: 2},
			{input: "(0,0)", row: 0, col: 0},
			{input: " ( 2 , 1 ) \n", row: 2, col: 1},
			{input: "2,1", row: 2, col: 1},
			{input: "(3, -1)", row: 3, col: -1},
		}

		for _, tt := range tests {
			// When: the input is parsed
			row, col, err := ParseMove(tt.input)

			// Then: the coordinates are returned as they were typed
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.row, row, "input %q", tt.input)
			assert.Equal(t, tt.col, col, "input %q", tt.input)
		}
	})

	t.Run("Malformed input", func(t *testing.T) {
		inputs := []string{"", "   ", "(1)", "(a, b)", "(1, 2, 3)", "(1, )", "1 2", "(1.5, 2)"}

		for _, input := range inputs {
			// When: the input is parsed
			_, _, err := ParseMove(input)

			// Then: ErrMalformedMove should be returned
			require.ErrorIs(t, err, ErrMalformedMove, "input %q", input)
		}
	})
}
