package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, " ", EmptyMark.String())
		assert.Equal(t, "X", MarkX.String())
		assert.Equal(t, "O", MarkO.String())
	})

	t.Run("Value", func(t *testing.T) {
		assert.Equal(t, 0, EmptyMark.Value())
		assert.Equal(t, 1, MarkX.Value())
		assert.Equal(t, -1, MarkO.Value())
	})

	t.Run("Opponent", func(t *testing.T) {
		assert.Equal(t, MarkO, MarkX.Opponent())
		assert.Equal(t, MarkX, MarkO.Opponent())
		assert.Equal(t, EmptyMark, EmptyMark.Opponent())
	})
}

func TestOutcome(t *testing.T) {
	t.Run("String uses the tie marker for a draw", func(t *testing.T) {
		assert.Equal(t, "", OutcomeNone.String())
		assert.Equal(t, "X", OutcomeX.String())
		assert.Equal(t, "O", OutcomeO.String())
		assert.Equal(t, "-", OutcomeDraw.String())
	})

	t.Run("IsTerminal", func(t *testing.T) {
		assert.False(t, OutcomeNone.IsTerminal())
		assert.True(t, OutcomeX.IsTerminal())
		assert.True(t, OutcomeO.IsTerminal())
		assert.True(t, OutcomeDraw.IsTerminal())
	})

	t.Run("OutcomeFor", func(t *testing.T) {
		assert.Equal(t, OutcomeX, OutcomeFor(MarkX))
		assert.Equal(t, OutcomeO, OutcomeFor(MarkO))
		assert.Equal(t, OutcomeNone, OutcomeFor(EmptyMark))
	})
}
