package tictactoe

import "strings"

const (
	cellSeparator = " | "
	dividerGroup  = "---"
)

// Render - text layout of the board, rows separated by a dashed divider.
// The result has no trailing newline.
func Render(state *GameState) string {
	return state.board.String()
}

func (that *GameState) Render() string {
	return that.board.String()
}

func (that Board) String() string {
	groups := make([]string, BoardSize)
	for i := range groups {
		groups[i] = dividerGroup
	}
	divider := strings.Join(groups, "-")

	lines := make([]string, 0, 2*BoardSize-1)
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			lines = append(lines, divider)
		}

		cells := make([]string, BoardSize)
		for col := 0; col < BoardSize; col++ {
			cells[col] = that[row][col].String()
		}
		lines = append(lines, " "+strings.Join(cells, cellSeparator))
	}

	return strings.Join(lines, "\n")
}
