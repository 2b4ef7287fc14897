package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// BoardSize is the side length of the board.
const BoardSize = 3

type Board [BoardSize][BoardSize]entity.Mark

// GameState holds the board and turn information of a single game.
// It is not safe for concurrent use; callers serialize access per game.
type GameState struct {
	board      Board
	turnIsX    bool
	moveCount  int
	terminated bool
	winner     entity.Outcome
	moves      []entity.Position
}

func New() *GameState {
	state := &GameState{}
	state.Reset()

	return state
}

// Reset - puts the game back to its initial state, X moves first.
func (that *GameState) Reset() {
	that.board = Board{}
	that.turnIsX = true
	that.moveCount = 0
	that.terminated = false
	that.winner = entity.OutcomeNone
	that.moves = make([]entity.Position, 0, BoardSize*BoardSize)
}

// ApplyMove - places the current player's mark at (row, col).
// On error the state is left untouched.
func (that *GameState) ApplyMove(row, col int) error {
	if that.terminated {
		return apperror.ErrGameAlreadyOver
	}

	if !inBoard(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if that.board[row][col] != entity.EmptyMark {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.board[row][col] = that.CurrentMark()
	that.moveCount++
	that.moves = append(that.moves, entity.Position{Row: row, Col: col})

	that.checkTermination(row, col)

	if !that.terminated {
		that.turnIsX = !that.turnIsX
	}

	return nil
}

// checkTermination - only the lines passing through the last move can have been completed.
func (that *GameState) checkTermination(row, col int) {
	for _, sum := range that.lineSums(row, col) {
		switch sum {
		case BoardSize:
			that.finish(entity.OutcomeX)
			return
		case -BoardSize:
			that.finish(entity.OutcomeO)
			return
		}
	}

	if that.moveCount == BoardSize*BoardSize {
		that.finish(entity.OutcomeDraw)
	}
}

func (that *GameState) lineSums(row, col int) []int {
	sums := make([]int, 0, 4)

	var rowSum, colSum int
	for i := 0; i < BoardSize; i++ {
		rowSum += that.board[row][i].Value()
		colSum += that.board[i][col].Value()
	}
	sums = append(sums, rowSum, colSum)

	if row == col {
		var diagSum int
		for i := 0; i < BoardSize; i++ {
			diagSum += that.board[i][i].Value()
		}
		sums = append(sums, diagSum)
	}

	if row+col == BoardSize-1 {
		var antiDiagSum int
		for i := 0; i < BoardSize; i++ {
			antiDiagSum += that.board[i][BoardSize-1-i].Value()
		}
		sums = append(sums, antiDiagSum)
	}

	return sums
}

func (that *GameState) finish(winner entity.Outcome) {
	that.terminated = true
	that.winner = winner
}

func (that *GameState) IsTerminated() bool {
	return that.terminated
}

// Winner - OutcomeNone while the game is in progress.
func (that *GameState) Winner() entity.Outcome {
	return that.winner
}

func (that *GameState) MoveCount() int {
	return that.moveCount
}

func (that *GameState) TurnIsX() bool {
	return that.turnIsX
}

// CurrentMark - the mark placed by the next successful move.
// After the game ends it is the mark of the player who made the last move.
func (that *GameState) CurrentMark() entity.Mark {
	if that.turnIsX {
		return entity.MarkX
	}

	return entity.MarkO
}

func (that *GameState) Cell(row, col int) (entity.Mark, error) {
	if !inBoard(row, col) {
		return entity.EmptyMark, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.board[row][col], nil
}

// Board - a copy of the grid.
func (that *GameState) Board() Board {
	return that.board
}

// Moves - positions played so far, in play order.
func (that *GameState) Moves() []entity.Position {
	moves := make([]entity.Position, len(that.moves))
	copy(moves, that.moves)

	return moves
}

// Observation - numeric view of the board: X is 1, O is -1, empty is 0.
func (that *GameState) Observation() [BoardSize][BoardSize]int {
	var observation [BoardSize][BoardSize]int
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			observation[row][col] = that.board[row][col].Value()
		}
	}

	return observation
}

// AvailableMoves - empty cells in row-major order, nil once the game is over.
func (that *GameState) AvailableMoves() []entity.Position {
	if that.terminated {
		return nil
	}

	available := make([]entity.Position, 0, BoardSize*BoardSize-that.moveCount)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that.board[row][col] == entity.EmptyMark {
				available = append(available, entity.Position{Row: row, Col: col})
			}
		}
	}

	return available
}

func inBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
