package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInputClosed = errors.New("input closed before the game finished")

const (
	movePrompt = "Enter move as (row, col)!\n> Move: "
	farewell   = "Thanks for playing!"
)

type game interface {
	MakeTurn(ctx context.Context, row, col int) error
	Render() string
	IsTerminated() bool
	Winner() entity.Outcome
	CurrentMark() entity.Mark
}

// Driver plays one game on a line based terminal.
type Driver struct {
	logger *slog.Logger
	game   game

	in  *bufio.Scanner
	out io.Writer
}

func NewDriver(logger *slog.Logger, game game, in io.Reader, out io.Writer) *Driver {
	return &Driver{
		logger: logger.With("component", "console"),
		game:   game,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run - prompts for moves until the game is over. Bad input is reported and asked for again.
func (that *Driver) Run(ctx context.Context) error {
	that.printf("%s goes first!\n", that.game.CurrentMark())
	that.printf("%s\n\n", that.game.Render())

	done := make(chan struct{})
	defer close(done)

	lines := that.readLines(done)

	for !that.game.IsTerminated() {
		that.printf("%s", movePrompt)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				that.printf("\n")
				if err := that.in.Err(); err != nil {
					return fmt.Errorf("failed to read move: %w", err)
				}

				return ErrInputClosed
			}
			line = next
		}

		row, col, err := ParseMove(line)
		if err != nil {
			that.logger.Debug("unparsable move", "input", line, "error", err)
			that.printf("Invalid move: %s. Try again.\n", describe(err, row, col))
			continue
		}

		if err = that.game.MakeTurn(ctx, row, col); err != nil {
			that.printf("Invalid move: %s. Try again.\n", describe(err, row, col))
			continue
		}

		that.printf("%s\n\n", that.game.Render())
	}

	that.printf("%s\n", announce(that.game.Winner()))
	that.printf("%s\n", farewell)

	return nil
}

// readLines - the scanner blocks, so it is read in its own goroutine to keep Run cancellable.
func (that *Driver) readLines(done <-chan struct{}) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- that.in.Text():
			case <-done:
				return
			}
		}
	}()

	return lines
}

func (that *Driver) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func describe(err error, row, col int) string {
	switch {
	case errors.Is(err, ErrMalformedMove):
		return err.Error()
	case errors.Is(err, apperror.ErrOutOfBounds):
		return fmt.Sprintf("(%d, %d) is not on the board", row, col)
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf("(%d, %d) is already taken", row, col)
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		return "the game is already over"
	default:
		return err.Error()
	}
}

func announce(winner entity.Outcome) string {
	switch winner {
	case entity.OutcomeX, entity.OutcomeO:
		return fmt.Sprintf("%s has won!", winner)
	case entity.OutcomeDraw:
		return "It's a draw!"
	default:
		return "The game ended without a winner."
	}
}
