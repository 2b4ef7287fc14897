package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
}

// GameManager drives a single game for one console session.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo

	gameID string
	state  *tictactoe.GameState
	now    func() time.Time
}

// NewGameManager - resultRepo may be nil, finished games are then only logged.
func NewGameManager(logger *slog.Logger, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		resultRepo: resultRepo,

		gameID: uuid.NewString(),
		state:  tictactoe.New(),
		now:    time.Now,
	}
}

// NewGame - starts over on an empty board under a fresh game ID.
func (that *GameManager) NewGame() {
	that.state.Reset()
	that.gameID = uuid.NewString()

	that.logger.Debug("new game started", "gameID", that.gameID)
}

func (that *GameManager) MakeTurn(ctx context.Context, row, col int) error {
	log := that.logger.With("method", "MakeTurn", "gameID", that.gameID)

	mark := that.state.CurrentMark()
	if err := that.state.ApplyMove(row, col); err != nil {
		log.Info("move rejected", "row", row, "col", col, "error", err)

		return fmt.Errorf("invalid turn: %w", err)
	}

	log.Debug("move applied", "mark", mark.String(), "row", row, "col", col)

	if that.state.IsTerminated() {
		log.Info("game finished", "winner", that.state.Winner().String(), "moves", that.state.MoveCount())

		that.recordResult(ctx)
	}

	return nil
}

// recordResult - a failure to record does not change the outcome of the game, so it is only logged.
func (that *GameManager) recordResult(ctx context.Context) {
	if that.resultRepo == nil {
		return
	}

	log := that.logger.With("method", "recordResult", "gameID", that.gameID)

	result := &entity.GameResult{
		ID:         that.gameID,
		Winner:     that.state.Winner().String(),
		MoveCount:  that.state.MoveCount(),
		Moves:      that.state.Moves(),
		Board:      that.state.Render(),
		FinishedAt: that.now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to record game result", "error", err)
		return
	}

	log.Debug("game result recorded")
}

func (that *GameManager) GameID() string {
	return that.gameID
}

func (that *GameManager) Render() string {
	return that.state.Render()
}

func (that *GameManager) IsTerminated() bool {
	return that.state.IsTerminated()
}

func (that *GameManager) Winner() entity.Outcome {
	return that.state.Winner()
}

func (that *GameManager) CurrentMark() entity.Mark {
	return that.state.CurrentMark()
}

func (that *GameManager) MoveCount() int {
	return that.state.MoveCount()
}
