package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays one game on the given input and output.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var resultRepo repository.ResultRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		resultRepo = repository.NewResultRepository(redisStorage.Connection, conf.Redis.ResultsKey, conf.Redis.HistorySize)
		log.Info("recording game results", "addr", redisAddrString, "key", conf.Redis.ResultsKey)
	}

	gameManager := usecase.NewGameManager(logger, resultRepo)

	log.Debug("starting game", "gameID", gameManager.GameID())

	driver := console.NewDriver(logger, gameManager, in, out)

	err := driver.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Info("game abandoned", "gameID", gameManager.GameID(), "reason", err)
		return nil
	default:
		return fmt.Errorf("game failed: %w", err)
	}
}
