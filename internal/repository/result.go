package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInvalidLimit = errors.New("limit must be positive")

// ResultRepository keeps the most recent finished games, newest first.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	ListRecent(ctx context.Context, limit int64) ([]*entity.GameResult, error)
}

type dbResult struct {
	client      *redis.Client
	key         string
	historySize int64
}

// NewResultRepository - results are stored in the list "results:<name>", trimmed to historySize entries.
func NewResultRepository(client *redis.Client, name string, historySize int64) ResultRepository {
	return &dbResult{
		client:      client,
		key:         "results:" + name,
		historySize: historySize,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal game result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, that.key, resultJSON)
		if that.historySize > 0 {
			pipe.LTrim(ctx, that.key, 0, that.historySize-1)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game result: %w", err)
	}

	return nil
}

func (that *dbResult) ListRecent(ctx context.Context, limit int64) ([]*entity.GameResult, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	response, err := that.client.LRange(ctx, that.key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game results: %w", err)
	}

	results := make([]*entity.GameResult, 0, len(response))
	for _, item := range response {
		var result entity.GameResult
		if err = json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game result: %w", err)
		}

		results = append(results, &result)
	}

	return results, nil
}
