package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	ledgerKeyPrefix = "ledger:"

	// maxTxRetries bounds optimistic transaction retries in RecordResult
	maxTxRetries = 5
)

// RedisConfig holds configuration for the Redis ledger repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetLedger retrieves the ledger for a game type from Redis
func (r *redisRepository) GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateGameName(input.GameName); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, ledgerKey(input.GameName)).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}

	ledger, err := decodeLedger(data)
	if err != nil {
		return nil, err
	}

	return &GetLedgerOutput{
		Ledger: ledger,
	}, nil
}

// SaveLedger overwrites the ledger for a game type in Redis
func (r *redisRepository) SaveLedger(ctx context.Context, input *SaveLedgerInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := validateGameName(input.GameName); err != nil {
		return err
	}

	data, err := encodeLedger(input.Ledger)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, ledgerKey(input.GameName), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}

// RecordResult applies a game result inside a WATCH/MULTI transaction
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error) {
	if err := validateRecordResult(input); err != nil {
		return nil, err
	}

	key := ledgerKey(input.GameName)
	output := &RecordResultOutput{}

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get ledger: %w", err)
		}

		ledger, err := decodeLedger(data)
		if err != nil {
			return err
		}

		applyResult(ledger, input)

		payload, err := encodeLedger(ledger)
		if err != nil {
			return err
		}

		// Only commits if the key was not modified since WATCH
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}

		output.Ledger = ledger
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return output, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	return nil, fmt.Errorf("failed to record result: %w", redis.TxFailedErr)
}

func ledgerKey(gameName string) string {
	return fmt.Sprintf("%s%s", ledgerKeyPrefix, gameName)
}
