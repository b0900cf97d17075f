package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/salesboard/internal/pkg/constants"
	"github.com/piresc/salesboard/internal/pkg/database"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions"
)

type transactionCache struct {
	redisClient *database.RedisClient
}

// NewTransactionCache creates a new cache for transaction snapshots
func NewTransactionCache(redisClient *database.RedisClient) transactions.TransactionCache {
	return &transactionCache{
		redisClient: redisClient,
	}
}

// GetTransaction returns the cached snapshot for the business identifier.
// A missing key maps to transactions.ErrCacheMiss; connection failures
// propagate to the caller.
func (c *transactionCache) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	key := fmt.Sprintf(constants.KeyTransaction, transactionID)

	value, err := c.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, transactions.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read transaction cache: %w", err)
	}

	var txn models.Transaction
	if err := json.Unmarshal([]byte(value), &txn); err != nil {
		return nil, fmt.Errorf("failed to decode cached transaction: %w", err)
	}
	return &txn, nil
}

// SetTransaction stores a JSON snapshot of the transaction with the given
// expiration, overwriting any existing entry
func (c *transactionCache) SetTransaction(ctx context.Context, transaction *models.Transaction, expiration time.Duration) error {
	key := fmt.Sprintf(constants.KeyTransaction, transaction.TransactionID)

	data, err := json.Marshal(transaction)
	if err != nil {
		return fmt.Errorf("failed to encode transaction for cache: %w", err)
	}

	if err := c.redisClient.Set(ctx, key, data, expiration); err != nil {
		return fmt.Errorf("failed to write transaction cache: %w", err)
	}
	return nil
}
