package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/salesboard/internal/pkg/constants"
	"github.com/piresc/salesboard/internal/pkg/database"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, &database.RedisClient{Client: client}
}

func sampleTransaction() *models.Transaction {
	return &models.Transaction{
		TransactionID: "TXN-0001",
		Timestamp:     time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		CustomerID:    "CUST-42",
		CustomerName:  "Ada Lovelace",
		ProductID:     "PROD-7",
		ProductName:   "Mechanical Keyboard",
		Category:      "Electronics",
		Quantity:      2,
		PricePerUnit:  79.99,
		TotalPrice:    159.98,
		PaymentMethod: "credit_card",
		Location:      "Paris",
	}
}

func TestSetTransaction(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	cache := NewTransactionCache(client)
	txn := sampleTransaction()

	err := cache.SetTransaction(context.Background(), txn, time.Hour)
	assert.NoError(t, err)

	key := fmt.Sprintf(constants.KeyTransaction, txn.TransactionID)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestGetTransaction_RoundTrip(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	cache := NewTransactionCache(client)
	txn := sampleTransaction()
	ctx := context.Background()

	require.NoError(t, cache.SetTransaction(ctx, txn, time.Hour))

	got, err := cache.GetTransaction(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, txn.TransactionID, got.TransactionID)
	assert.Equal(t, txn.CustomerID, got.CustomerID)
	assert.Equal(t, txn.Quantity, got.Quantity)
	assert.Equal(t, txn.TotalPrice, got.TotalPrice)
	assert.True(t, txn.Timestamp.Equal(got.Timestamp))
}

func TestGetTransaction_Miss(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	cache := NewTransactionCache(client)

	_, err := cache.GetTransaction(context.Background(), "TXN-MISSING")
	assert.ErrorIs(t, err, transactions.ErrCacheMiss)
}

func TestGetTransaction_Expired(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	cache := NewTransactionCache(client)
	txn := sampleTransaction()
	ctx := context.Background()

	require.NoError(t, cache.SetTransaction(ctx, txn, time.Second))

	// Advance miniredis clock past the TTL
	mr.FastForward(2 * time.Second)

	_, err := cache.GetTransaction(ctx, txn.TransactionID)
	assert.ErrorIs(t, err, transactions.ErrCacheMiss)
}

func TestGetTransaction_CorruptEntry(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	key := fmt.Sprintf(constants.KeyTransaction, "TXN-BAD")
	require.NoError(t, mr.Set(key, "not json"))

	cache := NewTransactionCache(client)

	_, err := cache.GetTransaction(context.Background(), "TXN-BAD")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, transactions.ErrCacheMiss)
}

func TestGetTransaction_ConnectionError(t *testing.T) {
	mr, client := setupMiniredis(t)
	mr.Close()

	cache := NewTransactionCache(client)

	_, err := cache.GetTransaction(context.Background(), "TXN-0001")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, transactions.ErrCacheMiss)
}

func TestSetTransaction_Overwrite(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	cache := NewTransactionCache(client)
	ctx := context.Background()

	txn := sampleTransaction()
	require.NoError(t, cache.SetTransaction(ctx, txn, time.Hour))

	txn.Quantity = 5
	txn.TotalPrice = 399.95
	require.NoError(t, cache.SetTransaction(ctx, txn, time.Hour))

	got, err := cache.GetTransaction(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, 399.95, got.TotalPrice)
}
