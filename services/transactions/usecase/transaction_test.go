package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions"
	"github.com/piresc/salesboard/services/transactions/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T) (*TransactionUC, *mocks.MockTransactionRepo, *mocks.MockTransactionCache, *mocks.MockGeoGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockCache := mocks.NewMockTransactionCache(ctrl)
	mockGeo := mocks.NewMockGeoGW(ctrl)

	cfg := &models.Config{}
	cfg.Cache.TransactionTTL = 3600

	uc := NewTransactionUC(mockRepo, mockCache, mockGeo, cfg)
	return uc, mockRepo, mockCache, mockGeo
}

func testTransaction(id string) *models.Transaction {
	return &models.Transaction{
		TransactionID: id,
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

func TestGetTransaction_CacheHit(t *testing.T) {
	uc, _, mockCache, _ := newTestUC(t)

	txn := testTransaction("TXN-0001")

	// On a hit the store must never be consulted, hence no repo expectation
	mockCache.EXPECT().
		GetTransaction(gomock.Any(), "TXN-0001").
		Return(txn, nil)

	got, err := uc.GetTransaction(context.Background(), "TXN-0001")

	require.NoError(t, err)
	assert.Equal(t, "TXN-0001", got.TransactionID)
}

func TestGetTransaction_CacheMissPopulatesCache(t *testing.T) {
	uc, mockRepo, mockCache, _ := newTestUC(t)

	txn := testTransaction("TXN-0001")
	cacheWritten := make(chan struct{})

	mockCache.EXPECT().
		GetTransaction(gomock.Any(), "TXN-0001").
		Return(nil, transactions.ErrCacheMiss)

	mockRepo.EXPECT().
		FindByTransactionID(gomock.Any(), "TXN-0001").
		Return(txn, nil)

	mockCache.EXPECT().
		SetTransaction(gomock.Any(), txn, time.Hour).
		DoAndReturn(func(_ context.Context, _ *models.Transaction, _ time.Duration) error {
			close(cacheWritten)
			return nil
		})

	got, err := uc.GetTransaction(context.Background(), "TXN-0001")

	require.NoError(t, err)
	assert.Equal(t, "TXN-0001", got.TransactionID)

	// The cache write is detached; wait for it before the controller verifies
	select {
	case <-cacheWritten:
	case <-time.After(time.Second):
		t.Fatal("detached cache write never happened")
	}
}

func TestGetTransaction_CacheWriteFailureDoesNotFailLookup(t *testing.T) {
	uc, mockRepo, mockCache, _ := newTestUC(t)

	txn := testTransaction("TXN-0001")
	cacheWritten := make(chan struct{})

	mockCache.EXPECT().
		GetTransaction(gomock.Any(), "TXN-0001").
		Return(nil, transactions.ErrCacheMiss)

	mockRepo.EXPECT().
		FindByTransactionID(gomock.Any(), "TXN-0001").
		Return(txn, nil)

	mockCache.EXPECT().
		SetTransaction(gomock.Any(), txn, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Transaction, _ time.Duration) error {
			close(cacheWritten)
			return errors.New("redis down")
		})

	got, err := uc.GetTransaction(context.Background(), "TXN-0001")

	require.NoError(t, err)
	assert.Equal(t, txn, got)

	select {
	case <-cacheWritten:
	case <-time.After(time.Second):
		t.Fatal("detached cache write never happened")
	}
}

func TestGetTransaction_NotFoundNeverCaches(t *testing.T) {
	uc, mockRepo, mockCache, _ := newTestUC(t)

	mockCache.EXPECT().
		GetTransaction(gomock.Any(), "TXN-MISSING").
		Return(nil, transactions.ErrCacheMiss)

	mockRepo.EXPECT().
		FindByTransactionID(gomock.Any(), "TXN-MISSING").
		Return(nil, transactions.ErrNotFound)

	// No SetTransaction expectation: caching a not-found would fail the test

	_, err := uc.GetTransaction(context.Background(), "TXN-MISSING")
	assert.ErrorIs(t, err, transactions.ErrNotFound)
}

func TestGetTransaction_CacheReadFailurePropagates(t *testing.T) {
	uc, _, mockCache, _ := newTestUC(t)

	mockCache.EXPECT().
		GetTransaction(gomock.Any(), "TXN-0001").
		Return(nil, errors.New("connection refused"))

	_, err := uc.GetTransaction(context.Background(), "TXN-0001")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, transactions.ErrNotFound)
}

func TestTopSellingProducts_AppliesLimit(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	expected := []models.ProductQuantity{
		{ProductName: "Keyboard", Quantity: 40},
		{ProductName: "Mouse", Quantity: 25},
	}

	mockRepo.EXPECT().
		TopSellingProducts(gomock.Any(), 10).
		Return(expected, nil)

	got, err := uc.TopSellingProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestTotalQuantityPriceAndCustomers_EmptyCollection(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	mockRepo.EXPECT().
		TotalQuantityPriceAndCustomers(gomock.Any()).
		Return(&models.SalesTotals{}, nil)

	totals, err := uc.TotalQuantityPriceAndCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.TotalQuantity)
	assert.Equal(t, float64(0), totals.TotalPrice)
	assert.Equal(t, int64(0), totals.TotalCustomers)
}

func TestSalesDistributionWithCoordinates_Success(t *testing.T) {
	uc, mockRepo, _, mockGeo := newTestUC(t)

	rows := []models.LocationSalesDetail{
		{Location: "Paris", TotalSales: 500, Count: 4},
		{Location: "Lyon", TotalSales: 300, Count: 2},
	}

	mockRepo.EXPECT().
		TopLocationsBySales(gomock.Any(), 5).
		Return(rows, nil)

	mockGeo.EXPECT().
		GetCoordinates(gomock.Any(), "Paris").
		Return(&models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, nil)

	mockGeo.EXPECT().
		GetCoordinates(gomock.Any(), "Lyon").
		Return(&models.Coordinates{Latitude: 45.764, Longitude: 4.8357}, nil)

	results, err := uc.SalesDistributionWithCoordinates(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 2)

	// Order of the aggregation is preserved through the fan-out
	assert.Equal(t, "Paris", results[0].Location)
	assert.Equal(t, float64(500), results[0].TotalSales)
	require.NotNil(t, results[0].Latitude)
	assert.Equal(t, 48.8566, *results[0].Latitude)

	assert.Equal(t, "Lyon", results[1].Location)
	require.NotNil(t, results[1].Longitude)
	assert.Equal(t, 4.8357, *results[1].Longitude)
}

func TestSalesDistributionWithCoordinates_PartialGeocodeFailure(t *testing.T) {
	uc, mockRepo, _, mockGeo := newTestUC(t)

	rows := []models.LocationSalesDetail{
		{Location: "Paris", TotalSales: 500, Count: 4},
		{Location: "Atlantis", TotalSales: 400, Count: 3},
		{Location: "Lyon", TotalSales: 300, Count: 2},
	}

	mockRepo.EXPECT().
		TopLocationsBySales(gomock.Any(), 5).
		Return(rows, nil)

	mockGeo.EXPECT().
		GetCoordinates(gomock.Any(), "Paris").
		Return(&models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, nil)

	mockGeo.EXPECT().
		GetCoordinates(gomock.Any(), "Atlantis").
		Return(nil, errors.New("no coordinates found"))

	mockGeo.EXPECT().
		GetCoordinates(gomock.Any(), "Lyon").
		Return(&models.Coordinates{Latitude: 45.764, Longitude: 4.8357}, nil)

	results, err := uc.SalesDistributionWithCoordinates(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 3)

	// The failed entry degrades to null coordinates, the rest keep theirs
	assert.Nil(t, results[1].Latitude)
	assert.Nil(t, results[1].Longitude)
	assert.Equal(t, float64(400), results[1].TotalSales)

	assert.NotNil(t, results[0].Latitude)
	assert.NotNil(t, results[2].Latitude)
}

func TestSalesDistributionWithCoordinates_RepoError(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	mockRepo.EXPECT().
		TopLocationsBySales(gomock.Any(), 5).
		Return(nil, errors.New("aggregation failed"))

	_, err := uc.SalesDistributionWithCoordinates(context.Background())
	assert.Error(t, err)
}

func TestSalesVolumeByCategory_Passthrough(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	expected := []models.CategoryVolume{
		{Category: "A", Quantity: 8},
		{Category: "B", Quantity: 2},
	}

	mockRepo.EXPECT().
		SalesVolumeByCategory(gomock.Any()).
		Return(expected, nil)

	got, err := uc.SalesVolumeByCategory(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestPaymentMethods_Passthrough(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	mockRepo.EXPECT().
		DistinctPaymentMethods(gomock.Any()).
		Return([]string{"cash", "credit_card"}, nil)

	methods, err := uc.PaymentMethods(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"cash", "credit_card"}, methods)
}
