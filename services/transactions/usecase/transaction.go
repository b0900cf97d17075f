package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions"
)

const (
	// topSellingProductsLimit caps the top-selling-products query
	topSellingProductsLimit = 10

	// coordinateLocationsLimit caps the coordinate-enriched distribution query
	coordinateLocationsLimit = 5

	// cacheWriteTimeout bounds the detached cache population write
	cacheWriteTimeout = 5 * time.Second
)

// TransactionUC implements the transactions.TransactionUC interface
type TransactionUC struct {
	repo     transactions.TransactionRepo
	cache    transactions.TransactionCache
	geoGW    transactions.GeoGW
	cacheTTL time.Duration
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	repo transactions.TransactionRepo,
	cache transactions.TransactionCache,
	geoGW transactions.GeoGW,
	cfg *models.Config,
) *TransactionUC {
	ttl := time.Duration(cfg.Cache.TransactionTTL) * time.Second
	if ttl == 0 {
		ttl = time.Hour
	}

	return &TransactionUC{
		repo:     repo,
		cache:    cache,
		geoGW:    geoGW,
		cacheTTL: ttl,
	}
}

// GetTransaction looks up a transaction by its business identifier using the
// cache-aside pattern: the cache is consulted first and populated lazily on a
// miss. A cache-write failure never fails the lookup; any other cache failure
// propagates to the caller.
func (uc *TransactionUC) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	cached, err := uc.cache.GetTransaction(ctx, transactionID)
	if err == nil {
		logger.Debug("Transaction served from cache",
			logger.String("transaction_id", transactionID))
		return cached, nil
	}
	if !errors.Is(err, transactions.ErrCacheMiss) {
		return nil, fmt.Errorf("cache lookup failed: %w", err)
	}

	txn, err := uc.repo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		// Not-found never populates the cache
		return nil, err
	}

	// Fire-and-forget population: the caller is never blocked on the cache write
	go func(txn *models.Transaction) {
		writeCtx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()

		if err := uc.cache.SetTransaction(writeCtx, txn, uc.cacheTTL); err != nil {
			logger.Warn("Failed to populate transaction cache",
				logger.String("transaction_id", txn.TransactionID),
				logger.Err(err))
		}
	}(txn)

	return txn, nil
}

// SalesVolumeByCategory returns summed quantities per category
func (uc *TransactionUC) SalesVolumeByCategory(ctx context.Context) ([]models.CategoryVolume, error) {
	return uc.repo.SalesVolumeByCategory(ctx)
}

// TotalSalesByPaymentMethod returns summed sales per payment method
func (uc *TransactionUC) TotalSalesByPaymentMethod(ctx context.Context) ([]models.PaymentMethodSales, error) {
	return uc.repo.TotalSalesByPaymentMethod(ctx)
}

// SalesOverTime returns summed sales per calendar day
func (uc *TransactionUC) SalesOverTime(ctx context.Context) ([]models.DailySales, error) {
	return uc.repo.SalesOverTime(ctx)
}

// TopSellingProducts returns the ten products with the largest quantities sold
func (uc *TransactionUC) TopSellingProducts(ctx context.Context) ([]models.ProductQuantity, error) {
	return uc.repo.TopSellingProducts(ctx, topSellingProductsLimit)
}

// SalesDistributionByLocation returns summed sales per location
func (uc *TransactionUC) SalesDistributionByLocation(ctx context.Context) ([]models.LocationSales, error) {
	return uc.repo.SalesDistributionByLocation(ctx)
}

// TotalQuantityPriceAndCustomers returns collection-wide totals
func (uc *TransactionUC) TotalQuantityPriceAndCustomers(ctx context.Context) (*models.SalesTotals, error) {
	return uc.repo.TotalQuantityPriceAndCustomers(ctx)
}

// TopLocationByProduct returns the best-selling location per product
func (uc *TransactionUC) TopLocationByProduct(ctx context.Context) ([]models.ProductTopLocation, error) {
	return uc.repo.TopLocationByProduct(ctx)
}

// SalesByCategory returns summed sales and counts per category
func (uc *TransactionUC) SalesByCategory(ctx context.Context) ([]models.CategorySales, error) {
	return uc.repo.SalesByCategory(ctx)
}

// TransactionsByPaymentMethod returns transaction counts per payment method
func (uc *TransactionUC) TransactionsByPaymentMethod(ctx context.Context) ([]models.PaymentMethodCount, error) {
	return uc.repo.TransactionsByPaymentMethod(ctx)
}

// RevenueByCustomer returns summed revenue and counts per customer
func (uc *TransactionUC) RevenueByCustomer(ctx context.Context) ([]models.CustomerRevenue, error) {
	return uc.repo.RevenueByCustomer(ctx)
}

// QuantityByProduct returns summed quantities per product identifier
func (uc *TransactionUC) QuantityByProduct(ctx context.Context) ([]models.ProductIDQuantity, error) {
	return uc.repo.QuantityByProduct(ctx)
}

// SalesByMonth returns summed sales and counts per calendar month
func (uc *TransactionUC) SalesByMonth(ctx context.Context) ([]models.MonthlySales, error) {
	return uc.repo.SalesByMonth(ctx)
}

// SalesDistributionWithCoordinates returns the top locations by total sales,
// each enriched with geocoded coordinates. Geocoding runs concurrently per
// location and a failed lookup degrades that entry's coordinates to null
// instead of failing the whole query.
func (uc *TransactionUC) SalesDistributionWithCoordinates(ctx context.Context) ([]models.LocationSalesWithCoordinates, error) {
	rows, err := uc.repo.TopLocationsBySales(ctx, coordinateLocationsLimit)
	if err != nil {
		return nil, err
	}

	results := make([]models.LocationSalesWithCoordinates, len(rows))

	var wg sync.WaitGroup
	for i, row := range rows {
		wg.Add(1)
		go func(i int, row models.LocationSalesDetail) {
			defer wg.Done()

			entry := models.LocationSalesWithCoordinates{
				Location:   row.Location,
				TotalSales: row.TotalSales,
				Count:      row.Count,
			}

			coords, err := uc.geoGW.GetCoordinates(ctx, row.Location)
			if err != nil {
				logger.Warn("Failed to geocode location",
					logger.String("location", row.Location),
					logger.Err(err))
			} else {
				entry.Latitude = &coords.Latitude
				entry.Longitude = &coords.Longitude
			}

			results[i] = entry
		}(i, row)
	}
	wg.Wait()

	return results, nil
}

// GetCoordinates resolves a single location name to coordinates
func (uc *TransactionUC) GetCoordinates(ctx context.Context, location string) (*models.Coordinates, error) {
	return uc.geoGW.GetCoordinates(ctx, location)
}

// PaymentMethods lists the distinct payment methods in the collection
func (uc *TransactionUC) PaymentMethods(ctx context.Context) ([]string, error) {
	return uc.repo.DistinctPaymentMethods(ctx)
}
