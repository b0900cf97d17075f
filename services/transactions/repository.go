package transactions

import (
	"context"
	"time"

	"github.com/piresc/salesboard/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// TransactionRepo defines the interface for transaction store access
type TransactionRepo interface {
	// Identity lookup
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)

	// Named aggregation queries
	SalesVolumeByCategory(ctx context.Context) ([]models.CategoryVolume, error)
	TotalSalesByPaymentMethod(ctx context.Context) ([]models.PaymentMethodSales, error)
	SalesOverTime(ctx context.Context) ([]models.DailySales, error)
	TopSellingProducts(ctx context.Context, limit int) ([]models.ProductQuantity, error)
	SalesDistributionByLocation(ctx context.Context) ([]models.LocationSales, error)
	TotalQuantityPriceAndCustomers(ctx context.Context) (*models.SalesTotals, error)
	TopLocationByProduct(ctx context.Context) ([]models.ProductTopLocation, error)
	SalesByCategory(ctx context.Context) ([]models.CategorySales, error)
	TransactionsByPaymentMethod(ctx context.Context) ([]models.PaymentMethodCount, error)
	RevenueByCustomer(ctx context.Context) ([]models.CustomerRevenue, error)
	QuantityByProduct(ctx context.Context) ([]models.ProductIDQuantity, error)
	SalesByMonth(ctx context.Context) ([]models.MonthlySales, error)
	TopLocationsBySales(ctx context.Context, limit int) ([]models.LocationSalesDetail, error)

	// Dashboard support
	DistinctPaymentMethods(ctx context.Context) ([]string, error)

	// EnsureIndexes declares the unique index on the business identifier
	EnsureIndexes(ctx context.Context) error
}

// TransactionCache defines the interface for cached transaction snapshots
type TransactionCache interface {
	// GetTransaction returns the cached snapshot or ErrCacheMiss
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)

	// SetTransaction stores a snapshot with the given expiration, overwriting
	// any existing entry
	SetTransaction(ctx context.Context, transaction *models.Transaction, expiration time.Duration) error
}
