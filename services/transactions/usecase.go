package transactions

import (
	"context"

	"github.com/piresc/salesboard/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// TransactionUC defines the interface for transaction business logic
type TransactionUC interface {
	// GetTransaction performs the cache-aside lookup by business identifier
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)

	// Aggregation queries
	SalesVolumeByCategory(ctx context.Context) ([]models.CategoryVolume, error)
	TotalSalesByPaymentMethod(ctx context.Context) ([]models.PaymentMethodSales, error)
	SalesOverTime(ctx context.Context) ([]models.DailySales, error)
	TopSellingProducts(ctx context.Context) ([]models.ProductQuantity, error)
	SalesDistributionByLocation(ctx context.Context) ([]models.LocationSales, error)
	TotalQuantityPriceAndCustomers(ctx context.Context) (*models.SalesTotals, error)
	TopLocationByProduct(ctx context.Context) ([]models.ProductTopLocation, error)
	SalesByCategory(ctx context.Context) ([]models.CategorySales, error)
	TransactionsByPaymentMethod(ctx context.Context) ([]models.PaymentMethodCount, error)
	RevenueByCustomer(ctx context.Context) ([]models.CustomerRevenue, error)
	QuantityByProduct(ctx context.Context) ([]models.ProductIDQuantity, error)
	SalesByMonth(ctx context.Context) ([]models.MonthlySales, error)

	// SalesDistributionWithCoordinates returns the top locations by sales,
	// each enriched with geocoded coordinates where available
	SalesDistributionWithCoordinates(ctx context.Context) ([]models.LocationSalesWithCoordinates, error)

	// GetCoordinates resolves a single location (debug endpoint)
	GetCoordinates(ctx context.Context, location string) (*models.Coordinates, error)

	// PaymentMethods lists the distinct payment methods for the dashboard page
	PaymentMethods(ctx context.Context) ([]string, error)
}
