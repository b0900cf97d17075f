package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions"
	httpHandler "github.com/piresc/salesboard/services/transactions/handler/http"
)

// HTTPHandler combines all handlers for the transactions service
type HTTPHandler struct {
	transactionHTTP *httpHandler.TransactionHandler
	dashboardHTTP   *httpHandler.DashboardHandler
	cfg             *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(transactionUC transactions.TransactionUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		transactionHTTP: httpHandler.NewTransactionHandler(transactionUC),
		dashboardHTTP:   httpHandler.NewDashboardHandler(transactionUC),
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/transactions")

	agg := g.Group("/aggregations")
	agg.GET("/sales-volume-by-category", h.transactionHTTP.SalesVolumeByCategory)
	agg.GET("/total-sales-by-payment-method", h.transactionHTTP.TotalSalesByPaymentMethod)
	agg.GET("/sales-over-time", h.transactionHTTP.SalesOverTime)
	agg.GET("/top-selling-products", h.transactionHTTP.TopSellingProducts)
	agg.GET("/sales-distribution-by-location", h.transactionHTTP.SalesDistributionByLocation)
	agg.GET("/total-quantity-price-and-customers", h.transactionHTTP.TotalQuantityPriceAndCustomers)
	agg.GET("/top-location-by-product", h.transactionHTTP.TopLocationByProduct)
	agg.GET("/sales-by-category", h.transactionHTTP.SalesByCategory)
	agg.GET("/transactions-by-payment-method", h.transactionHTTP.TransactionsByPaymentMethod)
	agg.GET("/revenue-by-customer", h.transactionHTTP.RevenueByCustomer)
	agg.GET("/quantity-by-product", h.transactionHTTP.QuantityByProduct)
	agg.GET("/sales-by-month", h.transactionHTTP.SalesByMonth)
	agg.GET("/sales-distribution-with-coordinates", h.transactionHTTP.SalesDistributionWithCoordinates)

	g.GET("/test-coordinates/:location", h.transactionHTTP.TestCoordinates)

	// Registered after the fixed paths so it only matches plain identifiers
	g.GET("/:id", h.transactionHTTP.GetTransaction)

	// Dashboard pages
	e.GET("/", h.dashboardHTTP.Dashboard)
	e.GET("/dashboard", h.dashboardHTTP.Dashboard)

	// Static dashboard assets
	e.Static("/assets", "public")
}
