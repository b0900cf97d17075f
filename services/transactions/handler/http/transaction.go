package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/utils"
	"github.com/piresc/salesboard/services/transactions"
)

const (
	msgInternalServerError = "Erreur interne du serveur"
	msgTransactionNotFound = "Transaction non trouvée"
)

// TransactionHandler handles HTTP requests for transaction lookups and
// aggregation queries
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction HTTP handler
func NewTransactionHandler(transactionUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// GetTransaction returns a single transaction by its business identifier
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionID := c.Param("id")

	txn, err := h.transactionUC.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		if errors.Is(err, transactions.ErrNotFound) {
			return utils.NotFoundMessage(c, msgTransactionNotFound)
		}
		logger.Error("Failed to fetch transaction",
			logger.String("transaction_id", transactionID),
			logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}

	return c.JSON(http.StatusOK, txn)
}

// SalesVolumeByCategory returns summed quantities per category
func (h *TransactionHandler) SalesVolumeByCategory(c echo.Context) error {
	results, err := h.transactionUC.SalesVolumeByCategory(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate sales volume by category", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// TotalSalesByPaymentMethod returns summed sales per payment method
func (h *TransactionHandler) TotalSalesByPaymentMethod(c echo.Context) error {
	results, err := h.transactionUC.TotalSalesByPaymentMethod(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate total sales by payment method", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// SalesOverTime returns summed sales per calendar day
func (h *TransactionHandler) SalesOverTime(c echo.Context) error {
	results, err := h.transactionUC.SalesOverTime(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate sales over time", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// TopSellingProducts returns the best-selling products by quantity
func (h *TransactionHandler) TopSellingProducts(c echo.Context) error {
	results, err := h.transactionUC.TopSellingProducts(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate top selling products", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// SalesDistributionByLocation returns summed sales per location
func (h *TransactionHandler) SalesDistributionByLocation(c echo.Context) error {
	results, err := h.transactionUC.SalesDistributionByLocation(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate sales distribution by location", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// TotalQuantityPriceAndCustomers returns collection-wide totals as a single object
func (h *TransactionHandler) TotalQuantityPriceAndCustomers(c echo.Context) error {
	totals, err := h.transactionUC.TotalQuantityPriceAndCustomers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate totals", logger.Err(err))
		return utils.InternalErrorDetail(c, err)
	}
	return c.JSON(http.StatusOK, totals)
}

// TopLocationByProduct returns the best-selling location per product
func (h *TransactionHandler) TopLocationByProduct(c echo.Context) error {
	results, err := h.transactionUC.TopLocationByProduct(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate top location by product", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// SalesByCategory returns summed sales and counts per category
func (h *TransactionHandler) SalesByCategory(c echo.Context) error {
	results, err := h.transactionUC.SalesByCategory(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate sales by category", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// TransactionsByPaymentMethod returns transaction counts per payment method
func (h *TransactionHandler) TransactionsByPaymentMethod(c echo.Context) error {
	results, err := h.transactionUC.TransactionsByPaymentMethod(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate transactions by payment method", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// RevenueByCustomer returns summed revenue and counts per customer
func (h *TransactionHandler) RevenueByCustomer(c echo.Context) error {
	results, err := h.transactionUC.RevenueByCustomer(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate revenue by customer", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// QuantityByProduct returns summed quantities per product identifier
func (h *TransactionHandler) QuantityByProduct(c echo.Context) error {
	results, err := h.transactionUC.QuantityByProduct(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate quantity by product", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// SalesByMonth returns summed sales and counts per calendar month
func (h *TransactionHandler) SalesByMonth(c echo.Context) error {
	results, err := h.transactionUC.SalesByMonth(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate sales by month", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// SalesDistributionWithCoordinates returns the top locations by sales with
// geocoded coordinates
func (h *TransactionHandler) SalesDistributionWithCoordinates(c echo.Context) error {
	results, err := h.transactionUC.SalesDistributionWithCoordinates(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate sales distribution with coordinates", logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}
	return c.JSON(http.StatusOK, results)
}

// TestCoordinates resolves a location name to coordinates (debug endpoint)
func (h *TransactionHandler) TestCoordinates(c echo.Context) error {
	location := c.Param("location")

	coords, err := h.transactionUC.GetCoordinates(c.Request().Context(), location)
	if err != nil {
		logger.Error("Failed to resolve coordinates",
			logger.String("location", location),
			logger.Err(err))
		return utils.InternalErrorMessage(c, msgInternalServerError)
	}

	return c.JSON(http.StatusOK, coords)
}
