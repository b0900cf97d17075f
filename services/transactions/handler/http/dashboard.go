package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/services/transactions"
)

// DashboardHandler serves the chart dashboard page
type DashboardHandler struct {
	transactionUC transactions.TransactionUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(transactionUC transactions.TransactionUC) *DashboardHandler {
	return &DashboardHandler{
		transactionUC: transactionUC,
	}
}

// Dashboard renders the dashboard page with the available payment methods
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	methods, err := h.transactionUC.PaymentMethods(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list payment methods", logger.Err(err))
		return c.String(http.StatusInternalServerError, "Erreur serveur")
	}

	return c.Render(http.StatusOK, "index.html", map[string]interface{}{
		"PaymentMethods": methods,
	})
}
