package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions"
	"github.com/piresc/salesboard/services/transactions/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerTest(t *testing.T) (*TransactionHandler, *mocks.MockTransactionUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTransactionUC(ctrl)
	return NewTransactionHandler(mockUC), mockUC, echo.New()
}

func doRequest(e *echo.Echo, target string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, c
}

func TestGetTransaction_Found(t *testing.T) {
	h, mockUC, e := newHandlerTest(t)

	txn := &models.Transaction{
		TransactionID: "TXN-0001",
		Timestamp:     time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		CustomerName:  "Ada Lovelace",
		ProductName:   "Mechanical Keyboard",
		Quantity:      2,
		TotalPrice:    159.98,
		PaymentMethod: "credit_card",
		Location:      "Paris",
	}

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "TXN-0001").
		Return(txn, nil)

	rec, c := doRequest(e, "/transactions/TXN-0001")
	c.SetParamNames("id")
	c.SetParamValues("TXN-0001")

	require.NoError(t, h.GetTransaction(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TXN-0001", body["transaction_id"])
	assert.Equal(t, "Ada Lovelace", body["customer_name"])

	// The internal Mongo identifier never leaves the service
	_, exposed := body["_id"]
	assert.False(t, exposed)
}

func TestGetTransaction_NotFound(t *testing.T) {
	h, mockUC, e := newHandlerTest(t)

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "TXN-MISSING").
		Return(nil, transactions.ErrNotFound)

	rec, c := doRequest(e, "/transactions/TXN-MISSING")
	c.SetParamNames("id")
	c.SetParamValues("TXN-MISSING")

	require.NoError(t, h.GetTransaction(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Transaction non trouvée"}`, rec.Body.String())
}

func TestGetTransaction_StoreFailure(t *testing.T) {
	h, mockUC, e := newHandlerTest(t)

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "TXN-0001").
		Return(nil, errors.New("connection refused"))

	rec, c := doRequest(e, "/transactions/TXN-0001")
	c.SetParamNames("id")
	c.SetParamValues("TXN-0001")

	require.NoError(t, h.GetTransaction(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Erreur interne du serveur"}`, rec.Body.String())
}

func TestAggregationEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		expect   func(mockUC *mocks.MockTransactionUC, fail bool)
		call     func(h *TransactionHandler, c echo.Context) error
		wantBody string
	}{
		{
			name: "sales volume by category",
			expect: func(mockUC *mocks.MockTransactionUC, fail bool) {
				if fail {
					mockUC.EXPECT().SalesVolumeByCategory(gomock.Any()).Return(nil, errors.New("boom"))
					return
				}
				mockUC.EXPECT().SalesVolumeByCategory(gomock.Any()).Return([]models.CategoryVolume{
					{Category: "Electronics", Quantity: 12},
				}, nil)
			},
			call:     func(h *TransactionHandler, c echo.Context) error { return h.SalesVolumeByCategory(c) },
			wantBody: `[{"category":"Electronics","quantity":12}]`,
		},
		{
			name: "total sales by payment method",
			expect: func(mockUC *mocks.MockTransactionUC, fail bool) {
				if fail {
					mockUC.EXPECT().TotalSalesByPaymentMethod(gomock.Any()).Return(nil, errors.New("boom"))
					return
				}
				mockUC.EXPECT().TotalSalesByPaymentMethod(gomock.Any()).Return([]models.PaymentMethodSales{
					{PaymentMethod: "cash", TotalSales: 120.5},
				}, nil)
			},
			call:     func(h *TransactionHandler, c echo.Context) error { return h.TotalSalesByPaymentMethod(c) },
			wantBody: `[{"payment_method":"cash","totalSales":120.5}]`,
		},
		{
			name: "sales over time",
			expect: func(mockUC *mocks.MockTransactionUC, fail bool) {
				if fail {
					mockUC.EXPECT().SalesOverTime(gomock.Any()).Return(nil, errors.New("boom"))
					return
				}
				mockUC.EXPECT().SalesOverTime(gomock.Any()).Return([]models.DailySales{
					{Timestamp: "2024-3-5", TotalSales: 42},
				}, nil)
			},
			call:     func(h *TransactionHandler, c echo.Context) error { return h.SalesOverTime(c) },
			wantBody: `[{"timestamp":"2024-3-5","totalSales":42}]`,
		},
		{
			name: "top selling products",
			expect: func(mockUC *mocks.MockTransactionUC, fail bool) {
				if fail {
					mockUC.EXPECT().TopSellingProducts(gomock.Any()).Return(nil, errors.New("boom"))
					return
				}
				mockUC.EXPECT().TopSellingProducts(gomock.Any()).Return([]models.ProductQuantity{
					{ProductName: "Keyboard", Quantity: 40},
				}, nil)
			},
			call:     func(h *TransactionHandler, c echo.Context) error { return h.TopSellingProducts(c) },
			wantBody: `[{"product_name":"Keyboard","quantity":40}]`,
		},
		{
			name: "sales distribution by location",
			expect: func(mockUC *mocks.MockTransactionUC, fail bool) {
				if fail {
					mockUC.EXPECT().SalesDistributionByLocation(gomock.Any()).Return(nil, errors.New("boom"))
					return
				}
				mockUC.EXPECT().SalesDistributionByLocation(gomock.Any()).Return([]models.LocationSales{
					{Location: "Paris", TotalSales: 500},
				}, nil)
			},
			call:     func(h *TransactionHandler, c echo.Context) error { return h.SalesDistributionByLocation(c) },
			wantBody: `[{"location":"Paris","totalSales":500}]`,
		},
		{
			name: "top location by product",
			expect: func(mockUC *mocks.MockTransactionUC, fail bool) {
				if fail {
					mockUC.EXPECT().TopLocationByProduct(gomock.Any()).Return(nil, errors.New("boom"))
					return
				}
				mockUC.EXPECT().TopLocationByProduct(gomock.Any()).Return([]models.ProductTopLocation{
					{Product: "Keyboard", Location: "Paris", Quantity: 18},
				}, nil)
			},
			call:     func(h *TransactionHandler, c echo.Context) error { return h.TopLocationByProduct(c) },
			wantBody: `[{"product":"Keyboard","location":"Paris","quantity":18}]`,
		},
		{
			name: "sales by month",
			expect: func(mockUC *mocks.MockTransactionUC, fail bool) {
				if fail {
					mockUC.EXPECT().SalesByMonth(gomock.Any()).Return(nil, errors.New("boom"))
					return
				}
				mockUC.EXPECT().SalesByMonth(gomock.Any()).Return([]models.MonthlySales{
					{Month: 3, TotalSales: 900, Count: 7},
				}, nil)
			},
			call:     func(h *TransactionHandler, c echo.Context) error { return h.SalesByMonth(c) },
			wantBody: `[{"month":3,"totalSales":900,"count":7}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockUC, e := newHandlerTest(t)

			tt.expect(mockUC, false)

			rec, c := doRequest(e, "/transactions/aggregations/x")
			require.NoError(t, tt.call(h, c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})

		t.Run(tt.name+" failure", func(t *testing.T) {
			h, mockUC, e := newHandlerTest(t)

			tt.expect(mockUC, true)

			rec, c := doRequest(e, "/transactions/aggregations/x")
			require.NoError(t, tt.call(h, c))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"message":"Erreur interne du serveur"}`, rec.Body.String())
		})
	}
}

func TestTotalQuantityPriceAndCustomers_Success(t *testing.T) {
	h, mockUC, e := newHandlerTest(t)

	mockUC.EXPECT().
		TotalQuantityPriceAndCustomers(gomock.Any()).
		Return(&models.SalesTotals{TotalQuantity: 50, TotalPrice: 1234.5, TotalCustomers: 9}, nil)

	rec, c := doRequest(e, "/transactions/aggregations/total-quantity-price-and-customers")
	require.NoError(t, h.TotalQuantityPriceAndCustomers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalQuantity":50,"totalPrice":1234.5,"totalCustomers":9}`, rec.Body.String())
}

func TestTotalQuantityPriceAndCustomers_FailureExposesError(t *testing.T) {
	h, mockUC, e := newHandlerTest(t)

	mockUC.EXPECT().
		TotalQuantityPriceAndCustomers(gomock.Any()).
		Return(nil, errors.New("aggregation failed"))

	rec, c := doRequest(e, "/transactions/aggregations/total-quantity-price-and-customers")
	require.NoError(t, h.TotalQuantityPriceAndCustomers(c))

	// This endpoint reports the underlying error instead of the generic message
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"aggregation failed"}`, rec.Body.String())
}

func TestSalesDistributionWithCoordinates_NullCoordinatesSerialized(t *testing.T) {
	h, mockUC, e := newHandlerTest(t)

	lat, lng := 48.8566, 2.3522
	mockUC.EXPECT().
		SalesDistributionWithCoordinates(gomock.Any()).
		Return([]models.LocationSalesWithCoordinates{
			{Location: "Paris", TotalSales: 500, Count: 4, Latitude: &lat, Longitude: &lng},
			{Location: "Atlantis", TotalSales: 400, Count: 3},
		}, nil)

	rec, c := doRequest(e, "/transactions/aggregations/sales-distribution-with-coordinates")
	require.NoError(t, h.SalesDistributionWithCoordinates(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)

	assert.Equal(t, 48.8566, body[0]["latitude"])
	assert.Nil(t, body[1]["latitude"])
	assert.Nil(t, body[1]["longitude"])
}

func TestTestCoordinates(t *testing.T) {
	h, mockUC, e := newHandlerTest(t)

	mockUC.EXPECT().
		GetCoordinates(gomock.Any(), "Paris").
		Return(&models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, nil)

	rec, c := doRequest(e, "/transactions/test-coordinates/Paris")
	c.SetParamNames("location")
	c.SetParamValues("Paris")

	require.NoError(t, h.TestCoordinates(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"latitude":48.8566,"longitude":2.3522}`, rec.Body.String())
}

func TestTestCoordinates_Failure(t *testing.T) {
	h, mockUC, e := newHandlerTest(t)

	mockUC.EXPECT().
		GetCoordinates(gomock.Any(), "Atlantis").
		Return(nil, errors.New("no coordinates found"))

	rec, c := doRequest(e, "/transactions/test-coordinates/Atlantis")
	c.SetParamNames("location")
	c.SetParamValues("Atlantis")

	require.NoError(t, h.TestCoordinates(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Erreur interne du serveur"}`, rec.Body.String())
}
