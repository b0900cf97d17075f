package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction represents a single sales transaction document.
// TransactionID is the business identifier exposed to clients; the
// store-assigned ObjectID never leaves the repository layer.
type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
	CustomerID    string             `bson:"customer_id" json:"customer_id"`
	CustomerName  string             `bson:"customer_name" json:"customer_name"`
	ProductID     string             `bson:"product_id" json:"product_id"`
	ProductName   string             `bson:"product_name" json:"product_name"`
	Category      string             `bson:"category" json:"category"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	PricePerUnit  float64            `bson:"price_per_unit" json:"price_per_unit"`
	TotalPrice    float64            `bson:"total_price" json:"total_price"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	Location      string             `bson:"location" json:"location"`
	Processed     bool               `bson:"processed" json:"processed"`
}

// Coordinates is a geocoded latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CategoryVolume is the sales-volume-by-category aggregation result
type CategoryVolume struct {
	Category string `bson:"_id" json:"category"`
	Quantity int64  `bson:"totalQuantity" json:"quantity"`
}

// PaymentMethodSales is the total-sales-by-payment-method aggregation result
type PaymentMethodSales struct {
	PaymentMethod string  `bson:"_id" json:"payment_method"`
	TotalSales    float64 `bson:"totalSales" json:"totalSales"`
}

// DailySales is the sales-over-time aggregation result, one entry per calendar day
type DailySales struct {
	Timestamp  string  `json:"timestamp"`
	TotalSales float64 `json:"totalSales"`
}

// ProductQuantity is the top-selling-products / quantity-by-product result
type ProductQuantity struct {
	ProductName string `bson:"_id" json:"product_name"`
	Quantity    int64  `bson:"totalQuantity" json:"quantity"`
}

// ProductIDQuantity is the quantity-by-product aggregation result
type ProductIDQuantity struct {
	ProductID     string `bson:"_id" json:"product_id"`
	TotalQuantity int64  `bson:"totalQuantity" json:"totalQuantity"`
}

// LocationSales is the sales-distribution-by-location aggregation result
type LocationSales struct {
	Location   string  `bson:"_id" json:"location"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
}

// SalesTotals is the whole-collection totals aggregation result
type SalesTotals struct {
	TotalQuantity  int64   `bson:"totalQuantity" json:"totalQuantity"`
	TotalPrice     float64 `bson:"totalPrice" json:"totalPrice"`
	TotalCustomers int64   `bson:"totalCustomers" json:"totalCustomers"`
}

// ProductTopLocation pairs a product with the location selling the most of it
type ProductTopLocation struct {
	Product  string `bson:"_id" json:"product"`
	Location string `bson:"topLocation" json:"location"`
	Quantity int64  `bson:"topQuantity" json:"quantity"`
}

// CategorySales is the sales-by-category aggregation result
type CategorySales struct {
	Category   string  `bson:"_id" json:"category"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
	Count      int64   `bson:"count" json:"count"`
}

// PaymentMethodCount is the transactions-by-payment-method aggregation result
type PaymentMethodCount struct {
	PaymentMethod     string `bson:"_id" json:"payment_method"`
	TotalTransactions int64  `bson:"totalTransactions" json:"totalTransactions"`
}

// CustomerRevenue is the revenue-by-customer aggregation result
type CustomerRevenue struct {
	CustomerID   string  `bson:"_id" json:"customer_id"`
	TotalRevenue float64 `bson:"totalRevenue" json:"totalRevenue"`
	Count        int64   `bson:"count" json:"count"`
}

// MonthlySales is the sales-by-month aggregation result
type MonthlySales struct {
	Month      int     `bson:"_id" json:"month"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
	Count      int64   `bson:"count" json:"count"`
}

// LocationSalesDetail is the per-location grouping behind the
// coordinate-enriched distribution query
type LocationSalesDetail struct {
	Location   string  `bson:"_id" json:"location"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
	Count      int64   `bson:"count" json:"count"`
}

// LocationSalesWithCoordinates is a LocationSalesDetail enriched with geocoded
// coordinates; a failed geocode leaves both pointers nil so they serialize as null
type LocationSalesWithCoordinates struct {
	Location   string   `json:"location"`
	TotalSales float64  `json:"totalSales"`
	Count      int64    `json:"count"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}
