package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/salesboard/internal/pkg/database"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type transactionRepo struct {
	coll *mongo.Collection
}

// NewTransactionRepo creates a new transaction repository over the given collection
func NewTransactionRepo(mongoClient *database.MongoClient, collection string) transactions.TransactionRepo {
	return &transactionRepo{
		coll: mongoClient.Collection(collection),
	}
}

// EnsureIndexes declares the unique index on the business identifier so that
// identity lookups stay efficient
func (r *transactionRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transaction_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction_id index: %w", err)
	}
	return nil
}

// FindByTransactionID returns the transaction matching the business identifier
func (r *transactionRepo) FindByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.coll.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&txn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, transactions.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// aggregate runs the pipeline and decodes every result document into out
func (r *transactionRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode aggregation results: %w", err)
	}
	return nil
}

func salesVolumeByCategoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalQuantity", Value: -1}}}},
	}
}

// SalesVolumeByCategory sums quantities per category, highest first
func (r *transactionRepo) SalesVolumeByCategory(ctx context.Context) ([]models.CategoryVolume, error) {
	results := make([]models.CategoryVolume, 0)
	if err := r.aggregate(ctx, salesVolumeByCategoryPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func totalSalesByPaymentMethodPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$payment_method"},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalSales", Value: -1}}}},
	}
}

// TotalSalesByPaymentMethod sums total prices per payment method, highest first
func (r *transactionRepo) TotalSalesByPaymentMethod(ctx context.Context) ([]models.PaymentMethodSales, error) {
	results := make([]models.PaymentMethodSales, 0)
	if err := r.aggregate(ctx, totalSalesByPaymentMethodPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// dailySalesRow is the raw shape of the sales-over-time grouping
type dailySalesRow struct {
	ID struct {
		Year  int `bson:"year"`
		Month int `bson:"month"`
		Day   int `bson:"day"`
	} `bson:"_id"`
	TotalSales float64 `bson:"totalSales"`
}

func salesOverTimePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$timestamp"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$timestamp"}}},
				{Key: "day", Value: bson.D{{Key: "$dayOfMonth", Value: "$timestamp"}}},
			}},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
			{Key: "_id.day", Value: 1},
		}}},
	}
}

// SalesOverTime sums total prices per calendar day, oldest first
func (r *transactionRepo) SalesOverTime(ctx context.Context) ([]models.DailySales, error) {
	rows := make([]dailySalesRow, 0)
	if err := r.aggregate(ctx, salesOverTimePipeline(), &rows); err != nil {
		return nil, err
	}

	results := make([]models.DailySales, 0, len(rows))
	for _, row := range rows {
		results = append(results, models.DailySales{
			Timestamp:  fmt.Sprintf("%d-%d-%d", row.ID.Year, row.ID.Month, row.ID.Day),
			TotalSales: row.TotalSales,
		})
	}
	return results, nil
}

func topSellingProductsPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$product_name"},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalQuantity", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// TopSellingProducts sums quantities per product name, capped to limit entries
func (r *transactionRepo) TopSellingProducts(ctx context.Context, limit int) ([]models.ProductQuantity, error) {
	results := make([]models.ProductQuantity, 0)
	if err := r.aggregate(ctx, topSellingProductsPipeline(limit), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func salesDistributionByLocationPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location"},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
		}}},
	}
}

// SalesDistributionByLocation sums total prices per location
func (r *transactionRepo) SalesDistributionByLocation(ctx context.Context) ([]models.LocationSales, error) {
	results := make([]models.LocationSales, 0)
	if err := r.aggregate(ctx, salesDistributionByLocationPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func totalsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
			{Key: "totalPrice", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
			{Key: "uniqueCustomers", Value: bson.D{{Key: "$addToSet", Value: "$customer_id"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "totalQuantity", Value: 1},
			{Key: "totalPrice", Value: 1},
			{Key: "totalCustomers", Value: bson.D{{Key: "$size", Value: "$uniqueCustomers"}}},
		}}},
	}
}

// TotalQuantityPriceAndCustomers computes collection-wide totals and the
// distinct customer count. An empty collection yields all zeroes.
func (r *transactionRepo) TotalQuantityPriceAndCustomers(ctx context.Context) (*models.SalesTotals, error) {
	results := make([]models.SalesTotals, 0, 1)
	if err := r.aggregate(ctx, totalsPipeline(), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &models.SalesTotals{}, nil
	}
	return &results[0], nil
}

func topLocationByProductPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		// Group by product and location
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "product", Value: "$product_name"},
				{Key: "location", Value: "$location"},
			}},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
		}}},
		// Order each product's locations by quantity so $first picks the top one
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.product", Value: 1},
			{Key: "totalQuantity", Value: -1},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$_id.product"},
			{Key: "topLocation", Value: bson.D{{Key: "$first", Value: "$_id.location"}}},
			{Key: "topQuantity", Value: bson.D{{Key: "$first", Value: "$totalQuantity"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// TopLocationByProduct finds, per product, the location with the largest
// quantity sold, alphabetical by product
func (r *transactionRepo) TopLocationByProduct(ctx context.Context) ([]models.ProductTopLocation, error) {
	results := make([]models.ProductTopLocation, 0)
	if err := r.aggregate(ctx, topLocationByProductPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func salesByCategoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalSales", Value: -1}}}},
	}
}

// SalesByCategory sums total prices and counts transactions per category
func (r *transactionRepo) SalesByCategory(ctx context.Context) ([]models.CategorySales, error) {
	results := make([]models.CategorySales, 0)
	if err := r.aggregate(ctx, salesByCategoryPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func transactionsByPaymentMethodPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$payment_method"},
			{Key: "totalTransactions", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalTransactions", Value: -1}}}},
	}
}

// TransactionsByPaymentMethod counts transactions per payment method
func (r *transactionRepo) TransactionsByPaymentMethod(ctx context.Context) ([]models.PaymentMethodCount, error) {
	results := make([]models.PaymentMethodCount, 0)
	if err := r.aggregate(ctx, transactionsByPaymentMethodPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func revenueByCustomerPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$customer_id"},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalRevenue", Value: -1}}}},
	}
}

// RevenueByCustomer sums total prices and counts transactions per customer
func (r *transactionRepo) RevenueByCustomer(ctx context.Context) ([]models.CustomerRevenue, error) {
	results := make([]models.CustomerRevenue, 0)
	if err := r.aggregate(ctx, revenueByCustomerPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func quantityByProductPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$product_id"},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalQuantity", Value: -1}}}},
	}
}

// QuantityByProduct sums quantities per product identifier
func (r *transactionRepo) QuantityByProduct(ctx context.Context) ([]models.ProductIDQuantity, error) {
	results := make([]models.ProductIDQuantity, 0)
	if err := r.aggregate(ctx, quantityByProductPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func salesByMonthPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$month", Value: "$timestamp"}}},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// SalesByMonth sums total prices and counts transactions per calendar month
func (r *transactionRepo) SalesByMonth(ctx context.Context) ([]models.MonthlySales, error) {
	results := make([]models.MonthlySales, 0)
	if err := r.aggregate(ctx, salesByMonthPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func topLocationsBySalesPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location"},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalSales", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// TopLocationsBySales returns the locations with the largest total sales,
// capped to limit entries; the usecase enriches them with coordinates
func (r *transactionRepo) TopLocationsBySales(ctx context.Context, limit int) ([]models.LocationSalesDetail, error) {
	results := make([]models.LocationSalesDetail, 0)
	if err := r.aggregate(ctx, topLocationsBySalesPipeline(limit), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// DistinctPaymentMethods lists the payment methods present in the collection
func (r *transactionRepo) DistinctPaymentMethods(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "payment_method", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	methods := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			methods = append(methods, s)
		}
	}
	return methods, nil
}
