package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stageKey(t *testing.T, stage bson.D) string {
	t.Helper()
	require.Len(t, stage, 1)
	return stage[0].Key
}

func TestTopSellingProductsPipeline_Limit(t *testing.T) {
	pipeline := topSellingProductsPipeline(10)
	require.Len(t, pipeline, 3)

	assert.Equal(t, "$group", stageKey(t, pipeline[0]))
	assert.Equal(t, "$sort", stageKey(t, pipeline[1]))
	assert.Equal(t, "$limit", stageKey(t, pipeline[2]))
	assert.Equal(t, 10, pipeline[2][0].Value)

	// Sorted descending by summed quantity
	sort, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "totalQuantity", Value: -1}}, sort)
}

func TestTotalsPipeline_DistinctCustomerProjection(t *testing.T) {
	pipeline := totalsPipeline()
	require.Len(t, pipeline, 2)

	group, ok := pipeline[0][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "_id", group[0].Key)
	assert.Nil(t, group[0].Value)

	// Distinct customers are collected with $addToSet and counted with $size
	var sawAddToSet bool
	for _, field := range group {
		if field.Key == "uniqueCustomers" {
			sawAddToSet = true
			assert.Equal(t, bson.D{{Key: "$addToSet", Value: "$customer_id"}}, field.Value)
		}
	}
	assert.True(t, sawAddToSet)

	project, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	var sawSize bool
	for _, field := range project {
		if field.Key == "totalCustomers" {
			sawSize = true
			assert.Equal(t, bson.D{{Key: "$size", Value: "$uniqueCustomers"}}, field.Value)
		}
	}
	assert.True(t, sawSize)
}

func TestTopLocationByProductPipeline_StageOrder(t *testing.T) {
	pipeline := topLocationByProductPipeline()
	require.Len(t, pipeline, 4)

	assert.Equal(t, "$group", stageKey(t, pipeline[0]))
	assert.Equal(t, "$sort", stageKey(t, pipeline[1]))
	assert.Equal(t, "$group", stageKey(t, pipeline[2]))
	assert.Equal(t, "$sort", stageKey(t, pipeline[3]))

	// The intermediate sort must rank locations within a product before $first
	sort, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{
		{Key: "_id.product", Value: 1},
		{Key: "totalQuantity", Value: -1},
	}, sort)

	// Final output is alphabetical by product
	finalSort, ok := pipeline[3][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, finalSort)
}

func TestSalesOverTimePipeline_AscendingByDate(t *testing.T) {
	pipeline := salesOverTimePipeline()
	require.Len(t, pipeline, 2)

	sort, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{
		{Key: "_id.year", Value: 1},
		{Key: "_id.month", Value: 1},
		{Key: "_id.day", Value: 1},
	}, sort)
}

func TestTopLocationsBySalesPipeline_Limit(t *testing.T) {
	pipeline := topLocationsBySalesPipeline(5)
	require.Len(t, pipeline, 3)
	assert.Equal(t, "$limit", stageKey(t, pipeline[2]))
	assert.Equal(t, 5, pipeline[2][0].Value)
}
