package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/salesboard/internal/pkg/constants"
	"github.com/piresc/salesboard/internal/pkg/database"
	httppkg "github.com/piresc/salesboard/internal/pkg/http"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/models"
)

// GeoGateway resolves location names to coordinates through a Nominatim-style
// search endpoint, caching resolved coordinates in Redis as geohash strings.
type GeoGateway struct {
	client      *httppkg.Client
	redisClient *database.RedisClient
	cacheTTL    time.Duration
}

// NewGeoGateway creates a new geocoding gateway
func NewGeoGateway(cfg models.GeocodingConfig, redisClient *database.RedisClient) *GeoGateway {
	client := httppkg.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second)
	client.UserAgent = cfg.UserAgent

	return &GeoGateway{
		client:      client,
		redisClient: redisClient,
		cacheTTL:    time.Duration(cfg.CacheTTL) * time.Second,
	}
}

// nominatimResult is one entry of the upstream search response; coordinates
// arrive as decimal strings
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// GetCoordinates resolves a location name to latitude/longitude. Cache faults
// are logged but never fail the lookup; an upstream failure or an unknown
// location returns an error.
func (g *GeoGateway) GetCoordinates(ctx context.Context, location string) (*models.Coordinates, error) {
	key := fmt.Sprintf(constants.KeyLocationGeocode, location)

	cached, err := g.redisClient.Get(ctx, key)
	if err == nil {
		lat, lng := geohash.DecodeCenter(cached)
		return &models.Coordinates{Latitude: lat, Longitude: lng}, nil
	}
	if !errors.Is(err, redis.Nil) {
		logger.Warn("Geocode cache read failed",
			logger.String("location", location),
			logger.Err(err))
	}

	results := make([]nominatimResult, 0, 1)
	path := "/search?q=" + url.QueryEscape(location) + "&format=json&limit=1"
	if err := g.client.GetJSON(ctx, path, &results); err != nil {
		return nil, fmt.Errorf("geocoding lookup failed for %q: %w", location, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no coordinates found for %q", location)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude for %q: %w", location, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude for %q: %w", location, err)
	}

	if err := g.redisClient.Set(ctx, key, geohash.Encode(lat, lng), g.cacheTTL); err != nil {
		logger.Warn("Geocode cache write failed",
			logger.String("location", location),
			logger.Err(err))
	}

	return &models.Coordinates{Latitude: lat, Longitude: lng}, nil
}
