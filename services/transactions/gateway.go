package transactions

import (
	"context"

	"github.com/piresc/salesboard/internal/pkg/models"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// GeoGW defines the interface for the geocoding collaborator
type GeoGW interface {
	// GetCoordinates resolves a location name to latitude/longitude
	GetCoordinates(ctx context.Context, location string) (*models.Coordinates, error)
}
