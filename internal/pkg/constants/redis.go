package constants

// Redis key formats
const (
	// Transaction lookup cache
	KeyTransaction = "transaction:%s" // Format: transaction:{transaction_id}

	// Geocoding cache, value is a geohash of the resolved coordinates
	KeyLocationGeocode = "geo:location:%s" // Format: geo:location:{location}
)
