package models

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Geocoding GeocodingConfig
	Logger    LoggerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig holds document store connection configuration
type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout int
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// CacheConfig holds cache behaviour configuration
type CacheConfig struct {
	// TransactionTTL is the expiration of cached transaction snapshots, in seconds
	TransactionTTL int
}

// GeocodingConfig holds geocoding upstream configuration
type GeocodingConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   int
	// CacheTTL is the expiration of cached coordinates, in seconds
	CacheTTL int
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
