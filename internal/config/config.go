package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultNationalities is the nationality list used when NATIONALITIES is not
// set. Registration rejects any nationality outside the configured list.
var DefaultNationalities = []string{
	"Brasileiro",
	"Argentino",
	"Chileno",
	"Colombiano",
	"Peruano",
	"Uruguaio",
	"Paraguaio",
	"Boliviano",
	"Equatoriano",
	"Venezuelano",
	"Mexicano",
	"Cubano",
	"Dominicano",
	"Guatemalteco",
	"Hondurenho",
	"Salvadorenho",
	"Nicaraguense",
	"Costa-riquenho",
	"Panamenho",
	"Porto-riquenho",
}

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	EntregadorCollection string `json:"mongo_entregador_collection"`

	// Upload configuration
	UploadDir           string   `json:"upload_dir"`
	MaxAttachmentBytes  int64    `json:"max_attachment_bytes"`
	FacePhotoExtensions []string `json:"face_photo_extensions"`
	LicenseExtensions   []string `json:"license_extensions"`

	// Registration configuration
	Nationalities []string `json:"nationalities"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "60m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	maxAttachmentBytes, err := strconv.ParseInt(getEnvOrDefault("MAX_ATTACHMENT_BYTES", "5242880"), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid MAX_ATTACHMENT_BYTES: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "entregadores"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Collection names
		EntregadorCollection: getEnvOrDefault("MONGODB_ENTREGADOR_COLLECTION", "entregadores"),

		// Upload configuration
		UploadDir:           getEnvOrDefault("UPLOAD_DIR", "static/uploads"),
		MaxAttachmentBytes:  maxAttachmentBytes,
		FacePhotoExtensions: getEnvAsListOrDefault("FACE_PHOTO_EXTENSIONS", []string{"png", "jpg", "jpeg"}),
		LicenseExtensions:   getEnvAsListOrDefault("LICENSE_EXTENSIONS", []string{"png", "jpg", "jpeg", "pdf"}),

		// Registration configuration
		Nationalities: getEnvAsListOrDefault("NATIONALITIES", DefaultNationalities),

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsListOrDefault parses a comma-separated environment variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
