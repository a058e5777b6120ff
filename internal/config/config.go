package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	AppEnv        string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    port,
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "userbase"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AppEnv:        getEnv("APP_ENV", "development"),
	}, nil
}

// IsDevelopment reports whether the service runs in development mode,
// which controls stack-trace exposure in error responses.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
