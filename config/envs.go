package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the API server's configuration values.
type Config struct {
	HostIP        string        // Host IP for the server
	RESTPort      int           // Port for the REST API
	BaseURL       string        // Base path the REST routes register under
	GinMode       string        // Mode for the Gin framework (e.g., release, debug, test)
	StoreBackend  string        // Maze store backend, "memory" or "redis"
	RedisAddr     string        // Address of the Redis instance backing the maze store
	RedisPassword string        // Password for the Redis instance
	RedisDB       int           // Redis database number
	MazeTTL       time.Duration // How long stored maze documents live
}

// LoadEnvs loads the server configuration from environment variables,
// reading a .env file first when one is present. Every variable has a
// workable default; a set but unparsable value is fatal.
func LoadEnvs() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:      getEnvAsIntWithDefault("REST_PORT", 8080),
		BaseURL:       getEnvWithDefault("BASE_URL", "/api"),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		StoreBackend:  getEnvWithDefault("MAZE_STORE", "memory"),
		RedisAddr:     getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvWithDefault("REDIS_PASS", ""),
		RedisDB:       getEnvAsIntWithDefault("REDIS_DB", 0),
		MazeTTL:       time.Duration(getEnvAsIntWithDefault("MAZE_TTL_SECONDS", 86400)) * time.Second,
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returns a default value if not set, and logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
