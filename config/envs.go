package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	DBHost     string // Hostname or IP address for the database
	DBPort     int    // Port number for the database
	DBUser     string // Username for the database
	DBPassword string // Password for the database
	DBName     string // Name of the database
	RedisHost  string // Hostname or IP address for the leaderboard redis
	RedisPort  int    // Port number for the leaderboard redis
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)

	MazeWidth       int // Default maze width for generated runs
	MazeHeight      int // Default maze height for generated runs
	MaxRunSteps     int // Navigator iteration cap per run
	LeaderboardSize int // Number of runs kept on the leaderboard
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:     getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:   getEnvAsIntWithDefault("REST_PORT", 8080),
		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:     getEnvWithDefault("DB_USER", ""),
		DBPassword: getEnvWithDefault("DB_PASS", ""),
		DBName:     getEnvWithDefault("DB_NAME", "micromouse"),
		RedisHost:  getEnvWithDefault("REDIS_HOST", "localhost"),
		RedisPort:  getEnvAsIntWithDefault("REDIS_PORT", 6379),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),

		MazeWidth:       getEnvAsIntWithDefault("MAZE_WIDTH", 10),
		MazeHeight:      getEnvAsIntWithDefault("MAZE_HEIGHT", 10),
		MaxRunSteps:     getEnvAsIntWithDefault("MAX_RUN_STEPS", 5000),
		LeaderboardSize: getEnvAsIntWithDefault("LEADERBOARD_SIZE", 25),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value
// if not set. A value that cannot be parsed logs a fatal error.
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
