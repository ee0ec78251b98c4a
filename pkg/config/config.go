package config

import (
	"os"
	"strconv"
	"time"
)

// Riot API configuration struct.
type RiotConfiguration struct {
	ApiKey string
	Limits RateLimits
}

// Single rate limit window configuration.
type RateWindow struct {
	Count         int
	ResetInterval time.Duration
}

// The two windows enforced by the Riot API.
type RateLimits struct {
	Lower  RateWindow
	Higher RateWindow
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Database configuration struct.
type DatabaseConfiguration struct {
	URL string
}

// Bucket configuration for the log uploads.
type BucketConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
}

// Bedrock configuration for the narrative generation.
type BedrockConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	DefaultModel string
}

// Server configuration struct.
type ServerConfiguration struct {
	Port        string
	FrontendURL string
}

var (
	Riot     RiotConfiguration
	Redis    RedisConfiguration
	Database DatabaseConfiguration
	Bucket   BucketConfiguration
	Bedrock  BedrockConfiguration
	Server   ServerConfiguration
)

// Load the variables.
func LoadEnv() {
	// Load the Riot configuration.
	Riot.ApiKey = os.Getenv("RIOT_API_KEY")
	Riot.Limits = RateLimits{
		Lower: RateWindow{
			Count:         envInt("RIOT_LIMIT_LOWER_COUNT", 20),
			ResetInterval: time.Duration(envInt("RIOT_LIMIT_LOWER_SECONDS", 1)) * time.Second,
		},
		Higher: RateWindow{
			Count:         envInt("RIOT_LIMIT_HIGHER_COUNT", 100),
			ResetInterval: time.Duration(envInt("RIOT_LIMIT_HIGHER_SECONDS", 120)) * time.Second,
		},
	}

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the database configuration.
	Database.URL = os.Getenv("DATABASE_URL")

	// Load the bucket configuration.
	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")

	// Load the Bedrock configuration.
	Bedrock.Region = envDefault("AWS_REGION", "us-east-1")
	Bedrock.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	Bedrock.AccessSecret = os.Getenv("AWS_SECRET_ACCESS_KEY")
	Bedrock.DefaultModel = envDefault("BEDROCK_MODEL_ID", "amazon.nova-lite-v1:0")

	// Load the server configuration.
	Server.Port = envDefault("BACKEND_PORT", "8080")
	Server.FrontendURL = envDefault("FRONTEND_URL", "http://localhost:5173")
}

// Return the env value as int, falling back to the default on missing or invalid values.
func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

// Return the env value, falling back to the default when empty.
func envDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
