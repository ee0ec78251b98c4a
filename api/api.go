package main

import (
	"fmt"
	"log"
	"os"
	"riftrewind/api/modules"
	"riftrewind/api/routes"
	"riftrewind/api/services"
	"riftrewind/pkg/bedrock"
	"riftrewind/pkg/config"
	"riftrewind/pkg/database"
	"riftrewind/pkg/logger"
	"riftrewind/pkg/redis"
	"time"

	"github.com/joho/godotenv"
)

// Entrypoint of the player analytics API.
func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	// The database only backs the reference cache, run without it if
	// the connection fails.
	db, err := database.NewConnection()
	if err != nil {
		log.Printf("Running without the database cache backup: %v", err)
		db = nil
	}

	redisClient := redis.GetClient()
	defer redisClient.Close()

	serviceLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Error creating the logger: %v", err)
	}
	defer serviceLogger.Close()

	if config.Bucket.LogBucket != "" {
		go uploadLogsLoop(serviceLogger)
	}

	// The narrative endpoints degrade to heuristics only when the
	// Bedrock credentials are missing.
	tracker := bedrock.NewUsageTracker()

	var bedrockClient *bedrock.Client
	if config.Bedrock.AccessKey != "" {
		bedrockClient = bedrock.NewClient(&bedrock.ClientDeps{
			Runtime: bedrock.NewRuntime(),
			Tracker: tracker,
		})
	} else {
		log.Print("Running without Bedrock, narratives disabled")
	}

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		DB:      db,
		Logger:  serviceLogger,
		Redis:   redisClient,
		Bedrock: bedrockClient,
		Tracker: tracker,
		Clients: services.NewClientRegistry(),
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.PlayerHandler,
		module.GemsHandler,
		module.InsightsHandler,
	)

	// Start the server.
	if err := router.Run(":" + config.Server.Port); err != nil {
		log.Fatalf("Error running the server: %v", err)
	}
}

// uploadLogsLoop ships the service log to the bucket every hour.
func uploadLogsLoop(serviceLogger *logger.Logger) {
	for range time.Tick(time.Hour) {
		objectKey := fmt.Sprintf("api/%s.log", time.Now().Format("2006-01-02-15-04"))
		if err := serviceLogger.UploadToS3Bucket(objectKey); err != nil {
			log.Printf("Couldn't send the log to s3: %v", err)

			// Clean the file in the case it was a S3 error and not a file error.
			serviceLogger.CleanFile()
		}
	}
}
