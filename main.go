package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/craftshare/backend/api"
	"github.com/craftshare/backend/auth"
	"github.com/craftshare/backend/config"
	"github.com/craftshare/backend/database"
	"github.com/craftshare/backend/models"
	"github.com/craftshare/backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	dsn, err := config.Require(c, "DATABASE_URL")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Project{}, &models.Image{}, &models.Comment{}); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	store, err := newBlobStore(c)
	if err != nil {
		fmt.Printf("Error initializing object store: %v\n", err)
		os.Exit(1)
	}

	jwtSecret, err := config.Require(c, "JWT_SECRET")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	tokens, err := auth.NewTokenManager(jwtSecret)
	if err != nil {
		fmt.Printf("Error initializing token manager: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, store, tokens)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newBlobStore builds the S3 gateway from the required object-store settings.
func newBlobStore(c map[string]string) (storage.Store, error) {
	accessKey, err := config.Require(c, "AWS_ACCESS_KEY_ID")
	if err != nil {
		return nil, err
	}
	secretKey, err := config.Require(c, "AWS_SECRET_ACCESS_KEY")
	if err != nil {
		return nil, err
	}
	region, err := config.Require(c, "AWS_REGION")
	if err != nil {
		return nil, err
	}
	bucket, err := config.Require(c, "S3_BUCKET_NAME")
	if err != nil {
		return nil, err
	}

	return storage.NewS3Store(context.Background(), accessKey, secretKey, region, bucket)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
