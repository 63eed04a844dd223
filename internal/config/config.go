package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	UploadsDir  string

	// Enhancement service. Empty URL means fallback-only mode: every
	// enhancement request is answered with the canned local response.
	EnhanceURL     string
	EnhanceTimeout time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		log.Println("Attempting to load from parent directory...")
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	enhanceTimeout := 15 * time.Second
	if v := os.Getenv("ENHANCE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			enhanceTimeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           port,
		UploadsDir:     uploadsDir,
		EnhanceURL:     os.Getenv("ENHANCE_URL"),
		EnhanceTimeout: enhanceTimeout,
	}
}
