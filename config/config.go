package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	HFAPIKey      string
	SessionSecret string
}

// Load reads configuration from the environment, after loading a local .env
// file when one exists. Presence checks are the caller's responsibility.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	apiKey := os.Getenv("HF_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("HUGGING_FACE_API_KEY")
	}

	return &Config{
		Port:          port,
		DatabaseURL:   os.Getenv("DB_URL"),
		HFAPIKey:      apiKey,
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}
}
