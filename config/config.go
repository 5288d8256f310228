package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the seeding tools read from the environment.
// Each binary receives one Config at startup and passes the relevant
// fields into the components it constructs; nothing reads os.Getenv
// after Load returns.
type Config struct {
	APIURL   string `envconfig:"PAYLOAD_API_URL" default:"http://localhost:3000/api"`
	Email    string `envconfig:"PAYLOAD_EMAIL" default:"admin@terra-sneakers.com"`
	Password string `envconfig:"PAYLOAD_PASSWORD" default:"TerraAdmin2024!"`

	UnsplashAccessKey string `envconfig:"UNSPLASH_ACCESS_KEY"`
	PexelsAPIKey      string `envconfig:"PEXELS_API_KEY"`
	OpenAIAPIKey      string `envconfig:"OPENAI_API_KEY"`

	// LocalImagesDir is a directory of pre-supplied product shots,
	// consumed in sorted order by the local-file image source.
	LocalImagesDir string `envconfig:"TERRA_IMAGES_DIR" default:"real_images"`

	// ChromePath overrides Chrome/Chromium autodetection for the
	// browser-automated scraper.
	ChromePath string `envconfig:"CHROME_PATH"`
}

// Load reads an optional .env file and then the process environment.
// A missing .env file is not an error; the tools are also run with
// variables exported directly.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found, using system environment variables")
	} else {
		log.Printf("✅ Environment variables loaded from .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}
