package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	AppPort      string // Application port
	DBHost       string // Database host
	DBPort       string // Database port
	DBUser       string // Database user
	DBPassword   string // Database password
	DBName       string // Database name
	DatabaseURL  string // Full DSN, overrides the individual DB_* vars when set
	JWTSecret    string // JWT signing secret, injected into the token middleware
	UploadDir    string // Directory uploaded images are written to
	PublicPath   string // URL prefix the upload directory is served under
	DefaultImage string // Image reference used when a create supplies no file
	IsProd       bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present

	cfg := &Config{
		AppPort:      os.Getenv("APP_PORT"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		UploadDir:    os.Getenv("UPLOAD_DIR"),
		PublicPath:   os.Getenv("UPLOAD_PUBLIC_PATH"),
		DefaultImage: os.Getenv("DEFAULT_IMAGE"),
		IsProd:       os.Getenv("IS_PROD") == "true",
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "image"
	}
	if cfg.PublicPath == "" {
		cfg.PublicPath = "/image"
	}
	if cfg.DefaultImage == "" {
		cfg.DefaultImage = cfg.PublicPath + "/default.png"
	}

	return cfg
}
