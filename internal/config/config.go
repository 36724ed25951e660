// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port             string `mapstructure:"PORT"`
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	Env              string `mapstructure:"APP_ENV"`
	StoreBackend     string `mapstructure:"STORE_BACKEND"`
	FirestoreProject string `mapstructure:"FIRESTORE_PROJECT"`
	CredentialsFile  string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	StoreTimeoutSec  int    `mapstructure:"STORE_TIMEOUT_SECONDS"`
	BooksBaseURL     string `mapstructure:"BOOKS_API_BASE_URL"`
	BooksAPIKey      string `mapstructure:"BOOKS_API_KEY"`
	AllowedOrigins   string `mapstructure:"ALLOWED_ORIGINS"`
	TracingEnabled   bool   `mapstructure:"TRACING_ENABLED"`
	TracingExporter  string `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint     string `mapstructure:"OTLP_ENDPOINT"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// Initial read to get APP_ENV if set in base config.
	// The config file may not exist yet, so this error is ignored.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("required profile-specific config 'config.%s.yml' not found: %w", env, err)
		}
		log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
	}

	// Set default values for development
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("JWT_SECRET", "super_secret_key")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORE_BACKEND", "firestore")
	viper.SetDefault("FIRESTORE_PROJECT", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 5)
	viper.SetDefault("BOOKS_API_BASE_URL", "https://www.googleapis.com/books/v1")
	viper.SetDefault("BOOKS_API_KEY", "")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.StoreBackend != "firestore" && c.StoreBackend != "memory" {
		return fmt.Errorf("STORE_BACKEND must be 'firestore' or 'memory', got %q", c.StoreBackend)
	}
	if c.StoreTimeoutSec <= 0 {
		return errors.New("STORE_TIMEOUT_SECONDS must be positive")
	}

	isProduction := c.Env == "production" || c.Env == "prod"

	// Strict checks for production
	if isProduction {
		if c.JWTSecret == "super_secret_key" {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.StoreBackend == "memory" {
			return errors.New("the in-memory store backend is not allowed in production")
		}
		if c.FirestoreProject == "" {
			return errors.New("FIRESTORE_PROJECT is required in production")
		}
	} else {
		if len(c.JWTSecret) < 32 {
			log.Println("WARNING: JWT_SECRET is shorter than 32 characters. Consider using a stronger secret for production.")
		}
	}

	return nil
}
