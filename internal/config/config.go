package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DevSecret is only acceptable for local development. Startup fails in
// production when SECRET_KEY is unset or left at this value.
const DevSecret = "dev-insecure-secret"

type Config struct {
	AppEnv       string
	Addr         string
	DatabasePath string
	UploadDir    string
	SecretKey    string
	AdminPass    string
	LogLevel     string
	AllowInitDB  bool
}

func getenvDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		AppEnv:       getenvDefault("APP_ENV", "development"),
		Addr:         getenvDefault("ADDR", ":8080"),
		DatabasePath: getenvDefault("DATABASE_PATH", "store.db"),
		UploadDir:    getenvDefault("UPLOAD_DIR", "uploads"),
		SecretKey:    getenvDefault("SECRET_KEY", DevSecret),
		AdminPass:    getenvDefault("ADMIN_PASSWORD", "admin"),
		LogLevel:     getenvDefault("LOG_LEVEL", "info"),
		AllowInitDB:  os.Getenv("ALLOW_INIT_DB") == "1",
	}

	if config.IsProduction() && config.SecretKey == DevSecret {
		return nil, fmt.Errorf("SECRET_KEY must be set to a non-default value when APP_ENV=production")
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
