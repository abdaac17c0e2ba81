package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config — настройки сервиса из окружения / .env
type Config struct {
	DBDSN         string
	AppPort       string
	GinMode       string
	LogLevel      string
	SeedTokenHash string
	SeedFile      string
}

// Load грузит .env из текущей папки, родительской и корня репо, затем читает окружение
func Load() *Config {
	_ = godotenv.Overload(".env", "../.env", "../../.env")
	return FromEnv()
}

// FromEnv читает только переменные окружения
func FromEnv() *Config {
	return &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		AppPort:       getEnv("APP_PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "release"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SeedTokenHash: os.Getenv("SEED_TOKEN_HASH"),
		SeedFile:      os.Getenv("SEED_FILE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) Validate() error {
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is empty (check your .env)")
	}
	if port, err := strconv.Atoi(c.AppPort); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("APP_PORT %q is not a valid port", c.AppPort)
	}
	return nil
}

// Addr — адрес для http.Server
func (c *Config) Addr() string {
	return ":" + c.AppPort
}
